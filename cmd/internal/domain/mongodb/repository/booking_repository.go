package repository

import (
	"context"
	"doctorsportal/cmd/internal/domain/entity"
	"doctorsportal/cmd/internal/domain/mongodb"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoBookingRepository struct {
	coll *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) *MongoBookingRepository {
	return &MongoBookingRepository{coll: db.Collection(mongodb.BookingsCollection)}
}

func (b *MongoBookingRepository) FindByID(ctx context.Context, id string) (*entity.Booking, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	var doc bookingDocument
	err = b.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc.toEntity(), nil
}

func (b *MongoBookingRepository) FindByDate(ctx context.Context, date string) ([]*entity.Booking, error) {
	return b.find(ctx, bson.M{"appointmentDate": date})
}

func (b *MongoBookingRepository) FindByEmail(ctx context.Context, email string) ([]*entity.Booking, error) {
	return b.find(ctx, bson.M{"email": email})
}

func (b *MongoBookingRepository) ExistsFor(ctx context.Context, date, treatment, email string) (bool, error) {
	filter := bson.M{
		"appointmentDate": date,
		"treatment":       treatment,
		"email":           email,
	}
	count, err := b.coll.CountDocuments(ctx, filter)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (b *MongoBookingRepository) Save(ctx context.Context, booking *entity.Booking) error {
	doc, err := newBookingDocument(booking)
	if err != nil {
		return err
	}

	res, err := b.coll.InsertOne(ctx, doc)
	if mongo.IsDuplicateKeyError(err) {
		return entity.ErrDuplicateKey
	}
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		booking.ID = oid.Hex()
	}
	return nil
}

func (b *MongoBookingRepository) find(ctx context.Context, filter bson.M) ([]*entity.Booking, error) {
	cursor, err := b.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []bookingDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	bookings := make([]*entity.Booking, len(docs))
	for i := range docs {
		bookings[i] = docs[i].toEntity()
	}
	return bookings, nil
}
