package repository

import (
	"context"
	"doctorsportal/cmd/internal/domain/entity"
	"doctorsportal/cmd/internal/domain/mongodb"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoAppointmentOptionRepository struct {
	coll *mongo.Collection
}

func NewAppointmentOptionRepository(db *mongo.Database) *MongoAppointmentOptionRepository {
	return &MongoAppointmentOptionRepository{coll: db.Collection(mongodb.AppointmentOptionsCollection)}
}

func (a *MongoAppointmentOptionRepository) FindAll(ctx context.Context) ([]*entity.AppointmentOption, error) {
	cursor, err := a.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []optionDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	opts := make([]*entity.AppointmentOption, len(docs))
	for i := range docs {
		opts[i] = docs[i].toEntity()
	}
	return opts, nil
}

func (a *MongoAppointmentOptionRepository) FindNames(ctx context.Context) ([]string, error) {
	findOpts := options.Find().
		SetProjection(bson.M{"name": 1, "_id": 0}).
		SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := a.coll.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var names []string
	for cursor.Next(ctx) {
		var doc optionDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		names = append(names, doc.Name)
	}
	return names, cursor.Err()
}

func (a *MongoAppointmentOptionRepository) Upsert(ctx context.Context, opt *entity.AppointmentOption) error {
	update := bson.M{"$set": bson.M{"price": opt.Price, "slots": opt.Slots}}
	res, err := a.coll.UpdateOne(ctx, bson.M{"name": opt.Name}, update, options.Update().SetUpsert(true))
	if err != nil {
		return err
	}
	if oid, ok := res.UpsertedID.(primitive.ObjectID); ok {
		opt.ID = oid.Hex()
	}
	return nil
}
