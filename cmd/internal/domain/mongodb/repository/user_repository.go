package repository

import (
	"context"
	"doctorsportal/cmd/internal/domain/entity"
	"doctorsportal/cmd/internal/domain/mongodb"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoUserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{coll: db.Collection(mongodb.UsersCollection)}
}

func (u *MongoUserRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	cursor, err := u.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []userDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	users := make([]*entity.User, len(docs))
	for i := range docs {
		users[i] = docs[i].toEntity()
	}
	return users, nil
}

func (u *MongoUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var doc userDocument
	err := u.coll.FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc.toEntity(), nil
}

func (u *MongoUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	count, err := u.coll.CountDocuments(ctx, bson.M{"email": email}, options.Count().SetLimit(1))
	return count > 0, err
}

func (u *MongoUserRepository) Save(ctx context.Context, user *entity.User) error {
	oid, err := objectID(user.ID)
	if err != nil {
		return err
	}

	doc := &userDocument{ID: oid, Name: user.Name, Email: user.Email, Role: user.Role}
	res, err := u.coll.InsertOne(ctx, doc)
	if mongo.IsDuplicateKeyError(err) {
		return entity.ErrDuplicateKey
	}
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid.Hex()
	}
	return nil
}

func (u *MongoUserRepository) PromoteToAdmin(ctx context.Context, id string) (*entity.RoleUpdate, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	update := bson.M{"$set": bson.M{"role": entity.RoleAdmin}}
	res, err := u.coll.UpdateOne(ctx, bson.M{"_id": oid}, update, options.Update().SetUpsert(true))
	if err != nil {
		return nil, err
	}

	result := &entity.RoleUpdate{Matched: res.MatchedCount, Modified: res.ModifiedCount}
	if upserted, ok := res.UpsertedID.(primitive.ObjectID); ok {
		result.UpsertedID = upserted.Hex()
	}
	return result, nil
}
