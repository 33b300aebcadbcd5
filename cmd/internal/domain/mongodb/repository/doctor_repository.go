package repository

import (
	"context"
	"doctorsportal/cmd/internal/domain/entity"
	"doctorsportal/cmd/internal/domain/mongodb"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoDoctorRepository struct {
	coll *mongo.Collection
}

func NewDoctorRepository(db *mongo.Database) *MongoDoctorRepository {
	return &MongoDoctorRepository{coll: db.Collection(mongodb.DoctorsCollection)}
}

func (d *MongoDoctorRepository) FindAll(ctx context.Context) ([]*entity.Doctor, error) {
	cursor, err := d.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []doctorDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	doctors := make([]*entity.Doctor, len(docs))
	for i := range docs {
		doctors[i] = docs[i].toEntity()
	}
	return doctors, nil
}

func (d *MongoDoctorRepository) Save(ctx context.Context, doctor *entity.Doctor) error {
	oid, err := objectID(doctor.ID)
	if err != nil {
		return err
	}

	doc := &doctorDocument{ID: oid, Name: doctor.Name, Email: doctor.Email, Specialty: doctor.Specialty, Image: doctor.Image}
	res, err := d.coll.InsertOne(ctx, doc)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		doctor.ID = oid.Hex()
	}
	return nil
}

func (d *MongoDoctorRepository) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := objectID(id)
	if err != nil {
		return 0, err
	}

	res, err := d.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
