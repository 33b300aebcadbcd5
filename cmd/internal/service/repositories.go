package service

import (
	"context"
	"doctorsportal/cmd/internal/domain/entity"
)

type AppointmentOptionRepository interface {
	FindAll(ctx context.Context) ([]*entity.AppointmentOption, error)
	FindNames(ctx context.Context) ([]string, error)
	Upsert(ctx context.Context, opt *entity.AppointmentOption) error
}

type BookingRepository interface {
	FindByID(ctx context.Context, id string) (*entity.Booking, error)
	FindByDate(ctx context.Context, date string) ([]*entity.Booking, error)
	FindByEmail(ctx context.Context, email string) ([]*entity.Booking, error)
	ExistsFor(ctx context.Context, date, treatment, email string) (bool, error)
	Save(ctx context.Context, booking *entity.Booking) error
}

type UserRepository interface {
	FindAll(ctx context.Context) ([]*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Save(ctx context.Context, user *entity.User) error
	PromoteToAdmin(ctx context.Context, id string) (*entity.RoleUpdate, error)
}

type DoctorRepository interface {
	FindAll(ctx context.Context) ([]*entity.Doctor, error)
	Save(ctx context.Context, doctor *entity.Doctor) error
	Delete(ctx context.Context, id string) (int64, error)
}

// InsertResponse acknowledges an insert, shaped like a document store reply.
type InsertResponse struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}
