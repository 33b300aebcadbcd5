package repository

import (
	"context"
	"doctorsportal/cmd/internal/domain/entity"
	"errors"

	"gorm.io/gorm"
)

type DefaultBookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *DefaultBookingRepository {
	return &DefaultBookingRepository{db: db}
}

func (b *DefaultBookingRepository) FindByID(ctx context.Context, id string) (*entity.Booking, error) {
	var booking entity.Booking
	err := b.db.WithContext(ctx).First(&booking, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &booking, err
}

func (b *DefaultBookingRepository) FindByDate(ctx context.Context, date string) ([]*entity.Booking, error) {
	var bookings []*entity.Booking
	err := b.db.WithContext(ctx).Where("appointment_date = ?", date).Find(&bookings).Error
	return bookings, err
}

func (b *DefaultBookingRepository) FindByEmail(ctx context.Context, email string) ([]*entity.Booking, error) {
	var bookings []*entity.Booking
	err := b.db.WithContext(ctx).Where("email = ?", email).Find(&bookings).Error
	return bookings, err
}

func (b *DefaultBookingRepository) ExistsFor(ctx context.Context, date, treatment, email string) (bool, error) {
	var count int64
	err := b.db.WithContext(ctx).
		Model(&entity.Booking{}).
		Where("appointment_date = ?", date).
		Where("treatment = ?", treatment).
		Where("email = ?", email).
		Count(&count).Error

	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save inserts a new booking. Bookings are never updated.
func (b *DefaultBookingRepository) Save(ctx context.Context, booking *entity.Booking) error {
	if booking.ID == "" {
		booking.ID = entity.NewID()
	}
	err := translate(b.db.WithContext(ctx).Create(booking).Error)
	if err != nil {
		booking.ID = ""
	}
	return err
}
