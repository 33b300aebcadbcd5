package repository

import (
	"context"
	"doctorsportal/cmd/internal/domain/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultAppointmentOptionRepository struct {
	db *gorm.DB
}

func NewAppointmentOptionRepository(db *gorm.DB) *DefaultAppointmentOptionRepository {
	return &DefaultAppointmentOptionRepository{db: db}
}

func (a *DefaultAppointmentOptionRepository) FindAll(ctx context.Context) ([]*entity.AppointmentOption, error) {
	var opts []*entity.AppointmentOption
	err := a.db.WithContext(ctx).Order("name asc").Find(&opts).Error
	return opts, err
}

// FindNames returns PARTIAL options, having only the `Name` field.
func (a *DefaultAppointmentOptionRepository) FindNames(ctx context.Context) ([]string, error) {
	var names []string
	err := a.db.WithContext(ctx).
		Model(&entity.AppointmentOption{}).
		Order("name asc").
		Pluck("name", &names).Error
	return names, err
}

// Upsert inserts the option, or replaces price and slots of the option
// with the same name.
func (a *DefaultAppointmentOptionRepository) Upsert(ctx context.Context, opt *entity.AppointmentOption) error {
	if opt.ID == "" {
		opt.ID = entity.NewID()
	}
	return a.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"price", "slots"}),
		}).
		Create(opt).Error
}
