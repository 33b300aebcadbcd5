package repository

import (
	"context"
	"doctorsportal/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultDoctorRepository struct {
	db *gorm.DB
}

func NewDoctorRepository(db *gorm.DB) *DefaultDoctorRepository {
	return &DefaultDoctorRepository{db: db}
}

func (d *DefaultDoctorRepository) FindAll(ctx context.Context) ([]*entity.Doctor, error) {
	var doctors []*entity.Doctor
	err := d.db.WithContext(ctx).Find(&doctors).Error
	return doctors, err
}

func (d *DefaultDoctorRepository) Save(ctx context.Context, doctor *entity.Doctor) error {
	if doctor.ID == "" {
		doctor.ID = entity.NewID()
	}
	return d.db.WithContext(ctx).Create(doctor).Error
}

// Delete returns the number of removed records, zero when id is unknown.
func (d *DefaultDoctorRepository) Delete(ctx context.Context, id string) (int64, error) {
	result := d.db.WithContext(ctx).Delete(&entity.Doctor{}, "id = ?", id)
	return result.RowsAffected, result.Error
}
