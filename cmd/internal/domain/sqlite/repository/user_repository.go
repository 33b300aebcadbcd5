package repository

import (
	"context"
	"doctorsportal/cmd/internal/domain/entity"
	"errors"

	"gorm.io/gorm"
)

type DefaultUserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *DefaultUserRepository {
	return &DefaultUserRepository{db: db}
}

func (u *DefaultUserRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	var users []*entity.User
	err := u.db.WithContext(ctx).Find(&users).Error
	return users, err
}

func (u *DefaultUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	err := u.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &user, err
}

func (u *DefaultUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := u.db.WithContext(ctx).Model(&entity.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (u *DefaultUserRepository) Save(ctx context.Context, user *entity.User) error {
	if user.ID == "" {
		user.ID = entity.NewID()
	}
	return translate(u.db.WithContext(ctx).Create(user).Error)
}

// PromoteToAdmin sets the admin role on the user with id, creating a bare
// user record when none exists.
func (u *DefaultUserRepository) PromoteToAdmin(ctx context.Context, id string) (*entity.RoleUpdate, error) {
	result := &entity.RoleUpdate{}
	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user entity.User
		err := tx.First(&user, "id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			result.UpsertedID = id
			return tx.Create(&entity.User{ID: id, Role: entity.RoleAdmin}).Error
		}
		if err != nil {
			return err
		}

		result.Matched = 1
		if user.Role == entity.RoleAdmin {
			return nil
		}
		result.Modified = 1
		return tx.Model(&user).Update("role", entity.RoleAdmin).Error
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
