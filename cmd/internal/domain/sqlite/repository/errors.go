package repository

import (
	"doctorsportal/cmd/internal/domain/entity"
	"errors"
	"strings"

	"gorm.io/gorm"
)

// translate maps unique constraint violations onto entity.ErrDuplicateKey.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return entity.ErrDuplicateKey
	}
	return err
}
