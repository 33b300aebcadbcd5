package entity

import (
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	// ErrInvalidID is returned when a raw identifier is not a 24 hex digit object id.
	ErrInvalidID = errors.New("invalid identifier")

	// ErrDuplicateKey is returned by stores when an insert violates a unique index.
	ErrDuplicateKey = errors.New("duplicate key")
)

// NewID returns a fresh object id in its hex form. Both stores use it so ids
// look the same regardless of the backend.
func NewID() string {
	return primitive.NewObjectID().Hex()
}

// ParseID validates a raw identifier taken from a request.
func ParseID(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	oid, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return "", ErrInvalidID
	}
	return oid.Hex(), nil
}
