package scheduling

import (
	"context"
	"errors"
	"fmt"

	"doctorsportal/cmd/internal/domain/entity"
)

// BookingStore is the part of the booking repository the guard needs.
type BookingStore interface {
	ExistsFor(ctx context.Context, date, treatment, email string) (bool, error)
	Save(ctx context.Context, booking *entity.Booking) error
}

// RejectReason tells apart the two ways a duplicate is caught.
type RejectReason string

const (
	RejectedExisting     RejectReason = "existing"
	RejectedDuplicateKey RejectReason = "duplicate_key"
)

// Outcome is the result of TryCreateBooking. Exactly one of Created and
// Message is set.
type Outcome struct {
	Created *entity.Booking
	Message string
	Reason  RejectReason
}

func (o Outcome) Rejected() bool {
	return o.Created == nil
}

// ConflictMessage is the message returned to a patient who already holds a
// booking for the treatment on date.
func ConflictMessage(date string) string {
	return fmt.Sprintf("You already have a booking on %s", date)
}

// TryCreateBooking inserts booking unless the patient already has a booking
// for the same treatment on the same date. The existence check and the insert
// are separate store calls; a concurrent insert that slips between them is
// caught by the store's unique index and reported as the same conflict.
func TryCreateBooking(ctx context.Context, store BookingStore, booking *entity.Booking) (Outcome, error) {
	exists, err := store.ExistsFor(ctx, booking.AppointmentDate, booking.Treatment, booking.Email)
	if err != nil {
		return Outcome{}, fmt.Errorf("check existing booking: %w", err)
	}
	if exists {
		return rejected(booking, RejectedExisting), nil
	}

	err = store.Save(ctx, booking)
	if errors.Is(err, entity.ErrDuplicateKey) {
		return rejected(booking, RejectedDuplicateKey), nil
	}
	if err != nil {
		return Outcome{}, fmt.Errorf("insert booking: %w", err)
	}
	return Outcome{Created: booking}, nil
}

func rejected(booking *entity.Booking, reason RejectReason) Outcome {
	return Outcome{Message: ConflictMessage(booking.AppointmentDate), Reason: reason}
}
