package service

import (
	"context"
	"doctorsportal/cmd/internal/domain/entity"
	"doctorsportal/cmd/internal/domain/scheduling"
	"doctorsportal/cmd/internal/metrics"
	"doctorsportal/cmd/internal/utils"
	"doctorsportal/cmd/internal/utils/apierror"
	"encoding/json"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

// BookingRequest is a booking form. Members beyond the named fields are
// kept in Extra and stored with the booking.
type BookingRequest struct {
	AppointmentDate string         `json:"appointmentDate" validate:"required,calendardate"`
	Treatment       string         `json:"treatment" validate:"required,max=128"`
	Slot            string         `json:"slot" validate:"required,max=32"`
	Email           string         `json:"email" validate:"required,email"`
	PatientName     string         `json:"patientName" validate:"max=128"`
	Patient         string         `json:"patient" validate:"max=128"`
	Phone           string         `json:"phone" validate:"max=32"`
	Price           float64        `json:"price" validate:"gte=0"`
	Extra           map[string]any `json:"-" validate:"max=32"`
}

func (r *BookingRequest) UnmarshalJSON(data []byte) error {
	type plain BookingRequest
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	extra, err := entity.BookingExtra(data)
	if err != nil {
		return err
	}
	p.Extra = extra
	*r = BookingRequest(p)
	return nil
}

// BookingResponse is the reply to a booking attempt. A rejected attempt is
// a normal response with Acknowledged false and a Message.
type BookingResponse struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId,omitempty"`
	Message      string `json:"message,omitempty"`
}

type DefaultBookingService struct {
	BookingRepo BookingRepository
	Validate    *validator.Validate
}

func NewBookingService(bookingRepo BookingRepository, validate *validator.Validate) *DefaultBookingService {
	return &DefaultBookingService{BookingRepo: bookingRepo, Validate: validate}
}

func (b *DefaultBookingService) CreateBooking(ctx context.Context, req *BookingRequest) (*BookingResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := b.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	// patientName and patient name the same person; either one fills both.
	patientName, patient := req.PatientName, req.Patient
	if patientName == "" {
		patientName = patient
	}
	if patient == "" {
		patient = patientName
	}

	booking := &entity.Booking{
		AppointmentDate: req.AppointmentDate,
		Treatment:       req.Treatment,
		Slot:            req.Slot,
		Email:           req.Email,
		PatientName:     patientName,
		Patient:         patient,
		Phone:           req.Phone,
		Price:           req.Price,
		Extra:           req.Extra,
	}

	outcome, err := scheduling.TryCreateBooking(ctx, b.BookingRepo, booking)
	if err != nil {
		log.Errorf("failed to create booking for %s on %s: %v", req.Email, req.AppointmentDate, err)
		return nil, apierror.InternalServerError
	}

	if outcome.Rejected() {
		metrics.BookingConflicts.WithLabelValues(string(outcome.Reason)).Inc()
		return &BookingResponse{Acknowledged: false, Message: outcome.Message}, nil
	}

	metrics.BookingsCreated.Inc()
	return &BookingResponse{Acknowledged: true, InsertedID: outcome.Created.ID}, nil
}

// GetBookings returns the bookings of email. Callers may only read their own.
func (b *DefaultBookingService) GetBookings(ctx context.Context, email, callerEmail string) ([]*entity.Booking, apierror.ErrorResponse) {
	if email == "" {
		return nil, apierror.NewMissingParamError("email")
	}
	if email != callerEmail {
		return nil, apierror.ForbiddenError
	}

	bookings, err := b.BookingRepo.FindByEmail(ctx, email)
	if err != nil {
		log.Errorf("failed to fetch bookings for %s: %v", email, err)
		return nil, apierror.InternalServerError
	}
	return bookings, nil
}

func (b *DefaultBookingService) GetBooking(ctx context.Context, rawID, callerEmail string) (*entity.Booking, apierror.ErrorResponse) {
	id, err := entity.ParseID(rawID)
	if err != nil {
		return nil, apierror.InvalidIdentifierError
	}

	booking, err := b.BookingRepo.FindByID(ctx, id)
	if err != nil {
		log.Errorf("failed to fetch booking %s: %v", id, err)
		return nil, apierror.InternalServerError
	}

	if booking == nil {
		return nil, apierror.NotFoundError
	}
	if booking.Email != callerEmail {
		return nil, apierror.ForbiddenError
	}
	return booking, nil
}
