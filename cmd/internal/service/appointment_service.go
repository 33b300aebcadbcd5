package service

import (
	"context"
	"doctorsportal/cmd/internal/domain/entity"
	"doctorsportal/cmd/internal/domain/scheduling"
	"doctorsportal/cmd/internal/utils/apierror"

	"github.com/labstack/gommon/log"
)

type SpecialtyResponse struct {
	Name string `json:"name"`
}

type DefaultAppointmentService struct {
	OptionRepo  AppointmentOptionRepository
	BookingRepo BookingRepository
}

func NewAppointmentService(optionRepo AppointmentOptionRepository, bookingRepo BookingRepository) *DefaultAppointmentService {
	return &DefaultAppointmentService{OptionRepo: optionRepo, BookingRepo: bookingRepo}
}

// GetAppointmentOptions returns the catalog with the slots already booked
// on date removed.
func (a *DefaultAppointmentService) GetAppointmentOptions(ctx context.Context, date string) ([]*entity.AppointmentOption, apierror.ErrorResponse) {
	opts, err := a.OptionRepo.FindAll(ctx)
	if err != nil {
		log.Errorf("failed to fetch appointment options: %v", err)
		return nil, apierror.InternalServerError
	}

	booked, err := a.BookingRepo.FindByDate(ctx, date)
	if err != nil {
		log.Errorf("failed to fetch bookings for %s: %v", date, err)
		return nil, apierror.InternalServerError
	}

	return scheduling.ComputeAvailability(opts, booked, date), nil
}

func (a *DefaultAppointmentService) GetSpecialties(ctx context.Context) ([]*SpecialtyResponse, apierror.ErrorResponse) {
	names, err := a.OptionRepo.FindNames(ctx)
	if err != nil {
		log.Errorf("failed to fetch appointment specialties: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*SpecialtyResponse, len(names))
	for i, name := range names {
		resp[i] = &SpecialtyResponse{Name: name}
	}
	return resp, nil
}

// SeedOptions upserts every option of the catalog by name.
func (a *DefaultAppointmentService) SeedOptions(ctx context.Context, opts []*entity.AppointmentOption) (int, error) {
	for i, opt := range opts {
		if err := a.OptionRepo.Upsert(ctx, opt); err != nil {
			return i, err
		}
	}
	return len(opts), nil
}
