package service

import (
	"context"
	"doctorsportal/cmd/internal/domain/entity"
	"doctorsportal/cmd/internal/utils/apierror"
	"reflect"
	"testing"
)

func TestAppointmentService_GetAppointmentOptions(t *testing.T) {
	opts := &mockOptionRepo{opts: []*entity.AppointmentOption{
		{Name: "Braces", Slots: []string{"9AM", "10AM", "11AM"}},
	}}
	bookings := &mockBookingRepo{bookings: []*entity.Booking{
		{AppointmentDate: "2024-01-01", Treatment: "Braces", Slot: "10AM"},
		{AppointmentDate: "2024-01-02", Treatment: "Braces", Slot: "9AM"},
	}}
	svc := NewAppointmentService(opts, bookings)

	got, apierr := svc.GetAppointmentOptions(context.Background(), "2024-01-01")
	if apierr != nil {
		t.Fatalf("unexpected error: %v", apierr)
	}
	if !reflect.DeepEqual(got[0].Slots, []string{"9AM", "11AM"}) {
		t.Errorf("expected [9AM 11AM], got %v", got[0].Slots)
	}
	if len(opts.opts[0].Slots) != 3 {
		t.Error("stored template was mutated")
	}
}

func TestAppointmentService_GetAppointmentOptions_StoreFailure(t *testing.T) {
	svc := NewAppointmentService(&mockOptionRepo{}, &mockBookingRepo{fail: true})
	_, apierr := svc.GetAppointmentOptions(context.Background(), "2024-01-01")
	if apierr != apierror.InternalServerError {
		t.Errorf("expected internal error, got %v", apierr)
	}
}

func TestAppointmentService_GetSpecialties(t *testing.T) {
	opts := &mockOptionRepo{opts: []*entity.AppointmentOption{{Name: "Cleaning"}, {Name: "Braces"}}}
	svc := NewAppointmentService(opts, &mockBookingRepo{})

	got, apierr := svc.GetSpecialties(context.Background())
	if apierr != nil {
		t.Fatalf("unexpected error: %v", apierr)
	}
	want := []*SpecialtyResponse{{Name: "Braces"}, {Name: "Cleaning"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestAppointmentService_SeedOptions(t *testing.T) {
	opts := &mockOptionRepo{opts: []*entity.AppointmentOption{{Name: "Braces", Price: 10}}}
	svc := NewAppointmentService(opts, &mockBookingRepo{})

	n, err := svc.SeedOptions(context.Background(), []*entity.AppointmentOption{
		{Name: "Braces", Price: 120},
		{Name: "Cleaning", Price: 40},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 2 || len(opts.opts) != 2 {
		t.Errorf("expected 2 options seeded and stored, got %d and %d", n, len(opts.opts))
	}
	if opts.opts[0].Price != 120 {
		t.Errorf("expected Braces price updated to 120, got %v", opts.opts[0].Price)
	}
}
