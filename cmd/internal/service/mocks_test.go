package service

import (
	"context"
	"doctorsportal/cmd/internal/domain/entity"
	"doctorsportal/cmd/internal/utils/validators"
	"errors"
	"sort"

	"github.com/go-playground/validator/v10"
)

var errStore = errors.New("store unavailable")

func newValidator() *validator.Validate {
	v := validator.New()
	validators.Register(v)
	return v
}

type mockOptionRepo struct {
	opts []*entity.AppointmentOption
	fail bool
}

func (m *mockOptionRepo) FindAll(_ context.Context) ([]*entity.AppointmentOption, error) {
	if m.fail {
		return nil, errStore
	}
	return m.opts, nil
}

func (m *mockOptionRepo) FindNames(_ context.Context) ([]string, error) {
	if m.fail {
		return nil, errStore
	}
	names := make([]string, len(m.opts))
	for i, o := range m.opts {
		names[i] = o.Name
	}
	sort.Strings(names)
	return names, nil
}

func (m *mockOptionRepo) Upsert(_ context.Context, opt *entity.AppointmentOption) error {
	if m.fail {
		return errStore
	}
	for i, o := range m.opts {
		if o.Name == opt.Name {
			m.opts[i] = opt
			return nil
		}
	}
	opt.ID = entity.NewID()
	m.opts = append(m.opts, opt)
	return nil
}

type mockBookingRepo struct {
	bookings []*entity.Booking
	fail     bool
}

func (m *mockBookingRepo) FindByID(_ context.Context, id string) (*entity.Booking, error) {
	if m.fail {
		return nil, errStore
	}
	for _, b := range m.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, nil
}

func (m *mockBookingRepo) FindByDate(_ context.Context, date string) ([]*entity.Booking, error) {
	if m.fail {
		return nil, errStore
	}
	var out []*entity.Booking
	for _, b := range m.bookings {
		if b.AppointmentDate == date {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *mockBookingRepo) FindByEmail(_ context.Context, email string) ([]*entity.Booking, error) {
	if m.fail {
		return nil, errStore
	}
	var out []*entity.Booking
	for _, b := range m.bookings {
		if b.Email == email {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *mockBookingRepo) ExistsFor(_ context.Context, date, treatment, email string) (bool, error) {
	if m.fail {
		return false, errStore
	}
	for _, b := range m.bookings {
		if b.AppointmentDate == date && b.Treatment == treatment && b.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockBookingRepo) Save(_ context.Context, booking *entity.Booking) error {
	if m.fail {
		return errStore
	}
	booking.ID = entity.NewID()
	m.bookings = append(m.bookings, booking)
	return nil
}

type mockUserRepo struct {
	users []*entity.User
	fail  bool
}

func (m *mockUserRepo) FindAll(_ context.Context) ([]*entity.User, error) {
	if m.fail {
		return nil, errStore
	}
	return m.users, nil
}

func (m *mockUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	if m.fail {
		return nil, errStore
	}
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	u, err := m.FindByEmail(ctx, email)
	return u != nil, err
}

func (m *mockUserRepo) Save(_ context.Context, user *entity.User) error {
	if m.fail {
		return errStore
	}
	user.ID = entity.NewID()
	m.users = append(m.users, user)
	return nil
}

func (m *mockUserRepo) PromoteToAdmin(_ context.Context, id string) (*entity.RoleUpdate, error) {
	if m.fail {
		return nil, errStore
	}
	for _, u := range m.users {
		if u.ID == id {
			res := &entity.RoleUpdate{Matched: 1}
			if u.Role != entity.RoleAdmin {
				u.Role = entity.RoleAdmin
				res.Modified = 1
			}
			return res, nil
		}
	}
	m.users = append(m.users, &entity.User{ID: id, Role: entity.RoleAdmin})
	return &entity.RoleUpdate{UpsertedID: id}, nil
}

type mockDoctorRepo struct {
	doctors []*entity.Doctor
	fail    bool
}

func (m *mockDoctorRepo) FindAll(_ context.Context) ([]*entity.Doctor, error) {
	if m.fail {
		return nil, errStore
	}
	return m.doctors, nil
}

func (m *mockDoctorRepo) Save(_ context.Context, doctor *entity.Doctor) error {
	if m.fail {
		return errStore
	}
	doctor.ID = entity.NewID()
	m.doctors = append(m.doctors, doctor)
	return nil
}

func (m *mockDoctorRepo) Delete(_ context.Context, id string) (int64, error) {
	if m.fail {
		return 0, errStore
	}
	for i, d := range m.doctors {
		if d.ID == id {
			m.doctors = append(m.doctors[:i], m.doctors[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

type stubIssuer struct {
	err error
}

func (s stubIssuer) Issue(email string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return "token-for-" + email, nil
}
