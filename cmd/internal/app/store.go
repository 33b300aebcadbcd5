package app

import (
	"context"
	"doctorsportal/cmd/internal/config"
	"doctorsportal/cmd/internal/domain/mongodb"
	mongorepo "doctorsportal/cmd/internal/domain/mongodb/repository"
	"doctorsportal/cmd/internal/domain/sqlite"
	sqliterepo "doctorsportal/cmd/internal/domain/sqlite/repository"
	"doctorsportal/cmd/internal/service"
	"fmt"

	"github.com/labstack/gommon/log"
)

// Store bundles the repositories of one backend.
type Store struct {
	Options  service.AppointmentOptionRepository
	Bookings service.BookingRepository
	Users    service.UserRepository
	Doctors  service.DoctorRepository

	close func(ctx context.Context) error
}

// OpenStore connects to the backend named by cfg.StoreDriver.
func OpenStore(ctx context.Context, cfg *config.Config) (*Store, error) {
	switch cfg.StoreDriver {
	case config.DriverMongo:
		client, db, err := mongodb.Connect(ctx, cfg.MongoURI(), cfg.DBName)
		if err != nil {
			return nil, fmt.Errorf("connect mongo: %w", err)
		}
		log.Infof("connected to mongo database %s", cfg.DBName)
		return &Store{
			Options:  mongorepo.NewAppointmentOptionRepository(db),
			Bookings: mongorepo.NewBookingRepository(db),
			Users:    mongorepo.NewUserRepository(db),
			Doctors:  mongorepo.NewDoctorRepository(db),
			close:    client.Disconnect,
		}, nil

	case config.DriverSQLite:
		db, err := sqlite.Init(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		log.Infof("opened sqlite database %s", cfg.SQLitePath)
		return &Store{
			Options:  sqliterepo.NewAppointmentOptionRepository(db),
			Bookings: sqliterepo.NewBookingRepository(db),
			Users:    sqliterepo.NewUserRepository(db),
			Doctors:  sqliterepo.NewDoctorRepository(db),
			close:    func(context.Context) error { return sqlite.Close(db) },
		}, nil
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}

func (s *Store) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}
