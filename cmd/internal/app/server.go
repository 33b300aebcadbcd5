package app

import (
	"doctorsportal/cmd/internal/auth"
	"doctorsportal/cmd/internal/config"
	"doctorsportal/cmd/internal/metrics"
	"doctorsportal/cmd/internal/routes"
	"doctorsportal/cmd/internal/service"
	"doctorsportal/cmd/internal/utils/validators"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewServer assembles services, handlers and middleware over store.
func NewServer(cfg *config.Config, store *Store) *echo.Echo {
	validate := validator.New()
	validators.Register(validate)

	tokens := auth.NewTokenManager(cfg.TokenSecret, cfg.TokenTTL)

	// Getting services
	apptService := service.NewAppointmentService(store.Options, store.Bookings)
	bookingService := service.NewBookingService(store.Bookings, validate)
	userService := service.NewUserService(store.Users, validate, tokens)
	doctorService := service.NewDoctorService(store.Doctors, validate)

	// Getting routes
	handlers := &routes.Handlers{
		Appointments: routes.NewAppointmentDefault(apptService),
		Bookings:     routes.NewBookingDefault(bookingService),
		Users:        routes.NewUserDefault(userService),
		Doctors:      routes.NewDoctorDefault(doctorService),
	}

	log.SetLevel(cfg.Level())

	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(cfg.Level())

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(metrics.Middleware)

	routes.Register(e, handlers, tokens, store.Users)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}
