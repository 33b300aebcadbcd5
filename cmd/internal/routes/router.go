package routes

import (
	"doctorsportal/cmd/internal/auth"
	"net/http"

	"github.com/labstack/echo/v4"
)

const livenessMessage = "Doctors Portal is running."

type Handlers struct {
	Appointments *DefaultAppointmentRoute
	Bookings     *DefaultBookingRoute
	Users        *DefaultUserRoute
	Doctors      *DefaultDoctorRoute
}

// Register mounts every endpoint on e. Protected routes run their guards in
// order: token verification first, then the admin check.
func Register(e *echo.Echo, h *Handlers, tokens *auth.TokenManager, users auth.UserFinder) {
	verifyJWT := auth.VerifyJWT(tokens)
	verifyAdmin := auth.VerifyAdmin(users)

	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, livenessMessage)
	})

	// Appointment options
	e.GET("/appointmentOptions", h.Appointments.GetAppointmentOptions)
	e.GET("/appointmentSpecialty", h.Appointments.GetSpecialties)

	// Bookings
	e.GET("/bookings", h.Bookings.GetBookings, verifyJWT)
	e.GET("/bookings/:id", h.Bookings.GetBooking, verifyJWT)
	e.POST("/booking", h.Bookings.CreateBooking)

	// Users and tokens
	e.GET("/jwt", h.Users.IssueToken)
	e.GET("/users", h.Users.GetUsers)
	e.POST("/users", h.Users.CreateUser)
	e.GET("/users/admin/:email", h.Users.GetAdminStatus)
	e.PUT("/users/admin/:id", h.Users.MakeAdmin, verifyJWT, verifyAdmin)

	// Doctors
	e.GET("/doctors", h.Doctors.GetDoctors, verifyJWT, verifyAdmin)
	e.POST("/doctors", h.Doctors.CreateDoctor, verifyJWT, verifyAdmin)
	e.DELETE("/doctor/:id", h.Doctors.DeleteDoctor, verifyJWT, verifyAdmin)
}
