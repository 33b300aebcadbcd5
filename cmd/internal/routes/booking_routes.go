package routes

import (
	"context"
	"doctorsportal/cmd/internal/domain/entity"
	"doctorsportal/cmd/internal/service"
	"doctorsportal/cmd/internal/utils"
	"doctorsportal/cmd/internal/utils/apierror"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

type BookingService interface {
	CreateBooking(ctx context.Context, req *service.BookingRequest) (*service.BookingResponse, apierror.ErrorResponse)
	GetBookings(ctx context.Context, email, callerEmail string) ([]*entity.Booking, apierror.ErrorResponse)
	GetBooking(ctx context.Context, rawID, callerEmail string) (*entity.Booking, apierror.ErrorResponse)
}

type DefaultBookingRoute struct {
	BookingService BookingService
}

func NewBookingDefault(bookingService BookingService) *DefaultBookingRoute {
	return &DefaultBookingRoute{BookingService: bookingService}
}

func (b *DefaultBookingRoute) CreateBooking(c echo.Context) error {
	var req service.BookingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	resp, apierr := b.BookingService.CreateBooking(c.Request().Context(), &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func (b *DefaultBookingRoute) GetBookings(c echo.Context) error {
	data, err := utils.ParseTokenDataCtx(c)
	if err != nil {
		return c.JSON(apierror.MissingAuthTokenError.Code(), apierror.MissingAuthTokenError)
	}

	email := strings.TrimSpace(c.QueryParam("email"))
	bookings, apierr := b.BookingService.GetBookings(c.Request().Context(), email, data.Email)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, bookings)
}

func (b *DefaultBookingRoute) GetBooking(c echo.Context) error {
	data, err := utils.ParseTokenDataCtx(c)
	if err != nil {
		return c.JSON(apierror.MissingAuthTokenError.Code(), apierror.MissingAuthTokenError)
	}

	booking, apierr := b.BookingService.GetBooking(c.Request().Context(), c.Param("id"), data.Email)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, booking)
}
