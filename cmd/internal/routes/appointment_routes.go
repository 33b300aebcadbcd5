package routes

import (
	"context"
	"doctorsportal/cmd/internal/domain/entity"
	"doctorsportal/cmd/internal/service"
	"doctorsportal/cmd/internal/utils/apierror"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

type AppointmentService interface {
	GetAppointmentOptions(ctx context.Context, date string) ([]*entity.AppointmentOption, apierror.ErrorResponse)
	GetSpecialties(ctx context.Context) ([]*service.SpecialtyResponse, apierror.ErrorResponse)
}

type DefaultAppointmentRoute struct {
	AppointmentService AppointmentService
}

func NewAppointmentDefault(apptService AppointmentService) *DefaultAppointmentRoute {
	return &DefaultAppointmentRoute{AppointmentService: apptService}
}

func (a *DefaultAppointmentRoute) GetAppointmentOptions(c echo.Context) error {
	date := strings.TrimSpace(c.QueryParam("date"))
	if date == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("date"))
	}

	opts, apierr := a.AppointmentService.GetAppointmentOptions(c.Request().Context(), date)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, opts)
}

func (a *DefaultAppointmentRoute) GetSpecialties(c echo.Context) error {
	specialties, apierr := a.AppointmentService.GetSpecialties(c.Request().Context())
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, specialties)
}
