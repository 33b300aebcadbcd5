package routes

import (
	"context"
	"doctorsportal/cmd/internal/domain/entity"
	"doctorsportal/cmd/internal/service"
	"doctorsportal/cmd/internal/utils/apierror"
	"net/http"

	"github.com/labstack/echo/v4"
)

type DoctorService interface {
	GetDoctors(ctx context.Context) ([]*entity.Doctor, apierror.ErrorResponse)
	CreateDoctor(ctx context.Context, req *service.DoctorRequest) (*service.InsertResponse, apierror.ErrorResponse)
	DeleteDoctor(ctx context.Context, rawID string) (*service.DeleteResponse, apierror.ErrorResponse)
}

type DefaultDoctorRoute struct {
	DoctorService DoctorService
}

func NewDoctorDefault(doctorService DoctorService) *DefaultDoctorRoute {
	return &DefaultDoctorRoute{DoctorService: doctorService}
}

func (d *DefaultDoctorRoute) GetDoctors(c echo.Context) error {
	doctors, apierr := d.DoctorService.GetDoctors(c.Request().Context())
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, doctors)
}

func (d *DefaultDoctorRoute) CreateDoctor(c echo.Context) error {
	var req service.DoctorRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	resp, apierr := d.DoctorService.CreateDoctor(c.Request().Context(), &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func (d *DefaultDoctorRoute) DeleteDoctor(c echo.Context) error {
	resp, apierr := d.DoctorService.DeleteDoctor(c.Request().Context(), c.Param("id"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}
