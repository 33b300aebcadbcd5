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

type UserService interface {
	GetUsers(ctx context.Context) ([]*entity.User, apierror.ErrorResponse)
	CreateUser(ctx context.Context, req *service.CreateUserRequest) (*service.InsertResponse, apierror.ErrorResponse)
	IsAdmin(ctx context.Context, email string) (*service.AdminStatusResponse, apierror.ErrorResponse)
	MakeAdmin(ctx context.Context, rawID string) (*service.RoleUpdateResponse, apierror.ErrorResponse)
	IssueToken(ctx context.Context, email string) (*service.TokenResponse, apierror.ErrorResponse)
}

type DefaultUserRoute struct {
	UserService UserService
}

func NewUserDefault(userService UserService) *DefaultUserRoute {
	return &DefaultUserRoute{UserService: userService}
}

func (u *DefaultUserRoute) GetUsers(c echo.Context) error {
	users, apierr := u.UserService.GetUsers(c.Request().Context())
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, users)
}

func (u *DefaultUserRoute) CreateUser(c echo.Context) error {
	var req service.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	resp, apierr := u.UserService.CreateUser(c.Request().Context(), &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func (u *DefaultUserRoute) GetAdminStatus(c echo.Context) error {
	email := strings.TrimSpace(c.Param("email"))
	if email == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("email"))
	}

	resp, apierr := u.UserService.IsAdmin(c.Request().Context(), email)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func (u *DefaultUserRoute) MakeAdmin(c echo.Context) error {
	resp, apierr := u.UserService.MakeAdmin(c.Request().Context(), c.Param("id"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

// IssueToken answers unknown emails with 401 and an empty token body.
func (u *DefaultUserRoute) IssueToken(c echo.Context) error {
	email := strings.TrimSpace(c.QueryParam("email"))
	resp, apierr := u.UserService.IssueToken(c.Request().Context(), email)
	if apierr != nil && resp != nil {
		return c.JSON(apierr.Code(), resp)
	}
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}
