package auth

import (
	"context"
	"doctorsportal/cmd/internal/domain/entity"
	"doctorsportal/cmd/internal/utils"
	"doctorsportal/cmd/internal/utils/apierror"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

// UserFinder looks users up by email for the admin guard.
type UserFinder interface {
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}

// VerifyJWT rejects requests without a bearer token (401) or with one that
// does not verify (403). On success the decoded email is stored under
// utils.DecodedEmailKey.
func VerifyJWT(tokens *TokenManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return c.JSON(apierror.MissingAuthTokenError.Code(), apierror.MissingAuthTokenError)
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
				return c.JSON(apierror.MissingAuthTokenError.Code(), apierror.MissingAuthTokenError)
			}

			claims, err := tokens.Verify(strings.TrimSpace(parts[1]))
			if err != nil {
				return c.JSON(apierror.InvalidAuthTokenError.Code(), apierror.InvalidAuthTokenError)
			}

			c.Set(utils.DecodedEmailKey, claims.Email)
			return next(c)
		}
	}
}

// VerifyAdmin must run after VerifyJWT. It lets the request through only
// when the decoded email belongs to a user with the admin role.
func VerifyAdmin(users UserFinder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			data, err := utils.ParseTokenDataCtx(c)
			if err != nil {
				return c.JSON(apierror.MissingAuthTokenError.Code(), apierror.MissingAuthTokenError)
			}

			user, err := users.FindByEmail(c.Request().Context(), data.Email)
			if err != nil {
				log.Errorf("failed to check admin role of %s: %v", data.Email, err)
				return c.JSON(apierror.InternalServerError.Code(), apierror.InternalServerError)
			}

			if !user.IsAdmin() {
				return c.JSON(apierror.ForbiddenError.Code(), apierror.ForbiddenError)
			}
			return next(c)
		}
	}
}
