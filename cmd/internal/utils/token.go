package utils

import (
	"errors"

	"github.com/labstack/echo/v4"
)

// DecodedEmailKey holds the email claim of a verified bearer token.
const DecodedEmailKey = "decodedEmail"

type TokenData struct {
	Email string
}

func ParseTokenDataCtx(c echo.Context) (*TokenData, error) {
	email, ok := c.Get(DecodedEmailKey).(string)
	if !ok || email == "" {
		return nil, errors.New("no decoded token in context")
	}
	return &TokenData{Email: email}, nil
}
