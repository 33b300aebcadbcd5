package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse is what services hand back to routes. Routes render it
// with c.JSON(err.Code(), err).
type ErrorResponse interface {
	error
	Code() int
}

type SimpleError struct {
	Status  int    `json:"-"`
	Message string `json:"error"`
}

func (s *SimpleError) Error() string {
	return s.Message
}

func (s *SimpleError) Code() int {
	return s.Status
}

func NewSimple(code int, message string) *SimpleError {
	return &SimpleError{Status: code, Message: message}
}

type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

type ValidationError struct {
	SimpleError
	Fields []FieldError `json:"fields"`
}

var (
	InternalServerError    = NewSimple(http.StatusInternalServerError, "internal server error")
	MalformedBodyError     = NewSimple(http.StatusBadRequest, "malformed request body")
	NotFoundError          = NewSimple(http.StatusNotFound, "not found")
	MissingAuthTokenError  = NewSimple(http.StatusUnauthorized, "unauthorized access")
	InvalidAuthTokenError  = NewSimple(http.StatusForbidden, "forbidden access")
	ForbiddenError         = NewSimple(http.StatusForbidden, "forbidden access")
	InvalidIdentifierError = NewSimple(http.StatusBadRequest, "invalid identifier")
	UserAlreadyExistsError = NewSimple(http.StatusConflict, "user already exists")
)

func NewMissingParamError(name string) *SimpleError {
	return NewSimple(http.StatusBadRequest, fmt.Sprintf("%s parameter is required", name))
}

// FromValidationError lists every failing field. Errors that did not come
// from the validator are treated as a malformed body.
func FromValidationError(err error) ErrorResponse {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return MalformedBodyError
	}

	fields := make([]FieldError, len(verrs))
	names := make([]string, len(verrs))
	for i, fe := range verrs {
		fields[i] = FieldError{Field: fe.Field(), Rule: fe.Tag()}
		names[i] = fe.Field()
	}

	return &ValidationError{
		SimpleError: SimpleError{
			Status:  http.StatusBadRequest,
			Message: "invalid fields: " + strings.Join(names, ", "),
		},
		Fields: fields,
	}
}
