package auth

import (
	"context"
	"doctorsportal/cmd/internal/domain/entity"
	"doctorsportal/cmd/internal/utils"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

type fakeUsers map[string]*entity.User

func (f fakeUsers) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	if email == "broken@x.com" {
		return nil, errors.New("store down")
	}
	return f[email], nil
}

func okHandler(called *bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		*called = true
		return c.String(http.StatusOK, "ok")
	}
}

func TestVerifyJWT(t *testing.T) {
	tokens := NewTokenManager(testSecret, time.Hour)
	valid, _ := tokens.Issue("a@x.com")
	foreign, _ := NewTokenManager("other", time.Hour).Issue("a@x.com")

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantCalled bool
	}{
		{"missing header", "", http.StatusUnauthorized, false},
		{"basic auth", "Basic dXNlcjpwYXNz", http.StatusUnauthorized, false},
		{"empty bearer", "Bearer ", http.StatusUnauthorized, false},
		{"garbage token", "Bearer abc.def.ghi", http.StatusForbidden, false},
		{"foreign secret", "Bearer " + foreign, http.StatusForbidden, false},
		{"valid token", "Bearer " + valid, http.StatusOK, true},
		{"lowercase scheme", "bearer " + valid, http.StatusOK, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var called bool
			if err := VerifyJWT(tokens)(okHandler(&called))(c); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if rec.Code != tt.wantStatus {
				t.Errorf("expected %d, got %d", tt.wantStatus, rec.Code)
			}
			if called != tt.wantCalled {
				t.Errorf("expected handler called=%v, got %v", tt.wantCalled, called)
			}
			if tt.wantCalled && c.Get(utils.DecodedEmailKey) != "a@x.com" {
				t.Errorf("expected decoded email in context, got %v", c.Get(utils.DecodedEmailKey))
			}
		})
	}
}

func TestVerifyAdmin(t *testing.T) {
	users := fakeUsers{
		"admin@x.com":   {Email: "admin@x.com", Role: entity.RoleAdmin},
		"patient@x.com": {Email: "patient@x.com"},
	}

	tests := []struct {
		name       string
		email      string
		wantStatus int
		wantCalled bool
	}{
		{"no decoded email", "", http.StatusUnauthorized, false},
		{"unknown user", "ghost@x.com", http.StatusForbidden, false},
		{"not admin", "patient@x.com", http.StatusForbidden, false},
		{"store failure", "broken@x.com", http.StatusInternalServerError, false},
		{"admin", "admin@x.com", http.StatusOK, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
			if tt.email != "" {
				c.Set(utils.DecodedEmailKey, tt.email)
			}

			var called bool
			if err := VerifyAdmin(users)(okHandler(&called))(c); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if rec.Code != tt.wantStatus {
				t.Errorf("expected %d, got %d", tt.wantStatus, rec.Code)
			}
			if called != tt.wantCalled {
				t.Errorf("expected handler called=%v, got %v", tt.wantCalled, called)
			}
		})
	}
}
