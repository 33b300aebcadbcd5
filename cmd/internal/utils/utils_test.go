package utils

import (
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestSanitize(t *testing.T) {
	type req struct {
		Email string
		Tags  []string
		Price float64
	}
	r := &req{Email: "  a@x.com\n", Tags: []string{" 9AM ", "10AM"}, Price: 3}
	Sanitize(r)

	want := &req{Email: "a@x.com", Tags: []string{"9AM", "10AM"}, Price: 3}
	if !reflect.DeepEqual(r, want) {
		t.Errorf("expected %+v, got %+v", want, r)
	}
}

func TestSanitize_PanicsOnNonPointer(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	Sanitize(struct{}{})
}

func TestParseTokenDataCtx(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	if _, err := ParseTokenDataCtx(c); err == nil {
		t.Error("expected error without decoded token")
	}

	c.Set(DecodedEmailKey, "a@x.com")
	data, err := ParseTokenDataCtx(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if data.Email != "a@x.com" {
		t.Errorf("expected a@x.com, got %s", data.Email)
	}
}
