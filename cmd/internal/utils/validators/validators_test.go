package validators

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestIsCalendarDate(t *testing.T) {
	validate := validator.New()
	Register(validate)

	tests := []struct {
		in   string
		want bool
	}{
		{"2024-01-01", true},
		{"Jan 1, 2024", true},
		{"Feb 29, 2024", true},
		{"2024-13-01", false},
		{"tomorrow", false},
		{"", false},
	}
	for _, tt := range tests {
		err := validate.Var(tt.in, "calendardate")
		if got := err == nil; got != tt.want {
			t.Errorf("calendardate(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
