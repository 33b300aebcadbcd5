package validators

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Layouts accepted for appointment dates: ISO dates and the "PP" format the
// portal's date picker sends.
var calendarLayouts = []string{"2006-01-02", "Jan 2, 2006"}

func IsCalendarDate(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	for _, layout := range calendarLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

func Register(validate *validator.Validate) {
	_ = validate.RegisterValidation("calendardate", IsCalendarDate)
}
