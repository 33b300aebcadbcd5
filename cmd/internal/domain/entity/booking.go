package entity

import "encoding/json"

// Booking is a patient's claim on one slot of one treatment on one date.
// AppointmentDate, Treatment and Email together identify a booking; the
// stores enforce that with a unique index.
//
// Extra holds any fields a client sent beyond the ones below. They are
// stored and returned alongside the known fields.
type Booking struct {
	ID              string         `gorm:"primaryKey;size:24" json:"_id"`
	AppointmentDate string         `gorm:"not null;uniqueIndex:idx_booking_patient_day" json:"appointmentDate"`
	Treatment       string         `gorm:"not null;uniqueIndex:idx_booking_patient_day" json:"treatment"`
	Email           string         `gorm:"not null;uniqueIndex:idx_booking_patient_day;index" json:"email"`
	Slot            string         `gorm:"not null" json:"slot"`
	PatientName     string         `json:"patientName"`
	Patient         string         `json:"patient"`
	Phone           string         `json:"phone"`
	Price           float64        `json:"price"`
	Extra           map[string]any `gorm:"serializer:json" json:"-"`
}

// bookingKeys are the json keys that map to Booking fields.
var bookingKeys = []string{
	"_id", "appointmentDate", "treatment", "email", "slot",
	"patientName", "patient", "phone", "price",
}

// BookingExtra returns the members of the JSON object data that are not
// Booking fields, or nil when there are none.
func BookingExtra(data []byte) (map[string]any, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	for _, k := range bookingKeys {
		delete(raw, k)
	}
	if len(raw) == 0 {
		return nil, nil
	}
	return raw, nil
}

// MarshalJSON flattens Extra into the top-level object. Known fields win
// over extra members with the same key.
func (b Booking) MarshalJSON() ([]byte, error) {
	type plain Booking
	base, err := json.Marshal(plain(b))
	if err != nil || len(b.Extra) == 0 {
		return base, err
	}

	var known map[string]json.RawMessage
	if err := json.Unmarshal(base, &known); err != nil {
		return nil, err
	}
	merged := make(map[string]any, len(b.Extra)+len(known))
	for k, v := range b.Extra {
		merged[k] = v
	}
	for k, v := range known {
		merged[k] = v
	}
	return json.Marshal(merged)
}

func (b *Booking) UnmarshalJSON(data []byte) error {
	type plain Booking
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	extra, err := BookingExtra(data)
	if err != nil {
		return err
	}
	p.Extra = extra
	*b = Booking(p)
	return nil
}
