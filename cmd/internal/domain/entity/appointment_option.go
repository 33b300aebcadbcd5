package entity

// AppointmentOption is the daily slot catalog of one treatment.
type AppointmentOption struct {
	ID    string   `gorm:"primaryKey;size:24" json:"_id"`
	Name  string   `gorm:"not null;uniqueIndex" json:"name"`
	Price float64  `gorm:"not null" json:"price"`
	Slots []string `gorm:"serializer:json;not null" json:"slots"`
}

// Clone returns a copy that shares nothing with o.
func (o *AppointmentOption) Clone() *AppointmentOption {
	cp := *o
	cp.Slots = append([]string(nil), o.Slots...)
	return &cp
}
