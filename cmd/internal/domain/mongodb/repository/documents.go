package repository

import (
	"doctorsportal/cmd/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Documents mirror the entities with native object ids.

type optionDocument struct {
	ID    primitive.ObjectID `bson:"_id,omitempty"`
	Name  string             `bson:"name"`
	Price float64            `bson:"price"`
	Slots []string           `bson:"slots"`
}

type bookingDocument struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	AppointmentDate string             `bson:"appointmentDate"`
	Treatment       string             `bson:"treatment"`
	Email           string             `bson:"email"`
	Slot            string             `bson:"slot"`
	PatientName     string             `bson:"patientName,omitempty"`
	Patient         string             `bson:"patient,omitempty"`
	Phone           string             `bson:"phone,omitempty"`
	Price           float64            `bson:"price,omitempty"`
	Extra           bson.M             `bson:",inline"`
}

type userDocument struct {
	ID    primitive.ObjectID `bson:"_id,omitempty"`
	Name  string             `bson:"name,omitempty"`
	Email string             `bson:"email"`
	Role  string             `bson:"role,omitempty"`
}

type doctorDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email,omitempty"`
	Specialty string             `bson:"specialty,omitempty"`
	Image     string             `bson:"img,omitempty"`
}

func hexOrEmpty(id primitive.ObjectID) string {
	if id.IsZero() {
		return ""
	}
	return id.Hex()
}

func objectID(id string) (primitive.ObjectID, error) {
	if id == "" {
		return primitive.NilObjectID, nil
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, entity.ErrInvalidID
	}
	return oid, nil
}

func (d *optionDocument) toEntity() *entity.AppointmentOption {
	return &entity.AppointmentOption{ID: hexOrEmpty(d.ID), Name: d.Name, Price: d.Price, Slots: d.Slots}
}

func newBookingDocument(b *entity.Booking) (*bookingDocument, error) {
	oid, err := objectID(b.ID)
	if err != nil {
		return nil, err
	}
	return &bookingDocument{
		ID:              oid,
		AppointmentDate: b.AppointmentDate,
		Treatment:       b.Treatment,
		Email:           b.Email,
		Slot:            b.Slot,
		PatientName:     b.PatientName,
		Patient:         b.Patient,
		Phone:           b.Phone,
		Price:           b.Price,
		Extra:           b.Extra,
	}, nil
}

func (d *bookingDocument) toEntity() *entity.Booking {
	return &entity.Booking{
		ID:              hexOrEmpty(d.ID),
		AppointmentDate: d.AppointmentDate,
		Treatment:       d.Treatment,
		Email:           d.Email,
		Slot:            d.Slot,
		PatientName:     d.PatientName,
		Patient:         d.Patient,
		Phone:           d.Phone,
		Price:           d.Price,
		Extra:           plainExtra(d.Extra),
	}
}

// plainExtra turns decoded driver values into plain maps and slices so
// extra booking fields render as ordinary JSON.
func plainExtra(m bson.M) map[string]any {
	if len(m) == 0 {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = plainValue(v)
	}
	return out
}

func plainValue(v any) any {
	switch t := v.(type) {
	case primitive.D:
		out := make(map[string]any, len(t))
		for _, e := range t {
			out[e.Key] = plainValue(e.Value)
		}
		return out
	case primitive.M:
		return plainExtra(t)
	case primitive.A:
		out := make([]any, len(t))
		for i := range t {
			out[i] = plainValue(t[i])
		}
		return out
	default:
		return v
	}
}

func (d *userDocument) toEntity() *entity.User {
	return &entity.User{ID: hexOrEmpty(d.ID), Name: d.Name, Email: d.Email, Role: d.Role}
}

func (d *doctorDocument) toEntity() *entity.Doctor {
	return &entity.Doctor{ID: hexOrEmpty(d.ID), Name: d.Name, Email: d.Email, Specialty: d.Specialty, Image: d.Image}
}
