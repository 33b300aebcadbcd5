package entity

const RoleAdmin = "admin"

// User emails are unique among users that have one. Admin elevation of an
// unknown id can create a record without an email.
type User struct {
	ID    string `gorm:"primaryKey;size:24" json:"_id"`
	Name  string `json:"name"`
	Email string `gorm:"uniqueIndex:idx_users_email_unique,where:email <> ''" json:"email"`
	Role  string `json:"role,omitempty"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// RoleUpdate reports what an admin elevation changed in the store.
type RoleUpdate struct {
	Matched    int64
	Modified   int64
	UpsertedID string
}
