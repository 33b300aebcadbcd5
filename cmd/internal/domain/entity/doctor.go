package entity

type Doctor struct {
	ID        string `gorm:"primaryKey;size:24" json:"_id"`
	Name      string `gorm:"not null" json:"name"`
	Email     string `json:"email"`
	Specialty string `json:"specialty"`
	Image     string `json:"img"`
}
