package models

import "time"

type Review struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CustomerID     uint  `gorm:"not null;uniqueIndex:idx_review_customer_appointment" json:"customer_id"`
	ProfessionalID uint  `gorm:"not null;index" json:"professional_id"`
	AppointmentID  *uint `gorm:"uniqueIndex:idx_review_customer_appointment" json:"appointment_id"`

	Rating  int    `gorm:"not null" json:"rating"`
	Comment string `gorm:"type:text" json:"comment"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
