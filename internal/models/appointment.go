package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ProfessionalID uint         `gorm:"not null;index:idx_appt_prof_date_status,priority:1" json:"professional_id"`
	Professional   Professional `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	CustomerID uint `gorm:"not null;index" json:"customer_id"`

	// YYYY-MM-DD no fuso de operação
	Date string `gorm:"size:10;not null;index:idx_appt_prof_date_status,priority:2" json:"date"`

	StartTime time.Time `gorm:"not null" json:"start_time"`
	EndTime   time.Time `gorm:"not null" json:"end_time"`

	ServiceName string `gorm:"size:100;not null" json:"service_name"`

	// congelado na criação
	DurationMinutes int `gorm:"not null" json:"duration_minutes"`

	Status string `gorm:"size:20;default:'scheduled';index:idx_appt_prof_date_status,priority:3" json:"status"`

	ContactNumber string `gorm:"size:15" json:"contact_number"`
	Notes         string `gorm:"size:500" json:"notes"`

	ConfirmedAt *time.Time `json:"confirmed_at"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CancelledBy string     `gorm:"size:20" json:"cancelled_by,omitempty"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
