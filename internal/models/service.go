package models

import "time"

// ServiceTemplate é o catálogo compartilhado, independente do profissional.
type ServiceTemplate struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name                   string  `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Description            string  `gorm:"type:text" json:"description"`
	BasePrice              float64 `gorm:"not null;default:0" json:"base_price"`
	DefaultDurationMinutes int     `gorm:"not null;default:45" json:"default_duration_minutes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProfessionalService é a personalização de um template por profissional.
type ProfessionalService struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ProfessionalID uint `gorm:"not null;uniqueIndex:idx_ps_professional_template" json:"professional_id"`

	ServiceTemplateID uint            `gorm:"not null;uniqueIndex:idx_ps_professional_template" json:"service_template_id"`
	ServiceTemplate   ServiceTemplate `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"service_template"`

	PriceAdjustment   float64 `gorm:"not null;default:0" json:"price_adjustment"`
	CustomDuration    *int    `json:"custom_duration"`
	CustomDescription string  `gorm:"type:text" json:"custom_description"`
	IsActive          bool    `gorm:"not null" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
