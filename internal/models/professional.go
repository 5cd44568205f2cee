package models

import "time"

// Professional é o prestador que publica horários e serviços.
type Professional struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name    string `gorm:"size:100;not null;index" json:"name"`
	Address string `gorm:"size:255" json:"address"`
	Phone   string `gorm:"size:15" json:"phone"`
	Bio     string `gorm:"type:text" json:"bio"`

	// nil = sem localização (nunca aparece em buscas por raio)
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`

	CategoryID *uint     `gorm:"index" json:"category_id"`
	Category   *Category `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"category,omitempty"`

	// derivados dos serviços ativos
	PriceRangeMin *float64 `json:"price_range_min"`
	PriceRangeMax *float64 `json:"price_range_max"`

	// derivados das avaliações
	AverageRating float64 `gorm:"default:0" json:"average_rating"`
	TotalReviews  int     `gorm:"default:0" json:"total_reviews"`

	ProfileImageKey string `gorm:"size:255" json:"-"`

	PauseStart  *time.Time `json:"pause_start"`
	PauseEnd    *time.Time `json:"pause_end"`
	PauseReason string     `gorm:"size:255" json:"pause_reason"`

	Services []ProfessionalService `gorm:"foreignKey:ProfessionalID" json:"services,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
