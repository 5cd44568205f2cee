package dto

import "github.com/BruksfildServices01/pro-booking/internal/models"

type ProfessionalSummary struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`

	Category string `json:"category,omitempty"`

	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
	DistanceKm *float64 `json:"distance_km,omitempty"`

	PriceRangeMin *float64 `json:"price_range_min"`
	PriceRangeMax *float64 `json:"price_range_max"`
	AverageRating float64  `json:"average_rating"`
	TotalReviews  int      `json:"total_reviews"`

	ProfileImageURL string `json:"profile_image_url,omitempty"`
}

func NewProfessionalSummary(p models.Professional) ProfessionalSummary {
	s := ProfessionalSummary{
		ID:            p.ID,
		Name:          p.Name,
		Address:       p.Address,
		Latitude:      p.Latitude,
		Longitude:     p.Longitude,
		PriceRangeMin: p.PriceRangeMin,
		PriceRangeMax: p.PriceRangeMax,
		AverageRating: p.AverageRating,
		TotalReviews:  p.TotalReviews,
	}
	if p.Category != nil {
		s.Category = p.Category.Slug
	}
	return s
}
