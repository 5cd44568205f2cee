package models

import "time"

type WorkingHours struct {
	ID             uint `gorm:"primaryKey" json:"id"`
	ProfessionalID uint `gorm:"not null;uniqueIndex:idx_wh_professional_weekday" json:"professional_id"`

	// 0 = domingo ... 6 = sábado (time.Weekday)
	Weekday int `gorm:"not null;uniqueIndex:idx_wh_professional_weekday" json:"weekday"`

	StartTime  string `gorm:"size:5" json:"start_time"`
	EndTime    string `gorm:"size:5" json:"end_time"`
	IsSelected bool   `gorm:"default:false" json:"is_selected"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
