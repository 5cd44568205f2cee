package models

import "time"

type Category struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:50;not null" json:"name"`
	Slug     string `gorm:"size:50;uniqueIndex;not null" json:"slug"`
	Icon     string `gorm:"size:50" json:"icon"`
	IsActive bool   `gorm:"not null" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
