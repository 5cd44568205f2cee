package models

import "time"

// Album agrupa fotos do portfólio de um profissional.
type Album struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	ProfessionalID uint   `gorm:"not null;index" json:"professional_id"`
	Title          string `gorm:"size:100" json:"title"`
	Description    string `gorm:"type:text" json:"description"`

	Photos []Photo `gorm:"foreignKey:AlbumID;constraint:OnDelete:CASCADE;" json:"photos"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Photo struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	AlbumID  uint   `gorm:"not null;index" json:"album_id"`
	ImageKey string `gorm:"size:255;not null" json:"-"`
	Caption  string `gorm:"size:255" json:"caption"`
	Position int    `gorm:"default:0" json:"position"`

	CreatedAt time.Time `json:"created_at"`
}
