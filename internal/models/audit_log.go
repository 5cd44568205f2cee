package models

import (
	"time"

	"gorm.io/datatypes"
)

type AuditLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ProfessionalID uint   `gorm:"index" json:"professional_id"`
	ActorID        *uint  `json:"actor_id"`
	ActorRole      string `gorm:"size:20" json:"actor_role"`
	Action         string `gorm:"size:50;not null" json:"action"`

	Entity   string         `gorm:"size:50" json:"entity"`
	EntityID *uint          `json:"entity_id"`
	Metadata datatypes.JSON `json:"metadata"`

	CreatedAt time.Time `json:"created_at"`
}
