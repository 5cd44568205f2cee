package audit

import (
	"context"
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/pro-booking/internal/models"
)

type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(ctx context.Context, ev Event) error {
	var meta datatypes.JSON
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			meta = datatypes.JSON(b)
		}
	}

	entry := models.AuditLog{
		ProfessionalID: ev.ProfessionalID,
		ActorID:        ev.ActorID,
		ActorRole:      ev.ActorRole,
		Action:         ev.Action,
		Entity:         ev.Entity,
		EntityID:       ev.EntityID,
		Metadata:       meta,
	}

	return l.db.WithContext(ctx).Create(&entry).Error
}
