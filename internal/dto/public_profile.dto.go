package dto

import (
	"time"

	"github.com/BruksfildServices01/pro-booking/internal/models"
)

// PublicProfile é a ficha pública; a pausa aparece só como janela de leitura.
type PublicProfile struct {
	ProfessionalSummary

	Phone string `json:"phone"`
	Bio   string `json:"bio"`

	IsPaused bool       `json:"is_paused"`
	PauseEnd *time.Time `json:"pause_end,omitempty"`
}

func NewPublicProfile(p models.Professional, paused bool) PublicProfile {
	out := PublicProfile{
		ProfessionalSummary: NewProfessionalSummary(p),
		Phone:               p.Phone,
		Bio:                 p.Bio,
		IsPaused:            paused,
	}
	if paused {
		out.PauseEnd = p.PauseEnd
	}
	return out
}
