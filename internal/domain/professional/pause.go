package professional

import (
	"time"

	"github.com/BruksfildServices01/pro-booking/internal/httperr"
	"github.com/BruksfildServices01/pro-booking/internal/models"
)

const (
	MinPauseDays = 1
	MaxPauseDays = 90
)

// AvailabilityWindow é a pausa calculada na leitura; nunca é persistida
// como flag.
type AvailabilityWindow struct {
	PauseStart *time.Time
	PauseEnd   *time.Time
	Reason     string
}

func WindowOf(p *models.Professional) AvailabilityWindow {
	return AvailabilityWindow{
		PauseStart: p.PauseStart,
		PauseEnd:   p.PauseEnd,
		Reason:     p.PauseReason,
	}
}

// IsPaused: pause_start <= now <= pause_end.
func (w AvailabilityWindow) IsPaused(now time.Time) bool {
	if w.PauseStart == nil || w.PauseEnd == nil {
		return false
	}
	return !now.Before(*w.PauseStart) && !now.After(*w.PauseEnd)
}

func IsPaused(p *models.Professional, now time.Time) bool {
	return WindowOf(p).IsPaused(now)
}

func ValidatePauseDays(days int) error {
	if days < MinPauseDays || days > MaxPauseDays {
		return httperr.Validation("invalid_pause_duration")
	}
	return nil
}

// Pause define a janela [now, now+days].
func Pause(p *models.Professional, now time.Time, days int, reason string) error {
	if err := ValidatePauseDays(days); err != nil {
		return err
	}

	start := now
	end := now.AddDate(0, 0, days)
	p.PauseStart = &start
	p.PauseEnd = &end
	p.PauseReason = reason
	return nil
}

// Unpause limpa os três campos juntos.
func Unpause(p *models.Professional) {
	p.PauseStart = nil
	p.PauseEnd = nil
	p.PauseReason = ""
}
