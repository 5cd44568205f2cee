package professional

import (
	"context"
	"time"

	"github.com/BruksfildServices01/pro-booking/internal/audit"
	domain "github.com/BruksfildServices01/pro-booking/internal/domain/professional"
	"github.com/BruksfildServices01/pro-booking/internal/models"
	"github.com/BruksfildServices01/pro-booking/internal/timezone"
)

type PauseProfessional struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   timezone.Clock
}

func NewPauseProfessional(
	repo domain.Repository,
	audit *audit.Dispatcher,
	loc *time.Location,
) *PauseProfessional {
	return &PauseProfessional{
		repo:  repo,
		audit: audit,
		now:   timezone.ClockIn(loc),
	}
}

func (uc *PauseProfessional) WithClock(c timezone.Clock) *PauseProfessional {
	uc.now = c
	return uc
}

// Execute pausa a agenda por days dias (1 a 90) a partir de agora.
func (uc *PauseProfessional) Execute(
	ctx context.Context,
	professionalID uint,
	days int,
	reason string,
) (*models.Professional, error) {

	if err := domain.ValidatePauseDays(days); err != nil {
		return nil, err
	}

	p, err := uc.repo.GetProfessional(ctx, professionalID)
	if err != nil {
		return nil, err
	}

	if err := domain.Pause(p, uc.now(), days, reason); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdatePause(ctx, p); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ProfessionalID: p.ID,
		ActorID:        &p.ID,
		ActorRole:      "professional",
		Action:         "availability_paused",
		Entity:         "professional",
		EntityID:       &p.ID,
		Metadata:       map[string]any{"days": days, "reason": reason},
	})

	return p, nil
}

type UnpauseProfessional struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUnpauseProfessional(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UnpauseProfessional {
	return &UnpauseProfessional{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UnpauseProfessional) Execute(
	ctx context.Context,
	professionalID uint,
) (*models.Professional, error) {

	p, err := uc.repo.GetProfessional(ctx, professionalID)
	if err != nil {
		return nil, err
	}

	domain.Unpause(p)

	if err := uc.repo.UpdatePause(ctx, p); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ProfessionalID: p.ID,
		ActorID:        &p.ID,
		ActorRole:      "professional",
		Action:         "availability_resumed",
		Entity:         "professional",
		EntityID:       &p.ID,
	})

	return p, nil
}
