package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/pro-booking/internal/audit"
	domain "github.com/BruksfildServices01/pro-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/pro-booking/internal/httperr"
	"github.com/BruksfildServices01/pro-booking/internal/metrics"
	"github.com/BruksfildServices01/pro-booking/internal/models"
	"github.com/BruksfildServices01/pro-booking/internal/timezone"
)

type CompleteAppointment struct {
	transition
	now timezone.Clock
}

func NewCompleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	metrics *metrics.Metrics,
	loc *time.Location,
) *CompleteAppointment {
	return &CompleteAppointment{
		transition: transition{repo: repo, audit: audit, metrics: metrics},
		now:        timezone.ClockIn(loc),
	}
}

func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	actor domain.Actor,
) (*models.Appointment, error) {
	if actor.Role != domain.RoleProfessional {
		return nil, httperr.NotFoundErr("appointment_not_found")
	}
	return uc.apply(ctx, appointmentID, actor, uc.now(), "appointment_completed", domain.Complete)
}
