package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/pro-booking/internal/audit"
	domain "github.com/BruksfildServices01/pro-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/pro-booking/internal/metrics"
	"github.com/BruksfildServices01/pro-booking/internal/models"
	"github.com/BruksfildServices01/pro-booking/internal/timezone"
)

type CancelAppointment struct {
	transition
	now timezone.Clock
}

func NewCancelAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	metrics *metrics.Metrics,
	loc *time.Location,
) *CancelAppointment {
	return &CancelAppointment{
		transition: transition{repo: repo, audit: audit, metrics: metrics},
		now:        timezone.ClockIn(loc),
	}
}

// Execute cancela (cliente ou profissional). O registro é mantido.
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	actor domain.Actor,
) (*models.Appointment, error) {
	return uc.apply(ctx, appointmentID, actor, uc.now(), "appointment_cancelled",
		func(ap *models.Appointment, now time.Time) error {
			return domain.Cancel(ap, now, actor.Role)
		},
	)
}
