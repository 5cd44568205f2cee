package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/pro-booking/internal/audit"
	domain "github.com/BruksfildServices01/pro-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/pro-booking/internal/metrics"
	"github.com/BruksfildServices01/pro-booking/internal/models"
)

// transition carrega o agendamento com lock, valida o dono, aplica a ação
// e grava tudo na mesma transação. Duas requisições simultâneas resultam
// em uma transição e um InvalidTransition.
type transition struct {
	repo    domain.Repository
	audit   *audit.Dispatcher
	metrics *metrics.Metrics
}

func (t transition) apply(
	ctx context.Context,
	appointmentID uint,
	actor domain.Actor,
	now time.Time,
	action string,
	fn func(ap *models.Appointment, now time.Time) error,
) (*models.Appointment, error) {

	var out *models.Appointment

	err := t.repo.WithTx(ctx, func(tx domain.Repository) error {
		ap, err := tx.GetAppointmentForUpdate(ctx, appointmentID)
		if err != nil {
			return err
		}

		if err := actor.CanAccess(ap.ProfessionalID, ap.CustomerID); err != nil {
			return err
		}

		if err := fn(ap, now); err != nil {
			return err
		}

		if err := tx.UpdateAppointment(ctx, ap); err != nil {
			return err
		}

		out = ap
		return nil
	})
	if err != nil {
		return nil, err
	}

	t.metrics.Transition(out.Status)
	t.audit.Dispatch(audit.Event{
		ProfessionalID: out.ProfessionalID,
		ActorID:        &actor.ID,
		ActorRole:      actor.Role,
		Action:         action,
		Entity:         "appointment",
		EntityID:       &out.ID,
	})

	return out, nil
}
