package appointment

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/BruksfildServices01/pro-booking/internal/audit"
	domain "github.com/BruksfildServices01/pro-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/pro-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/pro-booking/internal/domain/professional"
	"github.com/BruksfildServices01/pro-booking/internal/httperr"
	"github.com/BruksfildServices01/pro-booking/internal/infra/lock"
	"github.com/BruksfildServices01/pro-booking/internal/metrics"
	"github.com/BruksfildServices01/pro-booking/internal/models"
	"github.com/BruksfildServices01/pro-booking/internal/timezone"
	"github.com/BruksfildServices01/pro-booking/internal/validators"
)

const MaxNotesLength = 500

// ServiceResolver resolve a duração efetiva do serviço.
type ServiceResolver interface {
	Execute(ctx context.Context, professionalID uint, name string) (catalog.Resolved, error)
}

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ProfessionalID uint
	CustomerID     uint

	Date        string
	Time        string
	ServiceName string

	ContactNumber string
	Notes         string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo     domain.Repository
	services ServiceResolver
	locker   lock.Locker
	audit    *audit.Dispatcher
	metrics  *metrics.Metrics
	log      *slog.Logger
	loc      *time.Location
	now      timezone.Clock
}

func NewCreateAppointment(
	repo domain.Repository,
	services ServiceResolver,
	locker lock.Locker,
	audit *audit.Dispatcher,
	metrics *metrics.Metrics,
	log *slog.Logger,
	loc *time.Location,
) *CreateAppointment {
	return &CreateAppointment{
		repo:     repo,
		services: services,
		locker:   locker,
		audit:    audit,
		metrics:  metrics,
		log:      log,
		loc:      loc,
		now:      timezone.ClockIn(loc),
	}
}

func (uc *CreateAppointment) WithClock(c timezone.Clock) *CreateAppointment {
	uc.now = c
	return uc
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.execute(ctx, in)

	switch {
	case err == nil:
		uc.metrics.Booking(metrics.OutcomeCreated)
	case httperr.IsKind(err, httperr.KindSlotConflict):
		uc.metrics.Booking(metrics.OutcomeConflict)
	case errors.Is(err, lock.ErrLockNotAcquired):
		uc.metrics.Booking(metrics.OutcomeConflict)
		err = httperr.SlotConflict()
	default:
		if _, ok := httperr.KindOf(err); ok {
			uc.metrics.Booking(metrics.OutcomeRejected)
		} else {
			uc.metrics.Booking(metrics.OutcomeError)
			uc.log.Error("create appointment failed",
				slog.Uint64("professional_id", uint64(in.ProfessionalID)),
				slog.Any("error", err),
			)
		}
	}

	return ap, err
}

func (uc *CreateAppointment) execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Entrada
	// --------------------------------------------------
	if in.CustomerID == 0 {
		return nil, httperr.Validation("missing_customer")
	}
	if in.ServiceName == "" {
		return nil, httperr.Validation("missing_service_name")
	}
	if !validators.IsContactNumber(in.ContactNumber) {
		return nil, httperr.Validation("invalid_contact_number")
	}
	if len(in.Notes) > MaxNotesLength {
		return nil, httperr.Validation("notes_too_long")
	}
	if !validators.IsHourMinute(in.Time) {
		return nil, httperr.Validation("invalid_date_or_time")
	}

	start, err := timezone.ParseDateTime(in.Date, in.Time, uc.loc)
	if err != nil {
		return nil, httperr.Validation("invalid_date_or_time")
	}
	if start.Before(uc.now()) {
		return nil, httperr.Validation("in_the_past")
	}

	// --------------------------------------------------
	// 2. Profissional
	// --------------------------------------------------
	p, err := uc.repo.GetProfessional(ctx, in.ProfessionalID)
	if err != nil {
		return nil, err
	}
	if professional.IsPaused(p, uc.now()) {
		return nil, httperr.Validation("professional_paused")
	}

	// --------------------------------------------------
	// 3. Duração efetiva (congelada no agendamento)
	// --------------------------------------------------
	svc, err := uc.services.Execute(ctx, in.ProfessionalID, in.ServiceName)
	if err != nil {
		return nil, err
	}

	end := start.Add(time.Duration(svc.DurationMinutes) * time.Minute)
	slot := domain.Interval{Start: start, End: end}

	// --------------------------------------------------
	// 4. Expediente
	// --------------------------------------------------
	wh, err := uc.repo.GetWorkingHours(ctx, in.ProfessionalID, int(start.Weekday()))
	if err != nil {
		return nil, err
	}
	window, ok := domain.WorkingWindow(wh, start)
	if !ok || !slot.Within(window) {
		return nil, httperr.Validation("outside_working_hours")
	}

	// --------------------------------------------------
	// 5. Conflito + criação (atômico por profissional/dia)
	// --------------------------------------------------
	ap := &models.Appointment{
		ProfessionalID:  in.ProfessionalID,
		CustomerID:      in.CustomerID,
		Date:            in.Date,
		StartTime:       start,
		EndTime:         end,
		ServiceName:     in.ServiceName,
		DurationMinutes: svc.DurationMinutes,
		Status:          string(domain.InitialStatus()),
		ContactNumber:   in.ContactNumber,
		Notes:           in.Notes,
	}

	waitStart := time.Now()
	err = uc.locker.WithLock(ctx, lock.BookingKey(in.ProfessionalID, in.Date), func(ctx context.Context) error {
		uc.metrics.ObserveLockWait(time.Since(waitStart).Seconds())

		return uc.repo.WithTx(ctx, func(tx domain.Repository) error {
			if err := tx.LockProfessional(ctx, in.ProfessionalID); err != nil {
				return err
			}

			existing, err := tx.ListActiveForDate(ctx, in.ProfessionalID, in.Date)
			if err != nil {
				return err
			}

			for _, other := range existing {
				if slot.Overlaps(domain.IntervalOf(other)) {
					return httperr.SlotConflict()
				}
			}

			return tx.CreateAppointment(ctx, ap)
		})
	})
	if err != nil {
		if httperr.IsKind(err, httperr.KindSlotConflict) {
			uc.audit.Dispatch(audit.Event{
				ProfessionalID: in.ProfessionalID,
				ActorID:        &in.CustomerID,
				ActorRole:      domain.RoleCustomer,
				Action:         "appointment_conflict",
				Entity:         "appointment",
				Metadata: map[string]any{
					"start": start,
					"end":   end,
				},
			})
		}
		return nil, err
	}

	// --------------------------------------------------
	// 6. Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		ProfessionalID: in.ProfessionalID,
		ActorID:        &in.CustomerID,
		ActorRole:      domain.RoleCustomer,
		Action:         "appointment_created",
		Entity:         "appointment",
		EntityID:       &ap.ID,
		Metadata: map[string]any{
			"service":  in.ServiceName,
			"duration": svc.DurationMinutes,
			"source":   svc.Source,
		},
	})

	return ap, nil
}
