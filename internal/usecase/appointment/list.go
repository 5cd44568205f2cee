package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/pro-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/pro-booking/internal/dto"
	"github.com/BruksfildServices01/pro-booking/internal/httperr"
	"github.com/BruksfildServices01/pro-booking/internal/timezone"
)

type ListAppointments struct {
	repo domain.Repository
	loc  *time.Location
	now  timezone.Clock
}

func NewListAppointments(
	repo domain.Repository,
	loc *time.Location,
) *ListAppointments {
	return &ListAppointments{
		repo: repo,
		loc:  loc,
		now:  timezone.ClockIn(loc),
	}
}

func (uc *ListAppointments) WithClock(c timezone.Clock) *ListAppointments {
	uc.now = c
	return uc
}

// ByDate lista todos os agendamentos do dia (qualquer status).
func (uc *ListAppointments) ByDate(
	ctx context.Context,
	professionalID uint,
	date string,
) ([]dto.AppointmentListDTO, error) {

	if _, err := timezone.ParseDate(date, uc.loc); err != nil {
		return nil, httperr.Validation("invalid_date")
	}

	apps, err := uc.repo.ListByDate(ctx, professionalID, date)
	if err != nil {
		return nil, err
	}
	return dto.AppointmentList(apps, uc.loc), nil
}

// Upcoming: agendados/confirmados de hoje em diante.
func (uc *ListAppointments) Upcoming(
	ctx context.Context,
	professionalID uint,
) ([]dto.AppointmentListDTO, error) {

	today := uc.now().In(uc.loc).Format(timezone.DateLayout)

	apps, err := uc.repo.ListUpcoming(ctx, professionalID, today)
	if err != nil {
		return nil, err
	}
	return dto.AppointmentList(apps, uc.loc), nil
}

// ForCustomer lista o histórico do cliente.
func (uc *ListAppointments) ForCustomer(
	ctx context.Context,
	customerID uint,
) ([]dto.AppointmentListDTO, error) {

	apps, err := uc.repo.ListForCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return dto.AppointmentList(apps, uc.loc), nil
}
