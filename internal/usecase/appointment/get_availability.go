package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/pro-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/pro-booking/internal/domain/professional"
	"github.com/BruksfildServices01/pro-booking/internal/httperr"
	"github.com/BruksfildServices01/pro-booking/internal/timezone"
)

const (
	MinGranularityMinutes = 5
	MaxGranularityMinutes = 240
)

type GetAvailability struct {
	repo        domain.Repository
	loc         *time.Location
	now         timezone.Clock
	granularity int
}

func NewGetAvailability(
	repo domain.Repository,
	loc *time.Location,
	defaultGranularity int,
) *GetAvailability {
	if defaultGranularity <= 0 {
		defaultGranularity = int(domain.DefaultGranularity / time.Minute)
	}
	return &GetAvailability{
		repo:        repo,
		loc:         loc,
		now:         timezone.ClockIn(loc),
		granularity: defaultGranularity,
	}
}

func (uc *GetAvailability) WithClock(c timezone.Clock) *GetAvailability {
	uc.now = c
	return uc
}

// Execute lista os slots livres do dia. granularity 0 usa o padrão.
// Sem expediente (ou profissional pausado) → is_open=false.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	professionalID uint,
	date string,
	granularity int,
) (*domain.Availability, error) {

	day, err := timezone.ParseDate(date, uc.loc)
	if err != nil {
		return nil, httperr.Validation("invalid_date")
	}

	if granularity == 0 {
		granularity = uc.granularity
	}
	if granularity < MinGranularityMinutes || granularity > MaxGranularityMinutes {
		return nil, httperr.Validation("invalid_granularity")
	}

	closed := &domain.Availability{Date: date, IsOpen: false, Slots: []domain.TimeSlot{}}

	p, err := uc.repo.GetProfessional(ctx, professionalID)
	if err != nil {
		return nil, err
	}
	if professional.IsPaused(p, uc.now()) {
		return closed, nil
	}

	wh, err := uc.repo.GetWorkingHours(ctx, professionalID, int(day.Weekday()))
	if err != nil {
		return nil, err
	}

	window, ok := domain.WorkingWindow(wh, day)
	if !ok {
		return closed, nil
	}

	apps, err := uc.repo.ListActiveForDate(ctx, professionalID, date)
	if err != nil {
		return nil, err
	}

	busy := make([]domain.Interval, 0, len(apps))
	for _, ap := range apps {
		busy = append(busy, domain.IntervalOf(ap))
	}

	step := time.Duration(granularity) * time.Minute
	slots := domain.GenerateSlots(window, step, busy)

	return &domain.Availability{
		Date:   date,
		IsOpen: true,
		Slots:  domain.ToTimeSlots(slots),
	}, nil
}
