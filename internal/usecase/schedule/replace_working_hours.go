package schedule

import (
	"context"

	"github.com/BruksfildServices01/pro-booking/internal/audit"
	domain "github.com/BruksfildServices01/pro-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/pro-booking/internal/httperr"
	"github.com/BruksfildServices01/pro-booking/internal/models"
)

type ReplaceWorkingHours struct {
	repo  domain.WorkingHoursRepository
	audit *audit.Dispatcher
}

func NewReplaceWorkingHours(
	repo domain.WorkingHoursRepository,
	audit *audit.Dispatcher,
) *ReplaceWorkingHours {
	return &ReplaceWorkingHours{
		repo:  repo,
		audit: audit,
	}
}

// Execute valida e substitui todos os dias do profissional.
func (uc *ReplaceWorkingHours) Execute(
	ctx context.Context,
	professionalID uint,
	days []domain.WorkingDay,
) ([]models.WorkingHours, error) {

	if err := domain.ValidateWorkingDays(days); err != nil {
		return nil, err
	}

	ok, err := uc.repo.ProfessionalExists(ctx, professionalID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, httperr.NotFoundErr("professional_not_found")
	}

	hours := make([]models.WorkingHours, 0, len(days))
	for _, d := range days {
		wh := models.WorkingHours{
			Weekday:    d.Weekday,
			IsSelected: d.IsSelected,
		}
		if d.IsSelected {
			wh.StartTime = d.StartTime
			wh.EndTime = d.EndTime
		}
		hours = append(hours, wh)
	}

	if err := uc.repo.ReplaceWorkingHours(ctx, professionalID, hours); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ProfessionalID: professionalID,
		ActorID:        &professionalID,
		ActorRole:      domain.RoleProfessional,
		Action:         "working_hours_updated",
		Entity:         "professional",
		EntityID:       &professionalID,
	})

	return uc.repo.ListWorkingHours(ctx, professionalID)
}

type GetWorkingHours struct {
	repo domain.WorkingHoursRepository
}

func NewGetWorkingHours(repo domain.WorkingHoursRepository) *GetWorkingHours {
	return &GetWorkingHours{repo: repo}
}

func (uc *GetWorkingHours) Execute(
	ctx context.Context,
	professionalID uint,
) ([]models.WorkingHours, error) {
	return uc.repo.ListWorkingHours(ctx, professionalID)
}
