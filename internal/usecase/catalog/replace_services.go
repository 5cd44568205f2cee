package catalog

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/pro-booking/internal/audit"
	domain "github.com/BruksfildServices01/pro-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/pro-booking/internal/httperr"
	"github.com/BruksfildServices01/pro-booking/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type ServiceInput struct {
	Name              string
	Price             float64
	CustomDuration    *int
	CustomDescription string
	IsActive          *bool
}

// ======================================================
// USE CASE
// ======================================================

type ReplaceServices struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewReplaceServices(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ReplaceServices {
	return &ReplaceServices{
		repo:  repo,
		audit: audit,
	}
}

// Execute substitui o catálogo do profissional e recalcula a faixa de preço.
func (uc *ReplaceServices) Execute(
	ctx context.Context,
	professionalID uint,
	in []ServiceInput,
) ([]models.ProfessionalService, error) {

	// --------------------------------------------------
	// 1. Validação
	// --------------------------------------------------
	seen := make(map[string]bool, len(in))
	for _, s := range in {
		name := strings.TrimSpace(s.Name)
		if name == "" {
			return nil, httperr.Validation("missing_service_name")
		}
		if seen[name] {
			return nil, httperr.Validation("duplicated_service")
		}
		seen[name] = true

		if s.Price < 0 {
			return nil, httperr.Validation("invalid_price")
		}
		if s.CustomDuration != nil && (*s.CustomDuration <= 0 || *s.CustomDuration > 480) {
			return nil, httperr.Validation("invalid_duration")
		}
	}

	ok, err := uc.repo.ProfessionalExists(ctx, professionalID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, httperr.NotFoundErr("professional_not_found")
	}

	// --------------------------------------------------
	// 2. Substituição + faixa de preço (mesma transação)
	// --------------------------------------------------
	err = uc.repo.WithTx(ctx, func(tx domain.Repository) error {
		services := make([]models.ProfessionalService, 0, len(in))

		for _, s := range in {
			tpl, err := tx.GetOrCreateTemplate(ctx, strings.TrimSpace(s.Name), s.Price)
			if err != nil {
				return err
			}

			active := true
			if s.IsActive != nil {
				active = *s.IsActive
			}

			services = append(services, models.ProfessionalService{
				ServiceTemplateID: tpl.ID,
				PriceAdjustment:   s.Price,
				CustomDuration:    s.CustomDuration,
				CustomDescription: s.CustomDescription,
				IsActive:          active,
			})
		}

		// faixa calculada da entrada, antes do Create tocar no slice
		min, max := domain.PriceRange(services)

		if err := tx.ReplaceServices(ctx, professionalID, services); err != nil {
			return err
		}

		return tx.UpdatePriceRange(ctx, professionalID, min, max)
	})
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3. Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		ProfessionalID: professionalID,
		ActorID:        &professionalID,
		ActorRole:      "professional",
		Action:         "services_replaced",
		Entity:         "professional",
		EntityID:       &professionalID,
		Metadata:       map[string]any{"count": len(in)},
	})

	return uc.repo.ListServices(ctx, professionalID)
}
