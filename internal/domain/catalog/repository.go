package catalog

import (
	"context"

	"github.com/BruksfildServices01/pro-booking/internal/models"
)

type Repository interface {
	// FindActiveOverride devolve nil, nil quando não há personalização ativa
	// com exatamente esse nome.
	FindActiveOverride(
		ctx context.Context,
		professionalID uint,
		name string,
	) (*models.ProfessionalService, error)

	// FindTemplate devolve nil, nil quando o nome não existe.
	FindTemplate(
		ctx context.Context,
		name string,
	) (*models.ServiceTemplate, error)

	ListServices(
		ctx context.Context,
		professionalID uint,
	) ([]models.ProfessionalService, error)

	GetOrCreateTemplate(
		ctx context.Context,
		name string,
		basePrice float64,
	) (*models.ServiceTemplate, error)

	ReplaceServices(
		ctx context.Context,
		professionalID uint,
		services []models.ProfessionalService,
	) error

	UpdatePriceRange(
		ctx context.Context,
		professionalID uint,
		min *float64,
		max *float64,
	) error

	ProfessionalExists(
		ctx context.Context,
		professionalID uint,
	) (bool, error)

	WithTx(
		ctx context.Context,
		fn func(tx Repository) error,
	) error
}
