package professional

import (
	"context"

	"github.com/BruksfildServices01/pro-booking/internal/models"
)

type Repository interface {
	GetProfessional(
		ctx context.Context,
		id uint,
	) (*models.Professional, error)

	// UpdatePause grava os três campos de pausa (inclusive nulos).
	UpdatePause(
		ctx context.Context,
		p *models.Professional,
	) error

	UpdateLocation(
		ctx context.Context,
		id uint,
		lat *float64,
		lon *float64,
	) error

	// ListLocated devolve os profissionais com latitude/longitude.
	ListLocated(
		ctx context.Context,
	) ([]models.Professional, error)
}
