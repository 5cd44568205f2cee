package review

import (
	"context"

	"github.com/BruksfildServices01/pro-booking/internal/models"
)

type Repository interface {
	ProfessionalExists(
		ctx context.Context,
		professionalID uint,
	) (bool, error)

	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	ExistsForAppointment(
		ctx context.Context,
		customerID uint,
		appointmentID uint,
	) (bool, error)

	CreateReview(
		ctx context.Context,
		r *models.Review,
	) error

	// RecomputeRating recalcula média e total a partir de todas as avaliações.
	RecomputeRating(
		ctx context.Context,
		professionalID uint,
	) (RatingSummary, error)

	ListByProfessional(
		ctx context.Context,
		professionalID uint,
	) ([]models.Review, error)

	WithTx(
		ctx context.Context,
		fn func(tx Repository) error,
	) error
}
