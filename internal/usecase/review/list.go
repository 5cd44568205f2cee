package review

import (
	"context"

	domain "github.com/BruksfildServices01/pro-booking/internal/domain/review"
	"github.com/BruksfildServices01/pro-booking/internal/httperr"
	"github.com/BruksfildServices01/pro-booking/internal/models"
)

type ListReviews struct {
	repo domain.Repository
}

func NewListReviews(repo domain.Repository) *ListReviews {
	return &ListReviews{repo: repo}
}

func (uc *ListReviews) Execute(
	ctx context.Context,
	professionalID uint,
) ([]models.Review, error) {

	ok, err := uc.repo.ProfessionalExists(ctx, professionalID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, httperr.NotFoundErr("professional_not_found")
	}

	return uc.repo.ListByProfessional(ctx, professionalID)
}
