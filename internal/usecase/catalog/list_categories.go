package catalog

import (
	"context"

	"github.com/BruksfildServices01/pro-booking/internal/models"
)

type CategoryRepository interface {
	ListActive(ctx context.Context) ([]models.Category, error)
}

type ListCategories struct {
	repo CategoryRepository
}

func NewListCategories(repo CategoryRepository) *ListCategories {
	return &ListCategories{repo: repo}
}

// Execute devolve só as categorias ativas, por nome.
func (uc *ListCategories) Execute(ctx context.Context) ([]models.Category, error) {
	return uc.repo.ListActive(ctx)
}
