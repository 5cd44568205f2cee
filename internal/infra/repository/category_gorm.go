package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/pro-booking/internal/models"
)

type CategoryGormRepository struct {
	db *gorm.DB
}

func NewCategoryGormRepository(db *gorm.DB) *CategoryGormRepository {
	return &CategoryGormRepository{db: db}
}

func (r *CategoryGormRepository) ListActive(ctx context.Context) ([]models.Category, error) {
	var list []models.Category
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}
