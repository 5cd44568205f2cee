package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/pro-booking/internal/models"
)

type PortfolioGormRepository struct {
	db *gorm.DB
}

func NewPortfolioGormRepository(db *gorm.DB) *PortfolioGormRepository {
	return &PortfolioGormRepository{db: db}
}

// ListAlbums traz os álbuns com as fotos já ordenadas por posição.
func (r *PortfolioGormRepository) ListAlbums(
	ctx context.Context,
	professionalID uint,
) ([]models.Album, error) {

	var albums []models.Album
	if err := r.db.WithContext(ctx).
		Preload("Photos", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC, id ASC")
		}).
		Where("professional_id = ?", professionalID).
		Order("id ASC").
		Find(&albums).Error; err != nil {
		return nil, err
	}
	return albums, nil
}
