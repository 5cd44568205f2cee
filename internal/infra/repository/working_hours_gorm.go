package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/pro-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/pro-booking/internal/models"
)

type WorkingHoursGormRepository struct {
	db *gorm.DB
}

func NewWorkingHoursGormRepository(db *gorm.DB) *WorkingHoursGormRepository {
	return &WorkingHoursGormRepository{db: db}
}

func (r *WorkingHoursGormRepository) ListWorkingHours(
	ctx context.Context,
	professionalID uint,
) ([]models.WorkingHours, error) {

	var hours []models.WorkingHours
	if err := r.db.WithContext(ctx).
		Where("professional_id = ?", professionalID).
		Order("weekday ASC").
		Find(&hours).Error; err != nil {
		return nil, err
	}
	return hours, nil
}

func (r *WorkingHoursGormRepository) ReplaceWorkingHours(
	ctx context.Context,
	professionalID uint,
	hours []models.WorkingHours,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("professional_id = ?", professionalID).
			Delete(&models.WorkingHours{}).Error; err != nil {
			return err
		}

		if len(hours) == 0 {
			return nil
		}

		for i := range hours {
			hours[i].ProfessionalID = professionalID
		}
		return tx.Create(&hours).Error
	})
}

func (r *WorkingHoursGormRepository) ProfessionalExists(
	ctx context.Context,
	professionalID uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Professional{}).
		Where("id = ?", professionalID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

var _ domain.WorkingHoursRepository = (*WorkingHoursGormRepository)(nil)
