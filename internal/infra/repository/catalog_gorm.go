package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/pro-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/pro-booking/internal/models"
)

type CatalogGormRepository struct {
	db *gorm.DB
}

func NewCatalogGormRepository(db *gorm.DB) *CatalogGormRepository {
	return &CatalogGormRepository{db: db}
}

func (r *CatalogGormRepository) WithTx(
	ctx context.Context,
	fn func(tx catalog.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&CatalogGormRepository{db: tx})
	})
}

// --------------------------------------------------
// Lookup (nome exato, case-sensitive)
// --------------------------------------------------

func (r *CatalogGormRepository) FindActiveOverride(
	ctx context.Context,
	professionalID uint,
	name string,
) (*models.ProfessionalService, error) {

	db := r.db.WithContext(ctx)
	templateIDs := db.
		Model(&models.ServiceTemplate{}).
		Select("id").
		Where("name = ?", name)

	var ps models.ProfessionalService
	err := db.
		Preload("ServiceTemplate").
		Where("professional_id = ? AND is_active = ?", professionalID, true).
		Where("service_template_id IN (?)", templateIDs).
		First(&ps).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &ps, nil
}

func (r *CatalogGormRepository) FindTemplate(
	ctx context.Context,
	name string,
) (*models.ServiceTemplate, error) {

	var tpl models.ServiceTemplate
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&tpl).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &tpl, nil
}

func (r *CatalogGormRepository) ListServices(
	ctx context.Context,
	professionalID uint,
) ([]models.ProfessionalService, error) {

	var services []models.ProfessionalService
	if err := r.db.WithContext(ctx).
		Preload("ServiceTemplate").
		Where("professional_id = ?", professionalID).
		Order("id ASC").
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// --------------------------------------------------
// Bulk update
// --------------------------------------------------

func (r *CatalogGormRepository) GetOrCreateTemplate(
	ctx context.Context,
	name string,
	basePrice float64,
) (*models.ServiceTemplate, error) {

	tpl := models.ServiceTemplate{
		Name:                   name,
		BasePrice:              basePrice,
		DefaultDurationMinutes: catalog.DefaultTemplateDurationMinutes,
	}
	if err := r.db.WithContext(ctx).
		Where("name = ?", name).
		FirstOrCreate(&tpl).Error; err != nil {
		return nil, err
	}
	return &tpl, nil
}

func (r *CatalogGormRepository) ReplaceServices(
	ctx context.Context,
	professionalID uint,
	services []models.ProfessionalService,
) error {

	db := r.db.WithContext(ctx)

	if err := db.
		Where("professional_id = ?", professionalID).
		Delete(&models.ProfessionalService{}).Error; err != nil {
		return err
	}

	if len(services) == 0 {
		return nil
	}

	for i := range services {
		services[i].ProfessionalID = professionalID
	}

	return db.Omit("ServiceTemplate").Create(&services).Error
}

func (r *CatalogGormRepository) UpdatePriceRange(
	ctx context.Context,
	professionalID uint,
	min *float64,
	max *float64,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Professional{}).
		Where("id = ?", professionalID).
		Updates(map[string]any{
			"price_range_min": min,
			"price_range_max": max,
		}).Error
}

func (r *CatalogGormRepository) ProfessionalExists(
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

var _ catalog.Repository = (*CatalogGormRepository)(nil)
