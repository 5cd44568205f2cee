package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/pro-booking/internal/domain/professional"
	"github.com/BruksfildServices01/pro-booking/internal/geo"
	"github.com/BruksfildServices01/pro-booking/internal/models"
)

type ProfessionalGormRepository struct {
	db *gorm.DB
}

func NewProfessionalGormRepository(db *gorm.DB) *ProfessionalGormRepository {
	return &ProfessionalGormRepository{db: db}
}

func (r *ProfessionalGormRepository) GetProfessional(
	ctx context.Context,
	id uint,
) (*models.Professional, error) {

	var p models.Professional
	if err := r.db.WithContext(ctx).
		Preload("Category").
		First(&p, id).Error; err != nil {
		return nil, notFound(err, "professional_not_found")
	}
	return &p, nil
}

func (r *ProfessionalGormRepository) UpdatePause(
	ctx context.Context,
	p *models.Professional,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Professional{}).
		Where("id = ?", p.ID).
		Updates(map[string]any{
			"pause_start":  p.PauseStart,
			"pause_end":    p.PauseEnd,
			"pause_reason": p.PauseReason,
		}).Error
}

func (r *ProfessionalGormRepository) UpdateLocation(
	ctx context.Context,
	id uint,
	lat *float64,
	lon *float64,
) error {
	res := r.db.WithContext(ctx).
		Model(&models.Professional{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"latitude":  lat,
			"longitude": lon,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return notFound(gorm.ErrRecordNotFound, "professional_not_found")
	}
	return nil
}

func (r *ProfessionalGormRepository) ListLocated(
	ctx context.Context,
) ([]models.Professional, error) {

	var list []models.Professional
	if err := r.db.WithContext(ctx).
		Select("id", "latitude", "longitude").
		Where("latitude IS NOT NULL AND longitude IS NOT NULL").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// ListLocations alimenta o índice geográfico.
func (r *ProfessionalGormRepository) ListLocations(
	ctx context.Context,
) ([]geo.Located, error) {

	list, err := r.ListLocated(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]geo.Located, 0, len(list))
	for _, p := range list {
		if pt := geo.PointOf(p.Latitude, p.Longitude); pt != nil {
			out = append(out, geo.Located{ID: p.ID, Point: *pt})
		}
	}
	return out, nil
}

// --------------------------------------------------
// Search
// --------------------------------------------------

// SearchCandidates devolve os profissionais cujo nome, endereço ou nome de
// serviço ativo contém query (sem diferenciar maiúsculas), filtrando pela
// categoria quando informada.
func (r *ProfessionalGormRepository) SearchCandidates(
	ctx context.Context,
	query string,
	categorySlug string,
) ([]models.Professional, error) {

	db := r.db.WithContext(ctx)
	pattern := "%" + escapeLike(strings.ToLower(query)) + "%"

	serviceMatches := db.
		Model(&models.ProfessionalService{}).
		Select("professional_services.professional_id").
		Joins("JOIN service_templates ON service_templates.id = professional_services.service_template_id").
		Where("professional_services.is_active = ?", true).
		Where(`LOWER(service_templates.name) LIKE ? ESCAPE '\'`, pattern)

	q := db.
		Preload("Category").
		Where(
			db.Where(`LOWER(professionals.name) LIKE ? ESCAPE '\'`, pattern).
				Or(`LOWER(professionals.address) LIKE ? ESCAPE '\'`, pattern).
				Or("professionals.id IN (?)", serviceMatches),
		)

	if categorySlug != "" {
		categoryIDs := db.
			Model(&models.Category{}).
			Select("id").
			Where("slug = ?", categorySlug)
		q = q.Where("professionals.category_id IN (?)", categoryIDs)
	}

	var list []models.Professional
	if err := q.Order("professionals.id ASC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// ListByIDs devolve os profissionais na ordem de id; ids ausentes são ignorados.
func (r *ProfessionalGormRepository) ListByIDs(
	ctx context.Context,
	ids []uint,
) ([]models.Professional, error) {

	if len(ids) == 0 {
		return nil, nil
	}

	var list []models.Professional
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Where("id IN ?", ids).
		Order("id ASC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

var _ professional.Repository = (*ProfessionalGormRepository)(nil)
var _ geo.Source = (*ProfessionalGormRepository)(nil)
