package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/pro-booking/internal/domain/review"
	"github.com/BruksfildServices01/pro-booking/internal/models"
)

type ReviewGormRepository struct {
	db *gorm.DB
}

func NewReviewGormRepository(db *gorm.DB) *ReviewGormRepository {
	return &ReviewGormRepository{db: db}
}

func (r *ReviewGormRepository) WithTx(
	ctx context.Context,
	fn func(tx review.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&ReviewGormRepository{db: tx})
	})
}

func (r *ReviewGormRepository) ProfessionalExists(
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

func (r *ReviewGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		return nil, notFound(err, "appointment_not_found")
	}
	return &ap, nil
}

func (r *ReviewGormRepository) ExistsForAppointment(
	ctx context.Context,
	customerID uint,
	appointmentID uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("customer_id = ? AND appointment_id = ?", customerID, appointmentID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ReviewGormRepository) CreateReview(
	ctx context.Context,
	rv *models.Review,
) error {
	if err := r.db.WithContext(ctx).Create(rv).Error; err != nil {
		return duplicated(err, "review_exists")
	}
	return nil
}

func (r *ReviewGormRepository) RecomputeRating(
	ctx context.Context,
	professionalID uint,
) (review.RatingSummary, error) {

	db := r.db.WithContext(ctx)

	var ratings []int
	if err := db.
		Model(&models.Review{}).
		Where("professional_id = ?", professionalID).
		Pluck("rating", &ratings).Error; err != nil {
		return review.RatingSummary{}, err
	}

	summary := review.Summarize(ratings)

	if err := db.
		Model(&models.Professional{}).
		Where("id = ?", professionalID).
		Updates(map[string]any{
			"average_rating": summary.Average,
			"total_reviews":  summary.Total,
		}).Error; err != nil {
		return review.RatingSummary{}, err
	}

	return summary, nil
}

func (r *ReviewGormRepository) ListByProfessional(
	ctx context.Context,
	professionalID uint,
) ([]models.Review, error) {

	var list []models.Review
	if err := r.db.WithContext(ctx).
		Where("professional_id = ?", professionalID).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

var _ review.Repository = (*ReviewGormRepository)(nil)
