package review

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/pro-booking/internal/audit"
	domain "github.com/BruksfildServices01/pro-booking/internal/domain/review"
	"github.com/BruksfildServices01/pro-booking/internal/httperr"
	"github.com/BruksfildServices01/pro-booking/internal/models"
)

const MaxCommentLength = 2000

type CreateReviewInput struct {
	CustomerID     uint
	ProfessionalID uint
	AppointmentID  *uint
	Rating         int
	Comment        string
}

type CreateReview struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateReview(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateReview {
	return &CreateReview{
		repo:  repo,
		audit: audit,
	}
}

// Execute grava a avaliação e recalcula média e total do profissional na
// mesma transação.
func (uc *CreateReview) Execute(
	ctx context.Context,
	in CreateReviewInput,
) (*models.Review, error) {

	if err := domain.ValidateRating(in.Rating); err != nil {
		return nil, err
	}
	if len(in.Comment) > MaxCommentLength {
		return nil, httperr.Validation("comment_too_long")
	}

	rv := &models.Review{
		CustomerID:     in.CustomerID,
		ProfessionalID: in.ProfessionalID,
		AppointmentID:  in.AppointmentID,
		Rating:         in.Rating,
		Comment:        strings.TrimSpace(in.Comment),
	}

	err := uc.repo.WithTx(ctx, func(tx domain.Repository) error {
		ok, err := tx.ProfessionalExists(ctx, in.ProfessionalID)
		if err != nil {
			return err
		}
		if !ok {
			return httperr.NotFoundErr("professional_not_found")
		}

		if in.AppointmentID != nil {
			ap, err := tx.GetAppointment(ctx, *in.AppointmentID)
			if err != nil {
				return err
			}
			if ap.ProfessionalID != in.ProfessionalID || ap.CustomerID != in.CustomerID {
				return httperr.NotFoundErr("appointment_not_found")
			}

			exists, err := tx.ExistsForAppointment(ctx, in.CustomerID, *in.AppointmentID)
			if err != nil {
				return err
			}
			if exists {
				return httperr.Validation("review_exists")
			}
		}

		if err := tx.CreateReview(ctx, rv); err != nil {
			return err
		}

		_, err = tx.RecomputeRating(ctx, in.ProfessionalID)
		return err
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ProfessionalID: in.ProfessionalID,
		ActorID:        &in.CustomerID,
		ActorRole:      "customer",
		Action:         "review_created",
		Entity:         "review",
		EntityID:       &rv.ID,
		Metadata:       map[string]any{"rating": in.Rating},
	})

	return rv, nil
}
