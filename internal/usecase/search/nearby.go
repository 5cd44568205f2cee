package search

import (
	"context"
	"log/slog"
	"time"

	"github.com/BruksfildServices01/pro-booking/internal/domain/professional"
	"github.com/BruksfildServices01/pro-booking/internal/dto"
	"github.com/BruksfildServices01/pro-booking/internal/geo"
	"github.com/BruksfildServices01/pro-booking/internal/models"
	"github.com/BruksfildServices01/pro-booking/internal/timezone"
)

type ProfessionalsByID interface {
	ListByIDs(ctx context.Context, ids []uint) ([]models.Professional, error)
}

// NearbyProfessionals é a busca só por raio, sem texto.
type NearbyProfessionals struct {
	repo          ProfessionalsByID
	index         Index
	images        ImageURLs
	log           *slog.Logger
	defaultRadius float64
	now           timezone.Clock
}

func NewNearbyProfessionals(
	repo ProfessionalsByID,
	index Index,
	images ImageURLs,
	log *slog.Logger,
	defaultRadiusKm float64,
	loc *time.Location,
) *NearbyProfessionals {
	return &NearbyProfessionals{
		repo:          repo,
		index:         index,
		images:        images,
		log:           log,
		defaultRadius: defaultRadiusKm,
		now:           timezone.ClockIn(loc),
	}
}

func (uc *NearbyProfessionals) WithClock(c timezone.Clock) *NearbyProfessionals {
	uc.now = c
	return uc
}

// Execute devolve os profissionais não pausados a até radiusKm de center,
// na ordem do índice (distância, depois id). radiusKm nil usa o padrão.
func (uc *NearbyProfessionals) Execute(
	ctx context.Context,
	center geo.Point,
	radiusKm *float64,
) ([]dto.ProfessionalSummary, error) {

	radius := uc.defaultRadius
	if radiusKm != nil {
		radius = *radiusKm
	}

	hits, err := uc.index.Query(center, radius)
	if err != nil {
		return nil, err
	}
	if len(hits) == 0 {
		return []dto.ProfessionalSummary{}, nil
	}

	ids := make([]uint, len(hits))
	for i, h := range hits {
		ids[i] = h.ID
	}

	list, err := uc.repo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[uint]models.Professional, len(list))
	for _, p := range list {
		byID[p.ID] = p
	}

	now := uc.now()
	out := make([]dto.ProfessionalSummary, 0, len(hits))

	for _, h := range hits {
		p, ok := byID[h.ID]
		if !ok {
			// índice à frente do banco (profissional removido)
			continue
		}
		if professional.IsPaused(&p, now) {
			continue
		}

		s := dto.NewProfessionalSummary(p)
		d := h.DistanceKm
		s.DistanceKm = &d
		s.ProfileImageURL = profileImageURL(ctx, uc.images, uc.log, p.ProfileImageKey)
		out = append(out, s)
	}

	return out, nil
}
