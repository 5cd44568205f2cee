package professional

import (
	"context"
	"log/slog"
	"time"

	domain "github.com/BruksfildServices01/pro-booking/internal/domain/professional"
	"github.com/BruksfildServices01/pro-booking/internal/dto"
	"github.com/BruksfildServices01/pro-booking/internal/geo"
	"github.com/BruksfildServices01/pro-booking/internal/timezone"
)

type ImageURLs interface {
	URL(ctx context.Context, key string) (string, error)
}

type GetPublicProfile struct {
	repo   domain.Repository
	images ImageURLs
	log    *slog.Logger
	now    timezone.Clock
}

func NewGetPublicProfile(
	repo domain.Repository,
	images ImageURLs,
	log *slog.Logger,
	loc *time.Location,
) *GetPublicProfile {
	return &GetPublicProfile{
		repo:   repo,
		images: images,
		log:    log,
		now:    timezone.ClockIn(loc),
	}
}

func (uc *GetPublicProfile) WithClock(c timezone.Clock) *GetPublicProfile {
	uc.now = c
	return uc
}

// Execute monta a ficha pública. Com from, inclui a distância até o
// profissional (quando ele tem localização).
func (uc *GetPublicProfile) Execute(
	ctx context.Context,
	professionalID uint,
	from *geo.Point,
) (dto.PublicProfile, error) {

	p, err := uc.repo.GetProfessional(ctx, professionalID)
	if err != nil {
		return dto.PublicProfile{}, err
	}

	out := dto.NewPublicProfile(*p, domain.IsPaused(p, uc.now()))

	if point := geo.PointOf(p.Latitude, p.Longitude); from != nil && point != nil {
		d := geo.DistanceKm(*from, *point)
		out.DistanceKm = &d
	}

	if p.ProfileImageKey != "" && uc.images != nil {
		url, err := uc.images.URL(ctx, p.ProfileImageKey)
		if err != nil {
			uc.log.Warn("resolve profile image",
				slog.Uint64("professional_id", uint64(p.ID)),
				slog.Any("error", err),
			)
		} else {
			out.ProfileImageURL = url
		}
	}

	return out, nil
}
