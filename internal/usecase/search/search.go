package search

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/BruksfildServices01/pro-booking/internal/domain/professional"
	"github.com/BruksfildServices01/pro-booking/internal/dto"
	"github.com/BruksfildServices01/pro-booking/internal/geo"
	"github.com/BruksfildServices01/pro-booking/internal/httperr"
	"github.com/BruksfildServices01/pro-booking/internal/models"
	"github.com/BruksfildServices01/pro-booking/internal/timezone"
)

type Repository interface {
	SearchCandidates(ctx context.Context, query string, categorySlug string) ([]models.Professional, error)
}

type Index interface {
	Query(center geo.Point, radiusKm float64) ([]geo.Hit, error)
}

// ImageURLs resolve a chave da imagem de perfil em URL pública.
type ImageURLs interface {
	URL(ctx context.Context, key string) (string, error)
}

type Input struct {
	Query    string
	Category string
	Center   *geo.Point
	RadiusKm *float64 // nil usa o raio padrão
}

type SearchProfessionals struct {
	repo          Repository
	index         Index
	images        ImageURLs
	log           *slog.Logger
	defaultRadius float64
	now           timezone.Clock
}

func NewSearchProfessionals(
	repo Repository,
	index Index,
	images ImageURLs,
	log *slog.Logger,
	defaultRadiusKm float64,
	loc *time.Location,
) *SearchProfessionals {
	return &SearchProfessionals{
		repo:          repo,
		index:         index,
		images:        images,
		log:           log,
		defaultRadius: defaultRadiusKm,
		now:           timezone.ClockIn(loc),
	}
}

func (uc *SearchProfessionals) WithClock(c timezone.Clock) *SearchProfessionals {
	uc.now = c
	return uc
}

// Execute: (nome OU serviço OU endereço) E categoria; sem pausados; com
// centro, só quem está no raio, ordenado por distância. Sem centro,
// ordenado por id.
func (uc *SearchProfessionals) Execute(
	ctx context.Context,
	in Input,
) ([]dto.ProfessionalSummary, error) {

	query := strings.TrimSpace(in.Query)
	if query == "" {
		return nil, httperr.Validation("missing_query")
	}

	// --------------------------------------------------
	// Raio (antes do banco: raio inválido falha cedo)
	// --------------------------------------------------
	radius := uc.defaultRadius
	if in.RadiusKm != nil {
		if err := geo.ValidateRadius(*in.RadiusKm); err != nil {
			return nil, err
		}
		radius = *in.RadiusKm
	}

	var distances map[uint]float64
	if in.Center != nil {
		hits, err := uc.index.Query(*in.Center, radius)
		if err != nil {
			return nil, err
		}

		distances = make(map[uint]float64, len(hits))
		for _, h := range hits {
			distances[h.ID] = h.DistanceKm
		}
	}

	// --------------------------------------------------
	// Candidatos por texto + categoria
	// --------------------------------------------------
	candidates, err := uc.repo.SearchCandidates(ctx, query, in.Category)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	seen := make(map[uint]bool, len(candidates))
	out := make([]dto.ProfessionalSummary, 0, len(candidates))

	for _, p := range candidates {
		if seen[p.ID] {
			continue
		}
		seen[p.ID] = true

		if professional.IsPaused(&p, now) {
			continue
		}

		s := dto.NewProfessionalSummary(p)

		if distances != nil {
			d, ok := distances[p.ID]
			if !ok {
				continue
			}
			s.DistanceKm = &d
		}

		s.ProfileImageURL = uc.imageURL(ctx, p.ProfileImageKey)
		out = append(out, s)
	}

	// --------------------------------------------------
	// Ordenação
	// --------------------------------------------------
	sort.SliceStable(out, func(i, j int) bool {
		if distances != nil && *out[i].DistanceKm != *out[j].DistanceKm {
			return *out[i].DistanceKm < *out[j].DistanceKm
		}
		return out[i].ID < out[j].ID
	})

	return out, nil
}

func (uc *SearchProfessionals) imageURL(ctx context.Context, key string) string {
	return profileImageURL(ctx, uc.images, uc.log, key)
}

// profileImageURL devolve "" quando não há imagem ou a resolução falha.
func profileImageURL(ctx context.Context, images ImageURLs, log *slog.Logger, key string) string {
	if key == "" || images == nil {
		return ""
	}
	url, err := images.URL(ctx, key)
	if err != nil {
		log.Warn("resolve profile image", slog.String("key", key), slog.Any("error", err))
		return ""
	}
	return url
}
