package geo

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/BruksfildServices01/pro-booking/internal/httperr"
)

type Hit struct {
	ID         uint    `json:"id"`
	DistanceKm float64 `json:"distance_km"`
}

// Located é um item carregado do banco para montar o índice.
type Located struct {
	ID    uint
	Point Point
}

// Source fornece os profissionais com localização.
type Source interface {
	ListLocations(ctx context.Context) ([]Located, error)
}

// Index é uma réplica em memória id → ponto, segura para uso concorrente.
// Profissionais sem localização nunca entram.
type Index struct {
	mu     sync.RWMutex
	points map[uint]Point

	// upserts feitos enquanto um Load lê a fonte; reaplicados na troca
	loading int
	touched map[uint]*Point
}

func NewIndex() *Index {
	return &Index{points: make(map[uint]Point)}
}

// Load substitui todo o conteúdo pelo que vier da fonte. Upserts que
// chegarem durante a leitura prevalecem sobre o snapshot.
func (ix *Index) Load(ctx context.Context, src Source) error {
	ix.mu.Lock()
	ix.loading++
	if ix.touched == nil {
		ix.touched = make(map[uint]*Point)
	}
	ix.mu.Unlock()

	items, err := src.ListLocations(ctx)

	ix.mu.Lock()
	defer ix.mu.Unlock()

	touched := ix.touched
	ix.loading--
	if ix.loading == 0 {
		ix.touched = nil
	}

	if err != nil {
		return fmt.Errorf("load geo index: %w", err)
	}

	points := make(map[uint]Point, len(items))
	for _, it := range items {
		points[it.ID] = it.Point
	}
	for id, p := range touched {
		if p == nil {
			delete(points, id)
			continue
		}
		points[id] = *p
	}

	ix.points = points
	return nil
}

// RefreshEvery recarrega o índice a cada interval até ctx terminar. Uma
// falha mantém o conteúdo anterior. interval <= 0 desliga.
func (ix *Index) RefreshEvery(
	ctx context.Context,
	src Source,
	interval time.Duration,
	log *slog.Logger,
) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := ix.Load(ctx, src); err != nil {
				if ctx.Err() != nil {
					return
				}
				log.Warn("geo index refresh", slog.Any("error", err))
				continue
			}
			log.Debug("geo index refreshed", slog.Int("professionals", ix.Len()))
		}
	}
}

// Upsert com p == nil remove o id.
func (ix *Index) Upsert(id uint, p *Point) {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	if ix.loading > 0 {
		var cp *Point
		if p != nil {
			v := *p
			cp = &v
		}
		ix.touched[id] = cp
	}

	if p == nil {
		delete(ix.points, id)
		return
	}
	ix.points[id] = *p
}

func (ix *Index) Remove(id uint) {
	ix.Upsert(id, nil)
}

func (ix *Index) Len() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.points)
}

// Query devolve os ids a até radiusKm (inclusive) de center, do mais
// próximo ao mais distante; empates por id.
func (ix *Index) Query(center Point, radiusKm float64) ([]Hit, error) {
	if err := ValidateRadius(radiusKm); err != nil {
		return nil, err
	}

	ix.mu.RLock()
	hits := make([]Hit, 0)
	for id, p := range ix.points {
		d := DistanceKm(center, p)
		if d <= radiusKm {
			hits = append(hits, Hit{ID: id, DistanceKm: d})
		}
	}
	ix.mu.RUnlock()

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].DistanceKm != hits[j].DistanceKm {
			return hits[i].DistanceKm < hits[j].DistanceKm
		}
		return hits[i].ID < hits[j].ID
	})

	return hits, nil
}

// ValidateRadius aceita apenas raios finitos e positivos.
func ValidateRadius(radiusKm float64) error {
	if math.IsNaN(radiusKm) || math.IsInf(radiusKm, 0) || radiusKm <= 0 {
		return httperr.InvalidArgument("invalid_radius")
	}
	return nil
}
