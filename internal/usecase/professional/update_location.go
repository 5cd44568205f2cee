package professional

import (
	"context"

	domain "github.com/BruksfildServices01/pro-booking/internal/domain/professional"
	"github.com/BruksfildServices01/pro-booking/internal/geo"
)

// GeoIndex é a réplica geográfica mantida em memória.
type GeoIndex interface {
	Upsert(id uint, p *geo.Point)
}

type UpdateLocation struct {
	repo  domain.Repository
	index GeoIndex
}

func NewUpdateLocation(repo domain.Repository, index GeoIndex) *UpdateLocation {
	return &UpdateLocation{repo: repo, index: index}
}

// Execute grava a localização (nil remove) e atualiza o índice.
func (uc *UpdateLocation) Execute(
	ctx context.Context,
	professionalID uint,
	lat *float64,
	lon *float64,
) (*geo.Point, error) {

	var point *geo.Point
	if lat != nil && lon != nil {
		p, err := geo.MakeProfessionalLocation(*lat, *lon)
		if err != nil {
			return nil, err
		}
		point = &p
	}

	var latV, lonV *float64
	if point != nil {
		latV, lonV = &point.Lat, &point.Lon
	}

	if err := uc.repo.UpdateLocation(ctx, professionalID, latV, lonV); err != nil {
		return nil, err
	}

	uc.index.Upsert(professionalID, point)
	return point, nil
}
