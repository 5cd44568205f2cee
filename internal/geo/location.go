package geo

import (
	"math"

	"github.com/BruksfildServices01/pro-booking/internal/httperr"
)

// EarthRadiusKm é o raio médio da Terra.
const EarthRadiusKm = 6371.0088

type Point struct {
	Lat float64 `json:"latitude"`
	Lon float64 `json:"longitude"`
}

// MakeProfessionalLocation valida e cria o ponto antes de persistir.
func MakeProfessionalLocation(lat, lon float64) (Point, error) {
	if math.IsNaN(lat) || math.IsNaN(lon) || lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return Point{}, httperr.Validation("invalid_location")
	}
	return Point{Lat: lat, Lon: lon}, nil
}

// PointOf devolve nil quando alguma coordenada é nula.
func PointOf(lat, lon *float64) *Point {
	if lat == nil || lon == nil {
		return nil
	}
	return &Point{Lat: *lat, Lon: *lon}
}

// DistanceKm calcula a distância de grande círculo (haversine).
func DistanceKm(a, b Point) float64 {
	lat1 := toRad(a.Lat)
	lat2 := toRad(b.Lat)
	dLat := lat2 - lat1
	dLon := toRad(b.Lon - a.Lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	// arredondamento pode passar de 1 em pontos antípodas
	h = math.Min(1, math.Max(0, h))

	return 2 * EarthRadiusKm * math.Asin(math.Sqrt(h))
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
