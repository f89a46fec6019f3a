package services

import (
	"math"
	"route-planner-service/internal/domain"
	"route-planner-service/internal/ports"
)

const (
	earthRadiusKm = 6371.0
	// Real roads are not straight lines; straight-line distance is inflated
	// by a fixed empirical factor.
	roadFactor = 1.4
	// 30 km/h average speed.
	minutesPerKm = 2.0
)

// HaversineEstimator implements ports.DistanceEstimator with a great-circle
// distance scaled into road distance and travel time.
type HaversineEstimator struct{}

func (HaversineEstimator) Estimate(from domain.GeoPoint, to domain.GeoPoint) domain.Estimate {
	return Estimate(from, to)
}

// Estimate returns straight-line, road, and duration estimates between a and b.
func Estimate(a, b domain.GeoPoint) domain.Estimate {
	straight := haversineKm(a, b)
	road := straight * roadFactor

	return domain.Estimate{
		StraightKm:  straight,
		RoadKm:      road,
		DurationMin: road * minutesPerKm,
	}
}

// DurationForKm converts a road distance into minutes at the assumed average speed.
func DurationForKm(roadKm float64) float64 {
	return roadKm * minutesPerKm
}

func haversineKm(a, b domain.GeoPoint) float64 {
	dLat := toRad(b.Lat - a.Lat)
	dLng := toRad(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(a.Lat))*math.Cos(toRad(b.Lat))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusKm * c
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// round2 rounds to two decimals for display.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// legCache memoizes estimates for one optimization run so construction,
// refinement, and geometry share the same leg values.
type legCache struct {
	estimator ports.DistanceEstimator
	legs      map[[2]domain.GeoPoint]domain.Estimate
}

func newLegCache(estimator ports.DistanceEstimator) *legCache {
	return &legCache{
		estimator: estimator,
		legs:      make(map[[2]domain.GeoPoint]domain.Estimate),
	}
}

func (c *legCache) Estimate(from domain.GeoPoint, to domain.GeoPoint) domain.Estimate {
	key := [2]domain.GeoPoint{from, to}
	if e, ok := c.legs[key]; ok {
		return e
	}
	e := c.estimator.Estimate(from, to)
	c.legs[key] = e
	return e
}
