package services

import (
	"route-planner-service/internal/domain"
	"route-planner-service/internal/ports"
)

// Number of interpolation steps per leg; a leg path has legPathSteps+1 points.
const legPathSteps = 5

// BuildLegs turns a visiting sequence into renderable legs.
// Each leg carries a straight-line polyline between its endpoints and the
// estimated road distance and duration for that pair.
func BuildLegs(ordered []domain.Waypoint, estimator ports.DistanceEstimator) []domain.RouteLeg {
	if len(ordered) < 2 {
		return []domain.RouteLeg{}
	}

	legs := make([]domain.RouteLeg, 0, len(ordered)-1)
	for k := 1; k < len(ordered); k++ {
		from, to := ordered[k-1], ordered[k]
		est := estimator.Estimate(from.Location, to.Location)

		legs = append(legs, domain.RouteLeg{
			From:        from,
			To:          to,
			DistanceKm:  est.RoadKm,
			DurationMin: est.DurationMin,
			Path:        legPath(from.Location, to.Location),
		})
	}
	return legs
}

func legPath(from, to domain.GeoPoint) []domain.GeoPoint {
	path := make([]domain.GeoPoint, legPathSteps+1)
	for i := 1; i < legPathSteps; i++ {
		path[i] = from.Interpolate(to, float64(i)/legPathSteps)
	}
	// Endpoints are set directly so the path meets the waypoints exactly.
	path[0] = from
	path[legPathSteps] = to
	return path
}
