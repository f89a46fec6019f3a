package ports

import "route-planner-service/internal/domain"

// Contract for estimating travel distance and duration between two points.
// Implementations must be pure: no I/O, no randomness.
type DistanceEstimator interface {
	Estimate(from domain.GeoPoint, to domain.GeoPoint) domain.Estimate
}
