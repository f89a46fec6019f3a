package distance

import (
	"route-planner-service/internal/domain"
	"route-planner-service/internal/ports"
)

// MockPair fixes the road distance between two points in both directions.
type MockPair struct {
	From, To domain.GeoPoint
	RoadKm   float64
}

// MockDistanceEstimator returns fixed distances for known pairs and defers
// to Fallback for the rest. Without a fallback unknown pairs are 0 km.
type MockDistanceEstimator struct {
	m        map[[2]domain.GeoPoint]float64
	Fallback ports.DistanceEstimator
}

func NewMockDistanceEstimator(pairs []MockPair, fallback ports.DistanceEstimator) *MockDistanceEstimator {
	m := make(map[[2]domain.GeoPoint]float64, 2*len(pairs))
	for _, p := range pairs {
		m[[2]domain.GeoPoint{p.From, p.To}] = p.RoadKm
		m[[2]domain.GeoPoint{p.To, p.From}] = p.RoadKm
	}
	return &MockDistanceEstimator{m: m, Fallback: fallback}
}

func (e *MockDistanceEstimator) Estimate(from domain.GeoPoint, to domain.GeoPoint) domain.Estimate {
	if from == to {
		return domain.Estimate{}
	}
	if km, ok := e.m[[2]domain.GeoPoint{from, to}]; ok {
		return domain.Estimate{StraightKm: km / 1.4, RoadKm: km, DurationMin: km * 2}
	}
	if e.Fallback != nil {
		return e.Fallback.Estimate(from, to)
	}
	return domain.Estimate{}
}
