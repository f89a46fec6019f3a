package services

import (
	"math"
	"route-planner-service/internal/domain"
	"testing"
)

func TestBuildLegsTwoPoints(t *testing.T) {
	from := wp("A", 37.5665, 126.9780)
	to := wp("B", 37.50, 127.00)

	legs := BuildLegs([]domain.Waypoint{from, to}, HaversineEstimator{})
	if len(legs) != 1 {
		t.Fatalf("legs = %d, want 1", len(legs))
	}

	leg := legs[0]
	if len(leg.Path) != 6 {
		t.Fatalf("path points = %d, want 6", len(leg.Path))
	}
	if leg.Path[0] != from.Location || leg.Path[5] != to.Location {
		t.Fatalf("path endpoints = %v..%v, want %v..%v", leg.Path[0], leg.Path[5], from.Location, to.Location)
	}

	mid := leg.Path[2]
	wantLat := from.Location.Lat + (to.Location.Lat-from.Location.Lat)*0.4
	if math.Abs(mid.Lat-wantLat) > 1e-12 {
		t.Fatalf("path[2].Lat = %v, want %v", mid.Lat, wantLat)
	}

	est := Estimate(from.Location, to.Location)
	if leg.DistanceKm != est.RoadKm || leg.DurationMin != est.DurationMin {
		t.Fatalf("leg metrics = %v km %v min, want %v km %v min", leg.DistanceKm, leg.DurationMin, est.RoadKm, est.DurationMin)
	}
}

func TestBuildLegsTooFewPoints(t *testing.T) {
	if legs := BuildLegs([]domain.Waypoint{wp("A", 0, 0)}, HaversineEstimator{}); len(legs) != 0 {
		t.Fatalf("legs = %d, want 0", len(legs))
	}
	if legs := BuildLegs(nil, HaversineEstimator{}); legs == nil {
		t.Fatal("expected empty slice, got nil")
	}
}
