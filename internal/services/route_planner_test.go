package services

import (
	"context"
	"errors"
	"math"
	"route-planner-service/internal/domain"
	"slices"
	"testing"
)

func wp(id string, lat, lng float64) domain.Waypoint {
	return domain.Waypoint{ID: id, Label: id, Location: domain.GeoPoint{Lat: lat, Lng: lng}}
}

func ids(ws []domain.Waypoint) []string {
	out := make([]string, 0, len(ws))
	for _, w := range ws {
		out = append(out, w.ID)
	}
	return out
}

func TestPlanRouteSeoulExample(t *testing.T) {
	start := wp("S", 37.5665, 126.9780)
	a := wp("A", 37.50, 127.00)
	b := wp("B", 37.60, 126.90)

	req := domain.RouteRequest{Start: &start, Intermediates: []domain.Waypoint{a, b}}

	res, err := PlanRoute(context.Background(), req, AlgorithmNearestNeighbor, HaversineEstimator{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A is about 7.64 km from start, B about 7.82 km.
	if got := ids(res.OrderedIntermediates); !slices.Equal(got, []string{"A", "B"}) {
		t.Fatalf("order = %v, want [A B]", got)
	}

	if len(res.Legs) != 2 {
		t.Fatalf("legs = %d, want 2", len(res.Legs))
	}
	if res.Legs[0].From.ID != "S" || res.Legs[0].To.ID != "A" || res.Legs[1].To.ID != "B" {
		t.Fatalf("unexpected legs: %s->%s, %s->%s",
			res.Legs[0].From.ID, res.Legs[0].To.ID, res.Legs[1].From.ID, res.Legs[1].To.ID)
	}

	rawKm := Estimate(start.Location, a.Location).RoadKm + Estimate(a.Location, b.Location).RoadKm
	if want := round2(rawKm); res.TotalDistanceKm != want {
		t.Fatalf("total distance = %v, want %v", res.TotalDistanceKm, want)
	}
	// Duration derives from the unrounded distance.
	if want := round2(rawKm * 2); res.TotalDurationMin != want {
		t.Fatalf("total duration = %v, want %v", res.TotalDurationMin, want)
	}
	if res.Algorithm != string(AlgorithmNearestNeighbor) {
		t.Fatalf("algorithm = %q", res.Algorithm)
	}
}

func TestPlanRouteIncludesEndLeg(t *testing.T) {
	start := wp("S", 0, 0)
	end := wp("E", 0, 10)
	req := domain.RouteRequest{
		Start:         &start,
		End:           &end,
		Intermediates: []domain.Waypoint{wp("C", 0, 3), wp("B", 0, 2), wp("A", 0, 1)},
	}

	res, err := PlanRoute(context.Background(), req, AlgorithmNearestNeighbor, HaversineEstimator{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := ids(res.OrderedIntermediates); !slices.Equal(got, []string{"A", "B", "C"}) {
		t.Fatalf("order = %v, want [A B C]", got)
	}
	if got := ids(res.Stops()); !slices.Equal(got, []string{"S", "A", "B", "C", "E"}) {
		t.Fatalf("stops = %v", got)
	}
	if len(res.Legs) != 4 || res.Legs[3].To.ID != "E" {
		t.Fatalf("expected final leg to end, got %d legs", len(res.Legs))
	}

	want := round2(Estimate(start.Location, end.Location).RoadKm)
	if math.Abs(res.TotalDistanceKm-want) > 0.011 {
		t.Fatalf("total = %v, want about %v", res.TotalDistanceKm, want)
	}
}

func TestPlanRouteWithoutStartSeedsFirstIntermediate(t *testing.T) {
	req := domain.RouteRequest{
		Intermediates: []domain.Waypoint{wp("M", 0, 5), wp("L", 0, 0), wp("R", 0, 6)},
	}

	res, err := PlanRoute(context.Background(), req, AlgorithmNearestNeighbor, HaversineEstimator{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := ids(res.OrderedIntermediates); !slices.Equal(got, []string{"M", "R", "L"}) {
		t.Fatalf("order = %v, want [M R L]", got)
	}
	if len(res.Legs) != 2 {
		t.Fatalf("legs = %d, want 2", len(res.Legs))
	}
}

func TestPlanRouteTieBreaksOnInputOrder(t *testing.T) {
	start := wp("S", 0, 0)
	req := domain.RouteRequest{
		Start:         &start,
		Intermediates: []domain.Waypoint{wp("W", 0, -1), wp("E", 0, 1)},
	}

	res, err := PlanRoute(context.Background(), req, AlgorithmNearestNeighbor, HaversineEstimator{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.OrderedIntermediates[0].ID != "W" {
		t.Fatalf("first = %q, want W", res.OrderedIntermediates[0].ID)
	}
}

func TestPlanRouteValidation(t *testing.T) {
	start := wp("S", 0, 0)
	end := wp("E", 1, 1)

	tests := []struct {
		name    string
		req     domain.RouteRequest
		wantErr error
	}{
		{name: "empty", req: domain.RouteRequest{}, wantErr: domain.ErrEmptyWaypointSet},
		{name: "empty with anchors", req: domain.RouteRequest{Start: &start, End: &end}, wantErr: domain.ErrEmptyWaypointSet},
		{name: "single point", req: domain.RouteRequest{Intermediates: []domain.Waypoint{wp("A", 0, 1)}}, wantErr: domain.ErrInsufficientPoints},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := PlanRoute(context.Background(), tt.req, AlgorithmTwoOpt, HaversineEstimator{})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if res != nil {
				t.Fatalf("expected no result, got %+v", res)
			}
		})
	}
}

func TestPlanRouteSingleIntermediateWithStart(t *testing.T) {
	start := wp("S", 0, 0)
	req := domain.RouteRequest{Start: &start, Intermediates: []domain.Waypoint{wp("A", 0, 1)}}

	res, err := PlanRoute(context.Background(), req, AlgorithmNearestNeighbor, HaversineEstimator{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Legs) != 1 {
		t.Fatalf("legs = %d, want 1", len(res.Legs))
	}
}

func TestPlanRoutePermutationAndDeterminism(t *testing.T) {
	start := wp("S", 37.55, 126.97)
	end := wp("E", 37.48, 127.05)
	points := []domain.Waypoint{
		wp("p0", 37.51, 127.02), wp("p1", 37.57, 126.99), wp("p2", 37.53, 126.93),
		wp("p3", 37.60, 127.03), wp("p4", 37.49, 126.95), wp("p5", 37.56, 127.08),
		wp("p6", 37.52, 127.00), wp("p7", 37.58, 126.92),
	}

	for _, algo := range []Algorithm{AlgorithmNearestNeighbor, AlgorithmTwoOpt} {
		t.Run(string(algo), func(t *testing.T) {
			req := domain.RouteRequest{Start: &start, End: &end, Intermediates: points}

			first, err := PlanRoute(context.Background(), req, algo, HaversineEstimator{})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			second, err := PlanRoute(context.Background(), req, algo, HaversineEstimator{})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			got := ids(first.OrderedIntermediates)
			if !slices.Equal(got, ids(second.OrderedIntermediates)) {
				t.Fatalf("non-deterministic order: %v vs %v", got, ids(second.OrderedIntermediates))
			}

			sorted := slices.Clone(got)
			slices.Sort(sorted)
			if !slices.Equal(sorted, ids(points)) {
				t.Fatalf("order %v is not a permutation of the input", got)
			}
			if len(first.Legs) != len(points)+1 {
				t.Fatalf("legs = %d, want %d", len(first.Legs), len(points)+1)
			}
		})
	}
}

func TestPlanRouteCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	req := domain.RouteRequest{
		Intermediates: []domain.Waypoint{wp("A", 0, 0), wp("B", 0, 1), wp("C", 0, 2)},
	}

	if _, err := PlanRoute(ctx, req, AlgorithmNearestNeighbor, HaversineEstimator{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestPlanRouteRejectsUnknownAlgorithm(t *testing.T) {
	req := domain.RouteRequest{Intermediates: []domain.Waypoint{wp("A", 0, 0), wp("B", 0, 1)}}

	if _, err := PlanRoute(context.Background(), req, Algorithm("genetic"), HaversineEstimator{}); err == nil {
		t.Fatal("expected error for unknown algorithm")
	}
}

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		in      string
		want    Algorithm
		wantErr bool
	}{
		{in: "", want: AlgorithmTwoOpt},
		{in: "nearest", want: AlgorithmNearestNeighbor},
		{in: " Two_Opt ", want: AlgorithmTwoOpt},
		{in: "2opt", want: AlgorithmTwoOpt},
		{in: "annealing", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseAlgorithm(tt.in, AlgorithmTwoOpt)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("ParseAlgorithm(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Fatalf("ParseAlgorithm(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
	}
}
