package services

import (
	"context"
	"fmt"
	"route-planner-service/internal/domain"
	"route-planner-service/internal/platform/obs"
	"route-planner-service/internal/ports"
	"strings"
)

// Algorithm selects how the visiting order is computed.
type Algorithm string

const (
	// Greedy nearest-neighbor construction only.
	AlgorithmNearestNeighbor Algorithm = "nearest"
	// Nearest-neighbor seed refined by 2-opt local search.
	AlgorithmTwoOpt Algorithm = "two_opt"
)

// ParseAlgorithm maps a user supplied name onto an Algorithm.
// An empty name selects fallback.
func ParseAlgorithm(name string, fallback Algorithm) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		return fallback, nil
	case "nearest", "nearest_neighbor", "nn":
		return AlgorithmNearestNeighbor, nil
	case "two_opt", "2opt", "2-opt":
		return AlgorithmTwoOpt, nil
	default:
		return "", fmt.Errorf("unknown algorithm %q", name)
	}
}

// Plan a route over the request's intermediates.
//
// The order is a heuristic, not a proven optimum. Start and End stay fixed;
// only intermediates are reordered. Totals cover the full route including
// the anchor legs and are rounded to two decimals.
func PlanRoute(
	ctx context.Context,
	req domain.RouteRequest,
	algorithm Algorithm,
	estimator ports.DistanceEstimator,
) (result *domain.RouteResult, err error) {
	defer obs.Time(ctx, "services.PlanRoute")(&err)
	defer func() {
		outcome := "ok"
		if err != nil {
			outcome = "error"
		}
		obs.OptimizationsTotal.WithLabelValues(string(algorithm), outcome).Inc()
	}()

	if algorithm == "" {
		algorithm = AlgorithmNearestNeighbor
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("plan route: %w", err)
	}
	if algorithm != AlgorithmNearestNeighbor && algorithm != AlgorithmTwoOpt {
		return nil, fmt.Errorf("plan route: unknown algorithm %q", algorithm)
	}

	cache := newLegCache(estimator)

	order, err := NearestNeighborOrder(ctx, req.Start, req.Intermediates, cache)
	if err != nil {
		return nil, fmt.Errorf("plan route: %w", err)
	}

	if algorithm == AlgorithmTwoOpt {
		order, err = TwoOptImprove(ctx, order, req.Intermediates, cache)
		if err != nil {
			return nil, fmt.Errorf("plan route: %w", err)
		}
	}

	ordered := make([]domain.Waypoint, len(order))
	for k, idx := range order {
		ordered[k] = req.Intermediates[idx]
	}

	result = &domain.RouteResult{
		Algorithm:            string(algorithm),
		Start:                req.Start,
		End:                  req.End,
		OrderedIntermediates: ordered,
	}
	result.Legs = BuildLegs(result.Stops(), cache)

	totalKm := 0.0
	for _, leg := range result.Legs {
		totalKm += leg.DistanceKm
	}
	result.TotalDistanceKm = round2(totalKm)
	result.TotalDurationMin = round2(DurationForKm(totalKm))

	obs.OptimizedPoints.Observe(float64(req.PointCount()))
	return result, nil
}
