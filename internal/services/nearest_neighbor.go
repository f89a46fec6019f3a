package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"route-planner-service/internal/domain"
	"route-planner-service/internal/ports"
)

// NearestNeighborOrder builds a visiting order over points using a greedy
// nearest-neighbor construction and returns indexes into points.
//
// With a start anchor the first stop is the point nearest to start; without
// one the tour is seeded at points[0]. Each following stop is the nearest
// unvisited point by road distance. Ties go to the lowest input index, so the
// result is deterministic.
func NearestNeighborOrder(
	ctx context.Context,
	start *domain.Waypoint,
	points []domain.Waypoint,
	estimator ports.DistanceEstimator,
) ([]int, error) {
	n := len(points)
	if n == 0 {
		return []int{}, nil
	}

	visited := make([]bool, n)
	order := make([]int, 0, n)

	if start != nil {
		first := nearestUnvisited(start.Location, points, visited, estimator)
		if first < 0 {
			return nil, errors.New("nearest neighbor: failed to select first stop")
		}
		visited[first] = true
		order = append(order, first)
	} else {
		visited[0] = true
		order = append(order, 0)
	}

	for len(order) < n {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("nearest neighbor: %w", err)
		}

		current := points[order[len(order)-1]]
		next := nearestUnvisited(current.Location, points, visited, estimator)
		if next < 0 {
			return nil, errors.New("nearest neighbor: failed to select next stop")
		}

		visited[next] = true
		order = append(order, next)
	}

	return order, nil
}

// nearestUnvisited returns the index of the unvisited point closest to from,
// or -1 when every point has been visited.
func nearestUnvisited(
	from domain.GeoPoint,
	points []domain.Waypoint,
	visited []bool,
	estimator ports.DistanceEstimator,
) int {
	best := -1
	bestKm := math.Inf(1)

	for i, p := range points {
		if visited[i] {
			continue
		}
		// Strict comparison keeps the first-encountered index on ties.
		if km := estimator.Estimate(from, p.Location).RoadKm; km < bestKm {
			bestKm = km
			best = i
		}
	}

	return best
}
