package services

import (
	"context"
	"fmt"
	"route-planner-service/internal/domain"
	"route-planner-service/internal/ports"
)

// Improvements smaller than this are float noise, not shorter tours.
const twoOptEpsilon = 1e-9

// TwoOptImprove refines an order over points with 2-opt local search.
//
// The first stop stays fixed. For every pair (i, j) with 1 <= i < j <= n-1
// and j-i > 1 the segment order[i..j] is reversed when that strictly
// shortens the path through points; passes repeat until none improves.
// Start and end anchors are not part of the evaluated path.
func TwoOptImprove(
	ctx context.Context,
	order []int,
	points []domain.Waypoint,
	estimator ports.DistanceEstimator,
) ([]int, error) {
	best := append([]int(nil), order...)
	n := len(best)
	if n < 4 {
		return best, nil
	}

	dist := distanceMatrix(points, estimator)
	bestKm := pathKm(best, dist)
	candidate := make([]int, n)

	for improved := true; improved; {
		improved = false

		for i := 1; i < n-1; i++ {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("two-opt: %w", err)
			}

			for j := i + 2; j < n; j++ {
				copy(candidate, best)
				reverse(candidate[i : j+1])

				if km := pathKm(candidate, dist); km < bestKm-twoOptEpsilon {
					copy(best, candidate)
					bestKm = km
					improved = true
				}
			}
		}
	}

	return best, nil
}

// PathKm returns the road distance of visiting points in order, without anchors.
func PathKm(order []int, points []domain.Waypoint, estimator ports.DistanceEstimator) float64 {
	total := 0.0
	for k := 1; k < len(order); k++ {
		total += estimator.Estimate(points[order[k-1]].Location, points[order[k]].Location).RoadKm
	}
	return total
}

func distanceMatrix(points []domain.Waypoint, estimator ports.DistanceEstimator) [][]float64 {
	dist := make([][]float64, len(points))
	for i := range points {
		dist[i] = make([]float64, len(points))
		for j := range points {
			if i != j {
				dist[i][j] = estimator.Estimate(points[i].Location, points[j].Location).RoadKm
			}
		}
	}
	return dist
}

func pathKm(order []int, dist [][]float64) float64 {
	total := 0.0
	for k := 1; k < len(order); k++ {
		total += dist[order[k-1]][order[k]]
	}
	return total
}

func reverse(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
