package dto

import (
	"math"
	"route-planner-service/internal/domain"
)

func NewWaypointResponse(w domain.Waypoint) WaypointResponse {
	return WaypointResponse{
		ID:    w.ID,
		Label: w.Label,
		Lat:   w.Location.Lat,
		Lng:   w.Location.Lng,
	}
}

func newWaypointPtr(w *domain.Waypoint) *WaypointResponse {
	if w == nil {
		return nil
	}
	res := NewWaypointResponse(*w)
	return &res
}

// NewPlanResponse converts a RouteResult into its JSON shape.
func NewPlanResponse(r *domain.RouteResult) PlanResponse {
	res := PlanResponse{
		Algorithm:               r.Algorithm,
		Start:                   newWaypointPtr(r.Start),
		End:                     newWaypointPtr(r.End),
		OrderedWaypoints:        make([]WaypointResponse, 0, len(r.OrderedIntermediates)),
		Legs:                    make([]LegResponse, 0, len(r.Legs)),
		TotalDistanceKm:         r.TotalDistanceKm,
		TotalDurationMin:        r.TotalDurationMin,
		TotalDurationMinDisplay: int(math.Round(r.TotalDurationMin)),
	}

	for _, w := range r.OrderedIntermediates {
		res.OrderedWaypoints = append(res.OrderedWaypoints, NewWaypointResponse(w))
	}

	for _, leg := range r.Legs {
		path := make([][]float64, 0, len(leg.Path))
		for _, p := range leg.Path {
			path = append(path, p.LngLat())
		}
		res.Legs = append(res.Legs, LegResponse{
			FromID:      leg.From.ID,
			ToID:        leg.To.ID,
			DistanceKm:  leg.DistanceKm,
			DurationMin: leg.DurationMin,
			Path:        path,
		})
	}

	return res
}

func NewFavoriteResponse(f domain.Favorite) FavoriteResponse {
	return FavoriteResponse{
		ID:      f.ID,
		Name:    f.Name,
		Address: f.Address,
		Lat:     f.Location.Lat,
		Lng:     f.Location.Lng,
	}
}
