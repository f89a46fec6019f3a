package dto

import (
	"route-planner-service/internal/domain"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// NewRouteGeoJSON renders a RouteResult as a FeatureCollection: one Point
// feature per stop in visiting order, then one LineString feature per leg.
// Route totals are carried as foreign members of the collection.
func NewRouteGeoJSON(r *domain.RouteResult) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	stops := r.Stops()
	for i, w := range stops {
		f := geojson.NewFeature(orb.Point{w.Location.Lng, w.Location.Lat})
		f.ID = w.ID
		f.Properties["kind"] = "stop"
		f.Properties["id"] = w.ID
		f.Properties["label"] = w.Label
		f.Properties["order"] = i
		f.Properties["role"] = stopRole(r, i, len(stops))
		fc.Append(f)
	}

	for i, leg := range r.Legs {
		line := make(orb.LineString, 0, len(leg.Path))
		for _, p := range leg.Path {
			line = append(line, orb.Point{p.Lng, p.Lat})
		}

		f := geojson.NewFeature(line)
		f.Properties["kind"] = "leg"
		f.Properties["order"] = i
		f.Properties["from_id"] = leg.From.ID
		f.Properties["to_id"] = leg.To.ID
		f.Properties["distance_km"] = leg.DistanceKm
		f.Properties["duration_min"] = leg.DurationMin
		fc.Append(f)
	}

	fc.ExtraMembers = geojson.Properties{
		"algorithm":          r.Algorithm,
		"total_distance_km":  r.TotalDistanceKm,
		"total_duration_min": r.TotalDurationMin,
	}
	if route := routeLine(stops); len(route) > 0 {
		fc.BBox = geojson.NewBBox(route.Bound())
	}

	return fc
}

func stopRole(r *domain.RouteResult, i, n int) string {
	switch {
	case i == 0 && r.Start != nil:
		return "start"
	case i == n-1 && r.End != nil:
		return "end"
	default:
		return "waypoint"
	}
}

// routeLine is the whole route as a single polyline through every stop.
func routeLine(stops []domain.Waypoint) orb.LineString {
	ls := make(orb.LineString, 0, len(stops))
	for _, w := range stops {
		ls = append(ls, orb.Point{w.Location.Lng, w.Location.Lat})
	}
	return ls
}
