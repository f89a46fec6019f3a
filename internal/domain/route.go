package domain

// Input to one optimization run.
// Start and End are optional fixed anchors; the order of Intermediates is
// input order only and carries no meaning for the result.
type RouteRequest struct {
	Start         *Waypoint
	End           *Waypoint
	Intermediates []Waypoint
}

// PointCount returns the number of points across start, intermediates, and end.
func (r RouteRequest) PointCount() int {
	n := len(r.Intermediates)
	if r.Start != nil {
		n++
	}
	if r.End != nil {
		n++
	}
	return n
}

// Validate rejects degenerate requests.
// An empty intermediate set is reported before the point count so callers get
// the same error regardless of which anchors are present.
func (r RouteRequest) Validate() error {
	if len(r.Intermediates) == 0 {
		return ErrEmptyWaypointSet
	}
	if r.PointCount() < 2 {
		return ErrInsufficientPoints
	}
	return nil
}

// Represents a single point-to-point segment of an ordered route.
// Path is a visual approximation of the segment, not a road geometry.
type RouteLeg struct {
	From        Waypoint
	To          Waypoint
	DistanceKm  float64
	DurationMin float64
	Path        []GeoPoint
}

// Represents the outcome of one optimization run.
// A RouteResult is immutable planning data: it is replaced, never patched,
// when the route is optimized again. Totals are rounded to two decimals.
type RouteResult struct {
	Algorithm            string
	Start                *Waypoint
	End                  *Waypoint
	OrderedIntermediates []Waypoint
	Legs                 []RouteLeg
	TotalDistanceKm      float64
	TotalDurationMin     float64
}

// Stops returns the full visiting sequence including anchors.
func (r *RouteResult) Stops() []Waypoint {
	stops := make([]Waypoint, 0, len(r.OrderedIntermediates)+2)
	if r.Start != nil {
		stops = append(stops, *r.Start)
	}
	stops = append(stops, r.OrderedIntermediates...)
	if r.End != nil {
		stops = append(stops, *r.End)
	}
	return stops
}
