package domain

// Estimated travel metrics between two points.
type Estimate struct {
	StraightKm  float64
	RoadKm      float64
	DurationMin float64
}
