package domain

import "fmt"

// Immutable geographic coordinates in degrees (WGS84).
type GeoPoint struct {
	Lat float64
	Lng float64
}

// Return coordinates as [lng, lat] for GeoJSON and external API compatibility.
func (p GeoPoint) LngLat() []float64 { return []float64{p.Lng, p.Lat} }

// Interpolate returns the point at ratio t along the straight segment p -> q.
func (p GeoPoint) Interpolate(q GeoPoint, t float64) GeoPoint {
	return GeoPoint{
		Lat: p.Lat + (q.Lat-p.Lat)*t,
		Lng: p.Lng + (q.Lng-p.Lng)*t,
	}
}

// Valid reports whether the point lies within latitude/longitude bounds.
func (p GeoPoint) Valid() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}

func (p GeoPoint) String() string {
	return fmt.Sprintf("(%.6f,%.6f)", p.Lat, p.Lng)
}
