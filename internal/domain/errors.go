package domain

import (
	"errors"
	"fmt"
)

var (
	// No intermediate waypoints were supplied.
	ErrEmptyWaypointSet = errors.New("at least one waypoint is required")
	// Fewer than two points across start, waypoints, and end.
	ErrInsufficientPoints = errors.New("at least two points are required")

	ErrFavoriteNotFound  = errors.New("favorite not found")
	ErrDuplicateFavorite = errors.New("favorite with this name already exists")
	ErrDuplicateWaypoint = errors.New("waypoint already added")

	// A point had no coordinates, address, or favorite reference.
	ErrUnlocatedPoint  = errors.New("point requires coordinates or an address")
	ErrInvalidLocation = errors.New("coordinates out of range")

	// No geocoding provider is configured.
	ErrGeocoderUnavailable = errors.New("geocoding is not configured")
)

// GeocodeNotFoundError is returned when the geocoding provider has no match for a query.
type GeocodeNotFoundError struct {
	Query string
}

func (e *GeocodeNotFoundError) Error() string {
	return fmt.Sprintf("no geocode results for %q", e.Query)
}
