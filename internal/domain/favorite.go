package domain

// A saved location the user can reuse as start, waypoint, or end.
// Favorites live only for the lifetime of the server session.
type Favorite struct {
	ID       int64
	Name     string
	Address  string
	Location GeoPoint
}

// AsWaypoint converts the favorite into a Waypoint with the given id.
func (f Favorite) AsWaypoint(id string) Waypoint {
	return Waypoint{ID: id, Label: f.Name, Location: f.Location}
}

// Result of resolving free-text input with a geocoding provider.
type GeocodeResult struct {
	Address  string
	Location GeoPoint
}
