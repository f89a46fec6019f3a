package domain

// A caller-owned stop on a route.
// The routing engine treats a Waypoint as an opaque token: it is reordered,
// never created, dropped, or duplicated.
type Waypoint struct {
	ID       string
	Label    string
	Location GeoPoint
}
