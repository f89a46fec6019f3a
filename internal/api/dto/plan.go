package dto

// PointRequest locates one point by coordinates, address, or saved favorite.
type PointRequest struct {
	ID         string   `json:"id" validate:"omitempty,max=128"`
	Label      string   `json:"label" validate:"omitempty,max=200"`
	Lat        *float64 `json:"lat" validate:"omitempty,latitude"`
	Lng        *float64 `json:"lng" validate:"omitempty,longitude"`
	Address    string   `json:"address" validate:"omitempty,max=300"`
	FavoriteID *int64   `json:"favorite_id" validate:"omitempty,min=1"`
}

type PlanRequest struct {
	Start     *PointRequest  `json:"start"`
	End       *PointRequest  `json:"end"`
	Waypoints []PointRequest `json:"waypoints" validate:"max=200,dive"`
	Algorithm string         `json:"algorithm" validate:"omitempty,max=32"`
}

type WaypointResponse struct {
	ID    string  `json:"id"`
	Label string  `json:"label"`
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
}

type LegResponse struct {
	FromID      string  `json:"from_id"`
	ToID        string  `json:"to_id"`
	DistanceKm  float64 `json:"distance_km"`
	DurationMin float64 `json:"duration_min"`
	// [lng, lat] pairs.
	Path [][]float64 `json:"path"`
}

type PlanResponse struct {
	Algorithm               string             `json:"algorithm"`
	Start                   *WaypointResponse  `json:"start,omitempty"`
	End                     *WaypointResponse  `json:"end,omitempty"`
	OrderedWaypoints        []WaypointResponse `json:"ordered_waypoints"`
	Legs                    []LegResponse      `json:"legs"`
	TotalDistanceKm         float64            `json:"total_distance_km"`
	TotalDurationMin        float64            `json:"total_duration_min"`
	TotalDurationMinDisplay int                `json:"total_duration_min_display"`
}
