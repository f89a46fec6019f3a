package ports

import (
	"context"
	"route-planner-service/internal/domain"
)

// Contract for resolving free-text addresses into coordinates.
type Geocoder interface {
	// Return the best match for query, or *domain.GeocodeNotFoundError.
	Geocode(ctx context.Context, query string) (domain.GeocodeResult, error)
}

// Persistent or shared cache of geocoding results keyed by normalized query.
type GeocodeCache interface {
	GetMany(ctx context.Context, queries []string) (map[string]domain.GeocodeResult, error)
	PutMany(ctx context.Context, results map[string]domain.GeocodeResult) error
}
