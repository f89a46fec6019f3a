package ports

import (
	"context"
	"route-planner-service/internal/domain"
)

// Port: a boundary for the session's saved locations.
type FavoriteRepository interface {
	// Retrieve all favorites in insertion order.
	ListFavorites(ctx context.Context) ([]domain.Favorite, error)
	// Retrieve one favorite, or domain.ErrFavoriteNotFound.
	GetFavorite(ctx context.Context, id int64) (domain.Favorite, error)
	// Store a favorite and return it with its assigned id.
	// Names are unique; a clash returns domain.ErrDuplicateFavorite.
	AddFavorite(ctx context.Context, f domain.Favorite) (domain.Favorite, error)
	// Remove a favorite, or return domain.ErrFavoriteNotFound.
	RemoveFavorite(ctx context.Context, id int64) error
}
