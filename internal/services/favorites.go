package services

import (
	"context"
	"fmt"
	"route-planner-service/internal/domain"
	"route-planner-service/internal/ports"
	"strings"
)

// FavoriteInput is a request to save a location.
type FavoriteInput struct {
	Name    string
	Address string
	Lat     *float64
	Lng     *float64
}

// AddFavorite saves a location for later reuse.
// The name defaults to the address text. The address is geocoded unless
// coordinates are supplied; the geocoder's normalized address is stored.
func AddFavorite(
	ctx context.Context,
	in FavoriteInput,
	repo ports.FavoriteRepository,
	geocoder ports.Geocoder,
) (fav domain.Favorite, err error) {
	address := strings.TrimSpace(in.Address)
	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = address
	}
	if name == "" {
		return domain.Favorite{}, fmt.Errorf("add favorite: %w", domain.ErrUnlocatedPoint)
	}

	fav = domain.Favorite{Name: name, Address: address}

	switch {
	case in.Lat != nil && in.Lng != nil:
		fav.Location = domain.GeoPoint{Lat: *in.Lat, Lng: *in.Lng}
		if !fav.Location.Valid() {
			return domain.Favorite{}, fmt.Errorf("add favorite: %s: %w", fav.Location, domain.ErrInvalidLocation)
		}
	case address != "":
		if geocoder == nil {
			return domain.Favorite{}, fmt.Errorf("add favorite: %w", domain.ErrGeocoderUnavailable)
		}
		res, err := geocoder.Geocode(ctx, address)
		if err != nil {
			return domain.Favorite{}, fmt.Errorf("add favorite: geocode %q: %w", address, err)
		}
		fav.Location = res.Location
		if res.Address != "" {
			fav.Address = res.Address
		}
	default:
		return domain.Favorite{}, fmt.Errorf("add favorite: %w", domain.ErrUnlocatedPoint)
	}

	saved, err := repo.AddFavorite(ctx, fav)
	if err != nil {
		return domain.Favorite{}, fmt.Errorf("add favorite: %w", err)
	}
	return saved, nil
}
