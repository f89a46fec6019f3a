package services

import (
	"context"
	"errors"
	"fmt"
	"route-planner-service/internal/domain"
	"route-planner-service/internal/platform/obs"
	"route-planner-service/internal/ports"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Upper bound on concurrent geocoding calls for one plan request.
const maxConcurrentGeocodes = 5

// PointInput describes one user supplied point before it is located.
// Exactly one source of location is used, in this order: FavoriteID, then
// Lat/Lng, then Address.
type PointInput struct {
	ID         string
	Label      string
	Lat        *float64
	Lng        *float64
	Address    string
	FavoriteID *int64
}

// PlanInput is an unresolved plan request.
type PlanInput struct {
	Start     *PointInput
	End       *PointInput
	Waypoints []PointInput
}

// ResolveRequest locates every point of in and returns a RouteRequest ready
// for the engine. Addresses are geocoded concurrently; the first failure
// cancels the rest and is returned unchanged in its chain.
func ResolveRequest(
	ctx context.Context,
	in PlanInput,
	geocoder ports.Geocoder,
	favorites ports.FavoriteRepository,
) (req domain.RouteRequest, err error) {
	defer obs.Time(ctx, "services.ResolveRequest")(&err)

	inputs := make([]PointInput, 0, len(in.Waypoints)+2)
	if in.Start != nil {
		inputs = append(inputs, *in.Start)
	}
	inputs = append(inputs, in.Waypoints...)
	if in.End != nil {
		inputs = append(inputs, *in.End)
	}

	if err := rejectDuplicateFavorites(inputs); err != nil {
		return domain.RouteRequest{}, fmt.Errorf("resolve request: %w", err)
	}

	resolved := make([]domain.Waypoint, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentGeocodes)

	for i, p := range inputs {
		g.Go(func() error {
			wp, err := resolvePoint(gctx, p, geocoder, favorites)
			if err != nil {
				return fmt.Errorf("point %d: %w", i, err)
			}
			resolved[i] = wp
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return domain.RouteRequest{}, fmt.Errorf("resolve request: %w", err)
	}

	if in.Start != nil {
		start := resolved[0]
		req.Start = &start
		resolved = resolved[1:]
	}
	if in.End != nil {
		end := resolved[len(resolved)-1]
		req.End = &end
		resolved = resolved[:len(resolved)-1]
	}
	req.Intermediates = resolved

	return req, nil
}

// The same favorite may appear only once per route.
func rejectDuplicateFavorites(inputs []PointInput) error {
	seen := make(map[int64]struct{}, len(inputs))
	for _, p := range inputs {
		if p.FavoriteID == nil {
			continue
		}
		if _, ok := seen[*p.FavoriteID]; ok {
			return fmt.Errorf("favorite %d: %w", *p.FavoriteID, domain.ErrDuplicateWaypoint)
		}
		seen[*p.FavoriteID] = struct{}{}
	}
	return nil
}

func resolvePoint(
	ctx context.Context,
	p PointInput,
	geocoder ports.Geocoder,
	favorites ports.FavoriteRepository,
) (domain.Waypoint, error) {
	id := strings.TrimSpace(p.ID)
	if id == "" {
		id = uuid.NewString()
	}
	label := strings.TrimSpace(p.Label)
	address := strings.TrimSpace(p.Address)

	switch {
	case p.FavoriteID != nil:
		if favorites == nil {
			return domain.Waypoint{}, errors.New("favorites are not available")
		}
		fav, err := favorites.GetFavorite(ctx, *p.FavoriteID)
		if err != nil {
			return domain.Waypoint{}, fmt.Errorf("get favorite %d: %w", *p.FavoriteID, err)
		}
		wp := fav.AsWaypoint(id)
		if label != "" {
			wp.Label = label
		}
		return wp, nil

	case p.Lat != nil && p.Lng != nil:
		loc := domain.GeoPoint{Lat: *p.Lat, Lng: *p.Lng}
		if !loc.Valid() {
			return domain.Waypoint{}, fmt.Errorf("%s: %w", loc, domain.ErrInvalidLocation)
		}
		if label == "" {
			label = address
		}
		if label == "" {
			label = loc.String()
		}
		return domain.Waypoint{ID: id, Label: label, Location: loc}, nil

	case address != "":
		if geocoder == nil {
			return domain.Waypoint{}, domain.ErrGeocoderUnavailable
		}
		res, err := geocoder.Geocode(ctx, address)
		if err != nil {
			return domain.Waypoint{}, fmt.Errorf("geocode %q: %w", address, err)
		}
		if label == "" {
			label = address
		}
		return domain.Waypoint{ID: id, Label: label, Location: res.Location}, nil

	default:
		return domain.Waypoint{}, domain.ErrUnlocatedPoint
	}
}
