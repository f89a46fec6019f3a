package geocode

import (
	"context"
	"errors"
	"route-planner-service/internal/domain"
	"route-planner-service/internal/platform/obs"
	"route-planner-service/internal/ports"

	"github.com/rs/zerolog/log"
)

// CachingGeocoder consults a GeocodeCache before calling the wrapped provider
// and stores fresh results. Cache failures are logged and never fail a lookup.
// Not-found results are not cached.
type CachingGeocoder struct {
	next  ports.Geocoder
	cache ports.GeocodeCache
}

func NewCachingGeocoder(next ports.Geocoder, cache ports.GeocodeCache) *CachingGeocoder {
	return &CachingGeocoder{next: next, cache: cache}
}

func (c *CachingGeocoder) Geocode(ctx context.Context, query string) (domain.GeocodeResult, error) {
	key := normalize(query)
	if key == "" {
		return domain.GeocodeResult{}, errors.New("geocode: query must be non-empty")
	}

	cached, err := c.cache.GetMany(ctx, []string{key})
	if err != nil {
		log.Warn().Str("req_id", obs.RequestID(ctx)).Str("query", key).Err(err).Msg("geocode cache read failed")
	} else if res, ok := cached[key]; ok {
		return res, nil
	}

	res, err := c.next.Geocode(ctx, key)
	if err != nil {
		return domain.GeocodeResult{}, err
	}

	if err := c.cache.PutMany(ctx, map[string]domain.GeocodeResult{key: res}); err != nil {
		log.Warn().Str("req_id", obs.RequestID(ctx)).Str("query", key).Err(err).Msg("geocode cache write failed")
	}

	return res, nil
}
