package geocode

import (
	"context"
	"errors"
	"route-planner-service/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memCache struct {
	m       map[string]domain.GeocodeResult
	failGet bool
}

func (c *memCache) GetMany(_ context.Context, queries []string) (map[string]domain.GeocodeResult, error) {
	if c.failGet {
		return nil, errors.New("cache down")
	}
	out := map[string]domain.GeocodeResult{}
	for _, q := range queries {
		if r, ok := c.m[q]; ok {
			out[q] = r
		}
	}
	return out, nil
}

func (c *memCache) PutMany(_ context.Context, results map[string]domain.GeocodeResult) error {
	for k, v := range results {
		c.m[k] = v
	}
	return nil
}

func TestCachingGeocoder(t *testing.T) {
	ctx := context.Background()
	station := domain.GeocodeResult{Address: "서울 용산구 한강대로 405", Location: domain.GeoPoint{Lat: 37.5547, Lng: 126.9707}}

	inner := NewStaticGeocoder(map[string]domain.GeocodeResult{"서울역": station})
	cache := &memCache{m: map[string]domain.GeocodeResult{}}
	g := NewCachingGeocoder(inner, cache)

	res, err := g.Geocode(ctx, "서울역")
	require.NoError(t, err)
	assert.Equal(t, station, res)
	assert.Equal(t, 1, inner.Calls())

	res, err = g.Geocode(ctx, " 서울역  ")
	require.NoError(t, err)
	assert.Equal(t, station, res)
	assert.Equal(t, 1, inner.Calls(), "second lookup should be served from cache")

	_, err = g.Geocode(ctx, "nowhere")
	var nf *domain.GeocodeNotFoundError
	require.ErrorAs(t, err, &nf)
	assert.NotContains(t, cache.m, "nowhere")
}

func TestCachingGeocoderSurvivesCacheFailure(t *testing.T) {
	station := domain.GeocodeResult{Address: "a", Location: domain.GeoPoint{Lat: 1, Lng: 2}}
	inner := NewStaticGeocoder(map[string]domain.GeocodeResult{"a": station})
	g := NewCachingGeocoder(inner, &memCache{m: map[string]domain.GeocodeResult{}, failGet: true})

	res, err := g.Geocode(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, station, res)
}
