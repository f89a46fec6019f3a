package cache

import (
	"context"
	"route-planner-service/internal/adapters/repositories"
	"route-planner-service/internal/domain"
	"route-planner-service/internal/platform/db"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSqliteGeocodeCacheRoundTrip(t *testing.T) {
	ctx := context.Background()

	conn, err := db.OpenSqlite("")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	require.NoError(t, repositories.InitSchema(ctx, conn))

	c := NewSqliteGeocodeCache(conn)

	got, err := c.GetMany(ctx, []string{"서울역"})
	require.NoError(t, err)
	assert.Empty(t, got)

	station := domain.GeocodeResult{Address: "서울 용산구 한강대로 405", Location: domain.GeoPoint{Lat: 37.5547, Lng: 126.9707}}
	require.NoError(t, c.PutMany(ctx, map[string]domain.GeocodeResult{"서울역": station}))

	got, err = c.GetMany(ctx, []string{"서울역", " 서울역 ", "", "강남역"})
	require.NoError(t, err)
	assert.Equal(t, map[string]domain.GeocodeResult{"서울역": station}, got)

	moved := station
	moved.Location.Lat = 37.0
	require.NoError(t, c.PutMany(ctx, map[string]domain.GeocodeResult{"서울역": moved}))

	got, err = c.GetMany(ctx, []string{"서울역"})
	require.NoError(t, err)
	assert.Equal(t, 37.0, got["서울역"].Location.Lat)
}

func TestSqliteGeocodeCacheRejectsEmptyKey(t *testing.T) {
	conn, err := db.OpenSqlite("")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	require.NoError(t, repositories.InitSchema(context.Background(), conn))

	err = NewSqliteGeocodeCache(conn).PutMany(context.Background(), map[string]domain.GeocodeResult{" ": {}})
	assert.Error(t, err)
}

func TestNilDB(t *testing.T) {
	_, err := NewSqliteGeocodeCache(nil).GetMany(context.Background(), []string{"a"})
	assert.Error(t, err)
	_, err = NewSQLGeocodeCache(nil).GetMany(context.Background(), []string{"a"})
	assert.Error(t, err)
}

func TestUniqueKeys(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, uniqueKeys([]string{" a", "b", "", "a", "b "}))
	assert.Empty(t, uniqueKeys(nil))
}
