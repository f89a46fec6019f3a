package repositories

import (
	"context"
	"os"
	"path/filepath"
	"route-planner-service/internal/domain"
	"route-planner-service/internal/platform/db"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T) *SqliteFavoriteRepository {
	t.Helper()

	conn, err := db.OpenSqlite("")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, InitSchema(context.Background(), conn))
	return NewSqliteFavoriteRepository(conn)
}

func TestFavoriteLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	station, err := repo.AddFavorite(ctx, domain.Favorite{
		Name:     " 서울역 ",
		Address:  "서울 용산구 한강대로 405",
		Location: domain.GeoPoint{Lat: 37.5547, Lng: 126.9707},
	})
	require.NoError(t, err)
	assert.Equal(t, "서울역", station.Name)
	assert.Positive(t, station.ID)

	park, err := repo.AddFavorite(ctx, domain.Favorite{Name: "park", Location: domain.GeoPoint{Lat: 37.52, Lng: 126.92}})
	require.NoError(t, err)

	got, err := repo.GetFavorite(ctx, station.ID)
	require.NoError(t, err)
	assert.Equal(t, station, got)

	favs, err := repo.ListFavorites(ctx)
	require.NoError(t, err)
	require.Len(t, favs, 2)
	assert.Equal(t, []int64{station.ID, park.ID}, []int64{favs[0].ID, favs[1].ID})

	require.NoError(t, repo.RemoveFavorite(ctx, station.ID))
	_, err = repo.GetFavorite(ctx, station.ID)
	assert.ErrorIs(t, err, domain.ErrFavoriteNotFound)
	assert.ErrorIs(t, repo.RemoveFavorite(ctx, station.ID), domain.ErrFavoriteNotFound)
}

func TestAddFavoriteDuplicateName(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	_, err := repo.AddFavorite(ctx, domain.Favorite{Name: "home", Location: domain.GeoPoint{Lat: 1, Lng: 1}})
	require.NoError(t, err)

	_, err = repo.AddFavorite(ctx, domain.Favorite{Name: "home", Location: domain.GeoPoint{Lat: 2, Lng: 2}})
	assert.ErrorIs(t, err, domain.ErrDuplicateFavorite)

	_, err = repo.AddFavorite(ctx, domain.Favorite{Name: "  "})
	assert.Error(t, err)
}

func TestSeedFromJSON(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	_, err := repo.AddFavorite(ctx, domain.Favorite{Name: "강남역", Location: domain.GeoPoint{Lat: 37.49, Lng: 127.02}})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "favorites.json")
	seed := `[
		{"name": "서울역", "address": "서울 용산구 한강대로 405", "lat": 37.5547, "lng": 126.9707},
		{"name": "강남역", "address": "서울 강남구 강남대로 396", "lat": 37.4979, "lng": 127.0276}
	]`
	require.NoError(t, os.WriteFile(path, []byte(seed), 0o600))

	n, err := SeedFromJSON(ctx, repo, path)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	favs, err := repo.ListFavorites(ctx)
	require.NoError(t, err)
	assert.Len(t, favs, 2)
}

func TestSeedFromJSONInvalid(t *testing.T) {
	repo := newRepo(t)
	dir := t.TempDir()

	cases := map[string]string{
		"bad.json":      `{`,
		"noname.json":   `[{"name": "", "lat": 1, "lng": 1}]`,
		"outrange.json": `[{"name": "x", "lat": 100, "lng": 1}]`,
	}
	for name, body := range cases {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

		_, err := SeedFromJSON(context.Background(), repo, path)
		assert.Error(t, err, name)
	}

	_, err := SeedFromJSON(context.Background(), repo, filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}
