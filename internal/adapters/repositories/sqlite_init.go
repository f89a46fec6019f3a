package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"route-planner-service/internal/domain"
	"strings"
)

// Initialize the SQLite schema for favorites and the local geocode cache.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createFavoritesQuery := `
	CREATE TABLE IF NOT EXISTS favorites (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE,
		address TEXT NOT NULL DEFAULT '',
		lat REAL NOT NULL,
		lng REAL NOT NULL
	);
	`

	createGeocodeCacheQuery := `
	CREATE TABLE IF NOT EXISTS geocode_cache (
		query TEXT PRIMARY KEY,
		address TEXT NOT NULL,
		lat REAL NOT NULL,
		lng REAL NOT NULL
	);
	`

	statements := []string{
		createFavoritesQuery,
		createGeocodeCacheQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type FavoriteSeed struct {
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

// Populate the favorites table from a JSON file of FavoriteSeed entries.
// Seeds whose name already exists are skipped.
func SeedFromJSON(ctx context.Context, repo *SqliteFavoriteRepository, jsonPath string) (int, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return 0, fmt.Errorf("seed favorites: read %q: %w", jsonPath, err)
	}

	var data []FavoriteSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return 0, fmt.Errorf("seed favorites: parse json: %w", err)
	}

	favs := make([]domain.Favorite, 0, len(data))
	for i, item := range data {
		name := strings.TrimSpace(item.Name)
		if name == "" {
			return 0, fmt.Errorf("seed favorites: item at index %d: name cannot be empty", i+1)
		}

		loc := domain.GeoPoint{Lat: item.Lat, Lng: item.Lng}
		if !loc.Valid() {
			return 0, fmt.Errorf("seed favorites: item %q: %w", name, domain.ErrInvalidLocation)
		}
		favs = append(favs, domain.Favorite{
			Name:     name,
			Address:  strings.TrimSpace(item.Address),
			Location: loc,
		})
	}

	added := 0
	for _, f := range favs {
		if _, err := repo.AddFavorite(ctx, f); err != nil {
			if errors.Is(err, domain.ErrDuplicateFavorite) {
				continue
			}
			return added, fmt.Errorf("seed favorites: %w", err)
		}
		added++
	}

	return added, nil
}
