package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"route-planner-service/internal/domain"
	"route-planner-service/internal/platform/obs"
	"strings"
)

// Postgres schema for the shared geocode cache, applied by cmd/dbtool.
const PostgresGeocodeSchema = `
CREATE TABLE IF NOT EXISTS geocode_cache (
	query      TEXT PRIMARY KEY,
	address    TEXT NOT NULL,
	lat        DOUBLE PRECISION NOT NULL,
	lng        DOUBLE PRECISION NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

// InitPostgresSchema creates the geocode cache table if it does not exist.
func InitPostgresSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init geocode cache schema: db is nil")
	}
	if _, err := db.ExecContext(ctx, PostgresGeocodeSchema); err != nil {
		return fmt.Errorf("init geocode cache schema: %w", err)
	}
	return nil
}

// SQLGeocodeCache is a Postgres-backed cache shared across server instances.
type SQLGeocodeCache struct {
	DB *sql.DB
}

func NewSQLGeocodeCache(db *sql.DB) *SQLGeocodeCache {
	return &SQLGeocodeCache{DB: db}
}

// Fetch cached results for the given queries.
func (s *SQLGeocodeCache) GetMany(
	ctx context.Context,
	queries []string,
) (_ map[string]domain.GeocodeResult, err error) {
	defer obs.Time(ctx, "geocode.cache.postgres.GetMany")(&err)

	if s.DB == nil {
		return nil, errors.New("geocode cache: db is nil")
	}

	uniq := uniqueKeys(queries)
	if len(uniq) == 0 {
		return map[string]domain.GeocodeResult{}, nil
	}

	rows, err := s.DB.QueryContext(ctx, `
	SELECT query, address, lat, lng
	FROM geocode_cache
	WHERE query = ANY($1::text[]);
	`, uniq)
	if err != nil {
		return nil, fmt.Errorf("get geocode cache: query geocode_cache table: %w", err)
	}
	defer rows.Close()

	out := make(map[string]domain.GeocodeResult, len(uniq))
	for rows.Next() {
		var key string
		var res domain.GeocodeResult
		if err := rows.Scan(&key, &res.Address, &res.Location.Lat, &res.Location.Lng); err != nil {
			return nil, fmt.Errorf("get geocode cache: scan rows: %w", err)
		}
		out[key] = res
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get geocode cache: row iteration: %w", err)
	}

	recordLookup("postgres", len(uniq), len(out))
	return out, nil
}

// Store query -> result mappings, updating existing rows.
func (s *SQLGeocodeCache) PutMany(ctx context.Context, results map[string]domain.GeocodeResult) (err error) {
	defer obs.Time(ctx, "geocode.cache.postgres.PutMany")(&err)

	if s.DB == nil {
		return errors.New("geocode cache: db is nil")
	}

	if len(results) == 0 {
		return nil
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("insert geocode cache: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO geocode_cache (query, address, lat, lng)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (query) DO UPDATE
	SET address = EXCLUDED.address,
		lat = EXCLUDED.lat,
		lng = EXCLUDED.lng,
		updated_at = now();
	`)
	if err != nil {
		return fmt.Errorf("insert geocode cache: db prepare: %w", err)
	}
	defer stmt.Close()

	for key, res := range results {
		if strings.TrimSpace(key) == "" {
			return errors.New("insert geocode cache: empty query key")
		}

		if _, err := stmt.ExecContext(ctx, key, res.Address, res.Location.Lat, res.Location.Lng); err != nil {
			return fmt.Errorf("insert geocode cache query=%q: %w", key, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("insert geocode cache commit: %w", err)
	}

	return nil
}
