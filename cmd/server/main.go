package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"route-planner-service/internal/adapters/cache"
	"route-planner-service/internal/adapters/geocode"
	"route-planner-service/internal/adapters/repositories"
	"route-planner-service/internal/api"
	"route-planner-service/internal/config"
	"route-planner-service/internal/platform/db"
	"route-planner-service/internal/platform/obs"
	"route-planner-service/internal/ports"
	"route-planner-service/internal/services"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
)

// main is the application composition root.
// It wires concrete adapters (SQLite, geocoders, caches) behind ports and starts the HTTP server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		obs.SetupLogging("info", "console")
		log.Fatal().Err(err).Msg("load config")
	}
	obs.SetupLogging(cfg.LogLevel, cfg.LogFormat)

	if err := run(cfg); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Favorites live in SQLite for the lifetime of the process unless DB_PATH is set.
	sqliteDB, err := db.OpenSqlite(cfg.DBPath)
	if err != nil {
		return err
	}
	defer sqliteDB.Close()

	if err := repositories.InitSchema(ctx, sqliteDB); err != nil {
		return err
	}

	favorites := repositories.NewSqliteFavoriteRepository(sqliteDB)
	if cfg.SeedPath != "" {
		n, err := repositories.SeedFromJSON(ctx, favorites, cfg.SeedPath)
		if err != nil {
			return err
		}
		log.Info().Int("added", n).Str("path", cfg.SeedPath).Msg("favorites seeded")
	}

	geocoder, closeCache, err := buildGeocoder(ctx, cfg, sqliteDB)
	if err != nil {
		return err
	}
	defer closeCache()

	algorithm, err := services.ParseAlgorithm(cfg.DefaultAlgorithm, services.AlgorithmNearestNeighbor)
	if err != nil {
		return fmt.Errorf("DEFAULT_ALGORITHM: %w", err)
	}

	router := api.NewRouter(api.Deps{
		Favorites:        favorites,
		Geocoder:         geocoder,
		Estimator:        services.HaversineEstimator{},
		DefaultAlgorithm: algorithm,
	})

	// Timeouts allow for cold-cache geocoding (external API latency).
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().
			Str("addr", srv.Addr).
			Str("geocoder", cfg.GeocoderProvider).
			Str("geocode_cache", cfg.GeocodeCache).
			Str("algorithm", string(algorithm)).
			Msg("server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// buildGeocoder selects the provider and wraps it with the configured cache.
// A nil Geocoder means address input is rejected.
func buildGeocoder(ctx context.Context, cfg *config.Config, sqliteDB *sql.DB) (ports.Geocoder, func(), error) {
	noop := func() {}

	var provider ports.Geocoder
	switch cfg.GeocoderProvider {
	case "kakao":
		g, err := geocode.NewKakaoGeocoder(cfg.KakaoRestAPIKey, cfg.GeocodeRateLimit)
		if err != nil {
			return nil, noop, err
		}
		provider = g
	case "ors":
		g, err := geocode.NewORSGeocoder(cfg.ORSAPIKey, cfg.ORSCountry, cfg.GeocodeRateLimit)
		if err != nil {
			return nil, noop, err
		}
		provider = g
	default:
		return nil, noop, nil
	}

	switch cfg.GeocodeCache {
	case "sqlite":
		return geocode.NewCachingGeocoder(provider, cache.NewSqliteGeocodeCache(sqliteDB)), noop, nil

	case "postgres":
		pg, err := db.OpenPostgres(cfg.DatabaseURL)
		if err != nil {
			return nil, noop, err
		}
		if err := cache.InitPostgresSchema(ctx, pg); err != nil {
			pg.Close()
			return nil, noop, err
		}
		return geocode.NewCachingGeocoder(provider, cache.NewSQLGeocodeCache(pg)), func() { pg.Close() }, nil

	case "redis":
		client, err := cache.DialRedis(ctx, cfg.RedisAddr)
		if err != nil {
			return nil, noop, err
		}
		c := cache.NewRedisGeocodeCache(client, cfg.GeocodeCacheTTL)
		return geocode.NewCachingGeocoder(provider, c), func() { client.Close() }, nil

	default:
		return provider, noop, nil
	}
}
