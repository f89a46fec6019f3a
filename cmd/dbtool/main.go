package main

import (
	"context"
	"os"
	"route-planner-service/internal/adapters/cache"
	"route-planner-service/internal/config"
	"route-planner-service/internal/platform/db"
	"route-planner-service/internal/platform/obs"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// dbtool prepares the shared Postgres geocode cache used when GEOCODE_CACHE=postgres.
func main() {
	cfg, err := config.Load()
	if err != nil {
		// Fall back to console logging so the validation report is readable.
		obs.SetupLogging("info", "console")
		log.Fatal().Err(err).Msg("load config")
	}
	obs.SetupLogging(cfg.LogLevel, cfg.LogFormat)

	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		log.Fatal().Msg("DATABASE_URL is required")
	}

	pg, err := db.OpenPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("open postgres")
	}
	defer pg.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	log.Info().Msg("initializing geocode cache schema")
	if err := cache.InitPostgresSchema(ctx, pg); err != nil {
		log.Error().Err(err).Msg("schema initialization failed")
		pg.Close()
		os.Exit(1)
	}
	log.Info().Msg("schema ready")
}
