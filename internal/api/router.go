package api

import (
	"net/http"
	"route-planner-service/internal/api/handlers"
	"route-planner-service/internal/ports"
	"route-planner-service/internal/services"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Deps are the collaborators the HTTP layer needs.
// Geocoder may be nil when no provider is configured.
type Deps struct {
	Favorites        ports.FavoriteRepository
	Geocoder         ports.Geocoder
	Estimator        ports.DistanceEstimator
	DefaultAlgorithm services.Algorithm
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(deps Deps) http.Handler {
	mux := http.NewServeMux()

	planHandler := &handlers.PlanHandler{
		Geocoder:         deps.Geocoder,
		Favorites:        deps.Favorites,
		Estimator:        deps.Estimator,
		DefaultAlgorithm: deps.DefaultAlgorithm,
	}
	favHandler := &handlers.FavoriteHandler{
		Repo:     deps.Favorites,
		Geocoder: deps.Geocoder,
	}
	geoHandler := &handlers.GeocodeHandler{Geocoder: deps.Geocoder}

	mux.HandleFunc("/health", handlers.Health)
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("/plans", planHandler.Plan)
	mux.HandleFunc("/plans/geojson", planHandler.PlanGeoJSON)
	mux.HandleFunc("/geocode", geoHandler.Lookup)
	mux.HandleFunc("GET /favorites", favHandler.List)
	mux.HandleFunc("POST /favorites", favHandler.Add)
	mux.HandleFunc("DELETE /favorites/{id}", favHandler.Remove)

	return requestIDMiddleware(loggingMiddleware(mux))
}
