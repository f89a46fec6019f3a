package obs

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "route_planner",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total HTTP requests processed",
	}, []string{"method", "path", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "route_planner",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency in seconds",
		Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
	}, []string{"method", "path"})

	OptimizationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "route_planner",
		Subsystem: "engine",
		Name:      "optimizations_total",
		Help:      "Route optimizations by algorithm and outcome",
	}, []string{"algorithm", "outcome"})

	OptimizedPoints = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "route_planner",
		Subsystem: "engine",
		Name:      "points_per_request",
		Help:      "Number of points in optimized requests",
		Buckets:   prometheus.ExponentialBuckets(2, 2, 9),
	})

	GeocodeRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "route_planner",
		Subsystem: "geocode",
		Name:      "requests_total",
		Help:      "Geocoding provider calls by provider and outcome",
	}, []string{"provider", "outcome"})

	CacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "route_planner",
		Subsystem: "cache",
		Name:      "hits_total",
		Help:      "Total geocode cache hits",
	}, []string{"backend"})

	CacheMisses = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "route_planner",
		Subsystem: "cache",
		Name:      "misses_total",
		Help:      "Total geocode cache misses",
	}, []string{"backend"})
)
