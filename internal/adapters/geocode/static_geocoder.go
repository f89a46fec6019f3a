package geocode

import (
	"context"
	"route-planner-service/internal/domain"
	"sync"
)

// StaticGeocoder answers from a fixed table keyed by normalized query.
// It backs offline runs and tests.
type StaticGeocoder struct {
	mu      sync.Mutex
	results map[string]domain.GeocodeResult
	calls   int
}

func NewStaticGeocoder(results map[string]domain.GeocodeResult) *StaticGeocoder {
	m := make(map[string]domain.GeocodeResult, len(results))
	for k, v := range results {
		m[normalize(k)] = v
	}
	return &StaticGeocoder{results: m}
}

func (s *StaticGeocoder) Geocode(ctx context.Context, query string) (domain.GeocodeResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.GeocodeResult{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++

	q := normalize(query)
	res, ok := s.results[q]
	if !ok {
		return domain.GeocodeResult{}, &domain.GeocodeNotFoundError{Query: q}
	}
	return res, nil
}

// Calls reports how many lookups reached the table.
func (s *StaticGeocoder) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}
