package cache

import (
	"route-planner-service/internal/platform/obs"
	"strings"
)

// uniqueKeys trims queries and drops blanks and repeats, keeping first-seen order.
func uniqueKeys(queries []string) []string {
	seen := make(map[string]struct{}, len(queries))
	uniq := make([]string, 0, len(queries))
	for _, q := range queries {
		q = strings.TrimSpace(q)
		if q == "" {
			continue
		}
		if _, ok := seen[q]; ok {
			continue
		}
		seen[q] = struct{}{}
		uniq = append(uniq, q)
	}
	return uniq
}

func recordLookup(backend string, requested, found int) {
	recordHits(backend, found)
	recordMisses(backend, requested-found)
}

func recordHits(backend string, n int) {
	if n > 0 {
		obs.CacheHits.WithLabelValues(backend).Add(float64(n))
	}
}

func recordMisses(backend string, n int) {
	if n > 0 {
		obs.CacheMisses.WithLabelValues(backend).Add(float64(n))
	}
}
