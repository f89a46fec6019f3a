package geocode

import (
	"errors"
	"route-planner-service/internal/domain"
	"route-planner-service/internal/platform/obs"
)

func recordProviderCall(provider string, err error) {
	outcome := "ok"
	var nf *domain.GeocodeNotFoundError
	switch {
	case errors.As(err, &nf):
		outcome = "not_found"
	case err != nil:
		outcome = "error"
	}
	obs.GeocodeRequestsTotal.WithLabelValues(provider, outcome).Inc()
}
