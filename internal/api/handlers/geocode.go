package handlers

import (
	"net/http"
	"route-planner-service/internal/api/dto"
	"route-planner-service/internal/domain"
	"route-planner-service/internal/ports"
	"strings"
)

type GeocodeHandler struct {
	Geocoder ports.Geocoder
}

// Lookup resolves ?query= to a single coordinate.
func (h *GeocodeHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}

	query := strings.TrimSpace(r.URL.Query().Get("query"))
	if query == "" {
		writeError(w, r, http.StatusBadRequest, "query is required")
		return
	}
	if h.Geocoder == nil {
		writeServiceError(w, r, "geocode.lookup", domain.ErrGeocoderUnavailable)
		return
	}

	res, err := h.Geocoder.Geocode(r.Context(), query)
	if err != nil {
		writeServiceError(w, r, "geocode.lookup", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.GeocodeResponse{
		Query:   query,
		Address: res.Address,
		Lat:     res.Location.Lat,
		Lng:     res.Location.Lng,
	})
}
