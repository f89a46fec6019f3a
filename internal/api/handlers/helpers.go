package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"route-planner-service/internal/domain"
	"route-planner-service/internal/platform/obs"

	"github.com/rs/zerolog/log"
)

// Upper bound on accepted request bodies.
const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().
			Str("req_id", obs.RequestID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Err(err).
			Msg("encode failed")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request, allowed string) {
	w.Header().Set("Allow", allowed)
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
}

// decodeJSON reads exactly one JSON object with no unknown fields into dst.
// On failure it writes a 400 response and returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return false
	}
	return true
}

// writeServiceError maps domain failures to client errors and logs the rest.
func writeServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	var notFound *domain.GeocodeNotFoundError

	switch {
	case errors.Is(err, domain.ErrEmptyWaypointSet),
		errors.Is(err, domain.ErrInsufficientPoints),
		errors.Is(err, domain.ErrUnlocatedPoint),
		errors.Is(err, domain.ErrInvalidLocation):
		writeError(w, r, http.StatusUnprocessableEntity, rootMessage(err))
	case errors.As(err, &notFound):
		writeError(w, r, http.StatusUnprocessableEntity, notFound.Error())
	case errors.Is(err, domain.ErrFavoriteNotFound):
		writeError(w, r, http.StatusNotFound, domain.ErrFavoriteNotFound.Error())
	case errors.Is(err, domain.ErrDuplicateFavorite),
		errors.Is(err, domain.ErrDuplicateWaypoint):
		writeError(w, r, http.StatusConflict, rootMessage(err))
	case errors.Is(err, domain.ErrGeocoderUnavailable):
		writeError(w, r, http.StatusServiceUnavailable, domain.ErrGeocoderUnavailable.Error())
	case errors.Is(err, context.Canceled):
		writeError(w, r, http.StatusServiceUnavailable, "request canceled")
	default:
		log.Error().
			Str("req_id", obs.RequestID(r.Context())).
			Str("op", op).
			Err(err).
			Msg("request failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}

// rootMessage returns the message of the known domain error in err's chain.
func rootMessage(err error) string {
	for _, target := range []error{
		domain.ErrEmptyWaypointSet,
		domain.ErrInsufficientPoints,
		domain.ErrUnlocatedPoint,
		domain.ErrInvalidLocation,
		domain.ErrDuplicateFavorite,
		domain.ErrDuplicateWaypoint,
	} {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	return err.Error()
}
