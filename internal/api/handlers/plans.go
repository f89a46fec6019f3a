package handlers

import (
	"net/http"
	"route-planner-service/internal/api/dto"
	"route-planner-service/internal/domain"
	"route-planner-service/internal/ports"
	"route-planner-service/internal/services"
)

type PlanHandler struct {
	Geocoder         ports.Geocoder
	Favorites        ports.FavoriteRepository
	Estimator        ports.DistanceEstimator
	DefaultAlgorithm services.Algorithm
}

// Plan resolves the submitted points and returns the ordered route as JSON.
func (h *PlanHandler) Plan(w http.ResponseWriter, r *http.Request) {
	result, ok := h.plan(w, r)
	if !ok {
		return
	}
	writeJSON(w, r, http.StatusOK, dto.NewPlanResponse(result))
}

// PlanGeoJSON is Plan rendered as a GeoJSON FeatureCollection.
func (h *PlanHandler) PlanGeoJSON(w http.ResponseWriter, r *http.Request) {
	result, ok := h.plan(w, r)
	if !ok {
		return
	}

	b, err := dto.NewRouteGeoJSON(result).MarshalJSON()
	if err != nil {
		writeServiceError(w, r, "plan.geojson", err)
		return
	}

	w.Header().Set("Content-Type", "application/geo+json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(b)
}

// plan runs decode, validation, resolution and optimization, writing the
// error response itself when any step fails.
func (h *PlanHandler) plan(w http.ResponseWriter, r *http.Request) (*domain.RouteResult, bool) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost)
		return nil, false
	}

	var req dto.PlanRequest
	if !decodeJSON(w, r, &req) {
		return nil, false
	}
	if err := dto.Validate(req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return nil, false
	}

	algorithm, err := services.ParseAlgorithm(req.Algorithm, h.DefaultAlgorithm)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return nil, false
	}

	routeReq, err := services.ResolveRequest(r.Context(), toPlanInput(req), h.Geocoder, h.Favorites)
	if err != nil {
		writeServiceError(w, r, "plan.resolve", err)
		return nil, false
	}

	result, err := services.PlanRoute(r.Context(), routeReq, algorithm, h.Estimator)
	if err != nil {
		writeServiceError(w, r, "plan.route", err)
		return nil, false
	}

	return result, true
}

func toPlanInput(req dto.PlanRequest) services.PlanInput {
	in := services.PlanInput{
		Start:     toPointInput(req.Start),
		End:       toPointInput(req.End),
		Waypoints: make([]services.PointInput, 0, len(req.Waypoints)),
	}
	for i := range req.Waypoints {
		in.Waypoints = append(in.Waypoints, *toPointInput(&req.Waypoints[i]))
	}
	return in
}

func toPointInput(p *dto.PointRequest) *services.PointInput {
	if p == nil {
		return nil
	}
	return &services.PointInput{
		ID:         p.ID,
		Label:      p.Label,
		Lat:        p.Lat,
		Lng:        p.Lng,
		Address:    p.Address,
		FavoriteID: p.FavoriteID,
	}
}
