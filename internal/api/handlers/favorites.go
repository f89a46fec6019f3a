package handlers

import (
	"net/http"
	"route-planner-service/internal/api/dto"
	"route-planner-service/internal/ports"
	"route-planner-service/internal/services"
	"strconv"
)

// FavoriteHandler manages the session's saved locations.
type FavoriteHandler struct {
	Repo     ports.FavoriteRepository
	Geocoder ports.Geocoder
}

func (h *FavoriteHandler) List(w http.ResponseWriter, r *http.Request) {
	favs, err := h.Repo.ListFavorites(r.Context())
	if err != nil {
		writeServiceError(w, r, "favorites.list", err)
		return
	}

	res := dto.ListFavoritesResponse{
		Favorites: make([]dto.FavoriteResponse, 0, len(favs)),
	}
	for _, f := range favs {
		res.Favorites = append(res.Favorites, dto.NewFavoriteResponse(f))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *FavoriteHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req dto.AddFavoriteRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := dto.Validate(req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	fav, err := services.AddFavorite(r.Context(), services.FavoriteInput{
		Name:    req.Name,
		Address: req.Address,
		Lat:     req.Lat,
		Lng:     req.Lng,
	}, h.Repo, h.Geocoder)
	if err != nil {
		writeServiceError(w, r, "favorites.add", err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.NewFavoriteResponse(fav))
}

func (h *FavoriteHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id < 1 {
		writeError(w, r, http.StatusBadRequest, "id must be a positive integer")
		return
	}

	if err := h.Repo.RemoveFavorite(r.Context(), id); err != nil {
		writeServiceError(w, r, "favorites.remove", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
