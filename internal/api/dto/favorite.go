package dto

type AddFavoriteRequest struct {
	Name    string   `json:"name" validate:"omitempty,max=200"`
	Address string   `json:"address" validate:"omitempty,max=300"`
	Lat     *float64 `json:"lat" validate:"omitempty,latitude"`
	Lng     *float64 `json:"lng" validate:"omitempty,longitude"`
}

type FavoriteResponse struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

type ListFavoritesResponse struct {
	Favorites []FavoriteResponse `json:"favorites"`
}

type GeocodeResponse struct {
	Query   string  `json:"query"`
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}
