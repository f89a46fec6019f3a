package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"route-planner-service/internal/domain"
	"route-planner-service/internal/platform/obs"
	"strings"
)

const orsBaseURL = "https://api.openrouteservice.org"

type orsResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates []float64 `json:"coordinates"`
		} `json:"geometry"`
		Properties struct {
			Label string `json:"label"`
		} `json:"properties"`
	} `json:"features"`
}

// ORSGeocoder resolves queries with OpenRouteService (/geocode/search).
type ORSGeocoder struct {
	client  apiClient
	baseURL string
	// Optional ISO country code restricting results, e.g. "KR".
	country string
}

func NewORSGeocoder(apiKey, country string, perSecond float64) (*ORSGeocoder, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("ORS api key is empty")
	}
	return &ORSGeocoder{
		client:  newAPIClient("Authorization", apiKey, perSecond),
		baseURL: orsBaseURL,
		country: strings.TrimSpace(country),
	}, nil
}

func (o *ORSGeocoder) Geocode(ctx context.Context, query string) (_ domain.GeocodeResult, err error) {
	defer obs.Time(ctx, "geocode.ors")(&err)
	defer func() { recordProviderCall("ors", err) }()

	q := normalize(query)
	if q == "" {
		return domain.GeocodeResult{}, errors.New("ors geocode: query must be non-empty")
	}

	params := map[string]string{"text": q, "size": "1"}
	if o.country != "" {
		params["boundary.country"] = o.country
	}

	resp, err := o.client.getWithRetry(ctx, o.baseURL+"/geocode/search", params)
	if err != nil {
		return domain.GeocodeResult{}, fmt.Errorf("ors geocode: execute request: %w", err)
	}
	defer resp.Body.Close()

	var decoded orsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.GeocodeResult{}, fmt.Errorf("ors geocode: decode response: %w", err)
	}

	if len(decoded.Features) == 0 {
		return domain.GeocodeResult{}, &domain.GeocodeNotFoundError{Query: q}
	}

	f := decoded.Features[0]
	coords := f.Geometry.Coordinates
	if len(coords) != 2 {
		return domain.GeocodeResult{}, fmt.Errorf("ors geocode: invalid coordinate format for %q", q)
	}

	addr := f.Properties.Label
	if addr == "" {
		addr = q
	}

	return domain.GeocodeResult{
		Address:  addr,
		Location: domain.GeoPoint{Lat: coords[1], Lng: coords[0]},
	}, nil
}
