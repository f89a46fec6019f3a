package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"route-planner-service/internal/domain"
	"route-planner-service/internal/platform/obs"
	"strconv"
	"strings"
)

const kakaoBaseURL = "https://dapi.kakao.com"

type kakaoResponse struct {
	Documents []kakaoDocument `json:"documents"`
}

type kakaoDocument struct {
	AddressName     string `json:"address_name"`
	PlaceName       string `json:"place_name"`
	RoadAddressName string `json:"road_address_name"`
	RoadAddress     *struct {
		AddressName string `json:"address_name"`
	} `json:"road_address"`
	// Kakao returns coordinates as strings: x is longitude, y is latitude.
	X string `json:"x"`
	Y string `json:"y"`
}

// KakaoGeocoder resolves queries with the Kakao Local API.
// Address search is tried first; when it has no match the query is retried
// as a keyword (place name) search.
type KakaoGeocoder struct {
	client  apiClient
	baseURL string
}

// NewKakaoGeocoder creates a geocoder sending at most perSecond requests per second.
func NewKakaoGeocoder(restAPIKey string, perSecond float64) (*KakaoGeocoder, error) {
	if strings.TrimSpace(restAPIKey) == "" {
		return nil, errors.New("kakao rest api key is empty")
	}
	return &KakaoGeocoder{
		client:  newAPIClient("Authorization", "KakaoAK "+restAPIKey, perSecond),
		baseURL: kakaoBaseURL,
	}, nil
}

func (k *KakaoGeocoder) Geocode(ctx context.Context, query string) (_ domain.GeocodeResult, err error) {
	defer obs.Time(ctx, "geocode.kakao")(&err)
	defer func() { recordProviderCall("kakao", err) }()

	q := normalize(query)
	if q == "" {
		return domain.GeocodeResult{}, errors.New("kakao geocode: query must be non-empty")
	}

	doc, ok, err := k.search(ctx, "/v2/local/search/address.json", q)
	if err != nil {
		return domain.GeocodeResult{}, fmt.Errorf("kakao address search: %w", err)
	}
	if !ok {
		doc, ok, err = k.search(ctx, "/v2/local/search/keyword.json", q)
		if err != nil {
			return domain.GeocodeResult{}, fmt.Errorf("kakao keyword search: %w", err)
		}
	}
	if !ok {
		return domain.GeocodeResult{}, &domain.GeocodeNotFoundError{Query: q}
	}

	return doc.result()
}

// search returns the first document for q at path, if any.
func (k *KakaoGeocoder) search(ctx context.Context, path, q string) (kakaoDocument, bool, error) {
	resp, err := k.client.getWithRetry(ctx, k.baseURL+path, map[string]string{
		"query": q,
		"size":  "1",
	})
	if err != nil {
		return kakaoDocument{}, false, err
	}
	defer resp.Body.Close()

	var decoded kakaoResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return kakaoDocument{}, false, fmt.Errorf("decode response: %w", err)
	}
	if len(decoded.Documents) == 0 {
		return kakaoDocument{}, false, nil
	}
	return decoded.Documents[0], true, nil
}

func (d kakaoDocument) result() (domain.GeocodeResult, error) {
	lng, err := strconv.ParseFloat(d.X, 64)
	if err != nil {
		return domain.GeocodeResult{}, fmt.Errorf("kakao geocode: parse x %q: %w", d.X, err)
	}
	lat, err := strconv.ParseFloat(d.Y, 64)
	if err != nil {
		return domain.GeocodeResult{}, fmt.Errorf("kakao geocode: parse y %q: %w", d.Y, err)
	}

	// Prefer the road address, then the lot address, then the place name.
	addr := d.RoadAddressName
	if addr == "" && d.RoadAddress != nil {
		addr = d.RoadAddress.AddressName
	}
	if addr == "" {
		addr = d.AddressName
	}
	if addr == "" {
		addr = d.PlaceName
	}

	return domain.GeocodeResult{
		Address:  addr,
		Location: domain.GeoPoint{Lat: lat, Lng: lng},
	}, nil
}
