package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"route-planner-service/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestORSGeocode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "ors-key", r.Header.Get("Authorization"))
		assert.Equal(t, "/geocode/search", r.URL.Path)
		assert.Equal(t, "KR", r.URL.Query().Get("boundary.country"))

		if r.URL.Query().Get("text") == "nowhere" {
			_, _ = w.Write([]byte(`{"features":[]}`))
			return
		}
		_, _ = w.Write([]byte(`{"features":[{
			"geometry":{"coordinates":[127.0276,37.4979]},
			"properties":{"label":"Gangnam Station, Seoul"}}]}`))
	}))
	t.Cleanup(srv.Close)

	g, err := NewORSGeocoder("ors-key", "KR", 0)
	require.NoError(t, err)
	g.baseURL = srv.URL

	res, err := g.Geocode(context.Background(), "gangnam station")
	require.NoError(t, err)
	assert.Equal(t, "Gangnam Station, Seoul", res.Address)
	assert.Equal(t, domain.GeoPoint{Lat: 37.4979, Lng: 127.0276}, res.Location)

	_, err = g.Geocode(context.Background(), "nowhere")
	var nf *domain.GeocodeNotFoundError
	assert.ErrorAs(t, err, &nf)

	_, err = g.Geocode(context.Background(), "   ")
	assert.Error(t, err)
}
