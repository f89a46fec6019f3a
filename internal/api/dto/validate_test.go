package dto

import (
	"route-planner-service/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f64(v float64) *float64 { return &v }

func TestValidatePlanRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     PlanRequest
		wantErr string
	}{
		{
			name: "coordinates and address",
			req: PlanRequest{Waypoints: []PointRequest{
				{Lat: f64(37.5), Lng: f64(127)},
				{Address: "서울역"},
			}},
		},
		{
			name:    "half a coordinate",
			req:     PlanRequest{Waypoints: []PointRequest{{Lng: f64(127)}}},
			wantErr: "lat and lng must be given together",
		},
		{
			name:    "nothing to locate",
			req:     PlanRequest{Start: &PointRequest{Label: "x"}},
			wantErr: "point requires",
		},
		{
			name:    "longitude out of range",
			req:     PlanRequest{Waypoints: []PointRequest{{Lat: f64(0), Lng: f64(200)}}},
			wantErr: "between -180 and 180",
		},
		{
			name:    "unknown algorithm",
			req:     PlanRequest{Algorithm: "genetic"},
			wantErr: "must be one of",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.req)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNewPlanResponse(t *testing.T) {
	start := domain.Waypoint{ID: "s", Label: "start", Location: domain.GeoPoint{Lat: 1, Lng: 2}}
	a := domain.Waypoint{ID: "a", Label: "A", Location: domain.GeoPoint{Lat: 3, Lng: 4}}

	res := NewPlanResponse(&domain.RouteResult{
		Algorithm:            "nearest",
		Start:                &start,
		OrderedIntermediates: []domain.Waypoint{a},
		Legs: []domain.RouteLeg{{
			From: start, To: a, DistanceKm: 12.3, DurationMin: 24.6,
			Path: []domain.GeoPoint{start.Location, a.Location},
		}},
		TotalDistanceKm:  12.3,
		TotalDurationMin: 24.6,
	})

	require.NotNil(t, res.Start)
	assert.Nil(t, res.End)
	assert.Equal(t, "s", res.Start.ID)
	assert.Equal(t, 25, res.TotalDurationMinDisplay)
	assert.Equal(t, [][]float64{{2, 1}, {4, 3}}, res.Legs[0].Path)
}
