package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidStatus(t *testing.T) {
	for _, status := range []string{StatusActive, StatusDispatched, StatusResolved, StatusCanceled} {
		assert.True(t, ValidStatus(status), status)
	}

	assert.False(t, ValidStatus(""))
	assert.False(t, ValidStatus("escalated"))
	assert.False(t, ValidStatus("Active"))
}

func TestParseCoordinates(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		lat     float64
		lng     float64
		wantErr bool
	}{
		{name: "plain pair", input: "34.0522,-118.2437", lat: 34.0522, lng: -118.2437},
		{name: "spaces around parts", input: " 40.71 , -74.00 ", lat: 40.71, lng: -74.00},
		{name: "integer degrees", input: "55,37", lat: 55, lng: 37},
		{name: "free text", input: "downtown intersection", wantErr: true},
		{name: "single value", input: "34.0522", wantErr: true},
		{name: "three values", input: "1,2,3", wantErr: true},
		{name: "bad latitude", input: "north,-118.24", wantErr: true},
		{name: "bad longitude", input: "34.05,west", wantErr: true},
		{name: "not finite", input: "NaN,10", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lat, lng, err := ParseCoordinates(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.lat, lat)
			assert.Equal(t, tt.lng, lng)
		})
	}
}
