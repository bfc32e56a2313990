package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCoordinates(t *testing.T) {
	t.Run("both empty", func(t *testing.T) {
		lat, lng, err := ParseCoordinates("", " ")
		require.NoError(t, err)
		assert.Nil(t, lat)
		assert.Nil(t, lng)
	})

	t.Run("valid pair", func(t *testing.T) {
		lat, lng, err := ParseCoordinates("32.0853", "34.7818")
		require.NoError(t, err)
		assert.InDelta(t, 32.0853, *lat, 1e-9)
		assert.InDelta(t, 34.7818, *lng, 1e-9)
	})

	tests := []struct {
		name     string
		lat, lng string
		field    string
	}{
		{"missing longitude", "32.1", "", "longitude"},
		{"missing latitude", "", "34.7", "latitude"},
		{"latitude not a number", "north", "34.7", "latitude"},
		{"latitude out of range", "91", "34.7", "latitude"},
		{"longitude out of range", "32.1", "-180.5", "longitude"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseCoordinates(tt.lat, tt.lng)
			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.field, verr.Issues[0].Field)
		})
	}
}
