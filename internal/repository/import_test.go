package repository

import (
	"testing"

	"sensitive-places-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/ewkb"
)

func TestEncodePoint(t *testing.T) {
	b, err := encodePoint(models.Coordinates{Lat: 41.9028, Lng: 12.4964})
	require.NoError(t, err)

	g, err := ewkb.Unmarshal(b)
	require.NoError(t, err)

	p, ok := g.(*geom.Point)
	require.True(t, ok)
	assert.Equal(t, 4326, p.SRID())
	assert.Equal(t, 12.4964, p.X())
	assert.Equal(t, 41.9028, p.Y())
}

func TestCoordinatesOf(t *testing.T) {
	tests := []struct {
		name     string
		point    ewkb.Point
		expected *models.Coordinates
	}{
		{
			name:     "null geometry",
			point:    ewkb.Point{},
			expected: nil,
		},
		{
			name:     "lon lat order",
			point:    ewkb.Point{Point: geom.NewPointFlat(geom.XY, []float64{9.19, 45.4642})},
			expected: &models.Coordinates{Lat: 45.4642, Lng: 9.19},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, coordinatesOf(tt.point))
		})
	}
}

func TestNilIfEmpty(t *testing.T) {
	assert.Nil(t, nilIfEmpty(""))
	assert.Equal(t, "x", nilIfEmpty("x"))
}
