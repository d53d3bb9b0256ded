package rcdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPointLocation(t *testing.T) {
	location := NewPointLocation(41.6, -93.8)

	assert.Equal(t, "Point", location.Type)
	// GeoJSON stores longitude first
	assert.Equal(t, []float64{-93.8, 41.6}, location.Coordinates)
	assert.Equal(t, 41.6, location.Latitude())
	assert.Equal(t, -93.8, location.Longitude())
}

func TestHaversineDistanceKm(t *testing.T) {
	desMoines := NewPointLocation(41.5868, -93.6250)
	cedarRapids := NewPointLocation(41.9779, -91.6656)

	distance := desMoines.HaversineDistanceKm(cedarRapids)

	assert.InDelta(t, 168, distance, 5)
	assert.Equal(t, distance, cedarRapids.HaversineDistanceKm(desMoines))

	assert.Zero(t, desMoines.HaversineDistanceKm(desMoines))
}
