package encoder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/roadcast/roadcast/pkg/rcdf"
)

func TestEncodeCIFS_PolylineFallbackOrder(t *testing.T) {
	lineGeometry := [][]float64{
		{-93.8123456789, 41.6987654321},
		{-93.7, 41.7},
		{-93.6, 41.8},
	}

	// Line geometry wins over the point location
	withLine := EncodeCIFS(&rcdf.SourceEvent{
		PrimaryIdentifier: "IA-1",
		Location:          rcdf.NewPointLocation(41.6, -93.8),
		LineGeometry:      lineGeometry,
		StartDateTime:     time.Date(2026, time.January, 5, 8, 0, 0, 0, time.UTC),
	})
	assert.Len(t, withLine.Polyline, 3)
	// (lon, lat) input becomes (lat, lon) output, rounded to 6 decimal places
	assert.Equal(t, rcdf.PolylinePoint{Latitude: 41.698765, Longitude: -93.812346}, withLine.Polyline[0])
	assert.Equal(t, rcdf.PolylinePoint{Latitude: 41.8, Longitude: -93.6}, withLine.Polyline[2])

	pointOnly := EncodeCIFS(&rcdf.SourceEvent{
		PrimaryIdentifier: "IA-2",
		Location:          rcdf.NewPointLocation(41.6, -93.8),
		StartDateTime:     time.Date(2026, time.January, 5, 8, 0, 0, 0, time.UTC),
	})
	assert.Equal(t, []rcdf.PolylinePoint{{Latitude: 41.6, Longitude: -93.8}}, pointOnly.Polyline)

	noGeometry := EncodeCIFS(&rcdf.SourceEvent{
		PrimaryIdentifier: "IA-3",
		StartDateTime:     time.Date(2026, time.January, 5, 8, 0, 0, 0, time.UTC),
	})
	assert.Empty(t, noGeometry.Polyline)
	assert.NotNil(t, noGeometry.Polyline)
}

func TestEncodeCIFS_SeverityAndStatus(t *testing.T) {
	incident := EncodeCIFS(&rcdf.SourceEvent{
		PrimaryIdentifier: "IA-4",
		Description:       "Multi-vehicle accident",
		EventType:         "accidentsAndIncidents",
		RoadStatus:        rcdf.RoadStatusClosed,
		Location:          rcdf.NewPointLocation(41.6, -93.8),
		Direction:         "Eastbound",
		StartDateTime:     time.Now().Add(-time.Hour),
		EndDateTime:       time.Now().Add(time.Hour),
	})

	assert.Equal(t, 5, incident.Severity)
	assert.Equal(t, rcdf.CIFSStatusActive, incident.Status)
	assert.True(t, incident.RoadClosed)
	assert.Equal(t, "Eastbound", incident.Direction)
}

func TestEncodeCIFS_PlannedEvent(t *testing.T) {
	incident := EncodeCIFS(&rcdf.SourceEvent{
		PrimaryIdentifier: "IA-5",
		Description:       "Scheduled road work",
		Location:          rcdf.NewPointLocation(41.6, -93.8),
		StartDateTime:     time.Now().Add(48 * time.Hour),
	})

	assert.Equal(t, rcdf.CIFSStatusPlanned, incident.Status)
	assert.False(t, incident.RoadClosed)
}
