package encoder

import (
	"fmt"
	"math"
	"time"

	"github.com/roadcast/roadcast/pkg/rcdf"
)

func roundPolylineCoordinate(value float64) float64 {
	return math.Round(value*1e6) / 1e6
}

// cifsPolyline picks the incident geometry in strict priority order: full
// line geometry, then a one-point polyline from the point location, then
// empty. Input pairs are GeoJSON lon/lat; the feed wants lat/lon. The
// fallback order is load-bearing - a line must never be reduced to its point.
func cifsPolyline(event *rcdf.SourceEvent) []rcdf.PolylinePoint {
	if len(event.LineGeometry) > 0 {
		polyline := make([]rcdf.PolylinePoint, len(event.LineGeometry))
		for i, pair := range event.LineGeometry {
			polyline[i] = rcdf.PolylinePoint{
				Latitude:  roundPolylineCoordinate(pair[1]),
				Longitude: roundPolylineCoordinate(pair[0]),
			}
		}

		return polyline
	}

	if event.Location != nil {
		return []rcdf.PolylinePoint{
			{
				Latitude:  roundPolylineCoordinate(event.Location.Latitude()),
				Longitude: roundPolylineCoordinate(event.Location.Longitude()),
			},
		}
	}

	return []rcdf.PolylinePoint{}
}

// EncodeCIFS derives the consumer-navigation incident record. Only severity
// comes from classification; ITIS/sign codes and the region/temporal encoders
// are not involved.
func EncodeCIFS(event *rcdf.SourceEvent) *rcdf.CIFSIncident {
	status := rcdf.CIFSStatusActive
	if event.StartDateTime.After(time.Now()) {
		status = rcdf.CIFSStatusPlanned
	}

	return &rcdf.CIFSIncident{
		ID: event.PrimaryIdentifier,

		Type:        event.EventType,
		Description: event.Description,
		Direction:   event.Direction,

		Severity: classifyPriority(fmt.Sprintf("%s %s", event.Description, event.EventType)),

		Status:     status,
		RoadClosed: event.RoadStatus == rcdf.RoadStatusClosed,

		Polyline: cifsPolyline(event),

		StartTime: event.StartDateTime,
		EndTime:   event.EndDateTime,
	}
}
