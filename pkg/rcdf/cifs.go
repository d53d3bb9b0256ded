package rcdf

import "time"

// CIFSIncident is the consumer-navigation feed shape. Polyline points are
// (lat, lon) ordered and rounded to 6 decimal places, unlike the GeoJSON
// lon/lat convention used everywhere else.
type CIFSIncident struct {
	ID string `groups:"basic"`

	Type        string `groups:"basic"`
	Description string `groups:"basic"`
	Direction   string `groups:"basic"`

	Severity int `groups:"basic"` // 0-7

	Status     CIFSStatus `groups:"basic"`
	RoadClosed bool       `groups:"basic"`

	Polyline []PolylinePoint `groups:"basic"`

	StartTime time.Time `groups:"basic"`
	EndTime   time.Time `groups:"basic"` // zero when open-ended
}

type CIFSStatus string

const (
	CIFSStatusActive  CIFSStatus = "active"
	CIFSStatusPlanned CIFSStatus = "planned"
)

type PolylinePoint struct {
	Latitude  float64 `groups:"basic"`
	Longitude float64 `groups:"basic"`
}
