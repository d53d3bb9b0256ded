package rcdf

import "time"

// SourceEvent is the canonical incident/condition record produced by the
// ingestion layer. The encoder treats it as read-only.
type SourceEvent struct {
	PrimaryIdentifier string `groups:"basic"`

	CreationDateTime     time.Time `groups:"detailed"`
	ModificationDateTime time.Time `groups:"detailed"`

	DataSource *DataSource `groups:"internal"`

	Description string     `groups:"basic"`
	EventType   string     `groups:"basic"`
	RoadStatus  RoadStatus `groups:"basic"`

	Location *Location `groups:"basic"`
	// LineGeometry is ordered lon/lat pairs (GeoJSON convention)
	LineGeometry [][]float64 `groups:"basic"`

	Direction string `groups:"basic"`

	StartDateTime time.Time `groups:"basic"`
	EndDateTime   time.Time `groups:"basic"` // zero when open-ended

	Workstream     string `groups:"detailed"`
	WorkersPresent bool   `groups:"detailed"`
	LaneImpact     string `groups:"detailed"`
}

type RoadStatus string

const (
	RoadStatusOpen       RoadStatus = "Open"
	RoadStatusRestricted RoadStatus = "Restricted"
	RoadStatusClosed     RoadStatus = "Closed"
)
