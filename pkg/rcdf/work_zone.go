package rcdf

import "time"

// WorkZoneFeature is a WZDx-style GeoJSON feature normalised by the ingestion
// layer.
type WorkZoneFeature struct {
	PrimaryIdentifier string `groups:"basic"`

	DataSource *DataSource `groups:"internal"`

	GeometryType string `groups:"basic"` // Point or LineString
	// Geometry is ordered lon/lat pairs; a single pair for Point
	Geometry [][]float64 `groups:"basic"`

	EventType   string `groups:"basic"`
	Description string `groups:"basic"`

	StartDateTime time.Time `groups:"basic"`
	EndDateTime   time.Time `groups:"basic"`

	WorkersPresent bool            `groups:"basic"`
	VehicleImpacts []VehicleImpact `groups:"basic"`

	ReducedSpeedLimitMPH int `groups:"basic"` // 0 when no reduction posted
}

type VehicleImpact string

const (
	VehicleImpactAllLanesOpen    VehicleImpact = "all-lanes-open"
	VehicleImpactSomeLanesClosed VehicleImpact = "some-lanes-closed"
	VehicleImpactAllLanesClosed  VehicleImpact = "all-lanes-closed"
	VehicleImpactUnknown         VehicleImpact = "unknown"
)

func (f *WorkZoneFeature) LanesClosed() bool {
	for _, impact := range f.VehicleImpacts {
		if impact == VehicleImpactSomeLanesClosed || impact == VehicleImpactAllLanesClosed {
			return true
		}
	}

	return false
}

func (f *WorkZoneFeature) AnchorLocation() *Location {
	if len(f.Geometry) == 0 {
		return nil
	}

	return NewPointLocation(f.Geometry[0][1], f.Geometry[0][0])
}
