package encoder

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roadcast/roadcast/pkg/rcdf"
)

func Test_classifyPriority(t *testing.T) {
	tests := []struct {
		given    string
		expected int
	}{
		{given: "Fatality crash on I-80", expected: 7},
		// First match wins even when lower-priority keywords are also present
		{given: "Wrong way accident reported", expected: 7},
		{given: "Injury collision", expected: 6},
		{given: "Vehicle fire blocking shoulder", expected: 6},
		{given: "Multi-vehicle accident", expected: 5},
		{given: "Crash at mile marker 112", expected: 5},
		{given: "Stalled semi", expected: 4},
		{given: "Debris in roadway", expected: 4},
		{given: "Construction project", expected: 3},
		{given: "Left lane closed", expected: 3},
		{given: "Slow traffic near exit 5", expected: 2},
		{given: "Deer sighting", expected: 3},
		{given: "", expected: 3},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, classifyPriority(test.given), test.given)
	}
}

func Test_classifyEventCodes(t *testing.T) {
	tests := []struct {
		given    string
		expected []ITISCode
	}{
		{given: "Two car accident", expected: []ITISCode{ITISAccident}},
		{given: "Stalled vehicle on shoulder", expected: []ITISCode{ITISStalledVehicle}},
		{given: "Disabled truck", expected: []ITISCode{ITISStalledVehicle}},
		{given: "Debris on roadway", expected: []ITISCode{ITISDebrisOnRoadway}},
		{given: "Wrong way driver reported", expected: []ITISCode{ITISWrongWayDriver, ITISDanger}},
		{given: "Construction with lane closure", expected: []ITISCode{ITISConstruction, ITISLaneClosed}},
		{given: "Road work ahead", expected: []ITISCode{ITISRoadWorkAhead}},
		// Accident branch wins over stalled, construction still appends
		{given: "Accident in construction zone", expected: []ITISCode{ITISAccident, ITISConstruction}},
		{given: "Special event congestion expected", expected: []ITISCode{ITISIncidentAhead}},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, classifyEventCodes(test.given), test.given)
	}
}

func Test_eventSignCode(t *testing.T) {
	tests := []struct {
		given    string
		expected string
	}{
		// Accident branch is checked before lane closures
		{given: "Accident, 2 lanes closed", expected: "W3-4"},
		{given: "Road work with lane closure", expected: "W20-1"},
		{given: "Lane closure only", expected: "W20-5"},
		{given: "Detour via US-6", expected: "M4-9"},
		{given: "Fog advisory", expected: "W1-1"},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, eventSignCode(test.given), test.given)
	}
}

func TestClassifyEvent(t *testing.T) {
	event := &rcdf.SourceEvent{
		PrimaryIdentifier: "IA-2026-00017",
		Description:       "Multi-vehicle accident, 2 lanes closed",
		EventType:         "accidentsAndIncidents",
		Location:          rcdf.NewPointLocation(41.6, -93.8),
		Direction:         "Eastbound",
	}

	classification := ClassifyEvent(event)

	assert.Equal(t, 5, classification.Priority)
	assert.Contains(t, classification.Codes, ITISAccident)
	assert.Equal(t, "W3-4", classification.SignCode)
}

func TestClassifyWorkZone(t *testing.T) {
	tests := []struct {
		name             string
		given            *rcdf.WorkZoneFeature
		expectedPriority int
		expectedCodes    []ITISCode
	}{
		{
			name: "workers dominate",
			given: &rcdf.WorkZoneFeature{
				WorkersPresent:       true,
				VehicleImpacts:       []rcdf.VehicleImpact{rcdf.VehicleImpactSomeLanesClosed},
				ReducedSpeedLimitMPH: 55,
			},
			expectedPriority: 6,
			expectedCodes:    []ITISCode{ITISWorkersOnRoadway, ITISCaution, ITISLanesClosed, ITISSpeedLimitReduced},
		},
		{
			name: "lanes closed without workers",
			given: &rcdf.WorkZoneFeature{
				VehicleImpacts: []rcdf.VehicleImpact{rcdf.VehicleImpactAllLanesClosed},
			},
			expectedPriority: 5,
			expectedCodes:    []ITISCode{ITISLanesClosed},
		},
		{
			name: "speed reduction only",
			given: &rcdf.WorkZoneFeature{
				VehicleImpacts:       []rcdf.VehicleImpact{rcdf.VehicleImpactAllLanesOpen},
				ReducedSpeedLimitMPH: 45,
			},
			expectedPriority: 4,
			expectedCodes:    []ITISCode{ITISSpeedLimitReduced},
		},
		{
			name:             "nothing notable",
			given:            &rcdf.WorkZoneFeature{},
			expectedPriority: 3,
			expectedCodes:    []ITISCode{ITISRoadWorkAhead},
		},
	}

	for _, test := range tests {
		classification := ClassifyWorkZone(test.given)

		assert.Equal(t, test.expectedPriority, classification.Priority, test.name)
		assert.Equal(t, test.expectedCodes, classification.Codes, test.name)
	}
}

func TestITISCodeCategories(t *testing.T) {
	assert.Equal(t, ITISCategoryAdvisory, ITISCaution.Category())
	assert.Equal(t, ITISCategorySpeedTraffic, ITISCongestion.Category())
	assert.Equal(t, ITISCategoryWorkZone, ITISConstruction.Category())
	assert.Equal(t, ITISCategoryIncident, ITISAccident.Category())
	assert.Equal(t, ITISCategoryWeather, ITISIceOnRoadway.Category())
}
