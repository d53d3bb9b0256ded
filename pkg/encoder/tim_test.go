package encoder

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/roadcast/roadcast/pkg/rcdf"
)

func TestEncodeEventTIM(t *testing.T) {
	timEncoder := NewEncoder(NewSequencer())

	event := &rcdf.SourceEvent{
		PrimaryIdentifier: "IA-2026-00017",
		Description:       "Multi-vehicle accident, 2 lanes closed",
		EventType:         "accidentsAndIncidents",
		Location:          rcdf.NewPointLocation(41.6, -93.8),
		Direction:         "Eastbound",
		StartDateTime:     time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC),
	}

	message := timEncoder.EncodeEventTIM(event)

	assert.Len(t, message.DataFrames, 1)
	assert.Len(t, message.PacketID, 18)
	assert.Nil(t, message.CommercialVehicle)

	frame := message.DataFrames[0]

	assert.Equal(t, rcdf.FrameTypeRoadSignage, frame.FrameType)
	assert.Equal(t, 5, frame.Priority)
	assert.Equal(t, "W3-4", frame.MsgID.MUTCDCode)
	assert.Equal(t, HeadingEast, frame.MsgID.ViewAngle)
	assert.Equal(t, int64(416000000), frame.MsgID.Position.Latitude)
	assert.Equal(t, 2026, frame.StartYear)
	assert.Equal(t, 44640, frame.StartMinuteOfYear)
	assert.Equal(t, DefaultIncidentDurationMinutes, frame.DurationMinutes)
	assert.Contains(t, frame.Content.ITISCodes, int(ITISAccident))

	assert.Len(t, frame.Regions, 1)
	assert.Equal(t, frame.MsgID.Position, frame.Regions[0].Anchor)
}

func TestEncodeEventTIM_AdvisoryFrameType(t *testing.T) {
	timEncoder := NewEncoder(NewSequencer())

	message := timEncoder.EncodeEventTIM(&rcdf.SourceEvent{
		PrimaryIdentifier: "IA-2026-00021",
		Description:       "Slow traffic near the fairgrounds",
		Location:          rcdf.NewPointLocation(41.6, -93.8),
		StartDateTime:     time.Date(2026, time.August, 12, 16, 0, 0, 0, time.UTC),
	})

	// Priority 2 and below is a plain advisory
	frame := message.DataFrames[0]
	assert.Equal(t, 2, frame.Priority)
	assert.Equal(t, rcdf.FrameTypeAdvisory, frame.FrameType)
}

func TestEncodeSensorTIM(t *testing.T) {
	timEncoder := NewEncoder(NewSequencer())

	reading := &rcdf.SensorReading{
		PrimaryIdentifier:   "RWIS-042",
		SensorType:          rcdf.SensorTypeRWIS,
		PavementTemperature: 28,
		MoisturePresent:     true,
		Location:            rcdf.NewPointLocation(42.0, -94.0),
		ObservationDateTime: time.Date(2026, time.January, 10, 6, 0, 0, 0, time.UTC),
	}

	message := timEncoder.EncodeSensorTIM(reading, 5)

	assert.NotNil(t, message)

	frame := message.DataFrames[0]

	assert.Equal(t, 6, frame.Priority)
	assert.Equal(t, DefaultSensorDurationMinutes, frame.DurationMinutes)
	assert.Equal(t, 5000, frame.Regions[0].ExtentMeters)
	assert.Equal(t, HeadingOmnidirectional, frame.MsgID.ViewAngle)
	assert.Equal(t, []int{int(ITISIceOnRoadway), int(ITISSlipperyRoadway), int(ITISReduceSpeed)}, frame.Content.ITISCodes)
}

func TestEncodeSensorTIM_SuppressedWhenNoWarning(t *testing.T) {
	timEncoder := NewEncoder(NewSequencer())

	message := timEncoder.EncodeSensorTIM(&rcdf.SensorReading{
		SensorType:          rcdf.SensorTypeRWIS,
		PavementTemperature: 60,
		Location:            rcdf.NewPointLocation(42.0, -94.0),
		ObservationDateTime: time.Now(),
	}, 5)

	assert.Nil(t, message)
}

func TestEncodeWorkZoneTIM(t *testing.T) {
	timEncoder := NewEncoder(NewSequencer())

	feature := &rcdf.WorkZoneFeature{
		PrimaryIdentifier: "WZ-77",
		GeometryType:      "LineString",
		Geometry: [][]float64{
			{-93.8, 41.6},
			{-93.7, 41.7},
		},
		Description:    "Bridge deck overlay",
		StartDateTime:  time.Date(2026, time.May, 1, 7, 0, 0, 0, time.UTC),
		EndDateTime:    time.Date(2026, time.May, 1, 19, 0, 0, 0, time.UTC),
		WorkersPresent: true,
	}

	message := timEncoder.EncodeWorkZoneTIM(feature)

	frame := message.DataFrames[0]

	assert.Equal(t, 6, frame.Priority)
	assert.Equal(t, "W20-1", frame.MsgID.MUTCDCode)
	assert.Equal(t, int64(416000000), frame.MsgID.Position.Latitude)
	assert.Equal(t, 720, frame.DurationMinutes)
	assert.Contains(t, frame.Content.ITISCodes, int(ITISWorkersOnRoadway))
}

func TestEncodeEventCVTIM(t *testing.T) {
	timEncoder := NewEncoder(NewSequencer())
	timEncoder.CVResolver = NewCVExtensionResolver(&fakeFinder{
		restrictions: []rcdf.RestrictionRecord{
			{
				PrimaryIdentifier: "BR-001",
				WeightLimitKg:     intPointer(25000),
				HazmatRestricted:  true,
			},
		},
	})

	event := &rcdf.SourceEvent{
		PrimaryIdentifier: "IA-2026-00017",
		Description:       "Multi-vehicle accident",
		Location:          rcdf.NewPointLocation(41.6, -93.8),
		StartDateTime:     time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC),
	}

	base := timEncoder.EncodeEventTIM(event)
	message, err := timEncoder.EncodeEventCVTIM(context.Background(), event)

	assert.NoError(t, err)
	assert.NotNil(t, message.CommercialVehicle)
	assert.Equal(t, 25000, *message.CommercialVehicle.WeightLimitKg)
	assert.True(t, message.CommercialVehicle.HazmatRestricted)

	// The extension must not alter any base TIM field
	assert.Equal(t, base.DataFrames, message.DataFrames)
}
