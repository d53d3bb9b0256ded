package encoder

import (
	"time"

	"github.com/roadcast/roadcast/pkg/rcdf"
	"github.com/roadcast/roadcast/pkg/util"
)

const maxContentTextLength = 500

// advisoryPriorityThreshold is a hard wire-format threshold: frames at or
// below it are plain advisories, everything above is road signage
const advisoryPriorityThreshold = 2

// Encoder assembles traveler information messages. It is stateless apart
// from the injected Sequencer (and optional CVResolver for the CV-TIM
// variant), so a single instance is safe for concurrent use.
type Encoder struct {
	Sequencer  *Sequencer
	CVResolver *CVExtensionResolver
}

func NewEncoder(sequencer *Sequencer) *Encoder {
	return &Encoder{
		Sequencer: sequencer,
	}
}

func frameType(priority int) rcdf.FrameType {
	if priority <= advisoryPriorityThreshold {
		return rcdf.FrameTypeAdvisory
	}

	return rcdf.FrameTypeRoadSignage
}

func buildDataFrame(classification Classification, region rcdf.GeographicalPath, window TimeWindow, text string) rcdf.TravelerDataFrame {
	return rcdf.TravelerDataFrame{
		FrameType: frameType(classification.Priority),

		MsgID: rcdf.RoadSignID{
			Position:  region.Anchor,
			ViewAngle: region.ViewAngle,
			MUTCDCode: classification.SignCode,
		},

		StartYear:         window.StartYear,
		StartMinuteOfYear: window.StartMinuteOfYear,
		DurationMinutes:   window.DurationMinutes,

		Priority: classification.Priority,

		Regions: []rcdf.GeographicalPath{region},

		Content: rcdf.FrameContent{
			ITISCodes: itisCodeValues(classification.Codes),
			Text:      util.TrimString(text, maxContentTextLength),
		},
	}
}

func (e *Encoder) newMessage(frames ...rcdf.TravelerDataFrame) *rcdf.TravelerMessage {
	return &rcdf.TravelerMessage{
		MsgCnt:     e.Sequencer.NextMsgCnt(),
		Timestamp:  time.Now().UTC(),
		PacketID:   e.Sequencer.NewPacketID(),
		DataFrames: frames,
	}
}

// EncodeEventTIM builds the base traveler message for an incident/condition
// event
func (e *Encoder) EncodeEventTIM(event *rcdf.SourceEvent) *rcdf.TravelerMessage {
	classification := ClassifyEvent(event)
	region := EncodeRegion(event.Location, event.Direction, event.LineGeometry, 0)
	window := EncodeTimeWindow(event.StartDateTime, event.EndDateTime, DefaultIncidentDurationMinutes)

	return e.newMessage(buildDataFrame(classification, region, window, event.Description))
}

// EncodeSensorTIM builds a warning message for an environmental/traffic
// reading. It returns nil when no warning threshold fires - the caller must
// suppress the message, not treat it as an error.
func (e *Encoder) EncodeSensorTIM(reading *rcdf.SensorReading, radiusKm float64) *rcdf.TravelerMessage {
	warning := ClassifySensor(reading)
	if warning == nil {
		return nil
	}

	region := EncodeRegion(reading.Location, "", nil, radiusKm)
	window := EncodeTimeWindow(reading.ObservationDateTime, time.Time{}, DefaultSensorDurationMinutes)

	return e.newMessage(buildDataFrame(warning.Classification, region, window, string(warning.Type)))
}

// EncodeWorkZoneTIM builds the message for a work-zone feature
func (e *Encoder) EncodeWorkZoneTIM(feature *rcdf.WorkZoneFeature) *rcdf.TravelerMessage {
	classification := ClassifyWorkZone(feature)

	var lineGeometry [][]float64
	if feature.GeometryType == "LineString" {
		lineGeometry = feature.Geometry
	}

	region := EncodeRegion(feature.AnchorLocation(), "", lineGeometry, 0)
	window := EncodeTimeWindow(feature.StartDateTime, feature.EndDateTime, DefaultIncidentDurationMinutes)

	return e.newMessage(buildDataFrame(classification, region, window, feature.Description))
}
