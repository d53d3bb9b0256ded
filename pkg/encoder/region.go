package encoder

import (
	"math"
	"strings"

	"github.com/roadcast/roadcast/pkg/rcdf"
)

const (
	// DefaultLaneWidthCm is 12 feet in centimetres
	DefaultLaneWidthCm = 366

	// DefaultExtentMeters is the short path extension ahead of the anchor
	// used for point events
	DefaultExtentMeters = 500
)

// Compass heading bits for the 16-bit view angle
const (
	HeadingNorth uint16 = 1 << 0
	HeadingEast  uint16 = 1 << 1
	HeadingSouth uint16 = 1 << 2
	HeadingWest  uint16 = 1 << 3

	HeadingOmnidirectional uint16 = 0xFFFF
)

func ScaleCoordinate(degrees float64) int64 {
	return int64(math.Round(degrees * 1e7))
}

func UnscaleCoordinate(scaled int64) float64 {
	return float64(scaled) / 1e7
}

// ViewAngleFromDirection maps free-text direction hints ("Eastbound",
// "north/south") onto heading bits. Composite names set multiple bits;
// anything unparseable is omnidirectional.
func ViewAngleFromDirection(direction string) uint16 {
	lower := strings.ToLower(direction)

	var angle uint16

	if strings.Contains(lower, "north") {
		angle |= HeadingNorth
	}
	if strings.Contains(lower, "south") {
		angle |= HeadingSouth
	}
	if strings.Contains(lower, "east") {
		angle |= HeadingEast
	}
	if strings.Contains(lower, "west") {
		angle |= HeadingWest
	}

	if angle == 0 {
		return HeadingOmnidirectional
	}

	return angle
}

// EncodeRegion builds the spatial descriptor for a message. Line geometry is
// anchored at its first coordinate; full-path fidelity belongs to the CIFS
// emitter only. A positive radiusKm (sensor/area warnings) scales the extent,
// otherwise the point-event default applies.
//
// A record with no anchor position at all is a programmer error and panics.
func EncodeRegion(location *rcdf.Location, direction string, lineGeometry [][]float64, radiusKm float64) rcdf.GeographicalPath {
	var latitude, longitude float64

	if len(lineGeometry) > 0 {
		longitude = lineGeometry[0][0]
		latitude = lineGeometry[0][1]
	} else if location != nil {
		latitude = location.Latitude()
		longitude = location.Longitude()
	} else {
		panic("region requires an anchor position")
	}

	extentMeters := DefaultExtentMeters
	if radiusKm > 0 {
		extentMeters = int(radiusKm * 1000)
	}

	return rcdf.GeographicalPath{
		Anchor: rcdf.ScaledPosition{
			Latitude:  ScaleCoordinate(latitude),
			Longitude: ScaleCoordinate(longitude),
			Elevation: 0,
		},
		LaneWidthCm:    DefaultLaneWidthCm,
		Directionality: rcdf.DirectionalityBoth,
		ExtentMeters:   extentMeters,
		ViewAngle:      ViewAngleFromDirection(direction),
	}
}
