package rcdf

import "time"

// TravelerMessage is the J2735-shaped traveler information message broadcast
// to roadside units. Field scaling and ranges follow the wire format, so the
// emitters must not be changed without checking interoperability.
type TravelerMessage struct {
	MsgCnt     int                 `groups:"basic"` // 0-127, wraps
	Timestamp  time.Time           `groups:"basic"`
	PacketID   string              `groups:"basic"`
	DataFrames []TravelerDataFrame `groups:"basic"`

	// CommercialVehicle is only set on the CV-TIM variant
	CommercialVehicle *CommercialVehicleExtension `json:"commercialVehicle,omitempty" groups:"basic"`
}

type TravelerDataFrame struct {
	FrameType FrameType `groups:"basic"`

	MsgID RoadSignID `groups:"basic"`

	StartYear         int `groups:"basic"`
	StartMinuteOfYear int `groups:"basic"`
	DurationMinutes   int `groups:"basic"` // 0-32767

	Priority int `groups:"basic"` // 0-7

	Regions []GeographicalPath `groups:"basic"`

	Content FrameContent `groups:"basic"`
}

type FrameType string

const (
	FrameTypeAdvisory    FrameType = "advisory"
	FrameTypeRoadSignage FrameType = "roadSignage"
)

type RoadSignID struct {
	Position  ScaledPosition `groups:"basic"`
	ViewAngle uint16         `groups:"basic"`
	MUTCDCode string         `groups:"basic"`
}

// ScaledPosition holds coordinates as degrees multiplied by 1e7 and rounded,
// elevation in decimetres (0 when unknown)
type ScaledPosition struct {
	Latitude  int64 `groups:"basic"`
	Longitude int64 `groups:"basic"`
	Elevation int64 `groups:"basic"`
}

func (p ScaledPosition) LatitudeDegrees() float64 {
	return float64(p.Latitude) / 1e7
}

func (p ScaledPosition) LongitudeDegrees() float64 {
	return float64(p.Longitude) / 1e7
}

type GeographicalPath struct {
	Anchor ScaledPosition `groups:"basic"`

	LaneWidthCm    int            `groups:"basic"`
	Directionality Directionality `groups:"basic"`

	// ExtentMeters is a short path extension ahead of the anchor
	ExtentMeters int `groups:"basic"`

	ViewAngle uint16 `groups:"basic"`
}

type Directionality int

const (
	DirectionalityUnavailable Directionality = 0
	DirectionalityForward     Directionality = 1
	DirectionalityReverse     Directionality = 2
	DirectionalityBoth        Directionality = 3
)

type FrameContent struct {
	ITISCodes []int  `groups:"basic"`
	Text      string `groups:"basic"`
}

type CommercialVehicleExtension struct {
	WeightLimitKg *int `groups:"basic"`
	HeightLimitCm *int `groups:"basic"`
	LengthLimitCm *int `groups:"basic"`

	HazmatRestricted   bool `groups:"basic"`
	OversizeRestricted bool `groups:"basic"`

	RestrictionNotes []string `groups:"basic"`

	HasNearbyParking  bool            `groups:"basic"`
	ParkingFacilities []NearbyParking `groups:"basic"`
}

type NearbyParking struct {
	PrimaryIdentifier string `groups:"basic"`

	Name       string  `groups:"basic"`
	DistanceKm float64 `groups:"basic"`

	Capacity        int `groups:"basic"`
	AvailableSpaces int `groups:"basic"`

	Amenities    []string `groups:"basic"`
	FacilityType string   `groups:"basic"`
}
