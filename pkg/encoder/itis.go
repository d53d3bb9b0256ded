package encoder

// ITIS condition codes used in frame content. The table is fixed; values are
// grouped into category ranges and must stay stable for interoperability.
type ITISCode int

const (
	// Advisory (1-256)
	ITISCaution     ITISCode = 128
	ITISDanger      ITISCode = 134
	ITISReduceSpeed ITISCode = 139

	// Speed & traffic (257-512)
	ITISCongestion        ITISCode = 258
	ITISSlowTraffic       ITISCode = 262
	ITISSpeedLimitReduced ITISCode = 268

	// Work zone (513-768)
	ITISRoadWorkAhead    ITISCode = 519
	ITISLaneClosed       ITISCode = 521
	ITISLanesClosed      ITISCode = 522
	ITISConstruction     ITISCode = 531
	ITISWorkersOnRoadway ITISCode = 536

	// Incident (769-1024)
	ITISIncidentAhead   ITISCode = 769
	ITISAccident        ITISCode = 773
	ITISStalledVehicle  ITISCode = 781
	ITISDebrisOnRoadway ITISCode = 790
	ITISWrongWayDriver  ITISCode = 801

	// Weather (5889-6143)
	ITISIceOnRoadway      ITISCode = 5908
	ITISSlipperyRoadway   ITISCode = 5920
	ITISVisibilityReduced ITISCode = 5940
	ITISHighWinds         ITISCode = 5961
)

type ITISCategory string

const (
	ITISCategoryAdvisory     ITISCategory = "Advisory"
	ITISCategorySpeedTraffic ITISCategory = "SpeedTraffic"
	ITISCategoryWorkZone     ITISCategory = "WorkZone"
	ITISCategoryIncident     ITISCategory = "Incident"
	ITISCategoryWeather      ITISCategory = "Weather"
	ITISCategoryUnknown      ITISCategory = "Unknown"
)

func (c ITISCode) Category() ITISCategory {
	switch {
	case c >= 1 && c <= 256:
		return ITISCategoryAdvisory
	case c >= 257 && c <= 512:
		return ITISCategorySpeedTraffic
	case c >= 513 && c <= 768:
		return ITISCategoryWorkZone
	case c >= 769 && c <= 1024:
		return ITISCategoryIncident
	case c >= 5889 && c <= 6143:
		return ITISCategoryWeather
	}

	return ITISCategoryUnknown
}

func itisCodeValues(codes []ITISCode) []int {
	values := make([]int, len(codes))
	for i, code := range codes {
		values[i] = int(code)
	}

	return values
}
