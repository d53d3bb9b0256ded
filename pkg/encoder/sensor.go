package encoder

import "github.com/roadcast/roadcast/pkg/rcdf"

type WarningType string

const (
	WarningTypeIce           WarningType = "ice"
	WarningTypeSlippery      WarningType = "slippery"
	WarningTypeLowVisibility WarningType = "low_visibility"
	WarningTypeHighWinds     WarningType = "high_winds"
	WarningTypeCongestion    WarningType = "congestion"
)

const (
	icePavementTemperatureF = 32.0
	slipperyFrictionMinimum = 0.4
	lowVisibilityDistance   = 500.0
	highWindSpeed           = 40.0
	congestionTrafficSpeed  = 30.0
	congestionTrafficVolume = 500
)

var sensorWarningPriorities = map[WarningType]int{
	WarningTypeIce:           6,
	WarningTypeSlippery:      5,
	WarningTypeLowVisibility: 5,
	WarningTypeHighWinds:     4,
	WarningTypeCongestion:    3,
}

var sensorWarningCodes = map[WarningType][]ITISCode{
	WarningTypeIce:           {ITISIceOnRoadway, ITISSlipperyRoadway, ITISReduceSpeed},
	WarningTypeSlippery:      {ITISSlipperyRoadway, ITISReduceSpeed},
	WarningTypeLowVisibility: {ITISVisibilityReduced, ITISCaution},
	WarningTypeHighWinds:     {ITISHighWinds, ITISCaution},
	WarningTypeCongestion:    {ITISCongestion, ITISSlowTraffic},
}

type SensorWarning struct {
	Type WarningType

	Classification
}

func isEnvironmentalSensor(sensorType rcdf.SensorType) bool {
	return sensorType == rcdf.SensorTypeRWIS || sensorType == rcdf.SensorTypeWeather
}

// ClassifySensor returns nil when no threshold fires, which means the caller
// must suppress the message rather than emit a default one.
func ClassifySensor(reading *rcdf.SensorReading) *SensorWarning {
	var warningType WarningType

	switch {
	case isEnvironmentalSensor(reading.SensorType) &&
		reading.PavementTemperature <= icePavementTemperatureF && reading.MoisturePresent:
		warningType = WarningTypeIce
	case reading.FrictionCoefficient > 0 && reading.FrictionCoefficient < slipperyFrictionMinimum:
		warningType = WarningTypeSlippery
	case reading.VisibilityDistance > 0 && reading.VisibilityDistance < lowVisibilityDistance:
		warningType = WarningTypeLowVisibility
	case reading.WindSpeed > highWindSpeed:
		warningType = WarningTypeHighWinds
	case reading.SensorType == rcdf.SensorTypeTraffic &&
		reading.TrafficSpeed > 0 && reading.TrafficSpeed < congestionTrafficSpeed &&
		reading.TrafficVolume > congestionTrafficVolume:
		warningType = WarningTypeCongestion
	default:
		return nil
	}

	priority, ok := sensorWarningPriorities[warningType]
	if !ok {
		priority = defaultPriority
	}

	return &SensorWarning{
		Type: warningType,
		Classification: Classification{
			Priority: priority,
			Codes:    sensorWarningCodes[warningType],
			SignCode: sensorSignCode(warningType),
		},
	}
}
