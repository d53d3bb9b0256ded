package rcdf

import "time"

type SensorReading struct {
	PrimaryIdentifier string `groups:"basic"`

	ObservationDateTime time.Time `groups:"basic"`

	DataSource *DataSource `groups:"internal"`

	SensorType SensorType `groups:"basic"`

	PavementTemperature float64 `groups:"basic"` // Fahrenheit
	MoisturePresent     bool    `groups:"basic"`
	FrictionCoefficient float64 `groups:"basic"` // 0 when not reported
	VisibilityDistance  float64 `groups:"basic"` // 0 when not reported
	WindSpeed           float64 `groups:"basic"`

	TrafficSpeed  float64 `groups:"basic"`
	TrafficVolume int     `groups:"basic"`

	Location *Location `groups:"basic"`
}

type SensorType string

const (
	SensorTypeRWIS    SensorType = "rwis"
	SensorTypeWeather SensorType = "weather"
	SensorTypeTraffic SensorType = "traffic"
)
