package encoder

import "time"

const (
	MaxDurationMinutes = 32767

	DefaultIncidentDurationMinutes = 120
	DefaultSensorDurationMinutes   = 60
)

type TimeWindow struct {
	StartYear         int
	StartMinuteOfYear int
	DurationMinutes   int
}

// EncodeTimeWindow converts wall-clock times into the compact
// year/minute-of-year/duration triple. A zero end time applies the default
// duration; an end before the start clamps to 0 rather than erroring.
func EncodeTimeWindow(start time.Time, end time.Time, defaultDurationMinutes int) TimeWindow {
	yearStart := time.Date(start.Year(), time.January, 1, 0, 0, 0, 0, start.Location())

	durationMinutes := defaultDurationMinutes
	if !end.IsZero() {
		durationMinutes = int(end.Sub(start).Minutes())

		if durationMinutes < 0 {
			durationMinutes = 0
		}
		if durationMinutes > MaxDurationMinutes {
			durationMinutes = MaxDurationMinutes
		}
	}

	return TimeWindow{
		StartYear:         start.Year(),
		StartMinuteOfYear: int(start.Sub(yearStart).Minutes()),
		DurationMinutes:   durationMinutes,
	}
}
