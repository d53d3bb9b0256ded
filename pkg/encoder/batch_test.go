package encoder

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/roadcast/roadcast/pkg/rcdf"
)

// flakyFinder fails restriction lookups for one specific latitude
type flakyFinder struct {
	fakeFinder

	failLatitude float64
}

func (f *flakyFinder) FindRestrictions(ctx context.Context, location *rcdf.Location, radiusKm float64) ([]rcdf.RestrictionRecord, error) {
	if location.Latitude() == f.failLatitude {
		return nil, errors.New("spatial store timeout")
	}

	return f.fakeFinder.FindRestrictions(ctx, location, radiusKm)
}

func TestEncodeBatchCVTIM(t *testing.T) {
	timEncoder := NewEncoder(NewSequencer())
	timEncoder.CVResolver = NewCVExtensionResolver(&flakyFinder{failLatitude: 42.5})

	events := []*rcdf.SourceEvent{
		{
			PrimaryIdentifier: "IA-1",
			Description:       "Crash",
			Location:          rcdf.NewPointLocation(41.6, -93.8),
			StartDateTime:     time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			PrimaryIdentifier: "IA-2",
			Description:       "Stalled vehicle",
			Location:          rcdf.NewPointLocation(42.5, -94.2),
			StartDateTime:     time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			PrimaryIdentifier: "IA-3",
			Description:       "Debris on roadway",
			Location:          rcdf.NewPointLocation(43.1, -95.0),
			StartDateTime:     time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	result := timEncoder.EncodeBatchCVTIM(context.Background(), events, 2)

	// Every event still gets a message, aligned with the input order
	assert.Len(t, result.Messages, 3)
	for i, message := range result.Messages {
		assert.NotNil(t, message, events[i].PrimaryIdentifier)
		assert.NotNil(t, message.CommercialVehicle, events[i].PrimaryIdentifier)
	}

	// The failing event degraded to defaults and is reported out-of-band
	assert.Len(t, result.Failures, 1)
	assert.Equal(t, "IA-2", result.Failures[0].EventID)
	assert.Contains(t, result.Failures[0].Reason, "spatial store timeout")
	assert.Nil(t, result.Messages[1].CommercialVehicle.WeightLimitKg)
}

func TestEncodeBatchCVTIM_EmptyBatch(t *testing.T) {
	timEncoder := NewEncoder(NewSequencer())
	timEncoder.CVResolver = NewCVExtensionResolver(&fakeFinder{})

	result := timEncoder.EncodeBatchCVTIM(context.Background(), nil, 0)

	assert.Empty(t, result.Messages)
	assert.Empty(t, result.Failures)
}
