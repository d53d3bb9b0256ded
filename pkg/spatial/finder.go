package spatial

import (
	"context"

	"github.com/roadcast/roadcast/pkg/rcdf"
)

// Finder is the radius-bounded query interface the encoder uses against the
// spatial store. Empty results are the common case and never an error.
type Finder interface {
	FindRestrictions(ctx context.Context, location *rcdf.Location, radiusKm float64) ([]rcdf.RestrictionRecord, error)
	FindParkingFacilities(ctx context.Context, location *rcdf.Location, radiusKm float64) ([]rcdf.ParkingFacility, error)
}
