package encoder

import (
	"context"
	"errors"

	"github.com/sourcegraph/conc"
	"golang.org/x/exp/slices"

	"github.com/roadcast/roadcast/pkg/rcdf"
	"github.com/roadcast/roadcast/pkg/spatial"
)

const (
	DefaultRestrictionRadiusKm = 50.0
	DefaultParkingRadiusKm     = 80.0
	DefaultMinimumAvailable    = 1

	maxParkingFacilities = 5
)

// CVExtensionResolver aggregates nearby routing restrictions and truck
// parking into the commercial-vehicle extension block.
type CVExtensionResolver struct {
	Finder spatial.Finder

	RestrictionRadiusKm float64
	ParkingRadiusKm     float64
	MinimumAvailable    int
}

func NewCVExtensionResolver(finder spatial.Finder) *CVExtensionResolver {
	return &CVExtensionResolver{
		Finder: finder,

		RestrictionRadiusKm: DefaultRestrictionRadiusKm,
		ParkingRadiusKm:     DefaultParkingRadiusKm,
		MinimumAvailable:    DefaultMinimumAvailable,
	}
}

// Resolve runs the restriction and parking radius queries concurrently.
// A failed or timed-out query degrades to its empty-result defaults; the
// returned error only reports the degradation so callers can count it, the
// extension is always usable.
func (r *CVExtensionResolver) Resolve(ctx context.Context, location *rcdf.Location) (*rcdf.CommercialVehicleExtension, error) {
	var restrictions []rcdf.RestrictionRecord
	var facilities []rcdf.ParkingFacility
	var restrictionErr, parkingErr error

	var waitGroup conc.WaitGroup
	waitGroup.Go(func() {
		restrictions, restrictionErr = r.Finder.FindRestrictions(ctx, location, r.RestrictionRadiusKm)
	})
	waitGroup.Go(func() {
		facilities, parkingErr = r.Finder.FindParkingFacilities(ctx, location, r.ParkingRadiusKm)
	})
	waitGroup.Wait()

	extension := aggregateRestrictions(restrictions)
	r.attachParking(extension, location, facilities)

	return extension, errors.Join(restrictionErr, parkingErr)
}

// aggregateRestrictions reduces matched records to the most restrictive
// values: minimum of every present limit, OR of every flag. Absent limits are
// excluded from the reduction rather than treated as zero, and notes keep the
// store's return order.
func aggregateRestrictions(restrictions []rcdf.RestrictionRecord) *rcdf.CommercialVehicleExtension {
	extension := &rcdf.CommercialVehicleExtension{}

	for _, restriction := range restrictions {
		extension.WeightLimitKg = minimumLimit(extension.WeightLimitKg, restriction.WeightLimitKg)
		extension.HeightLimitCm = minimumLimit(extension.HeightLimitCm, restriction.HeightLimitCm)
		extension.LengthLimitCm = minimumLimit(extension.LengthLimitCm, restriction.LengthLimitCm)

		extension.HazmatRestricted = extension.HazmatRestricted || restriction.HazmatRestricted
		extension.OversizeRestricted = extension.OversizeRestricted || restriction.OversizeRestricted

		if restriction.Note != "" {
			extension.RestrictionNotes = append(extension.RestrictionNotes, restriction.Note)
		}
	}

	return extension
}

func minimumLimit(current *int, candidate *int) *int {
	if candidate == nil {
		return current
	}
	if current == nil || *candidate < *current {
		value := *candidate
		return &value
	}

	return current
}

func (r *CVExtensionResolver) attachParking(extension *rcdf.CommercialVehicleExtension, location *rcdf.Location, facilities []rcdf.ParkingFacility) {
	var nearby []rcdf.NearbyParking

	for _, facility := range facilities {
		if facility.AvailableSpaces < r.MinimumAvailable {
			continue
		}

		nearby = append(nearby, rcdf.NearbyParking{
			PrimaryIdentifier: facility.PrimaryIdentifier,

			Name:       facility.Name,
			DistanceKm: location.HaversineDistanceKm(facility.Location),

			Capacity:        facility.Capacity,
			AvailableSpaces: facility.AvailableSpaces,

			Amenities:    facility.Amenities,
			FacilityType: facility.FacilityType,
		})
	}

	slices.SortFunc(nearby, func(a, b rcdf.NearbyParking) int {
		switch {
		case a.DistanceKm < b.DistanceKm:
			return -1
		case a.DistanceKm > b.DistanceKm:
			return 1
		}
		return 0
	})

	if len(nearby) > maxParkingFacilities {
		nearby = nearby[:maxParkingFacilities]
	}

	extension.HasNearbyParking = len(nearby) > 0
	extension.ParkingFacilities = nearby
}
