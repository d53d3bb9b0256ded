package encoder

import "github.com/roadcast/roadcast/pkg/rcdf"

// ClassifyWorkZone inspects worker presence, lane impacts and posted speed
// reductions. Each condition appends its own codes; the priority is the most
// severe condition present (workers dominate).
func ClassifyWorkZone(feature *rcdf.WorkZoneFeature) Classification {
	var codes []ITISCode
	priority := defaultPriority

	if feature.WorkersPresent {
		codes = append(codes, ITISWorkersOnRoadway, ITISCaution)
		priority = max(priority, 6)
	}

	if feature.LanesClosed() {
		codes = append(codes, ITISLanesClosed)
		priority = max(priority, 5)
	}

	if feature.ReducedSpeedLimitMPH > 0 {
		codes = append(codes, ITISSpeedLimitReduced)
		priority = max(priority, 4)
	}

	if len(codes) == 0 {
		codes = append(codes, ITISRoadWorkAhead)
	}

	return Classification{
		Priority: priority,
		Codes:    codes,
		SignCode: "W20-1",
	}
}
