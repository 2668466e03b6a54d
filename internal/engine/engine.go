package engine

import (
	"fmt"

	"popfly/internal/domain"
	"popfly/internal/geomath"
	"popfly/internal/grid"
)

// Compute solves distance and azimuth from start to end in the given angular
// system. Inputs are already-normalized metric points, so this cannot fail.
func Compute(start, end domain.Point, system domain.AngularSystem) domain.Result {
	distance, bearing := geomath.Solve(start, end)
	return domain.Result{
		DistanceM:   distance,
		AzimuthMils: geomath.DegreesToMils(bearing, system),
		System:      system,
		Start:       start,
		End:         end,
	}
}

// ComputeTokens parses two grid-digit pairs ("EEE,NNN") and computes the
// result. Parse errors name the offending argument.
func ComputeTokens(start, end string, system domain.AngularSystem) (domain.Result, error) {
	startPt, err := grid.ParsePair(start)
	if err != nil {
		return domain.Result{}, fmt.Errorf("start: %w", err)
	}
	endPt, err := grid.ParsePair(end)
	if err != nil {
		return domain.Result{}, fmt.Errorf("end: %w", err)
	}
	return Compute(startPt, endPt, system), nil
}
