package geomath

import (
	"math"

	"popfly/internal/domain"
)

// Solve returns the planar distance in metres and the grid bearing in degrees
// from start to end.
//
// The bearing is measured clockwise from grid north (atan2 of easting delta
// over northing delta), normalized to [0, 360). Coincident points yield a
// bearing of 0 by convention; atan2(0, 0) is degenerate and Go happens to
// return 0, but the value is a policy here, not a derived fact.
func Solve(start, end domain.Point) (distanceM, bearingDeg float64) {
	dx := end.Easting - start.Easting
	dy := end.Northing - start.Northing

	distanceM = math.Hypot(dx, dy)
	if dx == 0 && dy == 0 {
		return 0, 0
	}
	bearingDeg = math.Mod(math.Atan2(dx, dy)*180/math.Pi+360, 360)
	return distanceM, bearingDeg
}
