package geomath

import "popfly/internal/domain"

// DegreesToMils converts a bearing in degrees into the angular units of the
// given system: 6400 mils per circle for NATO, 6000 for Warsaw.
func DegreesToMils(bearingDeg float64, system domain.AngularSystem) float64 {
	return bearingDeg * system.CircleUnits() / 360
}
