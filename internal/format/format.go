// Package format applies the rounding and rendering rules shared by every
// interface. Distances honor the caller's precision; azimuths are always
// rendered at 0.1-mil resolution regardless of it.
package format

import (
	"fmt"
	"math"

	"popfly/internal/domain"
)

// azimuthPrecision is the fixed number of decimals for azimuth output.
const azimuthPrecision = 1

// Round rounds half away from zero to the given number of decimal places.
// The same rule is used for every numeric output so the CLI, library and HTTP
// API produce bit-identical values.
func Round(value float64, precision int) float64 {
	scale := math.Pow(10, float64(precision))
	return math.Round(value*scale) / scale
}

// Distance renders a distance in metres at the requested precision.
func Distance(value float64, precision int) string {
	return fmt.Sprintf("%.*f", precision, Round(value, precision))
}

// Azimuth renders an azimuth with exactly one decimal place.
func Azimuth(value float64) string {
	return fmt.Sprintf("%.*f", azimuthPrecision, Round(value, azimuthPrecision))
}

// RoundAzimuth rounds an azimuth to its fixed 0.1-unit resolution.
func RoundAzimuth(value float64) float64 {
	return Round(value, azimuthPrecision)
}

// Signed renders a delta with an explicit sign, "+0" included. Kept for
// signed-delta outputs such as an elevation difference if that ever returns.
func Signed(value float64, precision int) string {
	sign := "+"
	if value < 0 {
		sign = "-"
	}
	return fmt.Sprintf("%s%.*f", sign, precision, math.Abs(Round(value, precision)))
}

// Line renders the human-readable result line.
func Line(res domain.Result, precision int) string {
	return fmt.Sprintf("Distance: %s m | Azimuth: %s mils",
		Distance(res.DistanceM, precision), Azimuth(res.AzimuthMils))
}
