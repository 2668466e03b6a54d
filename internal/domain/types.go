package domain

import "fmt"

// Point is a 2D grid position in metres. Both coordinates are finite by
// construction; a Point is never mutated after creation.
type Point struct {
	Easting  float64
	Northing float64
}

// Pair returns the point as an [easting, northing] array for wire payloads.
func (p Point) Pair() [2]float64 { return [2]float64{p.Easting, p.Northing} }

// AngularSystem selects the mil convention used for azimuths.
//
// Both variants are "mils"; they differ only in how many units make up a full
// circle. Adding a convention means adding a constant here and a case in
// CircleUnits — nothing else branches on the system.
type AngularSystem int

const (
	// NATO divides the circle into 6400 mils.
	NATO AngularSystem = iota
	// Warsaw divides the circle into 6000 mils (RU convention).
	Warsaw
)

// CircleUnits returns the number of angular units in a full circle.
func (s AngularSystem) CircleUnits() float64 {
	switch s {
	case Warsaw:
		return 6000
	default:
		return 6400
	}
}

// String returns the wire name of the system ("nato" or "ru").
func (s AngularSystem) String() string {
	if s == Warsaw {
		return "ru"
	}
	return "nato"
}

// ParseAngularSystem maps a faction name onto an AngularSystem.
func ParseAngularSystem(name string) (AngularSystem, error) {
	switch name {
	case "nato":
		return NATO, nil
	case "ru":
		return Warsaw, nil
	default:
		return NATO, fmt.Errorf("unknown faction %q (want \"nato\" or \"ru\")", name)
	}
}

// Result is the outcome of a single computation. Distance and azimuth are
// unrounded; callers apply precision at render time so every interface rounds
// identically.
type Result struct {
	DistanceM   float64
	AzimuthMils float64
	System      AngularSystem
	Start       Point
	End         Point
}
