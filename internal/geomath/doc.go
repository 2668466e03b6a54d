// Package geomath computes planar distance and north-referenced bearing
// between grid points and converts bearings into mil systems.
//
// Grid north is treated as true north; no magnetic or convergence correction
// is applied. That approximation holds for the short ranges (a few km) this
// tool is used at and is not enforced at runtime.
package geomath
