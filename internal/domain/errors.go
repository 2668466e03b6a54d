package domain

import "fmt"

// InvalidTokenError reports a grid-digit token that is empty, longer than five
// characters, or contains a non-digit character.
type InvalidTokenError struct {
	Token string
}

func (e *InvalidTokenError) Error() string {
	return fmt.Sprintf("invalid grid token %q: want 1-5 decimal digits", e.Token)
}

// NonFiniteValueError reports a coordinate that is NaN or infinite.
type NonFiniteValueError struct {
	Value float64
}

func (e *NonFiniteValueError) Error() string {
	return fmt.Sprintf("coordinate %v is not a finite number", e.Value)
}

// ShapeError reports a coordinate pair that does not have exactly two
// components. A third component is rejected rather than ignored; elevation is
// intentionally unsupported.
type ShapeError struct {
	Count int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("expected exactly 2 coordinates (easting, northing), got %d", e.Count)
}
