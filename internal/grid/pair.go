package grid

import (
	"fmt"
	"math"
	"strings"

	"popfly/internal/domain"
)

// SplitPair splits a comma or whitespace separated pair ("037,050" or
// "037 050") into its two raw tokens, validating each without expanding.
func SplitPair(value string) ([]string, error) {
	fields := strings.Fields(strings.ReplaceAll(value, ",", " "))
	if len(fields) != 2 {
		return nil, &domain.ShapeError{Count: len(fields)}
	}
	if _, err := ExpandToken(fields[0]); err != nil {
		return nil, fmt.Errorf("easting: %w", err)
	}
	if _, err := ExpandToken(fields[1]); err != nil {
		return nil, fmt.Errorf("northing: %w", err)
	}
	return fields, nil
}

// ParsePair parses a comma or whitespace separated pair of grid tokens into a
// Point. Exactly two tokens are required.
func ParsePair(value string) (domain.Point, error) {
	fields, err := SplitPair(value)
	if err != nil {
		return domain.Point{}, err
	}
	easting, err := ExpandToken(fields[0])
	if err != nil {
		return domain.Point{}, fmt.Errorf("easting: %w", err)
	}
	northing, err := ExpandToken(fields[1])
	if err != nil {
		return domain.Point{}, fmt.Errorf("northing: %w", err)
	}
	return domain.Point{Easting: easting, Northing: northing}, nil
}

// NormalizePair converts a two element slice of grid tokens or metre values
// into a Point. Strings are routed through ExpandToken; numbers are taken as
// metres directly. This is the single place where the token-or-metres decision
// lives; everything past here works in metres.
func NormalizePair(parts []any) (domain.Point, error) {
	if len(parts) != 2 {
		return domain.Point{}, &domain.ShapeError{Count: len(parts)}
	}
	easting, err := normalizeCoordinate(parts[0])
	if err != nil {
		return domain.Point{}, fmt.Errorf("easting: %w", err)
	}
	northing, err := normalizeCoordinate(parts[1])
	if err != nil {
		return domain.Point{}, fmt.Errorf("northing: %w", err)
	}
	return domain.Point{Easting: easting, Northing: northing}, nil
}

func normalizeCoordinate(v any) (float64, error) {
	switch c := v.(type) {
	case string:
		return ExpandToken(c)
	case float64:
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return 0, &domain.NonFiniteValueError{Value: c}
		}
		return c, nil
	case int:
		return float64(c), nil
	default:
		return 0, fmt.Errorf("unsupported coordinate type %T (want grid token or number)", v)
	}
}
