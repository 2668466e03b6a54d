package grid

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"popfly/internal/domain"
)

func TestParsePair(t *testing.T) {
	cases := []struct {
		in   string
		want domain.Point
	}{
		{"037,050", domain.Point{Easting: 3700, Northing: 5000}},
		{"037 050", domain.Point{Easting: 3700, Northing: 5000}},
		{"037, 050", domain.Point{Easting: 3700, Northing: 5000}},
		{"00000,00000", domain.Point{}},
		{"12345,1", domain.Point{Easting: 12345, Northing: 10000}},
	}
	for _, tc := range cases {
		got, err := ParsePair(tc.in)
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestParsePairRejectsWrongArity(t *testing.T) {
	for _, in := range []string{"", "037", "037,050,010", "1 2 3 4"} {
		_, err := ParsePair(in)
		require.Error(t, err, "input %q", in)

		var shapeErr *domain.ShapeError
		assert.True(t, errors.As(err, &shapeErr), "input %q: want ShapeError, got %v", in, err)
	}
}

func TestParsePairNamesTheBadField(t *testing.T) {
	_, err := ParsePair("03x,050")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "easting")

	_, err = ParsePair("037,05x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "northing")

	var tokenErr *domain.InvalidTokenError
	assert.True(t, errors.As(err, &tokenErr))
}

func TestNormalizePair(t *testing.T) {
	cases := []struct {
		name  string
		parts []any
		want  domain.Point
	}{
		{"tokens", []any{"037", "050"}, domain.Point{Easting: 3700, Northing: 5000}},
		{"numbers", []any{3700.0, 5000.0}, domain.Point{Easting: 3700, Northing: 5000}},
		{"mixed", []any{"037", 5000.0}, domain.Point{Easting: 3700, Northing: 5000}},
		{"ints", []any{3700, 5000}, domain.Point{Easting: 3700, Northing: 5000}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizePair(tc.parts)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNormalizePairRejectsThreeElements(t *testing.T) {
	// A valid-looking elevation component is still a shape violation.
	_, err := NormalizePair([]any{3700.0, 5000.0, 25.0})
	require.Error(t, err)

	var shapeErr *domain.ShapeError
	require.True(t, errors.As(err, &shapeErr))
	assert.Equal(t, 3, shapeErr.Count)
}

func TestNormalizePairRejectsNonFiniteValues(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := NormalizePair([]any{v, 5000.0})
		require.Error(t, err)

		var finiteErr *domain.NonFiniteValueError
		assert.True(t, errors.As(err, &finiteErr), "value %v: want NonFiniteValueError, got %v", v, err)
	}
}

func TestNormalizePairRejectsUnsupportedTypes(t *testing.T) {
	_, err := NormalizePair([]any{true, 5000.0})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported coordinate type")
}
