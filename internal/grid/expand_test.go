package grid

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"popfly/internal/domain"
)

func TestExpandToken(t *testing.T) {
	cases := []struct {
		token string
		want  float64
	}{
		{"037", 3700},
		{"00000", 0},
		{"0", 0},
		{"5", 50000},
		{"12", 12000},
		{"1234", 12340},
		{"12345", 12345},
		{"99999", 99999},
	}
	for _, tc := range cases {
		got, err := ExpandToken(tc.token)
		require.NoError(t, err, "token %q", tc.token)
		assert.Equal(t, tc.want, got, "token %q", tc.token)
	}
}

func TestExpandTokenRejectsMalformedTokens(t *testing.T) {
	for _, token := range []string{"", "123456", "03x", "-12", "1.5", "12 3", "１２"} {
		_, err := ExpandToken(token)
		require.Error(t, err, "token %q", token)

		var tokenErr *domain.InvalidTokenError
		assert.True(t, errors.As(err, &tokenErr), "token %q: want InvalidTokenError, got %v", token, err)
	}
}
