package grid

import (
	"strconv"

	"popfly/internal/domain"
)

// tokenWidth is the implied number of digits in a full grid coordinate.
const tokenWidth = 5

// ExpandToken converts a 1-5 digit grid token into metres by right-padding it
// to tokenWidth digits: ExpandToken("037") == 3700.
func ExpandToken(token string) (float64, error) {
	if len(token) == 0 || len(token) > tokenWidth {
		return 0, &domain.InvalidTokenError{Token: token}
	}
	for _, r := range token {
		if r < '0' || r > '9' {
			return 0, &domain.InvalidTokenError{Token: token}
		}
	}
	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, &domain.InvalidTokenError{Token: token}
	}
	scale := 1
	for i := len(token); i < tokenWidth; i++ {
		scale *= 10
	}
	return float64(n * scale), nil
}
