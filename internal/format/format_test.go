package format

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"popfly/internal/domain"
)

func TestRound(t *testing.T) {
	assert.Equal(t, 2441.0, Round(2441.3111231467406, 0))
	assert.Equal(t, 2441.3, Round(2441.3111231467406, 1))
	assert.Equal(t, 2441.31, Round(2441.3111231467406, 2))
	// Half away from zero, both signs.
	assert.Equal(t, 3.0, Round(2.5, 0))
	assert.Equal(t, -3.0, Round(-2.5, 0))
}

func TestDistanceHonorsPrecision(t *testing.T) {
	assert.Equal(t, "2441", Distance(2441.3111231467406, 0))
	assert.Equal(t, "2441.311", Distance(2441.3111231467406, 3))
}

func TestAzimuthIsAlwaysOneDecimal(t *testing.T) {
	assert.Equal(t, "622.1", Azimuth(622.0803590854869))
	assert.Equal(t, "0.0", Azimuth(0))
	assert.Equal(t, "1600.0", Azimuth(1600))
}

func TestSignedAlwaysCarriesASign(t *testing.T) {
	assert.Equal(t, "+25", Signed(25.4, 0))
	assert.Equal(t, "-25", Signed(-25.4, 0))
	assert.Equal(t, "+0", Signed(0, 0))
	assert.Equal(t, "-12.5", Signed(-12.5, 1))
}

func TestLine(t *testing.T) {
	res := domain.Result{DistanceM: 2441.3111231467406, AzimuthMils: 622.0803590854869}
	assert.Equal(t, "Distance: 2441 m | Azimuth: 622.1 mils", Line(res, 0))
	assert.Equal(t, "Distance: 2441.3 m | Azimuth: 622.1 mils", Line(res, 1))
}
