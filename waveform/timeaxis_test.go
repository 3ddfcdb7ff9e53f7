package waveform

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeAxisHalfOpen(t *testing.T) {
	tests := []struct {
		name    string
		periodS float64
		n       int
	}{
		{name: "millisecond period", periodS: 1e-3, n: 2048},
		{name: "ramsey period", periodS: 1e-5, n: 2048},
		{name: "single sample", periodS: 1.0, n: 1},
		{name: "tiny axis", periodS: 2.0, n: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			axis, err := TimeAxis(tt.periodS, tt.n, false)
			require.NoError(t, err)
			require.Len(t, axis, tt.n)

			assert.Equal(t, 0.0, axis[0], "axis must start at 0")
			step := tt.periodS / float64(tt.n)
			for i, v := range axis {
				assert.Less(t, v, tt.periodS, "half-open axis must exclude the period")
				assert.InDelta(t, float64(i)*step, v, tt.periodS*1e-12)
				if i > 0 {
					assert.Greater(t, v, axis[i-1], "axis must be strictly increasing")
				}
			}
		})
	}
}

func TestTimeAxisInclusive(t *testing.T) {
	axis, err := TimeAxis(1e-3, 5, true)
	require.NoError(t, err)
	require.Len(t, axis, 5)

	assert.Equal(t, 0.0, axis[0])
	assert.Equal(t, 1e-3, axis[4], "inclusive axis must end at the period")
	for i := 1; i < len(axis); i++ {
		assert.Greater(t, axis[i], axis[i-1])
	}
}

func TestTimeAxisInclusiveSingleSample(t *testing.T) {
	axis, err := TimeAxis(1.0, 1, true)
	require.NoError(t, err)
	assert.Equal(t, []float64{0}, axis)
}

func TestTimeAxisInvalidArguments(t *testing.T) {
	tests := []struct {
		name    string
		periodS float64
		n       int
	}{
		{name: "zero period", periodS: 0, n: 16},
		{name: "negative period", periodS: -1e-3, n: 16},
		{name: "NaN period", periodS: math.NaN(), n: 16},
		{name: "infinite period", periodS: math.Inf(1), n: 16},
		{name: "zero samples", periodS: 1e-3, n: 0},
		{name: "negative samples", periodS: 1e-3, n: -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := TimeAxis(tt.periodS, tt.n, false)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}
