package tui

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpectrumToneBinDominates(t *testing.T) {
	// Five cycles per period should put all the power in bin 5.
	const n = 256
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = math.Sin(2 * math.Pi * 5 * float64(i) / n)
	}

	spec := Spectrum(samples)
	require.Len(t, spec, n/2)

	maxIdx := 0
	for i, v := range spec {
		if v > spec[maxIdx] {
			maxIdx = i
		}
	}
	assert.Equal(t, 5, maxIdx)

	// Everything else sits well below the tone.
	for i, v := range spec {
		if i != 5 {
			assert.Less(t, v, spec[5]-40)
		}
	}
}

func TestSpectrumDCOnly(t *testing.T) {
	samples := []float64{0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5}
	spec := Spectrum(samples)
	require.Len(t, spec, 4)

	for i, v := range spec {
		if i != 0 {
			assert.Less(t, v, spec[0]-40)
		}
	}
}

func TestSpectrumDegenerateInput(t *testing.T) {
	assert.Nil(t, Spectrum(nil))
	assert.Nil(t, Spectrum([]float64{1}))
}
