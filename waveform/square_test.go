package waveform

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSquareLUT(t *testing.T) {
	p := SquareParams{FRepHz: 1000, Duty: 0.5, High: 1.0, Low: -1.0}
	res, err := BuildSquareLUT(p, 2048, NormalizePeak)
	require.NoError(t, err)

	assert.Equal(t, 1000.0, res.FRep, "f_rep passes through unchanged")
	require.Len(t, res.Samples, 2048)
	require.Len(t, res.Boundaries, 1)
	assert.InDelta(t, 0.0005, res.Boundaries[0], 1e-15)

	var highs, lows int
	for _, v := range res.Samples {
		switch v {
		case 1.0:
			highs++
		case -1.0:
			lows++
		default:
			t.Fatalf("unexpected LUT value %v", v)
		}
	}
	assert.InDelta(t, 1024, highs, 1, "half the samples sit at the high level")
	assert.Equal(t, 2048, highs+lows)
}

func TestBuildSquareLUTStrictTransition(t *testing.T) {
	// f_rep 1000, N 2048: sample 1024 lands exactly on duty*T and the strict
	// comparison puts it on the low level.
	res, err := BuildSquareLUT(SquareParams{FRepHz: 1000, Duty: 0.5, High: 1.0, Low: -1.0}, 2048, NormalizePeak)
	require.NoError(t, err)

	assert.Equal(t, res.Boundaries[0], res.TimeS[1024])
	assert.Equal(t, 1.0, res.Samples[1023])
	assert.Equal(t, -1.0, res.Samples[1024])
}

func TestBuildSquareLUTNormalization(t *testing.T) {
	// Asymmetric levels: peak normalization rescales both by max|level|.
	res, err := BuildSquareLUT(SquareParams{FRepHz: 1e6, Duty: 0.25, High: 2.0, Low: -0.5}, 64, NormalizePeak)
	require.NoError(t, err)

	assert.Equal(t, 1.0, res.Samples[0])
	assert.Equal(t, -0.25, res.Samples[63])
}

func TestBuildSquareLUTNoNormalization(t *testing.T) {
	// "none" keeps raw levels, clipped into LUT range.
	res, err := BuildSquareLUT(SquareParams{FRepHz: 1e6, Duty: 0.25, High: 2.0, Low: -0.5}, 64, NormalizeNone)
	require.NoError(t, err)

	assert.Equal(t, 1.0, res.Samples[0], "raw level above range is clamped")
	assert.Equal(t, -0.5, res.Samples[63])
}

func TestBuildSquareLUTConstantEdges(t *testing.T) {
	tests := []struct {
		name string
		p    SquareParams
	}{
		{name: "duty 0 with zero low", p: SquareParams{FRepHz: 1000, Duty: 0, High: 1.0, Low: 0}},
		{name: "duty 1 with zero high", p: SquareParams{FRepHz: 1000, Duty: 1, High: 0, Low: -1.0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildSquareLUT(tt.p, 2048, NormalizePeak)
			assert.ErrorIs(t, err, ErrNormalization)
		})
	}
}

func TestBuildSquareLUTConstantNonzero(t *testing.T) {
	// duty 0 with a nonzero low is a flat but normalizable waveform.
	res, err := BuildSquareLUT(SquareParams{FRepHz: 1000, Duty: 0, High: 1.0, Low: -0.5}, 256, NormalizePeak)
	require.NoError(t, err)
	for _, v := range res.Samples {
		assert.Equal(t, -1.0, v)
	}
	assert.Equal(t, 0.0, res.Boundaries[0])
}

func TestBuildSquareLUTInvalidArguments(t *testing.T) {
	tests := []struct {
		name string
		p    SquareParams
		n    int
	}{
		{name: "zero f_rep", p: SquareParams{FRepHz: 0, Duty: 0.5, High: 1, Low: -1}, n: 64},
		{name: "negative f_rep", p: SquareParams{FRepHz: -10, Duty: 0.5, High: 1, Low: -1}, n: 64},
		{name: "NaN f_rep", p: SquareParams{FRepHz: math.NaN(), Duty: 0.5, High: 1, Low: -1}, n: 64},
		{name: "duty below range", p: SquareParams{FRepHz: 1000, Duty: -0.1, High: 1, Low: -1}, n: 64},
		{name: "duty above range", p: SquareParams{FRepHz: 1000, Duty: 1.1, High: 1, Low: -1}, n: 64},
		{name: "NaN duty", p: SquareParams{FRepHz: 1000, Duty: math.NaN(), High: 1, Low: -1}, n: 64},
		{name: "bad sample count", p: SquareParams{FRepHz: 1000, Duty: 0.5, High: 1, Low: -1}, n: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildSquareLUT(tt.p, tt.n, NormalizePeak)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}
