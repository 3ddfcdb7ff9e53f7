package waveform

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// RamseyParams holds the timing of a tau–pi/2–tau–pi/2 pulse sequence.
type RamseyParams struct {
	TauS  float64 // gap between pulses, seconds
	TPi2S float64 // half-pulse duration, seconds
}

// BuildGaussianRamseyLUT builds one period of a Gaussian
// tau–pi/2–tau–pi/2 sequence: two Gaussian-enveloped pulses separated by
// gaps, repeating with period 2*tau + 2*t_pi2. The pulse width is
// sigmaFrac*t_pi2 and overlapping tails add. The result is peak-normalized
// and clipped into [-1, 1]; boundaries are (t1, t2, t3, t4) with t4 equal to
// the period.
func BuildGaussianRamseyLUT(p RamseyParams, n int, sigmaFrac, amp float64) (LUT, error) {
	if math.IsNaN(p.TauS) || math.IsInf(p.TauS, 0) || p.TauS <= 0 {
		return LUT{}, fmt.Errorf("%w: tau_s must be finite and > 0, got %v", ErrInvalidArgument, p.TauS)
	}
	if math.IsNaN(p.TPi2S) || math.IsInf(p.TPi2S, 0) || p.TPi2S <= 0 {
		return LUT{}, fmt.Errorf("%w: t_pi2_s must be finite and > 0, got %v", ErrInvalidArgument, p.TPi2S)
	}

	period := 2*p.TauS + 2*p.TPi2S
	fRep := 1 / period

	t, err := TimeAxis(period, n, false)
	if err != nil {
		return LUT{}, err
	}

	t1 := p.TauS
	t2 := t1 + p.TPi2S
	t3 := t2 + p.TauS
	t4 := t3 + p.TPi2S // == period

	sigma := sigmaFrac * p.TPi2S
	wave := GaussianPulse(t, (t1+t2)/2, sigma, amp)
	floats.Add(wave, GaussianPulse(t, (t3+t4)/2, sigma, amp))

	lut, err := ToLUT(wave, NormalizePeak, true)
	if err != nil {
		return LUT{}, err
	}

	return LUT{
		TimeS:      t,
		Samples:    lut,
		FRep:       fRep,
		Boundaries: []float64{t1, t2, t3, t4},
	}, nil
}
