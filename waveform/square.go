package waveform

import (
	"fmt"
	"math"
)

// SquareParams holds the shape of a basic square wave.
type SquareParams struct {
	FRepHz float64 // repetition frequency, Hz
	Duty   float64 // high fraction of the period, [0, 1]
	High   float64 // level while t < duty*T
	Low    float64 // level for the rest of the period
}

// BuildSquareLUT builds one period of a square wave. The comparison at the
// transition is strict: a sample landing exactly on duty*T takes the low
// level. The boundary tuple is (duty*T,), the high-to-low edge. A duty of 0
// or 1 gives a constant waveform, and peak normalization of a constant zero
// fails rather than being clamped away.
func BuildSquareLUT(p SquareParams, n int, strategy Strategy) (LUT, error) {
	if math.IsNaN(p.FRepHz) || math.IsInf(p.FRepHz, 0) || p.FRepHz <= 0 {
		return LUT{}, fmt.Errorf("%w: f_rep_hz must be finite and > 0, got %v", ErrInvalidArgument, p.FRepHz)
	}
	if math.IsNaN(p.Duty) || p.Duty < 0 || p.Duty > 1 {
		return LUT{}, fmt.Errorf("%w: duty must be in [0, 1], got %v", ErrInvalidArgument, p.Duty)
	}

	period := 1 / p.FRepHz
	t, err := TimeAxis(period, n, false)
	if err != nil {
		return LUT{}, err
	}

	tHighEnd := p.Duty * period
	wave := make([]float64, len(t))
	for i, ts := range t {
		if ts < tHighEnd {
			wave[i] = p.High
		} else {
			wave[i] = p.Low
		}
	}

	lut, err := ToLUT(wave, strategy, true)
	if err != nil {
		return LUT{}, err
	}

	return LUT{
		TimeS:      t,
		Samples:    lut,
		FRep:       p.FRepHz,
		Boundaries: []float64{tHighEnd},
	}, nil
}
