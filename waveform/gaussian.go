package waveform

import "math"

// GaussianPulse evaluates amp * exp(-0.5*((t-centerS)/sigmaS)^2) over the
// time axis. sigmaS must be nonzero; callers are expected to supply a
// positive width.
func GaussianPulse(t []float64, centerS, sigmaS, amp float64) []float64 {
	out := make([]float64, len(t))
	for i, ts := range t {
		z := (ts - centerS) / sigmaS
		out[i] = amp * math.Exp(-0.5*z*z)
	}
	return out
}
