// Package waveform builds one-period lookup tables for the Moku AWG from
// physical timing parameters. Everything in here is pure math on []float64:
// no I/O, no shared state, safe to call from anywhere.
package waveform

import "errors"

var (
	// ErrInvalidArgument is returned for malformed or out-of-range scalar
	// parameters (non-positive period, duty outside [0,1], N <= 0, ...).
	ErrInvalidArgument = errors.New("waveform: invalid argument")

	// ErrNormalization is returned when a waveform cannot be peak-normalized
	// because its peak is zero, negative, or non-finite.
	ErrNormalization = errors.New("waveform: normalization failed")
)

// LUT bundles everything a builder produces for one repetition period.
// TimeS and Samples are index-aligned and the same length.
type LUT struct {
	TimeS      []float64 // time axis in seconds, [0, 1/FRep)
	Samples    []float64 // normalized samples in [-1, 1]
	FRep       float64   // repetition frequency in Hz
	Boundaries []float64 // segment transition times in seconds
}
