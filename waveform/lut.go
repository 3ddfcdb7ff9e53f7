package waveform

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Strategy selects how raw waveform samples are rescaled into LUT range.
type Strategy int

const (
	// NormalizePeak divides every sample by max|sample| so the LUT peaks at 1.
	NormalizePeak Strategy = iota
	// NormalizeNone passes samples through unchanged.
	NormalizeNone
)

func (s Strategy) String() string {
	switch s {
	case NormalizePeak:
		return "peak"
	case NormalizeNone:
		return "none"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy maps a config string onto a Strategy. Matching is
// case-insensitive and ignores surrounding whitespace; "off" and "false" are
// accepted as synonyms for "none".
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "peak":
		return NormalizePeak, nil
	case "none", "off", "false":
		return NormalizeNone, nil
	}
	return 0, fmt.Errorf("%w: unsupported normalize strategy %q", ErrInvalidArgument, s)
}

// ToLUT converts raw waveform samples into LUT samples. The strategy is
// applied first, then clipping (if requested) clamps every value into
// [-1, 1]. The input slice is never modified.
func ToLUT(wave []float64, strategy Strategy, clip bool) ([]float64, error) {
	lut := make([]float64, len(wave))
	copy(lut, wave)

	switch strategy {
	case NormalizePeak:
		// floats.Norm with p=Inf is max|wave|; empty input gives 0 and fails
		// like any other degenerate waveform.
		peak := 0.0
		if len(lut) > 0 {
			peak = floats.Norm(lut, math.Inf(1))
		}
		if math.IsNaN(peak) || math.IsInf(peak, 0) || peak <= 0 {
			return nil, fmt.Errorf("%w: waveform peak is %v, cannot normalize", ErrNormalization, peak)
		}
		// Divide rather than scale by the reciprocal so the peak sample lands
		// on exactly 1.
		for i := range lut {
			lut[i] /= peak
		}
	case NormalizeNone:
	default:
		return nil, fmt.Errorf("%w: unknown strategy %v", ErrInvalidArgument, strategy)
	}

	if clip {
		for i, v := range lut {
			if v > 1 {
				lut[i] = 1
			} else if v < -1 {
				lut[i] = -1
			}
		}
	}
	return lut, nil
}
