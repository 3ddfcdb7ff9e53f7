package waveform

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// TimeAxis returns n evenly spaced sample times covering one repetition
// period. With endpoint false (the usual case for a repeating LUT) the axis
// is half-open, [0, periodS) with spacing periodS/n, so the first sample of
// the next period is not duplicated. With endpoint true the axis is
// inclusive, [0, periodS].
func TimeAxis(periodS float64, n int, endpoint bool) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: sample count must be positive, got %d", ErrInvalidArgument, n)
	}
	if math.IsNaN(periodS) || math.IsInf(periodS, 0) || periodS <= 0 {
		return nil, fmt.Errorf("%w: period must be finite and > 0, got %v", ErrInvalidArgument, periodS)
	}

	t := make([]float64, n)
	if endpoint {
		if n == 1 {
			return t, nil
		}
		return floats.Span(t, 0, periodS), nil
	}
	step := periodS / float64(n)
	for i := range t {
		t[i] = float64(i) * step
	}
	return t, nil
}
