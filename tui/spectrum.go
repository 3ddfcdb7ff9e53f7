package tui

import (
	"math"

	"github.com/racerxdl/segdsp/tools"
	"gonum.org/v1/gonum/dsp/fourier"
)

// Spectrum computes the power spectrum of one LUT period in dB, positive
// frequencies only. Bin i is i cycles per period, i.e. i*f_rep in absolute
// terms. The small floor keeps empty bins finite for the plot widget.
func Spectrum(samples []float64) []float64 {
	if len(samples) < 2 {
		return nil
	}

	input := make([]complex128, len(samples))
	for i, s := range samples {
		input[i] = complex(s, 0)
	}

	fft := fourier.NewCmplxFFT(len(input))
	coeff := fft.Coefficients(nil, input)

	out := make([]float64, len(coeff)/2)
	for i := range out {
		v := tools.ComplexAbsSquared(complex64(coeff[i]))
		out[i] = 10 * math.Log10(float64(v)+1e-20)
	}
	return out
}
