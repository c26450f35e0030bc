package pcset

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/floats"
)

// fourierTolerance absorbs floating point noise in FFT output
const fourierTolerance = 1e-9

// FourierMagnitudes returns |F_k| for k = 0..universe/2, where F is the discrete
// Fourier transform of the set's characteristic vector. The magnitudes are
// unchanged by transposition and inversion, so they are shared across a
// set-class and by Z-related pairs. F_0 equals the cardinality.
func (s Set) FourierMagnitudes() []float64 {
	indicator := make([]float64, s.universe)
	for _, pc := range s.pcs {
		indicator[pc] = 1
	}

	spectrum := fft.FFTReal(indicator)
	magnitudes := make([]float64, s.universe/2+1)
	for k := range magnitudes {
		magnitudes[k] = cmplx.Abs(spectrum[k])
	}
	return magnitudes
}

// FourierEquivalent reports whether a and b share every Fourier magnitude
func FourierEquivalent(a, b Set) bool {
	if a.universe != b.universe {
		return false
	}
	return floats.EqualApprox(a.FourierMagnitudes(), b.FourierMagnitudes(), fourierTolerance)
}
