package visualizer

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/dsp/window"
)

// DominantFrequency estimates the strongest spectral component of the
// segment in Hz, using a Hamming-windowed FFT. Segments too short to
// resolve anything meaningful report 0.
func DominantFrequency(samples []float64, sampleRate int) float64 {
	if len(samples) < 16 || sampleRate <= 0 {
		return 0
	}

	buf := make([]float64, len(samples))
	copy(buf, samples)
	window.Hamming(buf)

	spec := fft.FFTReal(buf)
	best, bestMag := 0, 0.0
	for i := 1; i < len(spec)/2; i++ {
		if m := cmplx.Abs(spec[i]); m > bestMag {
			best, bestMag = i, m
		}
	}
	if best == 0 {
		return 0
	}
	return float64(best) * float64(sampleRate) / float64(len(buf))
}
