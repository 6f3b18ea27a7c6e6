package spectral

import (
	"errors"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/floats"
)

// ErrLengthMismatch reports a window applied to a signal segment of a
// different length.
var ErrLengthMismatch = errors.New("signal and window must have the same length")

// ApplyWindow multiplies a signal segment by a window sample-wise and
// returns the result as a new slice. The input signal is not modified.
func ApplyWindow(signal, window []float64) ([]float64, error) {
	if len(signal) != len(window) {
		return nil, ErrLengthMismatch
	}

	windowed := make([]float64, len(signal))
	floats.MulTo(windowed, signal, window)

	return windowed, nil
}

// PowerSpectrum computes the one-sided power spectrum of a real signal
// using mjibson/go-dsp. Bin k holds |X[k]|² for k in 0..len(signal)/2.
func PowerSpectrum(signal []float64) []float64 {
	if len(signal) == 0 {
		return []float64{}
	}

	spectrum := fft.FFTReal(signal)

	bins := len(signal)/2 + 1
	power := make([]float64, bins)
	for i := 0; i < bins; i++ {
		mag := cmplx.Abs(spectrum[i])
		power[i] = mag * mag
	}

	return power
}

// LeakageRatio measures the fraction of a power spectrum's energy that
// falls outside the peak bin and its immediate neighbors. A tone whose
// frequency lands between bins smears energy across the spectrum when
// the segment is cut rectangularly; tapering the segment with a Hann
// window pulls that ratio down.
func LeakageRatio(power []float64) float64 {
	if len(power) == 0 {
		return 0.0
	}

	total := floats.Sum(power)
	if total == 0 {
		return 0.0
	}

	peak := floats.MaxIdx(power)
	local := power[peak]
	if peak > 0 {
		local += power[peak-1]
	}
	if peak < len(power)-1 {
		local += power[peak+1]
	}

	return (total - local) / total
}
