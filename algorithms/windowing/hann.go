package windowing

import (
	"math"
)

// MaxWindowLength is the largest window length this package will
// generate. It is a fixed policy ceiling, independent of the platform
// word size.
const MaxWindowLength = 1 << 24

// maxAllocLength bounds the requested length so the element-count to
// byte-size computation cannot overflow.
const maxAllocLength = math.MaxInt / 2

// validateLength checks a requested window length against the bounds
// shared by every entry point. The first violated bound wins.
func validateLength(length int) error {
	if length <= 1 {
		return ErrWindowLengthTooSmall
	}
	if length > maxAllocLength {
		return ErrMemoryAllocation
	}
	if length > MaxWindowLength {
		return ErrWindowLengthTooLarge
	}
	return nil
}

// CalculateHannWindow computes a Hann window of the given length using
// the closed-form formula w(n) = 0.5 - 0.5*cos(2π*n / (N-1)).
// https://en.wikipedia.org/wiki/Window_function#Hann_and_Hamming_windows
//
// The window is symmetric, so only the first ceil(N/2) coefficients go
// through math.Cos; each is mirrored to index N-1-n, halving the
// transcendental cost. The computation is pure: no I/O, no shared
// state, deterministic for a given length.
func CalculateHannWindow(length int) ([]float64, error) {
	if err := validateLength(length); err != nil {
		return nil, err
	}

	// Half-length rounded up so odd lengths cover the midpoint.
	halfLength := (length + length%2) / 2
	scalingFactor := 2 * math.Pi / float64(length-1)

	window := make([]float64, length)
	for n := 0; n < halfLength; n++ {
		window[n] = 0.5 - 0.5*math.Cos(scalingFactor*float64(n))
		window[length-1-n] = window[n]
	}

	return window, nil
}

// GetHannWindow returns a Hann window of the given length.
//
// Lengths in the precomputed set (256, 512, 1024, 2048, 4096) are
// served as copies of the process-wide lookup table; any other valid
// length falls back to CalculateHannWindow. Invalid lengths fail
// identically on both paths because validation runs before the table
// is consulted. The caller owns the returned slice.
func GetHannWindow(length int) ([]float64, error) {
	if err := validateLength(length); err != nil {
		return nil, err
	}
	if window, ok := lookupHannWindow(length); ok {
		return window, nil
	}
	return CalculateHannWindow(length)
}
