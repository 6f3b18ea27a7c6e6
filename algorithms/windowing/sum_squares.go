package windowing

import (
	"sync"

	"gonum.org/v1/gonum/floats"
)

var (
	sumSquaresTableOnce sync.Once
	sumSquaresTable     map[int]float64
)

// SumOfSquares returns the sum of squared coefficients of a window,
// the energy normalization factor used when reconstructing a signal
// from overlapping windowed segments.
func SumOfSquares(window []float64) float64 {
	return floats.Dot(window, window)
}

// hannSumSquaresTable returns the precomputed sum-of-squares table,
// building it on first use from the window table's entries rather than
// regenerating windows. Same once-only lifecycle as the window table.
func hannSumSquaresTable() map[int]float64 {
	sumSquaresTableOnce.Do(func() {
		windows := hannWindowTable()
		table := make(map[int]float64, len(precomputedLengths))
		for _, length := range precomputedLengths {
			table[length] = SumOfSquares(windows[length])
		}
		sumSquaresTable = table
	})
	return sumSquaresTable
}

// GetHannWindowSumSquares returns the sum of squares of the given Hann
// window. Windows whose length matches a precomputed entry are served
// from the lookup table; any other window is summed directly. The
// window is assumed valid (e.g. produced by GetHannWindow) and is not
// inspected beyond its length.
func GetHannWindowSumSquares(window []float64) float64 {
	if sum, ok := hannSumSquaresTable()[len(window)]; ok {
		return sum
	}
	return SumOfSquares(window)
}
