package windowing

import (
	"fmt"
	"sync"
)

// precomputedLengths is the fixed set of common window lengths held in
// the process-wide lookup tables. The set is closed: lookups for other
// lengths miss, and misses are never inserted.
var precomputedLengths = [...]int{256, 512, 1024, 2048, 4096}

var (
	windowTableOnce sync.Once
	windowTable     map[int][]float64
)

// hannWindowTable returns the precomputed window table, building it on
// first use. The build runs exactly once per process; after it the map
// is never written again, so concurrent readers need no locking.
func hannWindowTable() map[int][]float64 {
	windowTableOnce.Do(func() {
		table := make(map[int][]float64, len(precomputedLengths))
		for _, length := range precomputedLengths {
			window, err := CalculateHannWindow(length)
			if err != nil {
				// The precomputed lengths are known-valid constants; a
				// failure here is a broken invariant in this package,
				// not a recoverable caller error.
				panic(fmt.Sprintf("windowing: precomputing hann window of length %d: %v", length, err))
			}
			table[length] = window
		}
		windowTable = table
	})
	return windowTable
}

// lookupHannWindow returns a copy of the cached window for length, or
// false if length is not one of the precomputed lengths. Cached
// storage is never handed out directly, so mutating a returned window
// cannot corrupt the table.
func lookupHannWindow(length int) ([]float64, bool) {
	cached, ok := hannWindowTable()[length]
	if !ok {
		return nil, false
	}
	window := make([]float64, len(cached))
	copy(window, cached)
	return window, true
}
