package windowing

import (
	"errors"
)

// Errors returned by window generation. Validation always precedes
// computation, so an invalid length never allocates or computes
// partial results.
var (
	// ErrWindowLengthTooSmall reports a requested length of 1 or less.
	ErrWindowLengthTooSmall = errors.New("hann window length must be greater than 1")

	// ErrWindowLengthTooLarge reports a requested length above
	// MaxWindowLength.
	ErrWindowLengthTooLarge = errors.New("hann window length is too large")

	// ErrMemoryAllocation reports a requested length too large to
	// allocate without overflowing the size computation.
	ErrMemoryAllocation = errors.New("hann window length is too large to allocate memory")
)
