package ngram

import (
	"fmt"
	"iter"
	"slices"
)

// SlidingWindow returns a sequence of windows over seq. Windows hold exactly
// size elements and start at offsets 0, step, 2*step, ... ; a window that
// would run past the end of seq is not produced, so size > len(seq) yields
// nothing. Windows are computed as the caller ranges over the sequence and
// each one is a fresh copy.
//
// Size and step must both be at least 1.
func SlidingWindow[T any](seq []T, size, step int) (iter.Seq[[]T], error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: window size must be at least 1, got %d", ErrInvalidArgument, size)
	}
	if step < 1 {
		return nil, fmt.Errorf("%w: step must be at least 1, got %d", ErrInvalidArgument, step)
	}

	return func(yield func([]T) bool) {
		for i := 0; i+size <= len(seq); i += step {
			if !yield(slices.Clone(seq[i : i+size])) {
				return
			}
		}
	}, nil
}
