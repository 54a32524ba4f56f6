package pairwise

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Matrix — all-pairs distance evaluation on a bounded worker pool
//
// Description:
//
//	Matrix applies dist to every unordered pair of items and assembles the
//	results into a symmetric Dense matrix with a zero diagonal. Rows are
//	evaluated concurrently; each row's worker owns the cells (i, j) with
//	j > i plus their mirrors, so writes never overlap.
//
// Algorithm Outline:
//  1. Validate dist, items, and the assembled Options.
//  2. Allocate the n×n Dense result.
//  3. Spawn one errgroup task per row i, limited to Options.Workers
//     concurrent tasks; each task checks cancellation, then fills
//     dist(items[i], items[j]) for all j > i, mirrored.
//  4. Wait for the group; the first error (including cancellation) wins
//     and the partial result is discarded.
//
// Complexity:
//
//	Time   = O(n²) dist calls, spread across Workers goroutines
//	Memory = O(n²) for the result

// Matrix evaluates dist over every unordered pair of items and returns
// the symmetric distance matrix, applying any number of functional
// Options.
// Returns ErrNilDistFunc or ErrNoItems for invalid input,
// ErrOptionViolation for bad options, or the context's cancellation
// error when evaluation is interrupted.
func Matrix[T any](items []T, dist DistFunc[T], opts ...Option) (*Dense, error) {
	if dist == nil {
		return nil, ErrNilDistFunc
	}
	if len(items) == 0 {
		return nil, ErrNoItems
	}

	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := len(items)
	m, err := NewDense(n)
	if err != nil {
		return nil, err
	}

	eg, gctx := errgroup.WithContext(o.Ctx)
	eg.SetLimit(o.Workers)

	for i := 0; i < n; i++ {
		eg.Go(func() error {
			// cancellation check (once per row)
			select {
			case <-gctx.Done():
				return context.Cause(gctx)
			default:
			}

			for j := i + 1; j < n; j++ {
				m.setSym(i, j, dist(items[i], items[j]))
			}

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return m, nil
}
