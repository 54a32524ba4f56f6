package pairwise

import (
	"context"
	"errors"
	"fmt"
	"runtime"
)

// Sentinel errors for pairwise evaluation.
var (
	// ErrNilDistFunc is returned when a nil distance function is passed.
	ErrNilDistFunc = errors.New("pairwise: distance function is nil")

	// ErrNoItems is returned when the item slice is empty.
	ErrNoItems = errors.New("pairwise: no items supplied")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("pairwise: invalid option supplied")
)

// DistFunc is a symmetric distance between two items of type T.
// Implementations must satisfy dist(a, b) == dist(b, a); Matrix relies on
// this to evaluate each unordered pair once.
type DistFunc[T any] func(a, b T) float64

// Option configures Matrix via functional arguments.
// If an Option is invalid (e.g. negative worker count), it is recorded
// internally and surfaced as ErrOptionViolation when Matrix is invoked.
type Option func(*Options)

// Options holds parameters controlling pairwise evaluation.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Workers bounds the number of rows evaluated concurrently.
	Workers int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - runtime.NumCPU() workers
//   - error channel clear.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Workers: runtime.NumCPU(),
		err:     nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers bounds the number of concurrently evaluated rows.
//
//	w > 0:  use exactly w workers
//	w == 0: explicit CPU-count default
//	w < 0:  invalid option → ErrOptionViolation
func WithWorkers(w int) Option {
	return func(o *Options) {
		switch {
		case w < 0:
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, w)
		case w == 0:
			o.Workers = runtime.NumCPU()
		default:
			o.Workers = w
		}
	}
}
