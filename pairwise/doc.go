// Package pairwise evaluates a distance function over every unordered pair
// of a slice of items, producing the symmetric matrix that clustering and
// nearest-neighbor layers consume.
//
// What
//
//   - Matrix(items, dist, opts...): computes dist(items[i], items[j]) for
//     every i < j on a bounded worker pool, mirrors each value across the
//     diagonal, and returns a Dense matrix with a zero diagonal.
//   - Dense: a flat, row-major, symmetric float64 matrix with bounds-checked
//     element access.
//   - DistFunc[T]: the pluggable distance shape; adapters around strdist,
//     setdist, and vecdist functions all fit.
//
// Why
//
//   - Precompute the O(n²) distance table once instead of re-deriving
//     distances inside a clustering loop.
//   - Spread expensive metrics (long strings, wide vectors) across CPUs
//     without each caller re-inventing a worker pool.
//
// Contract
//
//	dist must be symmetric: each unordered pair is evaluated exactly once
//	and the result is written to both (i,j) and (j,i). The diagonal is
//	always zero and dist is never called with i == j.
//
// Options
//
//   - DefaultOptions(): background context, runtime.NumCPU() workers.
//   - WithContext(ctx): cancellation and deadlines; observed between rows.
//   - WithWorkers(w):   bound concurrent row evaluations (w > 0); w == 0
//     restores the CPU-count default.
//
// Errors
//
//   - ErrNilDistFunc    if dist is nil.
//   - ErrNoItems        if items is empty.
//   - ErrOptionViolation if an invalid Option was supplied (e.g. negative
//     worker count).
//   - ErrInvalidSize / ErrIndexOutOfRange from Dense construction & access.
//   - The context's error when evaluation is cancelled.
//
// Complexity (n = len(items), d = one dist call)
//
//   - Time:   O(n²·d / workers) wall-clock, O(n²·d) total work.
//   - Memory: O(n²) for the result.
package pairwise
