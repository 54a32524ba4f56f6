// Package distances is your toolbox for measuring how far apart two
// things are — strings, integer sets or numeric vectors — with a pairwise
// engine on top for whole collections.
//
// 🚀 What is distances?
//
//	A small, concurrency-safe library that brings together:
//		• String metrics: Levenshtein edit distance, Hamming distance
//		• Set metrics: Jaccard, Kulsinski, Dice
//		• Vector metrics: Euclidean, squared Euclidean, Manhattan, cosine
//		• Pairwise engine: symmetric distance matrices, computed in parallel
//		• Checked results: counts delivered in the unsigned width you choose
//
// ✨ Why choose distances?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Generic – counts in any unsigned type, vectors in float32 or float64
//   - Pure functions – no shared state, safe for concurrent use
//   - Honest failure – a count that cannot fit its type panics, it never wraps around
//
// Under the hood, everything is organized under five subpackages:
//
//	number/   — checked conversions from counts to caller-chosen unsigned types
//	strdist/  — Levenshtein & Hamming distances over rune sequences
//	setdist/  — Jaccard, Kulsinski & Dice distances over integer sets
//	vecdist/  — Euclidean, Manhattan & cosine distances over vectors
//	pairwise/ — full distance matrices over whole collections
//
// Quick ASCII example:
//
//	    "kitten" ──3── "sitting"
//
//	three single-rune edits turn one word into the other.
//
// The distcalc/ command wraps every metric for the command line. Dive into
// README.md for full examples and a feature matrix.
//
//	go get github.com/brianmaterne/distances
package distances
