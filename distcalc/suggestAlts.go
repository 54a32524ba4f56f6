package main

import (
	"sort"
	"strings"

	"github.com/brianmaterne/distances/strdist"
	"github.com/nickwells/english.mod/english"
)

const (
	maxAltNames = 3
	maxAltDist  = 3
)

// SuggestAlternatives searches the population for the closest matches to
// the passed string and if any are found it returns a string suggesting
// these alternative values. Only the nearest candidates are suggested and
// none at all if even the nearest is more than maxAltDist edits away. At
// most n alternatives are given. Matching ignores case.
func SuggestAlternatives(n int, s string, pop []string) string {
	best := []string{}
	bestDist := uint32(maxAltDist + 1)

	for _, name := range pop {
		d := strdist.EditDistance[uint32](
			strings.ToLower(s), strings.ToLower(name))

		switch {
		case d < bestDist:
			bestDist = d
			best = append(best[:0], name)
		case d == bestDist:
			best = append(best, name)
		}
	}

	if bestDist > maxAltDist {
		return ""
	}

	sort.Strings(best)

	if len(best) > n {
		best = best[:n]
	}

	return `, did you mean ` + english.JoinQuoted(best, ", ", " or ", `"`, `"`)
}
