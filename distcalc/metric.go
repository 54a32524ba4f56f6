package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/brianmaterne/distances/setdist"
	"github.com/brianmaterne/distances/strdist"
	"github.com/brianmaterne/distances/vecdist"
	"github.com/nickwells/english.mod/english"
	"golang.org/x/exp/maps"
)

const dfltMetricName = "edit"

// metricKind describes what the operands of a metric must hold
type metricKind int

const (
	// kindString means the operands are taken as they are
	kindString metricKind = iota
	// kindSet means the operands are comma-separated lists of integers
	kindSet
	// kindVector means the operands are comma-separated lists of numbers
	kindVector
)

// String returns a string describing the operand kind
func (k metricKind) String() string {
	switch k {
	case kindString:
		return "string"
	case kindSet:
		return "set"
	case kindVector:
		return "vector"
	}

	return "unknown"
}

// metric holds everything needed to evaluate one distance metric over a
// pair of operands given as strings
type metric struct {
	name string
	kind metricKind
	desc string
	eval func(a, b string) (float64, error)
}

// metricDefs maps the name of each available metric to its definition
var metricDefs = map[string]metric{
	"edit": {
		kind: kindString,
		desc: "the Levenshtein edit distance between the operands",
		eval: func(a, b string) (float64, error) {
			return float64(strdist.EditDistance[uint64](a, b)), nil
		},
	},
	"hamming": {
		kind: kindString,
		desc: "the Hamming distance over the shorter of the two operands",
		eval: func(a, b string) (float64, error) {
			return float64(strdist.HammingDistance[uint64](a, b)), nil
		},
	},
	"jaccard": {
		kind: kindSet,
		desc: "the Jaccard distance between the operand sets",
		eval: setEval(setdist.Jaccard[int64]),
	},
	"kulsinski": {
		kind: kindSet,
		desc: "the Kulsinski distance between the operand sets",
		eval: setEval(setdist.Kulsinski[int64]),
	},
	"dice": {
		kind: kindSet,
		desc: "the Dice distance between the operand sets",
		eval: setEval(setdist.Dice[int64]),
	},
	"euclidean": {
		kind: kindVector,
		desc: "the Euclidean distance between the operand vectors",
		eval: vecEval(vecdist.Euclidean[float64]),
	},
	"sqeuclidean": {
		kind: kindVector,
		desc: "the squared Euclidean distance between the operand vectors",
		eval: vecEval(vecdist.SqEuclidean[float64]),
	},
	"manhattan": {
		kind: kindVector,
		desc: "the Manhattan distance between the operand vectors",
		eval: vecEval(vecdist.Manhattan[float64]),
	},
	"cosine": {
		kind: kindVector,
		desc: "the cosine distance between the operand vectors",
		eval: vecEval(vecdist.Cosine[float64]),
	},
}

// metricNames returns a sorted list of the available metric names
func metricNames() []string {
	names := maps.Keys(metricDefs)
	sort.Strings(names)

	return names
}

// metricSummary describes every metric, one per line, for the help notes
func metricSummary() string {
	var sb strings.Builder

	for _, name := range metricNames() {
		fmt.Fprintf(&sb, "%-12s (%s) %s\n",
			name, metricDefs[name].kind, metricDefs[name].desc)
	}

	return sb.String()
}

// parseMetricSpec turns a comma-separated list of metric names into the
// corresponding metric definitions. Every name must be known and all the
// metrics must take the same kind of operand.
func parseMetricSpec(spec string) ([]metric, error) {
	names := splitSpec(spec)
	if len(names) == 0 {
		return nil, fmt.Errorf("no metric name is given in %q", spec)
	}

	metrics := make([]metric, 0, len(names))

	for _, name := range names {
		m, ok := metricDefs[name]
		if !ok {
			return nil, fmt.Errorf("unknown metric: %q%s",
				name,
				SuggestAlternatives(maxAltNames, name, metricNames()))
		}

		m.name = name
		metrics = append(metrics, m)
	}

	for _, m := range metrics[1:] {
		if m.kind != metrics[0].kind {
			return nil, fmt.Errorf(
				"%q takes %s operands but %q takes %s operands:"+
					" the metrics must all take the same kind of operand",
				metrics[0].name, metrics[0].kind, m.name, m.kind)
		}
	}

	return metrics, nil
}

// splitSpec splits a comma-separated list, trims each part and drops any
// empty parts
func splitSpec(spec string) []string {
	parts := []string{}

	for _, p := range strings.Split(spec, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			parts = append(parts, p)
		}
	}

	return parts
}

// setEval adapts a set metric to operands given as comma-separated lists
// of integers
func setEval(fn func(x, y []int64) float64) func(a, b string) (float64, error) {
	return func(a, b string) (float64, error) {
		x, err := parseSet(a)
		if err != nil {
			return 0, err
		}

		y, err := parseSet(b)
		if err != nil {
			return 0, err
		}

		return fn(x, y), nil
	}
}

// vecEval adapts a vector metric to operands given as comma-separated
// lists of numbers. A dimension mismatch is reported as an error rather
// than being left to panic.
func vecEval(fn vecdist.DistanceFunc[float64]) func(a, b string) (float64, error) {
	return func(a, b string) (float64, error) {
		x, err := parseVector(a)
		if err != nil {
			return 0, err
		}

		y, err := parseVector(b)
		if err != nil {
			return 0, err
		}

		if len(x) != len(y) {
			return 0, fmt.Errorf(
				"the vectors must have the same dimension: %d != %d",
				len(x), len(y))
		}

		return fn(x, y), nil
	}
}

// parseSet parses a comma-separated list of integers. An empty string is
// taken as an empty set.
func parseSet(s string) ([]int64, error) {
	members := []int64{}

	for i, p := range splitSpec(s) {
		v, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad set member: the %d%s member of %q: %w",
				i+1, english.OrdinalSuffix(i+1), s, err)
		}

		members = append(members, v)
	}

	return members, nil
}

// parseVector parses a comma-separated list of numbers. An empty string
// is taken as an empty vector.
func parseVector(s string) ([]float64, error) {
	vals := []float64{}

	for i, p := range splitSpec(s) {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("bad vector entry: the %d%s entry of %q: %w",
				i+1, english.OrdinalSuffix(i+1), s, err)
		}

		vals = append(vals, v)
	}

	return vals, nil
}
