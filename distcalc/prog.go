package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/nickwells/col.mod/v4/col"
	"github.com/nickwells/col.mod/v4/colfmt"
	"github.com/nickwells/verbose.mod/verbose"
)

// operandPair holds one pair of operands to be measured
type operandPair struct {
	a, b string
}

// Prog holds program parameters and status
type Prog struct {
	exitStatus int
	stack      *verbose.Stack

	precision int

	pairsFile string

	metricSpec string
}

// NewProg returns a new Prog instance with the default values set
//
//nolint:mnd
func NewProg() *Prog {
	return &Prog{
		stack: &verbose.Stack{},

		precision:  4,
		metricSpec: dfltMetricName,
	}
}

// SetExitStatus sets the exit status to the new value. It will not change
// a non-zero value to zero.
func (prog *Prog) SetExitStatus(es int) {
	if prog.exitStatus == 0 && es != 0 {
		prog.exitStatus = es
	}
}

// ForceExitStatus sets the exit status to the new value. It will change
// any value to any other.
func (prog *Prog) ForceExitStatus(es int) {
	prog.exitStatus = es
}

// Run evaluates the chosen metrics over every operand pair and tabulates
// the results. The operands are the parameters left after the named
// parameters have been handled; they are taken in twos, first and second,
// third and fourth and so on.
func (prog *Prog) Run(operands []string) {
	metrics, err := parseMetricSpec(prog.metricSpec)
	if err != nil {
		fmt.Println("Bad metric:", err)
		prog.SetExitStatus(1)

		return
	}

	pairs := prog.getPairs(operands)
	if prog.exitStatus != 0 {
		return
	}

	if len(pairs) == 0 {
		fmt.Println("There are no operand pairs to evaluate")
		return
	}

	verbose.Printf("evaluating %d metric(s) over %d pair(s)\n",
		len(metrics), len(pairs))

	rpt := prog.makeReport(metrics, pairs)
	if rpt == nil {
		return
	}

	for _, p := range pairs {
		vals := make([]any, 0, len(metrics)+2)
		vals = append(vals, p.a, p.b)

		for _, m := range metrics {
			d, err := m.eval(p.a, p.b)
			if err != nil {
				fmt.Printf("Cannot evaluate %q against %q: %s\n", p.a, p.b, err)
				prog.SetExitStatus(1)

				return
			}

			if m.kind == kindString {
				vals = append(vals, int(d))
			} else {
				vals = append(vals, d)
			}
		}

		if err := rpt.PrintRow(vals...); err != nil {
			fmt.Println("Cannot print the results:", err)
			prog.SetExitStatus(1)

			return
		}
	}
}

// getPairs gathers the operand pairs to be measured, from the pairs file,
// if given, and then from the remaining command-line parameters. On any
// error it reports the problem, sets the exit status and returns nil.
func (prog *Prog) getPairs(operands []string) []operandPair {
	pairs := []operandPair{}

	if prog.pairsFile != "" {
		pairs = append(pairs, prog.getFilePairs()...)
		if prog.exitStatus != 0 {
			return nil
		}
	}

	cliPairs := prog.pairUp(operands)
	if prog.exitStatus != 0 {
		return nil
	}

	return append(pairs, cliPairs...)
}

// getFilePairs reads operand pairs from the pairs file. Each non-blank
// line holds one pair, the two operands separated by a single tab.
func (prog *Prog) getFilePairs() []operandPair {
	f, err := os.Open(prog.pairsFile)
	if err != nil {
		fmt.Println("Cannot open the pairs file:", err)
		prog.SetExitStatus(1)

		return nil
	}
	defer f.Close()

	pairs := []operandPair{}
	lineNum := 0

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lineNum++

		line := scanner.Text()
		if line == "" {
			continue
		}

		a, b, ok := strings.Cut(line, "\t")
		if !ok {
			fmt.Printf("Bad pair at line %d of %q: there is no tab\n",
				lineNum, prog.pairsFile)
			prog.SetExitStatus(1)

			return nil
		}

		pairs = append(pairs, operandPair{a: a, b: b})
	}

	if err := scanner.Err(); err != nil {
		fmt.Println("Cannot read the pairs file:", err)
		prog.SetExitStatus(1)

		return nil
	}

	verbose.Printf("the pairs file (%q) holds %d pairs\n",
		prog.pairsFile, len(pairs))

	return pairs
}

// pairUp takes the operands in twos and returns the operand pairs. An odd
// number of operands is reported as an error.
func (prog *Prog) pairUp(operands []string) []operandPair {
	if len(operands)%2 != 0 {
		fmt.Printf(
			"The operands must come in pairs but the last one (%q) is alone\n",
			operands[len(operands)-1])
		prog.SetExitStatus(1)

		return nil
	}

	pairs := make([]operandPair, 0, len(operands)/2)

	for i := 0; i < len(operands); i += 2 {
		pairs = append(pairs, operandPair{a: operands[i], b: operands[i+1]})
	}

	return pairs
}

// makeReport constructs the report with a column for each operand and one
// for each chosen metric. On any error it reports the problem, sets the
// exit status and returns nil.
//
//nolint:mnd
func (prog *Prog) makeReport(metrics []metric, pairs []operandPair) *col.Report {
	h, err := col.NewHeader()
	if err != nil {
		fmt.Println("Cannot make the report header:", err)
		prog.SetExitStatus(1)

		return nil
	}

	aCol := col.New(
		colfmt.String{W: maxOperandLen(pairs, func(p operandPair) string {
			return p.a
		})},
		"operand", "a")

	cols := []*col.Col{
		col.New(
			colfmt.String{W: maxOperandLen(pairs, func(p operandPair) string {
				return p.b
			})},
			"operand", "b"),
	}

	for _, m := range metrics {
		if m.kind == kindString {
			cols = append(cols,
				col.New(colfmt.Int{W: 8}, "distance", m.name))
		} else {
			cols = append(cols,
				col.New(&colfmt.Float{W: 10, Prec: prog.precision},
					"distance", m.name))
		}
	}

	rpt, err := col.NewReport(h, os.Stdout, aCol, cols...)
	if err != nil {
		fmt.Println("Cannot make the report:", err)
		prog.SetExitStatus(1)

		return nil
	}

	return rpt
}

// maxOperandLen returns the length of the longest string that the pick
// function selects from the operand pairs.
func maxOperandLen(pairs []operandPair, pick func(operandPair) string) uint {
	maxLen := 1
	for _, p := range pairs {
		maxLen = max(maxLen, len(pick(p)))
	}

	return uint(maxLen) //nolint:gosec
}
