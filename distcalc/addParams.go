package main

import (
	"github.com/nickwells/check.mod/v2/check"
	"github.com/nickwells/english.mod/english"
	"github.com/nickwells/filecheck.mod/filecheck"
	"github.com/nickwells/param.mod/v6/param"
	"github.com/nickwells/param.mod/v6/psetter"
)

const (
	paramNameMetric    = "metric"
	paramNamePrecision = "precision"
	paramNamePairsFile = "pairs-file"
)

func addParams(prog *Prog) param.PSetOptFunc {
	return func(ps *param.PSet) error {
		ps.Add(paramNameMetric,
			psetter.String[string]{
				Value: &prog.metricSpec,
				Checks: []check.ValCk[string]{
					func(s string) error {
						_, err := parseMetricSpec(s)
						return err
					},
				},
			},
			"the metric to evaluate for each pair of operands. Several"+
				" metrics, separated by commas, can be given and each is"+
				" then shown in its own column; they must all take the"+
				" same kind of operand."+
				" The metric names are "+
				english.JoinQuoted(metricNames(),
					", ", " and ", `"`, `"`)+".",
		)

		ps.Add(paramNamePrecision,
			psetter.Int[int]{
				Value:  &prog.precision,
				Checks: []check.ValCk[int]{check.ValGT(0)},
			},
			"the number of decimal places to show for metrics which"+
				" yield a fractional value.",
		)

		ps.Add(paramNamePairsFile,
			psetter.Pathname{
				Value:       &prog.pairsFile,
				Expectation: filecheck.FileNonEmpty(),
			},
			"the name of a file of operand pairs, one pair per line, the"+
				" two operands separated by a tab. These pairs are"+
				" evaluated before any pairs given on the command line.",
		)

		_ = ps.SetNamedRemHandler(param.NullRemHandler{}, "operands")

		return nil
	}
}
