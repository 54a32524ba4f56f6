package main

import (
	"github.com/nickwells/param.mod/v6/param"
	"github.com/nickwells/param.mod/v6/paramset"
	"github.com/nickwells/verbose.mod/verbose"
	"github.com/nickwells/versionparams.mod/versionparams"
)

// makeParamSet generates the param set ready for parsing
func makeParamSet(prog *Prog) *param.PSet {
	return paramset.NewOrPanic(
		addParams(prog),
		addNotes(prog),
		verbose.AddParams,
		versionparams.AddParams,
		param.SetProgramDescription(
			"this evaluates distance metrics over pairs of operands and"+
				" tabulates the results. Several metrics can be given"+
				" and each is shown in its own column so that their"+
				" values can be compared. The operands are taken from"+
				" the command line in pairs and can also be read from a"+
				" file."),
	)
}
