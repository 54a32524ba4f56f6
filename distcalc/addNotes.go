package main

import (
	"github.com/nickwells/param.mod/v6/param"
)

const (
	noteBaseName = "distcalc - "

	noteNameMetrics  = noteBaseName + "distance metrics"
	noteNameOperands = noteBaseName + "operands"
)

// addNotes adds the notes for this program.
func addNotes(_ *Prog) param.PSetOptFunc {
	return func(ps *param.PSet) error {
		ps.AddNote(noteNameMetrics,
			"Each metric gives some notion of distance between its two"+
				" operands. They all give a value of zero for the"+
				" distance from an operand to itself and a smaller"+
				" distance indicates a greater similarity."+
				"\n\n"+
				"The string metrics work on the operands as given; the"+
				" set and vector metrics need the operands in the form"+
				" described in the note on operands."+
				"\n\n"+
				metricSummary())

		ps.AddNote(noteNameOperands,
			"The operands to be measured are given in pairs: the first"+
				" and second remaining arguments form one pair, the"+
				" third and fourth the next and so on. Pairs can also be"+
				" read from a file (see the "+paramNamePairsFile+
				" parameter)."+
				"\n\n"+
				"For the set metrics each operand is a comma-separated"+
				" list of integers, so \"1,2,3\". Repeated members are"+
				" allowed and make no difference to the result."+
				"\n\n"+
				"For the vector metrics each operand is a"+
				" comma-separated list of numbers, so \"0.5,1,-2\". The"+
				" two vectors of a pair must have the same number of"+
				" entries.")

		return nil
	}
}
