package main

// distcalc

import (
	"os"
)

func main() {
	prog := NewProg()
	ps := makeParamSet(prog)
	ps.Parse()

	prog.Run(ps.Remainder())
	os.Exit(prog.exitStatus)
}
