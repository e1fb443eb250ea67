// Command twosat reads a DIMACS CNF problem and reports satisfiability.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/cbro/twosat"
)

func main() {
	log.SetFlags(0)
	verbose := flag.Bool("v", false, "verbose mode: print solver stats and a debug trace")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `twosat: a 2-SAT-guided 3-CNF solver.

Usage:

  twosat [-v] [input.cnf]

twosat reads a single problem specification in the DIMACS CNF format. The
first line of output is either UNSAT, or SAT: followed by the assignment in
parentheses as signed 1-based integers, one per variable. The last line
gives the elapsed solving time.

If no input file is given, twosat reads from standard input.
`)
	}
	flag.Parse()

	var r io.Reader = os.Stdin
	if flag.NArg() >= 1 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		r = f
	}

	sv, err := twosat.NewSolverFromReader(r)
	if err != nil {
		log.Fatalln("Error reading input file as DIMACS CNF:", err)
	}
	sv.Engine.Debug = *verbose

	start := time.Now()
	assignment, ok := sv.Solve()
	elapsed := time.Since(start)

	if *verbose {
		fmt.Fprintf(os.Stderr, "iterations: %d\n", sv.Engine.Iterations)
		fmt.Fprintf(os.Stderr, "forced:     %d\n", sv.Engine.Forced)
		fmt.Fprintf(os.Stderr, "branches:   %d\n", sv.Engine.Branches)
	}

	if !ok {
		fmt.Println("UNSAT")
	} else {
		fmt.Printf("SAT: (%v)\n", assignment)
	}
	fmt.Printf("elapsed: %s\n", elapsed)
}
