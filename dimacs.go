package twosat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseDIMACS parses text in the DIMACS CNF format: optional comment lines
// beginning with 'c', exactly one problem line
// `p cnf <num_vars> <num_clauses>`, and that many clause lines, each a
// whitespace-delimited sequence of signed nonzero integers terminated by
// 0. A leading or trailing '\r' is trimmed from each line; empty lines are
// ignored. Declared variable and clause counts are validated against what
// actually appears in the input (auxiliary variables from widening aside),
// rather than trusted as given.
//
// A clause wider than 3 is a parse error unless widen is true, in which
// case it is rewritten via ReduceKCNF into width-3 clauses over fresh
// auxiliary variables (and the returned variable count is extended to
// cover them).
func ParseDIMACS(r io.Reader, widen bool) (phi Formula, declaredVars int, err error) {
	var haveProblem bool
	var declaredClauses int
	var clauses []Clause
	var readClauses int
	origVars := 0
	nextAux := 0

	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for s.Scan() {
		line := strings.Trim(s.Text(), "\r")
		if len(line) == 0 || line[0] == 'c' {
			continue
		}
		// Some CNF formats attach extra data in a trailer after a line
		// containing a single %.
		if line == "%" {
			break
		}
		if line[0] == 'p' {
			if haveProblem {
				return Formula{}, 0, fmt.Errorf("dimacs: multiple problem lines")
			}
			fields := strings.Fields(line)
			if len(fields) != 4 || fields[0] != "p" || fields[1] != "cnf" {
				return Formula{}, 0, fmt.Errorf("dimacs: malformed problem line %q", line)
			}
			declaredVars, err = strconv.Atoi(fields[2])
			if err != nil {
				return Formula{}, 0, fmt.Errorf("dimacs: malformed num_vars: %w", err)
			}
			declaredClauses, err = strconv.Atoi(fields[3])
			if err != nil {
				return Formula{}, 0, fmt.Errorf("dimacs: malformed num_clauses: %w", err)
			}
			if declaredVars < 0 || declaredClauses < 0 {
				return Formula{}, 0, fmt.Errorf("dimacs: negative count in problem line %q", line)
			}
			nextAux = declaredVars
			haveProblem = true
			continue
		}

		fields := strings.Fields(line)
		ints := make([]int, 0, len(fields))
		for _, f := range fields {
			n, err := strconv.Atoi(f)
			if err != nil {
				return Formula{}, 0, fmt.Errorf("dimacs: invalid literal %q: %w", f, err)
			}
			ints = append(ints, n)
		}
		if len(ints) == 0 || ints[len(ints)-1] != 0 {
			return Formula{}, 0, fmt.Errorf("dimacs: clause line %q not terminated by 0", line)
		}
		ints = ints[:len(ints)-1]
		readClauses++

		lits := make([]Literal, len(ints))
		for i, n := range ints {
			if n == 0 {
				return Formula{}, 0, fmt.Errorf("dimacs: literal 0 inside clause %q", line)
			}
			lits[i] = FromSigned(n)
			if lits[i].Index+1 > origVars {
				origVars = lits[i].Index + 1
			}
		}

		switch {
		case len(lits) <= 3:
			clauses = append(clauses, newClause(lits))
		case widen:
			widened := ReduceKCNF(lits, nextAux)
			clauses = append(clauses, widened...)
			for _, c := range widened {
				if m := c.MaxIndex(); m+1 > nextAux {
					nextAux = m + 1
				}
			}
		default:
			return Formula{}, 0, fmt.Errorf("dimacs: clause %q has width %d, want <= 3", line, len(lits))
		}
	}
	if err := s.Err(); err != nil {
		return Formula{}, 0, err
	}
	if !haveProblem {
		return Formula{}, 0, fmt.Errorf("dimacs: missing problem line")
	}

	phi = Formula{Clauses: clauses}
	if readClauses != declaredClauses {
		return Formula{}, 0, fmt.Errorf("dimacs: problem line declares %d clauses, found %d", declaredClauses, readClauses)
	}
	if origVars != declaredVars {
		return Formula{}, 0, fmt.Errorf("dimacs: problem line declares %d vars, max literal index implies %d", declaredVars, origVars)
	}
	if widen {
		declaredVars = nextAux
	}
	return phi, declaredVars, nil
}
