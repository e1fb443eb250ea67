package twosat

import (
	"fmt"
	"io"
	"os"
)

// A Solver wraps a loaded formula and the decision engine used to solve
// it. The zero value is not ready for use; construct one with NewSolver
// or NewSolverFromReader.
type Solver struct {
	phi        Formula
	numVars    int
	numClauses int

	Engine Engine
}

// NewSolver reads a DIMACS CNF file at path.
func NewSolver(path string) (*Solver, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return NewSolverFromReader(f)
}

// NewSolverFromReader reads a DIMACS CNF formula from r.
func NewSolverFromReader(r io.Reader) (*Solver, error) {
	phi, numVars, err := ParseDIMACS(r, false)
	if err != nil {
		return nil, fmt.Errorf("twosat: reading DIMACS input: %w", err)
	}
	return &Solver{phi: phi, numVars: numVars, numClauses: len(phi.Clauses)}, nil
}

// NumVariables returns the declared number of variables.
func (s *Solver) NumVariables() int { return s.numVars }

// NumClauses returns the declared number of clauses.
func (s *Solver) NumClauses() int { return s.numClauses }

// Solve decides satisfiability and, if satisfiable, returns a truth
// assignment as signed 1-based integers (one per variable, in variable
// order). ok is false iff the formula is unsatisfiable.
func (s *Solver) Solve() (assignment []int, ok bool) {
	values, ok := s.Engine.Solve(s.phi)
	if !ok {
		return nil, false
	}
	assignment = make([]int, len(values))
	for i, v := range values {
		if v {
			assignment[i] = i + 1
		} else {
			assignment[i] = -(i + 1)
		}
	}
	return assignment, true
}
