package twosat

import "github.com/kr/pretty"

// Engine runs the 2-SAT-guided decision loop: a forcing phase that probes
// each free variable's focused subformula both ways through the 2-SAT
// oracle, and a branching phase that recursively solves with the first free
// variable set true, then false, when a sweep forces nothing new or its
// forces lead to a conflict.
//
// The zero value is ready to use. Set Debug to trace the partial
// assignment at each iteration.
type Engine struct {
	Debug bool

	Iterations int
	Forced     int
	Branches   int
}

// Solve decides satisfiability of phi and, if satisfiable, returns a
// total assignment (unset variables default to false).
func (e *Engine) Solve(phi Formula) ([]bool, bool) {
	a, ok := e.solve(phi, NewAssignment(phi.NumVars()))
	if !ok {
		return nil, false
	}
	return a.Total(), true
}

func (e *Engine) solve(phi Formula, a Assignment) (Assignment, bool) {
	for {
		e.Iterations++
		phi = phi.Autoreduce(a)
		if phi.IsUnsat() {
			return nil, false
		}
		if len(phi.Clauses) == 0 {
			return a, true
		}
		if e.Debug {
			pretty.Printf("iter %d: %# v\n", e.Iterations, a)
		}

		// Values forced by agreement come from one model of each probe, not
		// from a proof, so a sweep's forces are tentative: if they end in a
		// conflict they are undone and the engine branches from the state
		// before the sweep.
		before, phiBefore := a.Clone(), phi.Clone()
		if e.forcingSweep(&phi, a) == forcingProgress {
			if res, ok := e.solve(phi, a); ok {
				return res, true
			}
		}
		copy(a, before)
		phi = phiBefore

		free := phi.FreeVars()
		if len(free) == 0 {
			return a, true
		}
		v := free[0]
		e.Branches++

		aTrue := a.Clone()
		aTrue.Set(v, true)
		if res, ok := e.solve(phi, aTrue); ok {
			return res, true
		}

		aFalse := a.Clone()
		aFalse.Set(v, false)
		return e.solve(phi, aFalse)
	}
}

type forcingOutcome int

const (
	forcingNone forcingOutcome = iota
	forcingProgress
	forcingConflict
)

// forcingSweep runs one sweep of the forcing phase over every variable
// free at the start of the sweep. Forces discovered partway through the
// sweep feed later steps of the same sweep, since they update a (and phi,
// via MarkImplications) immediately.
func (e *Engine) forcingSweep(phi *Formula, a Assignment) forcingOutcome {
	free := phi.FreeVars()
	outcome := forcingNone

	for _, v := range free {
		if a.IsSet(v) {
			continue
		}
		phiPrime := phi.PhiPrime(v)

		aTrue := a.Clone()
		aTrue.Set(v, true)
		aFalse := a.Clone()
		aFalse.Set(v, false)

		phiT := phiPrime.Reduce(aTrue)
		phiF := phiPrime.Reduce(aFalse)

		rt, errT := TwoSat(phiT, len(a))
		rf, errF := TwoSat(phiF, len(a))

		switch {
		case errT != nil && errF != nil:
			return forcingConflict
		case errT != nil:
			e.force(phi, a, v, false)
			outcome = forcingProgress
		case errF != nil:
			e.force(phi, a, v, true)
			outcome = forcingProgress
		default:
			for _, i := range free {
				if i == v || a.IsSet(i) {
					continue
				}
				if rt.IsSet(i) && rf.IsSet(i) && rt.Bool(i) == rf.Bool(i) {
					e.force(phi, a, i, rt.Bool(i))
					outcome = forcingProgress
				}
			}
			// Disagreements between rt and rf are optional learning and
			// are not recorded here: omitting them does not affect
			// correctness, only how quickly forcing converges.
		}
	}
	return outcome
}

func (e *Engine) force(phi *Formula, a Assignment, v int, value bool) {
	a.Set(v, value)
	phi.MarkImplications(NewC1(Literal{Index: v, Value: value}))
	e.Forced++
	if e.Debug {
		pretty.Printf("forced x%d = %v\n", v+1, value)
	}
}
