package twosat

import "sort"

// A Formula (Φ) is an ordered sequence of clauses.
type Formula struct {
	Clauses []Clause
}

// NewFormula wraps clauses as a Formula.
func NewFormula(clauses []Clause) Formula {
	return Formula{Clauses: clauses}
}

// UnsatFormula is the canonical representation of an unsatisfiable formula.
func UnsatFormula() Formula {
	return Formula{Clauses: []Clause{EmptyClause}}
}

// IsUnsat reports whether phi is the canonical unsatisfiable formula (its
// first clause is Empty — Reduce always short-circuits to this canonical
// shape, so checking the first clause suffices).
func (phi Formula) IsUnsat() bool {
	return len(phi.Clauses) > 0 && phi.Clauses[0].Kind == KindEmpty
}

// NumVars is one greater than the maximum literal index occurring in any
// clause, or 0 when phi is empty.
func (phi Formula) NumVars() int {
	max := -1
	for _, c := range phi.Clauses {
		if m := c.MaxIndex(); m > max {
			max = m
		}
	}
	return max + 1
}

// Reduce reduces every clause of phi under a, dropping satisfied clauses.
// If any clause reduces to Empty, Reduce short-circuits to UnsatFormula().
func (phi Formula) Reduce(a Assignment) Formula {
	out := make([]Clause, 0, len(phi.Clauses))
	for _, c := range phi.Clauses {
		reduced, satisfied := c.Reduce(a)
		if satisfied {
			continue
		}
		if reduced.Kind == KindEmpty {
			return UnsatFormula()
		}
		out = append(out, reduced)
	}
	return Formula{Clauses: out}
}

// Units returns every unit (C1) clause currently in phi.
func (phi Formula) Units() []Clause {
	var out []Clause
	for _, c := range phi.Clauses {
		if c.Kind == KindC1 {
			out = append(out, c)
		}
	}
	return out
}

// Autoreduce first reduces phi under a's already-set values (picking up
// any forcing the caller recorded out of band), then propagates newly
// exposed unit clauses to a fixpoint, recording each forced literal into
// a (which callers must have sized to phi.NumVars() or larger). The
// result is either a formula with no unit clauses, or the canonical
// unsatisfiable formula.
func (phi Formula) Autoreduce(a Assignment) Formula {
	cur := phi.Reduce(a)
	for {
		if cur.IsUnsat() {
			return cur
		}
		units := cur.Units()
		if len(units) == 0 {
			return cur
		}
		for _, u := range units {
			l := u.Lits[0]
			if a.IsSet(l.Index) {
				continue
			}
			a.Set(l.Index, l.Value)
		}
		cur = cur.Reduce(a)
		if cur.IsUnsat() {
			return cur
		}
	}
}

// PhiPrime returns the focused subformula: clauses that contain variable
// index and are not themselves derived conclusions (IsImplicated ==
// false). Derived clauses are excluded to prevent a 2-SAT probe from
// circular reasoning over its own previously recorded forced conclusions.
func (phi Formula) PhiPrime(index int) Formula {
	var out []Clause
	for _, c := range phi.Clauses {
		if c.Contains(index) && !c.IsImplicated() {
			out = append(out, c)
		}
	}
	return Formula{Clauses: out}
}

// FreeVars returns, in increasing order, the distinct variable indices
// appearing in non-Assigned literals of phi.
func (phi Formula) FreeVars() []int {
	seen := make(map[int]bool)
	var out []int
	for _, c := range phi.Clauses {
		for _, l := range c.Literals() {
			if l.Assigned {
				continue
			}
			if !seen[l.Index] {
				seen[l.Index] = true
				out = append(out, l.Index)
			}
		}
	}
	sort.Ints(out)
	return out
}

// MarkImplications walks every clause containing variable unit.Lits[0].Index
// and stamps the matching literal: Implicated if its polarity agrees with
// the forcing (the clause is satisfied by it), else Assigned (the literal
// is now false). It mutates phi's clause slice in place, matching the
// original design's update_implications.
func (phi Formula) MarkImplications(unit Clause) {
	forced := unit.Lits[0]
	for i, c := range phi.Clauses {
		if c.Contains(forced.Index) {
			phi.Clauses[i] = c.WithImplication(forced)
		}
	}
}

// Eval returns the value of phi under a total assignment.
func (phi Formula) Eval(values []bool) bool {
	for _, c := range phi.Clauses {
		if !c.Eval(values) {
			return false
		}
	}
	return true
}

// Invert returns a formula with variable index's polarity flipped in every
// clause that mentions it.
func (phi Formula) Invert(index int) Formula {
	out := make([]Clause, len(phi.Clauses))
	for i, c := range phi.Clauses {
		if c.Contains(index) {
			out[i] = c.Invert(index)
		} else {
			out[i] = c
		}
	}
	return Formula{Clauses: out}
}

// Clone returns a formula with an independent clause slice (clauses
// themselves are immutable values, so this is a shallow copy of the
// slice header's backing array).
func (phi Formula) Clone() Formula {
	out := make([]Clause, len(phi.Clauses))
	copy(out, phi.Clauses)
	return Formula{Clauses: out}
}
