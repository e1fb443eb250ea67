package twosat

// Dpll is a conventional recursive chronological-backtracking search over
// phi. The decision engine does not call it: Engine branches through its
// own recursive solve, in the same clone-per-branch shape. Dpll clones the assignment on each branch rather
// than mutating and restoring a shared vector in place, trading the
// buffer reuse an in-place restore would allow for a simpler, obviously
// correct recursive shape.
func Dpll(phi Formula, a Assignment) (Assignment, bool) {
	reduced := phi.Autoreduce(a)
	if len(reduced.Clauses) == 0 {
		return a, true
	}
	if reduced.IsUnsat() {
		return nil, false
	}

	free := reduced.FreeVars()
	if len(free) == 0 {
		// Every surviving literal has been stamped Assigned (false) by a
		// prior forcing step, but the clause list is neither empty nor
		// Empty. This should be unreachable; treat it as satisfied rather
		// than panicking, since nothing remains to branch on.
		return a, true
	}
	v := free[0]

	aTrue := a.Clone()
	aTrue.Set(v, true)
	if res, ok := Dpll(reduced, aTrue); ok {
		return res, true
	}

	aFalse := a.Clone()
	aFalse.Set(v, false)
	if res, ok := Dpll(reduced, aFalse); ok {
		return res, true
	}

	return nil, false
}

// SolveDPLL runs Dpll from a fresh all-unset assignment sized to phi's own
// variable count.
func SolveDPLL(phi Formula) (Assignment, bool) {
	return Dpll(phi, NewAssignment(phi.NumVars()))
}
