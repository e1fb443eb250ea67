package twosat

// TriState is the per-variable state of a partial assignment.
type TriState int8

const (
	Unset TriState = iota
	True
	False
)

// An Assignment is a dense, mutable, per-variable partial assignment. The
// zero value is not ready for use; construct one with NewAssignment.
type Assignment []TriState

// NewAssignment returns a partial assignment over n variables, all unset.
func NewAssignment(n int) Assignment {
	return make(Assignment, n)
}

// Get returns the tri-state of variable i.
func (a Assignment) Get(i int) TriState {
	return a[i]
}

// Set fixes variable i to value, overwriting any existing state.
func (a Assignment) Set(i int, value bool) {
	if value {
		a[i] = True
	} else {
		a[i] = False
	}
}

// Unassign resets variable i to unset.
func (a Assignment) Unassign(i int) {
	a[i] = Unset
}

// IsSet reports whether variable i currently has a value.
func (a Assignment) IsSet(i int) bool {
	return a[i] != Unset
}

// Bool returns the boolean value of variable i. It panics if i is unset;
// callers must check IsSet first.
func (a Assignment) Bool(i int) bool {
	switch a[i] {
	case True:
		return true
	case False:
		return false
	default:
		panic("twosat: read of unassigned variable")
	}
}

// Clone returns an independent copy of a.
func (a Assignment) Clone() Assignment {
	out := make(Assignment, len(a))
	copy(out, a)
	return out
}

// Total extends a to a complete boolean vector, defaulting unset variables
// to false.
func (a Assignment) Total() []bool {
	out := make([]bool, len(a))
	for i, v := range a {
		out[i] = v == True
	}
	return out
}

// Signed renders the assignment as signed 1-based DIMACS-style integers,
// skipping variables that are still unset.
func (a Assignment) Signed() []int {
	var out []int
	for i, v := range a {
		switch v {
		case True:
			out = append(out, i+1)
		case False:
			out = append(out, -(i + 1))
		}
	}
	return out
}
