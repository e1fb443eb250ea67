package twosat

// A TwoSatError is the uniform error value returned by the 2-SAT oracle.
// The decision engine never propagates these upward: an Err result is
// interpreted locally as "this branch is infeasible". Reaching
// NotA2SatFormula should be impossible in practice, since every caller
// reduces its input to width <= 2 first; it is kept as a distinct value
// rather than a panic so callers can assert on it in tests.
type TwoSatError string

const (
	// NotA2SatFormula means the input to the 2-SAT oracle contained a
	// clause wider than 2 after autoreduction.
	NotA2SatFormula TwoSatError = "twosat: not a 2-sat formula"
	// EmptyClauseGiven means autoreduction of the oracle's input produced
	// the canonical unsatisfiable formula.
	EmptyClauseGiven TwoSatError = "twosat: empty clause given"
	// NegationInSameSCC means a literal and its negation share a strongly
	// connected component of the implication graph: the 2-CNF is
	// unsatisfiable.
	NegationInSameSCC TwoSatError = "twosat: negation in same scc"
)

func (e TwoSatError) Error() string { return string(e) }
