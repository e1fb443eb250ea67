package twosat

import "fmt"

// ClauseKind tags a Clause by its width.
type ClauseKind int8

const (
	// KindEmpty denotes falsity: an unsatisfiable residue.
	KindEmpty ClauseKind = iota
	KindC1
	KindC2
	KindC3
)

// A Clause is a disjunction of at most three literals, tagged by width.
// Within a non-Empty clause all literal indices are distinct; only the
// first Width() entries of Lits are meaningful.
type Clause struct {
	Kind ClauseKind
	Lits [3]Literal
}

// EmptyClause is the canonical falsified clause.
var EmptyClause = Clause{Kind: KindEmpty}

// NewC1 builds a unit clause.
func NewC1(l Literal) Clause {
	return Clause{Kind: KindC1, Lits: [3]Literal{l}}
}

// NewC2 builds a binary clause.
func NewC2(l1, l2 Literal) Clause {
	return Clause{Kind: KindC2, Lits: [3]Literal{l1, l2}}
}

// NewC3 builds a ternary clause.
func NewC3(l1, l2, l3 Literal) Clause {
	return Clause{Kind: KindC3, Lits: [3]Literal{l1, l2, l3}}
}

// newClause rebuilds a clause of the given width from a literal slice,
// used by operations (Reduce, Remove, WithImplication) that shrink or
// otherwise rebuild a clause from scratch.
func newClause(lits []Literal) Clause {
	switch len(lits) {
	case 0:
		return EmptyClause
	case 1:
		return NewC1(lits[0])
	case 2:
		return NewC2(lits[0], lits[1])
	case 3:
		return NewC3(lits[0], lits[1], lits[2])
	default:
		panic("twosat: clause width out of range")
	}
}

// Width returns the clause's arity: 0 for Empty, else 1, 2, or 3.
func (c Clause) Width() int {
	return int(c.Kind)
}

// Literals returns the clause's literals in clause order.
func (c Clause) Literals() []Literal {
	return c.Lits[:c.Width()]
}

// Contains reports whether some literal in c has the given variable index.
func (c Clause) Contains(index int) bool {
	for _, l := range c.Literals() {
		if l.Index == index {
			return true
		}
	}
	return false
}

// Remove returns a clause with the literal of the given index dropped
// (width decreases by one). If no such literal exists, c is returned
// unchanged.
func (c Clause) Remove(index int) Clause {
	lits := c.Literals()
	for i, l := range lits {
		if l.Index == index {
			rest := make([]Literal, 0, len(lits)-1)
			rest = append(rest, lits[:i]...)
			rest = append(rest, lits[i+1:]...)
			return newClause(rest)
		}
	}
	return c
}

// Invert returns a clause with the polarity of the literal at index
// flipped. Used to relabel a formula so that a reference assignment
// becomes all-false.
func (c Clause) Invert(index int) Clause {
	lits := append([]Literal(nil), c.Literals()...)
	for i, l := range lits {
		if l.Index == index {
			lits[i] = l.Negate()
		}
	}
	return newClause(lits)
}

// IsImplicated reports whether any literal in c has been stamped
// Implicated by Formula.MarkImplications — i.e. the clause is a derived
// conclusion of a prior forcing step, and so must be excluded from later
// focused subformulas to avoid circular reasoning (see Formula.PhiPrime).
func (c Clause) IsImplicated() bool {
	for _, l := range c.Literals() {
		if l.Implicated {
			return true
		}
	}
	return false
}

// WithImplication stamps the literal matching forced.Index: Implicated if
// its polarity agrees with the forcing (the clause is satisfied by it),
// else Assigned (the literal is now known false).
func (c Clause) WithImplication(forced Literal) Clause {
	lits := append([]Literal(nil), c.Literals()...)
	for i, l := range lits {
		if l.Index != forced.Index {
			continue
		}
		if l.Value == forced.Value {
			l.Implicated = true
		} else {
			l.Assigned = true
		}
		lits[i] = l
	}
	return newClause(lits)
}

// MaxIndex returns the greatest literal index occurring in c, or -1 for
// Empty.
func (c Clause) MaxIndex() int {
	m := -1
	for _, l := range c.Literals() {
		if l.Index > m {
			m = l.Index
		}
	}
	return m
}

// Eval returns the boolean value of c under a total assignment. Empty
// evaluates to false by definition.
func (c Clause) Eval(values []bool) bool {
	for _, l := range c.Literals() {
		if l.Eval(values) {
			return true
		}
	}
	return false
}

// Reduce reduces c under the partial assignment a. It returns
// (_, true) if c is satisfied (at least one literal evaluates true under
// a — the "None" case, meaning the clause can be dropped from the
// formula), or (c', false) where c' is EmptyClause if every literal
// evaluates false, else a clause over the literals still unassigned.
func (c Clause) Reduce(a Assignment) (Clause, bool) {
	if c.Kind == KindEmpty {
		return EmptyClause, false
	}
	remaining := make([]Literal, 0, c.Width())
	for _, l := range c.Literals() {
		if !a.IsSet(l.Index) {
			remaining = append(remaining, l)
			continue
		}
		if a.Bool(l.Index) == l.Value {
			return Clause{}, true
		}
	}
	return newClause(remaining), false
}

// ReduceKCNF rewrites a clause of width k = len(lits) > 3 into k-2 width-3
// clauses, introducing k-3 fresh auxiliary variables at indices
// numVars, numVars+1, .... For k <= 3 it returns the clause unchanged (as
// a single-element slice). The result is equisatisfiable with the
// original modulo the auxiliary variables.
func ReduceKCNF(lits []Literal, numVars int) []Clause {
	switch len(lits) {
	case 0:
		return []Clause{EmptyClause}
	case 1:
		return []Clause{NewC1(lits[0])}
	case 2:
		return []Clause{NewC2(lits[0], lits[1])}
	case 3:
		return []Clause{NewC3(lits[0], lits[1], lits[2])}
	}

	rest := append([]Literal(nil), lits...)
	pop := func() Literal {
		last := rest[len(rest)-1]
		rest = rest[:len(rest)-1]
		return last
	}

	var result []Clause
	fooVars := 0

	lit1 := pop()
	lit2 := pop()
	foo := Literal{Index: numVars + fooVars, Value: true}
	result = append(result, NewC3(lit1, lit2, foo))

	for len(rest) > 2 {
		foo1 := Literal{Index: numVars + fooVars, Value: false}
		lit := pop()
		fooVars++
		foo2 := Literal{Index: numVars + fooVars, Value: true}
		result = append(result, NewC3(foo1, lit, foo2))
	}

	last := Literal{Index: numVars + fooVars, Value: false}
	lit1 = pop()
	lit2 = pop()
	result = append(result, NewC3(last, lit1, lit2))

	return result
}

func (c Clause) String() string {
	if c.Kind == KindEmpty {
		return "()"
	}
	s := "("
	for i, l := range c.Literals() {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprint(l)
	}
	return s + ")"
}
