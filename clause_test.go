package twosat

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func lit(n int) Literal { return FromSigned(n) }

func TestClauseEval(t *testing.T) {
	c := NewC3(lit(1), lit(-2), lit(3))
	cases := []struct {
		values []bool
		want   bool
	}{
		{[]bool{true, true, false}, true},
		{[]bool{false, true, true}, true},
		{[]bool{false, false, false}, true},
		{[]bool{false, true, false}, false},
	}
	for _, tt := range cases {
		if got := c.Eval(tt.values); got != tt.want {
			t.Errorf("Eval(%v) = %v, want %v", tt.values, got, tt.want)
		}
	}
	if EmptyClause.Eval([]bool{true}) {
		t.Error("Empty.Eval should always be false")
	}
}

func TestClauseReduce(t *testing.T) {
	c := NewC3(lit(1), lit(-2), lit(3))

	a := NewAssignment(3)
	got, satisfied := c.Reduce(a)
	if satisfied || got != c {
		t.Fatalf("Reduce(unset) = (%v, %v), want (%v, false)", got, satisfied, c)
	}

	a = NewAssignment(3)
	a.Set(0, true) // x1 true satisfies the clause
	_, satisfied = c.Reduce(a)
	if !satisfied {
		t.Fatal("Reduce should report satisfied once x1=true")
	}

	a = NewAssignment(3)
	a.Set(0, false)
	a.Set(1, true) // -x2 false
	a.Set(2, false)
	got, satisfied = c.Reduce(a)
	if satisfied {
		t.Fatal("Reduce should not be satisfied")
	}
	if got.Kind != KindEmpty {
		t.Fatalf("Reduce = %v, want Empty", got)
	}

	a = NewAssignment(3)
	a.Set(0, false)
	a.Set(2, false)
	got, satisfied = c.Reduce(a)
	if satisfied {
		t.Fatal("Reduce should not be satisfied")
	}
	want := NewC1(lit(-2))
	if diff := cmp.Diff(got, want); diff != "" {
		t.Fatalf("Reduce (-got +want):\n%s", diff)
	}
}

func TestClauseContainsRemove(t *testing.T) {
	c := NewC3(lit(1), lit(-2), lit(3))
	for _, idx := range []int{0, 1, 2} {
		if !c.Contains(idx) {
			t.Errorf("Contains(%d) = false, want true", idx)
		}
	}
	if c.Contains(5) {
		t.Error("Contains(5) = true, want false")
	}

	got := c.Remove(1)
	want := NewC2(lit(1), lit(3))
	if diff := cmp.Diff(got, want); diff != "" {
		t.Fatalf("Remove (-got +want):\n%s", diff)
	}

	unchanged := c.Remove(99)
	if unchanged != c {
		t.Fatalf("Remove of absent index changed the clause: %v", unchanged)
	}
}

func TestClauseInvert(t *testing.T) {
	c := NewC3(lit(1), lit(-2), lit(3))
	once := c.Invert(1)
	twice := once.Invert(1)
	if diff := cmp.Diff(twice, c); diff != "" {
		t.Fatalf("double invert (-got +want):\n%s", diff)
	}
	if once.Contains(1) && once.Literals()[1].Value == c.Literals()[1].Value {
		t.Fatal("Invert did not flip polarity")
	}
}

func TestClauseWithImplicationAndIsImplicated(t *testing.T) {
	c := NewC2(lit(1), lit(-2))
	satisfied := c.WithImplication(lit(1))
	if !satisfied.IsImplicated() {
		t.Fatal("matching polarity should stamp Implicated")
	}

	falsified := c.WithImplication(lit(-1))
	if falsified.IsImplicated() {
		t.Fatal("opposing polarity should not stamp Implicated")
	}
	if !falsified.Literals()[0].Assigned {
		t.Fatal("opposing polarity should stamp Assigned")
	}
}

func TestReduceKCNFSmall(t *testing.T) {
	for width := 0; width <= 3; width++ {
		lits := make([]Literal, width)
		for i := range lits {
			lits[i] = lit(i + 1)
		}
		got := ReduceKCNF(lits, width)
		if len(got) != 1 {
			t.Fatalf("width %d: got %d clauses, want 1", width, len(got))
		}
		if got[0].Width() != width {
			t.Fatalf("width %d: clause width = %d", width, got[0].Width())
		}
	}
}

func TestReduceKCNFWide(t *testing.T) {
	// Grounded on original_source/src/clause.rs's from_k_clause test vectors.
	lits := []Literal{lit(1), lit(2), lit(3), lit(4)}
	got := ReduceKCNF(lits, 4)
	want := []Clause{
		NewC3(Literal{Index: 3, Value: true}, Literal{Index: 2, Value: true}, Literal{Index: 4, Value: true}),
		NewC3(Literal{Index: 4, Value: false}, Literal{Index: 1, Value: true}, Literal{Index: 0, Value: true}),
	}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Fatalf("ReduceKCNF (-got +want):\n%s", diff)
	}

	lits5 := []Literal{lit(1), lit(2), lit(3), lit(4), lit(5)}
	got5 := ReduceKCNF(lits5, 5)
	want5 := []Clause{
		NewC3(Literal{Index: 4, Value: true}, Literal{Index: 3, Value: true}, Literal{Index: 5, Value: true}),
		NewC3(Literal{Index: 5, Value: false}, Literal{Index: 2, Value: true}, Literal{Index: 6, Value: true}),
		NewC3(Literal{Index: 6, Value: false}, Literal{Index: 1, Value: true}, Literal{Index: 0, Value: true}),
	}
	if diff := cmp.Diff(got5, want5); diff != "" {
		t.Fatalf("ReduceKCNF (-got +want):\n%s", diff)
	}
}

func equisatisfiableUnderAux(t *testing.T, orig []Literal, reduced []Clause, numVars int) {
	t.Helper()
	// Brute force over original variables; for each assignment that
	// satisfies orig, some extension over the auxiliary variables must
	// satisfy every clause of reduced, and vice versa.
	n := numVars
	auxCount := 0
	for _, c := range reduced {
		if m := c.MaxIndex(); m+1 > auxCount {
			auxCount = m + 1
		}
	}
	total := auxCount
	origSat := func(values []bool) bool {
		for _, l := range orig {
			if l.Eval(values) {
				return true
			}
		}
		return false
	}
	reducedSat := func(values []bool) bool {
		for _, c := range reduced {
			if !c.Eval(values) {
				return false
			}
		}
		return true
	}
	existsExtension := func(base []bool) bool {
		auxVars := total - n
		for mask := 0; mask < 1<<uint(auxVars); mask++ {
			values := append([]bool(nil), base...)
			for i := 0; i < auxVars; i++ {
				values = append(values, mask&(1<<uint(i)) != 0)
			}
			if reducedSat(values) {
				return true
			}
		}
		return false
	}
	for mask := 0; mask < 1<<uint(n); mask++ {
		base := make([]bool, n)
		for i := 0; i < n; i++ {
			base[i] = mask&(1<<uint(i)) != 0
		}
		if origSat(base) != existsExtension(base) {
			t.Fatalf("equisatisfiability violated at base=%v: origSat=%v existsExtension=%v",
				base, origSat(base), existsExtension(base))
		}
	}
}

func TestReduceKCNFEquisatisfiable(t *testing.T) {
	orig := []Literal{lit(1), lit(-2), lit(3), lit(-4), lit(5)}
	reduced := ReduceKCNF(orig, 5)
	equisatisfiableUnderAux(t, orig, reduced, 5)
}
