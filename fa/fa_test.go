package fa

import "testing"

func buildAB(t *testing.T) *FA {
	t.Helper()
	// (a|b)+c, over a 3-symbol alphabet {a=0, b=1, c=2}, token 7.
	a := Single(3, 0, 7)
	b := Single(3, 1, 7)
	ab := Union(a, b)
	abPlus := Plus(ab, 7)
	c := Single(3, 2, 7)
	return Determinize(Concat(abPlus, c, 7))
}

func TestDeterminizeAcceptsMatchingStrings(t *testing.T) {
	dfa := buildAB(t)
	cases := []struct {
		in   []int
		want bool
	}{
		{[]int{0, 2}, true},
		{[]int{1, 2}, true},
		{[]int{0, 1, 0, 1, 2}, true},
		{[]int{2}, false},
		{[]int{0, 1}, false},
		{[]int{0, 2, 2}, false},
	}
	for _, c := range cases {
		if got := Accepts(dfa, c.in); got != c.want {
			t.Errorf("Accepts(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestSimplifyPreservesLanguage(t *testing.T) {
	dfa := buildAB(t)
	min := Simplify(dfa)
	cases := [][]int{
		{0, 2}, {1, 2}, {0, 1, 0, 1, 2}, {2}, {0, 1}, {0, 2, 2}, {},
	}
	for _, c := range cases {
		if Accepts(dfa, c) != Accepts(min, c) {
			t.Errorf("Simplify changed acceptance of %v", c)
		}
	}
	if min.NStates() > dfa.NStates() {
		t.Errorf("Simplify grew the automaton: %d -> %d states", dfa.NStates(), min.NStates())
	}
}

func TestDeclarationOrderPriority(t *testing.T) {
	// Two overlapping single-char tokens; the smaller token id must win.
	keyword := Single(2, 0, 0)
	ident := Single(2, 0, 1)
	dfa := Determinize(Union(keyword, ident))
	if got := Run(dfa, []int{0}); got != 0 {
		t.Errorf("Run = %d, want 0 (smallest token id wins)", got)
	}
}

func TestRemoveTransitionsFromAccepting(t *testing.T) {
	dfa := buildAB(t)
	stripped := RemoveTransitionsFromAccepting(dfa)
	if Accepts(stripped, []int{0, 2, 2}) {
		t.Error("stripped automaton should not accept input that continues past an accept")
	}
	if !Accepts(stripped, []int{0, 2}) {
		t.Error("stripped automaton should still accept the bare matching input")
	}
}
