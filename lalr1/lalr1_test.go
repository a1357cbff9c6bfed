package lalr1

import (
	"testing"

	"github.com/micpowe/parsegen-cpp/errs"
	"github.com/micpowe/parsegen-cpp/grammar"
)

// The shape of the textbook LR(1) grammar
//   s -> a E b | a F c | g E c | g F b
// with E -> e and F -> f deriving distinct terminals, so every state has
// at most one action per terminal and the grammar is LALR(1).
func assignGrammar(t *testing.T) *grammar.Grammar {
	t.Helper()
	g, err := grammar.Build(grammar.Input{
		Tokens: []grammar.TokenDecl{{Name: "a"}, {Name: "b"}, {Name: "c"}, {Name: "g"}, {Name: "e"}, {Name: "f"}},
		Productions: []grammar.ProductionDecl{
			{LHS: "s", RHS: []string{"a", "E", "b"}},
			{LHS: "s", RHS: []string{"a", "F", "c"}},
			{LHS: "s", RHS: []string{"g", "E", "c"}},
			{LHS: "s", RHS: []string{"g", "F", "b"}},
			{LHS: "E", RHS: []string{"e"}},
			{LHS: "F", RHS: []string{"f"}},
		},
	})
	if err != nil {
		t.Fatalf("grammar.Build: %v", err)
	}
	return g
}

func TestBuildAcceptsLALR1Grammar(t *testing.T) {
	g := assignGrammar(t)
	res, err := Build(g)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if res.Automaton == nil {
		t.Fatal("Result.Automaton is nil")
	}
	if len(res.Contexts) == 0 {
		t.Fatal("Result.Contexts is empty")
	}
}

func TestBuildRejectsAmbiguousGrammar(t *testing.T) {
	// s -> x | y with x -> IDENT and y -> IDENT: after IDENT both x and y
	// reduce, each on $end, a reduce/reduce conflict no amount of
	// lookahead resolves.
	g, err := grammar.Build(grammar.Input{
		Tokens: []grammar.TokenDecl{{Name: "IDENT"}},
		Productions: []grammar.ProductionDecl{
			{LHS: "s", RHS: []string{"x"}},
			{LHS: "s", RHS: []string{"y"}},
			{LHS: "x", RHS: []string{"IDENT"}},
			{LHS: "y", RHS: []string{"IDENT"}},
		},
	})
	if err != nil {
		t.Fatalf("grammar.Build: %v", err)
	}
	_, err = Build(g)
	if err == nil {
		t.Fatal("expected a conflict error for ambiguous reduce/reduce grammar")
	}
	if !errs.Is(err, errs.KindNotLALR1) {
		t.Errorf("expected NotLALR1, got: %v", err)
	}
}
