package lr0

import (
	"testing"

	"github.com/micpowe/parsegen-cpp/grammar"
)

// classic expr grammar: expr -> expr + term | term ; term -> NUM
func buildExprGrammar(t *testing.T) *grammar.Grammar {
	t.Helper()
	g, err := grammar.Build(grammar.Input{
		Tokens: []grammar.TokenDecl{{Name: "NUM"}, {Name: "PLUS"}},
		Productions: []grammar.ProductionDecl{
			{LHS: "expr", RHS: []string{"expr", "PLUS", "term"}},
			{LHS: "expr", RHS: []string{"term"}},
			{LHS: "term", RHS: []string{"NUM"}},
		},
	})
	if err != nil {
		t.Fatalf("grammar.Build: %v", err)
	}
	return g
}

func TestBuildProducesStartStateWithAcceptKernel(t *testing.T) {
	g := buildExprGrammar(t)
	a := Build(g)
	if len(a.States) == 0 {
		t.Fatal("no states built")
	}
	start := a.States[0]
	if start.KernelSize != 1 {
		t.Fatalf("start state kernel size = %d, want 1", start.KernelSize)
	}
	kernelConfig := start.Configs[0]
	if kernelConfig.Production.LHS != g.Accept || kernelConfig.Dot != 0 {
		t.Errorf("start kernel config = %+v, want accept production at dot 0", kernelConfig)
	}
}

func TestClosureAddsAllProductionsOfNonterminal(t *testing.T) {
	g := buildExprGrammar(t)
	a := Build(g)
	start := a.States[0]
	// closure of accept -> . expr $end must add both expr productions at dot 0
	var sawExprPlus, sawExprTerm bool
	for _, c := range start.Configs {
		if c.Dot != 0 {
			continue
		}
		if len(c.Production.RHS) == 3 {
			sawExprPlus = true
		}
		if len(c.Production.RHS) == 1 && g.Symbols.IsNonterminal(c.Production.RHS[0]) {
			sawExprTerm = true
		}
	}
	if !sawExprPlus || !sawExprTerm {
		t.Errorf("closure missing expected configs: sawExprPlus=%v sawExprTerm=%v", sawExprPlus, sawExprTerm)
	}
}

func TestStatesAreDeduplicatedByKernel(t *testing.T) {
	g := buildExprGrammar(t)
	a := Build(g)
	// Build must not create duplicate states for identical kernels reached
	// along different paths (e.g. "term -> NUM ." is reached from the
	// start state and after a PLUS).
	seen := make(map[string]bool)
	for _, st := range a.States {
		key := kernelKey(st.Configs[:st.KernelSize])
		if seen[key] {
			t.Fatalf("duplicate state for kernel %q", key)
		}
		seen[key] = true
	}
}
