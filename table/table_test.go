package table

import (
	"testing"

	"github.com/micpowe/parsegen-cpp/grammar"
	"github.com/micpowe/parsegen-cpp/lalr1"
)

func buildExprTables(t *testing.T) (*grammar.Grammar, *ParserTables) {
	t.Helper()
	g, err := grammar.Build(grammar.Input{
		Tokens: []grammar.TokenDecl{{Name: "NUM"}, {Name: "PLUS"}, {Name: "WS"}},
		Productions: []grammar.ProductionDecl{
			{LHS: "expr", RHS: []string{"expr", "PLUS", "term"}},
			{LHS: "expr", RHS: []string{"term"}},
			{LHS: "term", RHS: []string{"NUM"}},
		},
		Ignored: []string{"WS"},
	})
	if err != nil {
		t.Fatalf("grammar.Build: %v", err)
	}
	res, err := lalr1.Build(g)
	if err != nil {
		t.Fatalf("lalr1.Build: %v", err)
	}
	pt, err := Build(g, res)
	if err != nil {
		t.Fatalf("table.Build: %v", err)
	}
	return g, pt
}

func TestIgnoredTerminalSkipsInEveryState(t *testing.T) {
	g, pt := buildExprTables(t)
	ws, ok := g.Symbols.Lookup("WS")
	if !ok {
		t.Fatal("WS not found")
	}
	for state := 0; state < pt.NStates; state++ {
		if got := pt.ActionAt(state, ws); got.Kind != ActionSkip {
			t.Errorf("state %d: WS action = %+v, want Skip", state, got)
		}
	}
}

func TestShiftOnNumFromStartState(t *testing.T) {
	g, pt := buildExprTables(t)
	num, _ := g.Symbols.Lookup("NUM")
	if got := pt.ActionAt(0, num); got.Kind != ActionShift {
		t.Errorf("state 0 NUM action = %+v, want Shift", got)
	}
}
