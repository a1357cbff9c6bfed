package grammar

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/micpowe/parsegen-cpp/errs"
)

func exprInput() Input {
	return Input{
		Tokens: []TokenDecl{{Name: "NUM"}, {Name: "PLUS"}, {Name: "WS"}},
		Productions: []ProductionDecl{
			{LHS: "expr", RHS: []string{"expr", "PLUS", "expr"}},
			{LHS: "expr", RHS: []string{"NUM"}},
		},
		Ignored: []string{"WS"},
	}
}

func TestBuildAugmentsGrammar(t *testing.T) {
	g, err := Build(exprInput())
	require.NoError(t, err)
	require.Len(t, g.Productions, 3, "want 2 user productions + accept")

	accept := g.Productions[len(g.Productions)-1]
	require.Equal(t, g.Accept, accept.LHS)
	require.Len(t, accept.RHS, 2)
	require.Equal(t, g.Start, accept.RHS[0])
	require.Equal(t, g.End, accept.RHS[1])
	require.Equal(t, len(g.Productions)-1, accept.ID, "accept production must be last")
	require.Equal(t, g.Start, g.Productions[0].LHS, "user productions keep their declared id order starting at 0")
	require.Equal(t, 4, g.Symbols.NTerminals(), "want NUM, PLUS, WS, $end")
	require.Len(t, g.Ignored, 1)
}

func TestBuildReportsUnknownSymbols(t *testing.T) {
	in := exprInput()
	in.Productions = append(in.Productions, ProductionDecl{LHS: "expr", RHS: []string{"MYSTERY"}})
	in.Ignored = append(in.Ignored, "GHOST")

	_, err := Build(in)
	require.Error(t, err)
	require.True(t, errs.Is(err, errs.KindUnknownSymbol) || containsUnknownSymbol(err),
		"expected an UnknownSymbol error among: %v", err)
}

func containsUnknownSymbol(err error) bool {
	for _, e := range flatten(err) {
		if errs.Is(e, errs.KindUnknownSymbol) {
			return true
		}
	}
	return false
}

func flatten(err error) []error {
	type multi interface{ Errors() []error }
	if m, ok := err.(multi); ok {
		return m.Errors()
	}
	return []error{err}
}

func TestNullable(t *testing.T) {
	in := Input{
		Tokens: []TokenDecl{{Name: "A"}},
		Productions: []ProductionDecl{
			{LHS: "s", RHS: []string{"a", "a"}},
			{LHS: "a", RHS: nil},
			{LHS: "a", RHS: []string{"A"}},
		},
	}
	g, err := Build(in)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	nullable := g.Nullable()
	aSym, _ := g.Symbols.Lookup("a")
	sSym, _ := g.Symbols.Lookup("s")
	if !nullable[aSym] {
		t.Error("a should be nullable")
	}
	if !nullable[sSym] {
		t.Error("s should be nullable (both RHS symbols nullable)")
	}
}
