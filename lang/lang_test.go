package lang

import "testing"

func exprLanguage() Language {
	return Language{
		Tokens: []TokenDecl{
			{Name: "NUM", Regex: `[0-9]+`},
			{Name: "PLUS", Regex: `\+`},
			{Name: "WS", Regex: `[ \t]+`},
		},
		Productions: []ProductionDecl{
			{LHS: "expr", RHS: []string{"expr", "PLUS", "term"}},
			{LHS: "expr", RHS: []string{"term"}},
			{LHS: "term", RHS: []string{"NUM"}},
		},
		Ignored: []string{"WS"},
	}
}

func TestBuildProducesCompleteTables(t *testing.T) {
	pt, err := Build(exprLanguage())
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if pt.Lexer == nil || pt.ShiftReduce == nil || pt.Indent == nil {
		t.Fatal("expected lexer, shift-reduce tables, and indent info all to be populated")
	}
	if pt.Indent.IndentSensitive {
		t.Error("expr language declares no INDENT token, should not be indent-sensitive")
	}
}

func TestBuildRejectsEmptyLanguage(t *testing.T) {
	if _, err := Build(Language{}); err == nil {
		t.Fatal("expected an error for a language with no tokens or productions")
	}
}

func TestBuildRejectsUnresolvedSymbol(t *testing.T) {
	l := exprLanguage()
	l.Productions = append(l.Productions, ProductionDecl{LHS: "term", RHS: []string{"NOPE"}})
	if _, err := Build(l); err == nil {
		t.Fatal("expected an error for an unresolved RHS symbol")
	}
}

func TestBuildIndentSensitiveLanguage(t *testing.T) {
	l := Language{
		Tokens: []TokenDecl{
			{Name: "IDENT", Regex: `[a-z]+`},
			{Name: "NEWLINE", Regex: "\n"},
			{Name: "INDENT", Regex: "~"},
			{Name: "DEDENT", Regex: "`"},
		},
		Productions: []ProductionDecl{
			{LHS: "block", RHS: []string{"IDENT"}},
		},
	}
	pt, err := Build(l)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if !pt.Indent.IndentSensitive {
		t.Fatal("expected an indent-sensitive language")
	}
}
