package indent

import "testing"

func TestBuildNotIndentSensitive(t *testing.T) {
	info, err := Build([]string{"IDENT", "NUM", "PLUS"})
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if info.IndentSensitive {
		t.Error("expected IndentSensitive = false")
	}
}

func TestBuildValidTriad(t *testing.T) {
	info, err := Build([]string{"IDENT", "NEWLINE", "INDENT", "DEDENT"})
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if !info.IndentSensitive {
		t.Fatal("expected IndentSensitive = true")
	}
	if info.NewlineIndex != 1 || info.IndentIndex != 2 || info.DedentIndex != 3 {
		t.Errorf("unexpected indices: %+v", info)
	}
}

func TestBuildNotIndentSensitiveWithoutIndentToken(t *testing.T) {
	info, err := Build([]string{"IDENT", "NEWLINE", "DEDENT"})
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if info.IndentSensitive {
		t.Error("expected IndentSensitive = false when INDENT is absent, even with NEWLINE and DEDENT declared")
	}
}

func TestBuildRejectsPartialTriad(t *testing.T) {
	_, err := Build([]string{"IDENT", "NEWLINE", "INDENT"})
	if err == nil {
		t.Fatal("expected an error for a partial indent triad")
	}
}

func TestBuildRejectsNewlineAfterIndent(t *testing.T) {
	_, err := Build([]string{"INDENT", "NEWLINE", "DEDENT"})
	if err == nil {
		t.Fatal("expected an error when NEWLINE is declared after INDENT")
	}
}

func TestBuildRejectsDuplicateToken(t *testing.T) {
	_, err := Build([]string{"NEWLINE", "NEWLINE", "INDENT", "DEDENT"})
	if err == nil {
		t.Fatal("expected an error for a duplicate NEWLINE token")
	}
}
