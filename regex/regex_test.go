package regex

import (
	"testing"

	"github.com/micpowe/parsegen-cpp/chartab"
	"github.com/micpowe/parsegen-cpp/fa"
)

func mustBuild(t *testing.T, pattern string) *fa.FA {
	t.Helper()
	dfa, err := BuildDFA("test", pattern, 7)
	if err != nil {
		t.Fatalf("BuildDFA(%q) returned error: %v", pattern, err)
	}
	return dfa
}

func syms(s string) []int {
	out := make([]int, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = chartab.Symbol(s[i])
	}
	return out
}

func TestBuildDFALiteralConcat(t *testing.T) {
	dfa := mustBuild(t, "abc")
	if !fa.Accepts(dfa, syms("abc")) {
		t.Error("expected \"abc\" to match")
	}
	if fa.Accepts(dfa, syms("ab")) {
		t.Error("did not expect \"ab\" to match")
	}
}

func TestBuildDFAUnionAndStar(t *testing.T) {
	dfa := mustBuild(t, "(a|b)*c")
	for _, s := range []string{"c", "ac", "bc", "abababc"} {
		if !fa.Accepts(dfa, syms(s)) {
			t.Errorf("expected %q to match", s)
		}
	}
	if fa.Accepts(dfa, syms("ab")) {
		t.Error("did not expect \"ab\" to match")
	}
}

func TestBuildDFAPlusAndMaybe(t *testing.T) {
	dfa := mustBuild(t, "a+b?")
	if !fa.Accepts(dfa, syms("a")) {
		t.Error("expected \"a\" to match")
	}
	if !fa.Accepts(dfa, syms("aaab")) {
		t.Error("expected \"aaab\" to match")
	}
	if fa.Accepts(dfa, syms("b")) {
		t.Error("did not expect \"b\" to match")
	}
}

func TestBuildDFACharClassAndRange(t *testing.T) {
	dfa := mustBuild(t, "[a-cX]+")
	if !fa.Accepts(dfa, syms("aXbcXa")) {
		t.Error("expected \"aXbcXa\" to match")
	}
	if fa.Accepts(dfa, syms("d")) {
		t.Error("did not expect \"d\" to match")
	}
}

func TestBuildDFANegatedCharClass(t *testing.T) {
	dfa := mustBuild(t, "[^abc]")
	if fa.Accepts(dfa, syms("a")) {
		t.Error("did not expect \"a\" to match")
	}
	if !fa.Accepts(dfa, syms("z")) {
		t.Error("expected \"z\" to match")
	}
}

func TestBuildDFAEscapedMetaChar(t *testing.T) {
	dfa := mustBuild(t, `a\.b`)
	if !fa.Accepts(dfa, syms("a.b")) {
		t.Error("expected \"a.b\" to match")
	}
	if fa.Accepts(dfa, syms("axb")) {
		t.Error("did not expect \"axb\" to match, \".\" was escaped to a literal")
	}
}

func TestBuildDFAAnyChar(t *testing.T) {
	dfa := mustBuild(t, "a.c")
	if !fa.Accepts(dfa, syms("abc")) {
		t.Error("expected \"abc\" to match")
	}
	if !fa.Accepts(dfa, syms("azc")) {
		t.Error("expected \"azc\" to match")
	}
}

func TestBuildDFARejectsMalformedPattern(t *testing.T) {
	if _, err := BuildDFA("test", "(a", 0); err == nil {
		t.Fatal("expected an error for an unbalanced group")
	}
}

func TestMatchesWholeStringOnly(t *testing.T) {
	ok, err := Matches(CommonIdentifier, "foo_bar1")
	if err != nil {
		t.Fatalf("Matches returned error: %v", err)
	}
	if !ok {
		t.Error("expected an identifier to match CommonIdentifier")
	}

	ok, err = Matches(CommonIdentifier, "1foo")
	if err != nil {
		t.Fatalf("Matches returned error: %v", err)
	}
	if ok {
		t.Error("did not expect a leading-digit string to match CommonIdentifier")
	}
}

func TestCommonWhitespace(t *testing.T) {
	ok, err := Matches(CommonWhitespace, " \t\n")
	if err != nil {
		t.Fatalf("Matches returned error: %v", err)
	}
	if !ok {
		t.Error("expected mixed whitespace to match CommonWhitespace")
	}
}

func TestCommonSignedFloat(t *testing.T) {
	for _, s := range []string{"3.14", "-2.5", "+1.0e10", "1.0e-5"} {
		ok, err := Matches(CommonSignedFloat, s)
		if err != nil {
			t.Fatalf("Matches(%q) returned error: %v", s, err)
		}
		if !ok {
			t.Errorf("expected %q to match CommonSignedFloat", s)
		}
	}
}

func TestCommonQuotedString(t *testing.T) {
	ok, err := Matches(CommonQuotedString, `"a\"b"`)
	if err != nil {
		t.Fatalf("Matches returned error: %v", err)
	}
	if !ok {
		t.Error("expected an escaped quote inside a quoted string to match")
	}
}
