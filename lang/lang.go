// Package lang is the top-level entry point: it takes a Language (token
// regexes, BNF productions, ignored-token names) and drives the whole
// construction pipeline — per-token regex compilation, lexer DFA
// assembly, indentation-triad detection, grammar augmentation, LALR(1)
// lookahead computation, and table finalization — down to a single
// ParserTables a runtime driver can use.
//
// Grounded on _examples/original_source/parsegen_language.cpp's
// build_language_parser orchestration.
package lang

import (
	"go.uber.org/zap"

	"github.com/micpowe/parsegen-cpp/errs"
	"github.com/micpowe/parsegen-cpp/fa"
	"github.com/micpowe/parsegen-cpp/grammar"
	"github.com/micpowe/parsegen-cpp/indent"
	"github.com/micpowe/parsegen-cpp/lalr1"
	"github.com/micpowe/parsegen-cpp/regex"
	"github.com/micpowe/parsegen-cpp/table"
)

var logger *zap.Logger = zap.NewNop()

// SetLogger overrides the package-level logger used to report non-fatal
// build diagnostics (fa's simplification fixpoint warning, and a summary
// line after each successful Build).
// Passing nil restores the no-op default.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
	fa.SetLogger(l)
}

// TokenDecl declares one lexical token: its name and the pattern (in the
// syntax regex.BuildDFA accepts) that recognizes it. Declaration order
// sets both its terminal id and its priority when two tokens' patterns
// both match the same input.
type TokenDecl struct {
	Name  string
	Regex string
}

// ProductionDecl is one BNF production before symbol resolution.
type ProductionDecl struct {
	LHS string
	RHS []string
}

// Language is everything Build needs: the declared tokens, the
// productions over them, and the subset of tokens the parser driver
// should discard rather than shift. The first production's LHS is the
// grammar's start symbol.
type Language struct {
	Tokens      []TokenDecl
	Productions []ProductionDecl
	Ignored     []string
}

// ParserTables is the finished output of Build: a lexer DFA, the
// indentation-triad info derived from the token declarations, and the
// LALR(1) shift/reduce/goto tables.
type ParserTables struct {
	Lexer       *fa.FA
	Indent      *indent.Info
	ShiftReduce *table.ParserTables
	Grammar     *grammar.Grammar
}

// Build runs the full pipeline and returns the finished tables, or the
// first error encountered: a malformed Language, an unresolved symbol, a
// token pattern the bootstrap regex parser rejects, an ambiguous or
// non-LALR(1) grammar, or an internal invariant violation.
func Build(l Language) (*ParserTables, error) {
	if len(l.Tokens) == 0 {
		return nil, errs.InvalidLanguage("a language needs at least one token")
	}
	if len(l.Productions) == 0 {
		return nil, errs.InvalidLanguage("a language needs at least one production")
	}

	tokenNames := make([]string, len(l.Tokens))
	for i, t := range l.Tokens {
		if t.Name == "" {
			return nil, errs.InvalidLanguage("token %d: name must not be empty", i)
		}
		if t.Regex == "" {
			return nil, errs.InvalidLanguage("token %q: regex must not be empty", t.Name)
		}
		tokenNames[i] = t.Name
	}

	indentInfo, err := indent.Build(tokenNames)
	if err != nil {
		return nil, err
	}

	lexerDFA, err := buildLexer(l.Tokens)
	if err != nil {
		return nil, err
	}

	gInput := grammar.Input{
		Tokens:      make([]grammar.TokenDecl, len(l.Tokens)),
		Productions: make([]grammar.ProductionDecl, len(l.Productions)),
		Ignored:     l.Ignored,
	}
	for i, t := range l.Tokens {
		gInput.Tokens[i] = grammar.TokenDecl{Name: t.Name}
	}
	for i, p := range l.Productions {
		gInput.Productions[i] = grammar.ProductionDecl{LHS: p.LHS, RHS: p.RHS}
	}

	g, err := grammar.Build(gInput)
	if err != nil {
		return nil, err
	}

	res, err := lalr1.Build(g)
	if err != nil {
		return nil, err
	}

	pt, err := table.Build(g, res)
	if err != nil {
		return nil, err
	}

	logger.Info("built language parser tables",
		zap.Int("tokens", len(l.Tokens)),
		zap.Int("productions", len(l.Productions)),
		zap.Int("states", pt.NStates),
		zap.Bool("indentSensitive", indentInfo.IndentSensitive),
	)

	return &ParserTables{
		Lexer:       lexerDFA,
		Indent:      indentInfo,
		ShiftReduce: pt,
		Grammar:     g,
	}, nil
}

// buildLexer compiles each token's pattern to a DFA via regex.BuildDFA,
// tagged with its declaration-order id, unions them all (declaration
// order gives the earliest-declared token priority on overlap, per
// fa.Determinize's minAcceptToken tie-break), and determinizes and
// simplifies the result into the combined lexer DFA. A single token's
// DFA is returned as is.
func buildLexer(tokens []TokenDecl) (*fa.FA, error) {
	nfas := make([]*fa.FA, len(tokens))
	for i, t := range tokens {
		dfa, err := regex.BuildDFA(t.Name, t.Regex, i)
		if err != nil {
			return nil, err
		}
		nfas[i] = dfa
	}
	if len(nfas) == 1 {
		return nfas[0], nil
	}
	combined := nfas[0]
	for _, n := range nfas[1:] {
		combined = fa.Union(combined, n)
	}
	return fa.Simplify(fa.Determinize(combined)), nil
}
