// Package grammar builds the augmented symbol/production model an LR(0)
// automaton is constructed over: terminals numbered in declaration order
// with a synthesized end-of-input terminal appended, nonterminals
// numbered by first LHS occurrence with a synthesized accept production
// appended, and every RHS symbol resolved against that symbol space.
//
// Grounded on _examples/original_source/parsegen_language.cpp's
// build_grammar, in the structural style of
// nihei9-vartan/grammar/production.go and grammar.go.
package grammar

import "github.com/micpowe/parsegen-cpp/symbol"

// Production is one grammar rule, lhs -> rhs (rhs may be empty).
type Production struct {
	ID  int
	LHS symbol.Symbol
	RHS []symbol.Symbol
}

// IsEmpty reports whether the production's right-hand side is empty
// (lhs derives the empty string directly).
func (p *Production) IsEmpty() bool {
	return len(p.RHS) == 0
}
