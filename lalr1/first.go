// Package lalr1 computes LALR(1) lookahead contexts for an LR(0)
// automaton's reduce configurations via the originator-graph formulation
// of David Pager's lane-tracing algorithm, then checks the resulting
// parsing-action table for adequacy.
//
// Grounded on _examples/original_source/parsegen_build_parser.cpp
// (compute_first_sets, make_originator_graph, compute_context_set,
// determine_adequate_states, build_lalr1_parser). The context relation
// lane tracing evaluates is re-expressed here in two passes over the same
// originator graph and FIRST sets, rather than the two-stack LANE/STACK
// machine of the original: a DFS over originator edges whose follow
// string is both nullable and has a non-null terminal descendant detects
// the original's test-A ambiguity, and a fixed-point iteration over the
// full graph computes every context, resolving the purely-nullable
// lane-merge cycles (tests B/C) the DFS lets through. See DESIGN.md.
package lalr1

import (
	"github.com/micpowe/parsegen-cpp/grammar"
	"github.com/micpowe/parsegen-cpp/symbol"
)

// firstSets holds, for every symbol, the terminals that can begin a
// string it derives, and whether it can derive the empty string.
type firstSets struct {
	terminals map[symbol.Symbol]map[symbol.Symbol]bool
	nullable  map[symbol.Symbol]bool
}

// computeFirstSets computes FIRST(X) for every symbol X of g by repeated
// fixed-point iteration over every production, seeding each terminal's
// FIRST set to itself.
func computeFirstSets(g *grammar.Grammar) *firstSets {
	fs := &firstSets{
		terminals: make(map[symbol.Symbol]map[symbol.Symbol]bool),
		nullable:  g.Nullable(),
	}
	for _, t := range g.Symbols.Terminals() {
		fs.terminals[t] = map[symbol.Symbol]bool{t: true}
	}
	for _, nt := range g.Symbols.Nonterminals() {
		fs.terminals[nt] = make(map[symbol.Symbol]bool)
	}
	for {
		changed := false
		for _, p := range g.Productions {
			dst := fs.terminals[p.LHS]
			for _, s := range p.RHS {
				for t := range fs.terminals[s] {
					if !dst[t] {
						dst[t] = true
						changed = true
					}
				}
				if !fs.nullable[s] {
					break
				}
			}
		}
		if !changed {
			break
		}
	}
	return fs
}

// ofString returns FIRST(syms) (the union of FIRST of each prefix symbol
// up to the first non-nullable one) and whether syms as a whole is
// nullable.
func (fs *firstSets) ofString(syms []symbol.Symbol) (map[symbol.Symbol]bool, bool) {
	out := make(map[symbol.Symbol]bool)
	for _, s := range syms {
		for t := range fs.terminals[s] {
			out[t] = true
		}
		if !fs.nullable[s] {
			return out, false
		}
	}
	return out, true
}
