// Package fa implements the finite-automaton data structure used
// throughout this module: a dense transition table over symbol indices,
// with primitive builders, Thompson-style combinators, subset
// construction (determinization), and row-equivalence minimization.
//
// Grounded on _examples/original_source/parsegen_finite_automaton.cpp,
// translated into idiomatic Go in the manner of
// nihei9-vartan/grammar/lexical/dfa.
package fa

import (
	"fmt"

	"github.com/micpowe/parsegen-cpp/errs"
)

const noState = -1
const noAccept = -1

// FA is a finite automaton: a dense nstates x (nsymbols+epsWidth) table of
// next-state indices (or -1), plus a per-state accept-token vector (or
// -1). epsWidth is 0 for a DFA and 2 for an NFA, giving two independent
// epsilon channels (eps0, eps1) so combinators can branch unambiguously.
type FA struct {
	nsymbols      int
	deterministic bool
	ncols         int
	table         []int // nstates * ncols, row-major
	accept        []int // nstates
}

// New creates an automaton with 0 states over nsymbols symbols.
// deterministic selects whether epsilon columns exist.
func New(nsymbols int, deterministic bool) *FA {
	ncols := nsymbols
	if !deterministic {
		ncols += 2
	}
	return &FA{
		nsymbols:      nsymbols,
		deterministic: deterministic,
		ncols:         ncols,
	}
}

func (fa *FA) NStates() int          { return len(fa.accept) }
func (fa *FA) NSymbols() int         { return fa.nsymbols }
func (fa *FA) IsDeterministic() bool { return fa.deterministic }

// Epsilon0 and Epsilon1 return the column indices of the two epsilon
// channels. Both panic on a deterministic automaton.
func (fa *FA) Epsilon0() int {
	if fa.deterministic {
		panic("fa: Epsilon0 called on a deterministic automaton")
	}
	return fa.nsymbols
}

func (fa *FA) Epsilon1() int {
	if fa.deterministic {
		panic("fa: Epsilon1 called on a deterministic automaton")
	}
	return fa.nsymbols + 1
}

// NSymbolsEps is the total column count, including epsilon channels.
func (fa *FA) NSymbolsEps() int { return fa.ncols }

// AddState appends a fresh, non-accepting state with no outgoing
// transitions and returns its index.
func (fa *FA) AddState() int {
	state := fa.NStates()
	fa.table = append(fa.table, make([]int, fa.ncols)...)
	for j := 0; j < fa.ncols; j++ {
		fa.table[state*fa.ncols+j] = noState
	}
	fa.accept = append(fa.accept, noAccept)
	return state
}

// AddTransition sets the transition from "from" on "atSymbol" to "to". It
// is an internal invariant violation to set a cell that is already set.
func (fa *FA) AddTransition(from, atSymbol, to int) {
	if to < 0 || to >= fa.NStates() {
		panic(fmt.Sprintf("fa: to-state %d out of range", to))
	}
	if atSymbol < 0 || atSymbol >= fa.ncols {
		panic(fmt.Sprintf("fa: symbol %d out of range", atSymbol))
	}
	idx := from*fa.ncols + atSymbol
	if fa.table[idx] != noState {
		panic(errs.InternalInvariant("fa: transition (%d, %d) already set to %d", from, atSymbol, fa.table[idx]))
	}
	fa.table[idx] = to
}

// AddAccept marks state as accepting token.
func (fa *FA) AddAccept(state, token int) {
	if token < 0 {
		panic("fa: accept token must be non-negative")
	}
	fa.accept[state] = token
}

// RemoveAccept clears any accept marking on state.
func (fa *FA) RemoveAccept(state int) {
	fa.accept[state] = noAccept
}

// Step returns the next state from "state" on "symbol", or -1 if there is
// none.
func (fa *FA) Step(state, symbol int) int {
	return fa.table[state*fa.ncols+symbol]
}

// Accept returns the accept token of state, or -1 if state doesn't
// accept.
func (fa *FA) Accept(state int) int {
	return fa.accept[state]
}

// RetagAccept changes every state accepting from to instead accept to.
// Used to swap a placeholder token used while assembling an automaton for
// the caller's real token, once assembly is finished.
func (fa *FA) RetagAccept(from, to int) {
	for s := range fa.accept {
		if fa.accept[s] == from {
			fa.accept[s] = to
		}
	}
}

// AppendStates copies every state of other onto the end of dst's state
// list (including its transitions, offset to the new indices) and returns
// the offset at which other's state 0 now lives. Both automata must share
// nsymbols; other may be nondeterministic only if dst is too.
func AppendStates(dst, other *FA) int {
	if other.nsymbols != dst.nsymbols {
		panic("fa: AppendStates requires matching symbol counts")
	}
	if !other.deterministic && dst.deterministic {
		panic("fa: cannot append a nondeterministic automaton onto a deterministic one")
	}
	offset := dst.NStates()
	for s := 0; s < other.NStates(); s++ {
		my := dst.AddState()
		if tok := other.Accept(s); tok >= 0 {
			dst.AddAccept(my, tok)
		}
	}
	for s := 0; s < other.NStates(); s++ {
		my := s + offset
		for sym := 0; sym < other.NSymbolsEps(); sym++ {
			next := other.Step(s, sym)
			if next < 0 {
				continue
			}
			dst.AddTransition(my, sym, next+offset)
		}
	}
	return offset
}
