// Package table finalizes an LR(0) automaton and its LALR(1) lookahead
// contexts into the dense action/goto tables a parser driver indexes
// directly: one action per (state, terminal) cell and one successor
// state per (state, nonterminal) cell.
//
// Grounded on _examples/original_source/parsegen_build_parser.cpp's
// accept_parser, in the flat-array representation of
// nihei9-vartan/grammar/parsing_table.go (actionEntry/goToEntry slices
// indexed by state*stride+col rather than a map-of-maps).
package table

import (
	"github.com/micpowe/parsegen-cpp/errs"
	"github.com/micpowe/parsegen-cpp/grammar"
	"github.com/micpowe/parsegen-cpp/lalr1"
	"github.com/micpowe/parsegen-cpp/lr0"
	"github.com/micpowe/parsegen-cpp/symbol"
)

// ActionKind identifies what a parser driver should do in a given
// (state, terminal) cell.
type ActionKind int

const (
	// ActionError means there is no valid move: a syntax error.
	ActionError ActionKind = iota
	// ActionShift means consume the terminal and move to state Target.
	ActionShift
	// ActionReduce means reduce by the production numbered Target.
	ActionReduce
	// ActionAccept means the input is a complete, valid sentence.
	ActionAccept
	// ActionSkip means discard the terminal without changing state, for
	// ignored tokens like whitespace and comments.
	ActionSkip
)

// Action is one parsing-table cell.
type Action struct {
	Kind   ActionKind
	Target int
}

// ParserTables is the finished, flat-array LALR(1) parsing table.
type ParserTables struct {
	Grammar       *grammar.Grammar
	NStates       int
	nterminals    int
	nnonterminals int
	action        []Action
	goTo          []int // -1 where absent
}

// ActionAt returns the action for (state, terminal).
func (pt *ParserTables) ActionAt(state int, terminal symbol.Symbol) Action {
	return pt.action[state*pt.nterminals+int(terminal)]
}

// GotoAt returns the successor state after reducing to nonterminal from
// state, or -1 if that cell is unreachable.
func (pt *ParserTables) GotoAt(state int, nonterminal symbol.Symbol) int {
	idx := int(nonterminal) - pt.nterminals
	return pt.goTo[state*pt.nnonterminals+idx]
}

// Build finalizes automaton's shift transitions and contexts' reduce
// lookaheads into a ParserTables. Every cell left unset by a shift,
// reduce, or accept action stays ActionError, except that every ignored
// terminal's cell in every state is set to ActionSkip, which always wins:
// an ignored token is never meaningfully shiftable or reducible over.
func Build(g *grammar.Grammar, res *lalr1.Result) (*ParserTables, error) {
	nterminals := g.Symbols.NTerminals()
	nnonterminals := g.Symbols.NNonterminals()
	nstates := len(res.Automaton.States)

	pt := &ParserTables{
		Grammar:       g,
		NStates:       nstates,
		nterminals:    nterminals,
		nnonterminals: nnonterminals,
		action:        make([]Action, nstates*nterminals),
		goTo:          make([]int, nstates*nnonterminals),
	}
	for i := range pt.goTo {
		pt.goTo[i] = -1
	}

	for _, st := range res.Automaton.States {
		for sym, next := range st.Next {
			if g.Symbols.IsNonterminal(sym) {
				pt.goTo[st.ID*nnonterminals+(int(sym)-nterminals)] = next
				continue
			}
			if err := pt.set(st.ID, sym, Action{Kind: ActionShift, Target: next}); err != nil {
				return nil, err
			}
		}
		for i, c := range st.Configs {
			if !c.AtEnd() {
				continue
			}
			sc := lr0.StateConfig{State: st.ID, Config: i}
			action := Action{Kind: ActionReduce, Target: c.Production.ID}
			if c.Production.LHS == g.Accept {
				action = Action{Kind: ActionAccept}
			}
			for _, t := range res.Contexts[sc] {
				if err := pt.set(st.ID, t, action); err != nil {
					return nil, err
				}
			}
		}
	}

	for _, ig := range g.Ignored {
		for state := 0; state < nstates; state++ {
			pt.action[state*nterminals+int(ig)] = Action{Kind: ActionSkip}
		}
	}

	return pt, nil
}

func (pt *ParserTables) set(state int, terminal symbol.Symbol, a Action) error {
	idx := state*pt.nterminals + int(terminal)
	cur := pt.action[idx]
	if cur.Kind != ActionError && cur != a {
		return errs.InternalInvariant(
			"table: state %d terminal %d already has action %+v, cannot set %+v (lalr1 should have rejected this grammar)",
			state, terminal, cur, a,
		)
	}
	pt.action[idx] = a
	return nil
}
