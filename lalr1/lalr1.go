package lalr1

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/micpowe/parsegen-cpp/errs"
	"github.com/micpowe/parsegen-cpp/grammar"
	"github.com/micpowe/parsegen-cpp/lr0"
	"github.com/micpowe/parsegen-cpp/symbol"
)

// Result is a grammar's LR(0) automaton together with the lookahead
// context (the set of terminals under which it's valid to reduce) for
// every reduce-position configuration.
type Result struct {
	Automaton *lr0.Automaton
	Contexts  map[lr0.StateConfig][]symbol.Symbol
}

// Build traces lookahead contexts for every reduce configuration of g's
// LR(0) automaton and checks the resulting table for LALR(1) adequacy. It
// returns errs.AmbiguousGrammar if lane tracing finds a cycle of
// originator edges whose follow strings are nullable but also contribute
// terminals, or errs.NotLALR1 if unresolved
// shift/reduce or reduce/reduce conflicts remain after tracing.
func Build(g *grammar.Grammar) (*Result, error) {
	automaton := lr0.Build(g)
	fs := computeFirstSets(g)
	tr := newTracer(automaton, fs)

	var reduceConfigs []lr0.StateConfig
	for _, st := range automaton.States {
		for i, c := range st.Configs {
			if !c.AtEnd() {
				continue
			}
			sc := lr0.StateConfig{State: st.ID, Config: i}
			if c.Production.LHS == g.Accept {
				tr.seed(sc, map[symbol.Symbol]bool{g.End: true})
				continue
			}
			reduceConfigs = append(reduceConfigs, sc)
		}
	}

	if err := tr.solve(reduceConfigs); err != nil {
		return nil, err
	}
	contexts := make(map[lr0.StateConfig][]symbol.Symbol)
	for _, sc := range reduceConfigs {
		contexts[sc] = sortedTerminals(tr.contexts[sc])
	}
	// Pick up the accept configs' seeded contexts too, for a uniform
	// Contexts map covering every reduce-position StateConfig.
	for _, st := range automaton.States {
		for i, c := range st.Configs {
			if c.AtEnd() && c.Production.LHS == g.Accept {
				sc := lr0.StateConfig{State: st.ID, Config: i}
				contexts[sc] = sortedTerminals(tr.contexts[sc])
			}
		}
	}

	if conflicts := checkAdequacy(g, automaton, contexts); len(conflicts) > 0 {
		return nil, errs.NotLALR1(conflicts)
	}
	return &Result{Automaton: automaton, Contexts: contexts}, nil
}

func sortedTerminals(set map[symbol.Symbol]bool) []symbol.Symbol {
	out := maps.Keys(set)
	slices.Sort(out)
	return out
}

type actionTag struct {
	kind string // "shift", "reduce", "accept"
	prod int
}

// checkAdequacy reports every terminal, in every state, on which more
// than one distinct action would apply: a shift and a reduce, two
// different reduces, or either against the accept action.
func checkAdequacy(g *grammar.Grammar, automaton *lr0.Automaton, contexts map[lr0.StateConfig][]symbol.Symbol) []errs.Conflict {
	var conflicts []errs.Conflict
	for _, st := range automaton.States {
		byTerminal := make(map[symbol.Symbol][]actionTag)
		for sym := range st.Next {
			if g.Symbols.IsTerminal(sym) {
				byTerminal[sym] = append(byTerminal[sym], actionTag{kind: "shift"})
			}
		}
		for i, c := range st.Configs {
			if !c.AtEnd() {
				continue
			}
			sc := lr0.StateConfig{State: st.ID, Config: i}
			kind := "reduce"
			if c.Production.LHS == g.Accept {
				kind = "accept"
			}
			for _, t := range contexts[sc] {
				byTerminal[t] = append(byTerminal[t], actionTag{kind: kind, prod: c.Production.ID})
			}
		}
		terminals := maps.Keys(byTerminal)
		slices.Sort(terminals)
		for _, t := range terminals {
			tags := byTerminal[t]
			if !hasConflict(tags) {
				continue
			}
			for _, tag := range tags {
				conflicts = append(conflicts, errs.Conflict{
					State:      st.ID,
					Production: tag.prod,
					Terminal:   g.Symbols.Name(t),
				})
			}
		}
	}
	return conflicts
}

func hasConflict(tags []actionTag) bool {
	if len(tags) < 2 {
		return false
	}
	first := tags[0]
	for _, t := range tags[1:] {
		if t != first {
			return true
		}
	}
	return false
}
