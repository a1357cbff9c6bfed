package lalr1

import (
	"github.com/micpowe/parsegen-cpp/lr0"
	"github.com/micpowe/parsegen-cpp/symbol"
)

type revEdge struct {
	from int
	sym  symbol.Symbol
}

// originatorGraph indexes an LR(0) automaton so originators can be found
// for any StateConfig: reverseNext lets a dot>0 config be walked back
// through the transition that produced it, and immediatePred lets a dot=0
// "start config" be related to the configs whose closure introduced it.
type originatorGraph struct {
	automaton     *lr0.Automaton
	reverseNext   map[int][]revEdge               // state -> incoming (from, symbol) edges
	immediatePred map[int]map[symbol.Symbol][]int // state -> nonterminal -> config indices with that dot symbol
	startMemo     map[lr0.StateConfig][]lr0.StateConfig
}

func buildOriginatorGraph(a *lr0.Automaton) *originatorGraph {
	g := &originatorGraph{
		automaton:     a,
		reverseNext:   make(map[int][]revEdge),
		immediatePred: make(map[int]map[symbol.Symbol][]int),
		startMemo:     make(map[lr0.StateConfig][]lr0.StateConfig),
	}
	for _, st := range a.States {
		for sym, to := range st.Next {
			g.reverseNext[to] = append(g.reverseNext[to], revEdge{from: st.ID, sym: sym})
		}
		preds := make(map[symbol.Symbol][]int)
		for i, c := range st.Configs {
			sym, ok := c.DotSymbol()
			if !ok || a.Grammar.Symbols.IsTerminal(sym) {
				continue
			}
			preds[sym] = append(preds[sym], i)
		}
		g.immediatePred[st.ID] = preds
	}
	return g
}

// startConfigs walks sc backward through transition-predecessor edges
// until it reaches the dot=0 "start config(s)" of the same production.
// Because states can be shared by several predecessor paths, more than
// one start config can result.
func (g *originatorGraph) startConfigs(sc lr0.StateConfig) []lr0.StateConfig {
	if v, ok := g.startMemo[sc]; ok {
		return v
	}
	cfg := g.automaton.ConfigAt(sc)
	if cfg.Dot == 0 {
		g.startMemo[sc] = []lr0.StateConfig{sc}
		return g.startMemo[sc]
	}
	wantSym := cfg.Production.RHS[cfg.Dot-1]
	var out []lr0.StateConfig
	for _, e := range g.reverseNext[sc.State] {
		if e.sym != wantSym {
			continue
		}
		predState := g.automaton.States[e.from]
		for j, pc := range predState.Configs {
			if pc.Production == cfg.Production && pc.Dot == cfg.Dot-1 {
				out = append(out, g.startConfigs(lr0.StateConfig{State: e.from, Config: j})...)
			}
		}
	}
	g.startMemo[sc] = out
	return out
}

// Originators returns every StateConfig "B -> alpha . A beta" whose
// closure introduced sc's production at dot 0 in some state, for every
// start config sc traces back to.
func (g *originatorGraph) Originators(sc lr0.StateConfig) []lr0.StateConfig {
	var out []lr0.StateConfig
	for _, sc0 := range g.startConfigs(sc) {
		cfg0 := g.automaton.ConfigAt(sc0)
		for _, j := range g.immediatePred[sc0.State][cfg0.Production.LHS] {
			out = append(out, lr0.StateConfig{State: sc0.State, Config: j})
		}
	}
	return out
}

// followString returns the RHS symbols of sc's production after the
// nonterminal sc's dot points to: the "beta" a reduce item's lookahead is
// computed from.
func followString(a *lr0.Automaton, sc lr0.StateConfig) []symbol.Symbol {
	cfg := a.ConfigAt(sc)
	return cfg.Production.RHS[cfg.Dot+1:]
}
