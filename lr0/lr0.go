// Package lr0 builds the LR(0) automaton a grammar's LALR(1) parser
// tables are constructed on top of: configurations ((production, dot)
// pairs), closure, kernel-deduplicated states, and shift transitions.
//
// Grounded on _examples/original_source/parsegen_build_parser.cpp's
// make_configs/close/build_lr0_parser, in the structural style of
// nihei9-vartan/grammar/lr0.go (kernel-based state dedup via an ordered
// config-id set, closure via a BFS queue, next-state grouping by dotted
// symbol).
package lr0

import (
	"fmt"
	"sort"
	"strings"

	"github.com/micpowe/parsegen-cpp/grammar"
	"github.com/micpowe/parsegen-cpp/symbol"
)

// Config is one (production, dot) pair: the parser has recognized
// RHS[:Dot] of Production and expects RHS[Dot:] next.
type Config struct {
	Production *grammar.Production
	Dot        int
}

// AtEnd reports whether the dot has reached the end of the production's
// RHS (a reduce position).
func (c Config) AtEnd() bool {
	return c.Dot >= len(c.Production.RHS)
}

// DotSymbol returns the symbol immediately after the dot and true, or
// (0, false) if the dot is at the end.
func (c Config) DotSymbol() (symbol.Symbol, bool) {
	if c.AtEnd() {
		return 0, false
	}
	return c.Production.RHS[c.Dot], true
}

// Advance returns the configuration with the dot moved one position to
// the right.
func (c Config) Advance() Config {
	return Config{Production: c.Production, Dot: c.Dot + 1}
}

func (c Config) key() string {
	return fmt.Sprintf("%d.%d", c.Production.ID, c.Dot)
}

// StateConfig names one configuration inside one automaton state: the
// address lalr1's originator graph and lane tracing operate over.
type StateConfig struct {
	State  int
	Config int // index into State.Configs
}

// State is one LR(0) automaton state: a kernel of configs carried over
// from the transition that created it (or, for the start state, the
// accept production at dot 0), closed under closure, plus the shift
// transitions out of it.
type State struct {
	ID         int
	Configs    []Config // kernel configs first, then closure-added configs
	KernelSize int
	Next       map[symbol.Symbol]int
}

// IsKernel reports whether Configs[i] belongs to the state's kernel
// (as opposed to having been added by closure).
func (s *State) IsKernel(i int) bool {
	return i < s.KernelSize
}

// Automaton is the complete LR(0) automaton for a grammar. State 0 is
// always the start state, whose sole kernel config is the accept
// production at dot 0.
type Automaton struct {
	Grammar *grammar.Grammar
	States  []*State
}

// Closure returns the closure of a kernel config set: for every config
// with the dot before a nonterminal B, every one of B's productions is
// added at dot 0, transitively, each exactly once.
func Closure(g *grammar.Grammar, kernel []Config) []Config {
	seen := make(map[string]bool, len(kernel))
	out := make([]Config, 0, len(kernel))
	queue := make([]Config, 0, len(kernel))
	for _, c := range kernel {
		k := c.key()
		if !seen[k] {
			seen[k] = true
			out = append(out, c)
			queue = append(queue, c)
		}
	}
	for i := 0; i < len(queue); i++ {
		sym, ok := queue[i].DotSymbol()
		if !ok || g.Symbols.IsTerminal(sym) {
			continue
		}
		for _, p := range g.ProductionsOf[sym] {
			c := Config{Production: p, Dot: 0}
			k := c.key()
			if seen[k] {
				continue
			}
			seen[k] = true
			out = append(out, c)
			queue = append(queue, c)
		}
	}
	return out
}

func kernelKey(kernel []Config) string {
	keys := make([]string, len(kernel))
	for i, c := range kernel {
		keys[i] = c.key()
	}
	sort.Strings(keys)
	return strings.Join(keys, "|")
}

// Build constructs the full LR(0) automaton for g, starting from the
// accept production's single kernel config.
func Build(g *grammar.Grammar) *Automaton {
	a := &Automaton{Grammar: g}
	startKernel := []Config{{Production: g.ProductionsOf[g.Accept][0], Dot: 0}}

	kernelToState := make(map[string]int)
	addState := func(kernel []Config) (int, bool) {
		key := kernelKey(kernel)
		if id, ok := kernelToState[key]; ok {
			return id, false
		}
		closed := Closure(g, kernel)
		st := &State{
			ID:         len(a.States),
			Configs:    closed,
			KernelSize: len(kernel),
			Next:       make(map[symbol.Symbol]int),
		}
		a.States = append(a.States, st)
		kernelToState[key] = st.ID
		return st.ID, true
	}

	startID, _ := addState(startKernel)
	queue := []int{startID}
	for i := 0; i < len(queue); i++ {
		st := a.States[queue[i]]
		bySymbol := make(map[symbol.Symbol][]Config)
		order := make([]symbol.Symbol, 0)
		for _, c := range st.Configs {
			sym, ok := c.DotSymbol()
			if !ok {
				continue
			}
			if _, seen := bySymbol[sym]; !seen {
				order = append(order, sym)
			}
			bySymbol[sym] = append(bySymbol[sym], c.Advance())
		}
		for _, sym := range order {
			nextID, isNew := addState(bySymbol[sym])
			st.Next[sym] = nextID
			if isNew {
				queue = append(queue, nextID)
			}
		}
	}
	return a
}

// ConfigAt resolves a StateConfig to its Config.
func (a *Automaton) ConfigAt(sc StateConfig) Config {
	return a.States[sc.State].Configs[sc.Config]
}
