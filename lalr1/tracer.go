package lalr1

import (
	"fmt"

	"github.com/micpowe/parsegen-cpp/errs"
	"github.com/micpowe/parsegen-cpp/lr0"
	"github.com/micpowe/parsegen-cpp/symbol"
)

// tracer holds the state shared across every context computation for one
// grammar.
type tracer struct {
	graph    *originatorGraph
	first    *firstSets
	contexts map[lr0.StateConfig]map[symbol.Symbol]bool
	complete map[lr0.StateConfig]bool
}

func newTracer(a *lr0.Automaton, fs *firstSets) *tracer {
	return &tracer{
		graph:    buildOriginatorGraph(a),
		first:    fs,
		contexts: make(map[lr0.StateConfig]map[symbol.Symbol]bool),
		complete: make(map[lr0.StateConfig]bool),
	}
}

// seed pre-populates sc's context and marks it complete without tracing,
// used for the accept production's final configuration (footnote 8 of
// Pager's paper: it always reduces on end-of-input alone).
func (tr *tracer) seed(sc lr0.StateConfig, context map[symbol.Symbol]bool) {
	tr.contexts[sc] = context
	tr.complete[sc] = true
}

// solve computes the lookahead context of every config in reduceConfigs
// (and every config transitively reachable from them through the
// originator graph).
//
// Pager's lane tracing walks the originator graph edge by edge along a
// single lane, distinguishing test A (an originator whose follow string
// has a non-null terminal descendant) from tests B/C (one that's purely
// nullable). A cycle encountered mid-lane is only ambiguous under test A;
// under tests B/C it's a legitimate lane merge, since both sides of the
// cycle carry, and converge on, the same context.
//
// This re-expresses that distinction without a two-stack lane walk:
// checkMixedCycles runs a DFS restricted to "mixed" edges (a nullable
// follow string whose FIRST set also contains a real terminal) and fails
// fast on a cycle there -- exactly test A's failure condition. Every
// config's context is then computed by fixed-point iteration over the
// full originator graph, which converges regardless of traversal order
// and needs no lane/merge bookkeeping for the purely-nullable (test B/C)
// cycles the first pass lets through: a cycle there just means two
// configs feed each other's context, and the fixed point settles once
// neither side can add anything new.
func (tr *tracer) solve(reduceConfigs []lr0.StateConfig) error {
	all := tr.closure(reduceConfigs)
	for _, sc := range all {
		if _, ok := tr.contexts[sc]; !ok {
			tr.contexts[sc] = make(map[symbol.Symbol]bool)
		}
	}

	if err := tr.checkMixedCycles(all); err != nil {
		return err
	}

	for {
		changed := false
		for _, sc := range all {
			if tr.complete[sc] {
				continue
			}
			if tr.addOriginatorContexts(sc) {
				changed = true
			}
		}
		if !changed {
			break
		}
	}
	for _, sc := range reduceConfigs {
		tr.complete[sc] = true
	}
	return nil
}

// closure returns every StateConfig in start, plus every originator
// transitively reachable from them, each listed once.
func (tr *tracer) closure(start []lr0.StateConfig) []lr0.StateConfig {
	seen := make(map[lr0.StateConfig]bool)
	var order []lr0.StateConfig
	var visit func(sc lr0.StateConfig)
	visit = func(sc lr0.StateConfig) {
		if seen[sc] {
			return
		}
		seen[sc] = true
		order = append(order, sc)
		for _, o := range tr.graph.Originators(sc) {
			visit(o)
		}
	}
	for _, sc := range start {
		visit(sc)
	}
	return order
}

// addOriginatorContexts folds every originator's direct FIRST
// contribution, and (when its follow string is nullable) its own
// in-progress context, into sc's context. It reports whether sc's
// context grew.
func (tr *tracer) addOriginatorContexts(sc lr0.StateConfig) bool {
	changed := false
	result := tr.contexts[sc]
	for _, o := range tr.graph.Originators(sc) {
		beta := followString(tr.graph.automaton, o)
		first, nullable := tr.first.ofString(beta)
		for t := range first {
			if !result[t] {
				result[t] = true
				changed = true
			}
		}
		if !nullable {
			continue
		}
		for t := range tr.contexts[o] {
			if !result[t] {
				result[t] = true
				changed = true
			}
		}
	}
	return changed
}

// checkMixedCycles runs a DFS over only the "mixed" originator edges --
// a nullable follow string whose FIRST set also contains a real terminal,
// test A's failure condition -- and reports errs.AmbiguousGrammar at the
// first cycle found. Purely-nullable (test B/C) edges are excluded here:
// a cycle through those is a legitimate lane merge, resolved by solve's
// fixed-point pass instead.
func (tr *tracer) checkMixedCycles(all []lr0.StateConfig) error {
	onStack := make(map[lr0.StateConfig]bool)
	visited := make(map[lr0.StateConfig]bool)

	var visit func(sc lr0.StateConfig) error
	visit = func(sc lr0.StateConfig) error {
		if onStack[sc] {
			return errs.AmbiguousGrammar(fmt.Sprintf("state %d config %d", sc.State, sc.Config))
		}
		if visited[sc] {
			return nil
		}
		visited[sc] = true
		onStack[sc] = true
		for _, o := range tr.graph.Originators(sc) {
			beta := followString(tr.graph.automaton, o)
			first, nullable := tr.first.ofString(beta)
			if !nullable || len(first) == 0 {
				continue // not nullable (no recursion), or purely nullable (test B/C, not A)
			}
			if err := visit(o); err != nil {
				return err
			}
		}
		onStack[sc] = false
		return nil
	}

	for _, sc := range all {
		if err := visit(sc); err != nil {
			return err
		}
	}
	return nil
}
