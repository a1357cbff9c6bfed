// Package dfa2regex turns a deterministic finite automaton back into a
// regexterm.Term denoting the same language, by Brzozowski and McCluskey's
// state elimination procedure, picking which state to eliminate next by
// the weight heuristic of Delgado and Morais so the result stays close to
// the smallest regular expression for the language rather than blowing up
// combinatorially.
//
// Grounded on _examples/original_source/parsegen_regex.cpp's
// update_path/from_automaton.
package dfa2regex

import (
	"github.com/micpowe/parsegen-cpp/fa"
	"github.com/micpowe/parsegen-cpp/regexterm"
)

// FromAutomaton returns a regexterm.Term denoting dfa's language. dfa must
// be deterministic.
func FromAutomaton(dfa *fa.FA) *regexterm.Term {
	if !dfa.IsDeterministic() {
		panic("dfa2regex: FromAutomaton requires a deterministic automaton")
	}
	nstates := dfa.NStates()
	f := nstates // virtual single accepting state
	n := nstates + 1

	L := make([][]*regexterm.Term, n)
	for i := range L {
		L[i] = make([]*regexterm.Term, n)
		for j := range L[i] {
			if i == j {
				L[i][j] = regexterm.Epsilon()
			} else {
				L[i][j] = regexterm.Null()
			}
		}
	}

	for i := 0; i < nstates; i++ {
		for s := 0; s < dfa.NSymbols(); s++ {
			j := dfa.Step(i, s)
			if j < 0 {
				continue
			}
			L[i][j] = regexterm.Either(L[i][j], regexterm.CharSet([]int{s}))
		}
	}
	for i := 0; i < nstates; i++ {
		if dfa.Accept(i) >= 0 {
			L[i][f] = regexterm.Epsilon()
		}
	}

	exists := make([]bool, n)
	for i := range exists {
		exists[i] = true
	}

	for step := 0; step < nstates-1; step++ {
		k := pickEliminationState(L, exists, n, nstates)
		for i := 0; i < n; i++ {
			if !exists[i] {
				continue
			}
			for j := 0; j < n; j++ {
				if !exists[j] {
					continue
				}
				updatePath(L, i, i, k)
				updatePath(L, j, j, k)
				updatePath(L, i, j, k)
				updatePath(L, j, i, k)
			}
		}
		exists[k] = false
	}

	s := 0
	return regexterm.Concat(
		regexterm.Star(L[s][s]),
		regexterm.Concat(
			L[s][f],
			regexterm.Star(regexterm.Either(
				regexterm.Concat(L[f][s], regexterm.Concat(regexterm.Star(L[s][s]), L[s][f])),
				L[f][f],
			)),
		),
	)
}

// FromAutomatonAfterFirstMatch is FromAutomaton composed with
// fa.RemoveTransitionsFromAccepting, the transformation that turns a
// "ends with pattern" automaton into a "contains pattern" one before
// reading its regex back out.
func FromAutomatonAfterFirstMatch(dfa *fa.FA) *regexterm.Term {
	return FromAutomaton(fa.RemoveTransitionsFromAccepting(dfa))
}

func updatePath(L [][]*regexterm.Term, i, j, k int) {
	L[i][j] = regexterm.Either(L[i][j], regexterm.Concat(L[i][k], regexterm.Concat(regexterm.Star(L[k][k]), L[k][j])))
}

func isNull(t *regexterm.Term) bool {
	return t.Kind == regexterm.KindNull
}

// pickEliminationState implements the Delgado-Morais weight heuristic:
// eliminating a state with many in/out edges and long self-loop or
// edge labels costs more, so prefer the cheapest one at each step.
func pickEliminationState(L [][]*regexterm.Term, exists []bool, n, nstates int) int {
	minState, minWeight := -1, 0
	for i := 1; i < nstates; i++ {
		if !exists[i] {
			continue
		}
		in, out := 0, 0
		for j := 0; j < n; j++ {
			if !isNull(L[i][j]) {
				out++
			}
			if !isNull(L[j][i]) {
				in++
			}
		}
		weight := 0
		if !isNull(L[i][i]) {
			weight += regexterm.Len(L[i][i]) * (in*out - 1)
		}
		for j := 0; j < n; j++ {
			if !isNull(L[i][j]) {
				weight += regexterm.Len(L[i][j]) * (in - 1)
			}
			if !isNull(L[j][i]) {
				weight += regexterm.Len(L[j][i]) * (out - 1)
			}
		}
		if minState == -1 || weight < minWeight {
			minState, minWeight = i, weight
		}
	}
	return minState
}
