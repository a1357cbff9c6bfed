package fa

import "go.uber.org/zap"

var logger *zap.Logger

// SetLogger installs l as the logger used for the non-fatal diagnostics
// this package can emit (currently, Simplify's multiple-pass notice). A
// nil logger, the default, silences them.
func SetLogger(l *zap.Logger) {
	logger = l
}

// partitionOf groups dfa's states by (accept token, transition row)
// signature, where the row lists each symbol's target state (or -1).
// It returns a block-id-per-state slice and the number of distinct
// blocks.
func partitionOf(dfa *FA) ([]int, int) {
	type signature struct {
		accept int
		row    string
	}
	sigToBlock := make(map[signature]int)
	newBlock := make([]int, dfa.NStates())
	next := 0
	for s := 0; s < dfa.NStates(); s++ {
		row := make([]byte, 0, dfa.NSymbols()*5)
		for sym := 0; sym < dfa.NSymbols(); sym++ {
			row = appendInt(row, dfa.Step(s, sym))
			row = append(row, ',')
		}
		sig := signature{accept: dfa.Accept(s), row: string(row)}
		id, ok := sigToBlock[sig]
		if !ok {
			id = next
			sigToBlock[sig] = id
			next++
		}
		newBlock[s] = id
	}
	return newBlock, next
}

func appendInt(b []byte, v int) []byte {
	if v < 0 {
		return append(b, '-', '1')
	}
	if v == 0 {
		return append(b, '0')
	}
	var tmp [20]byte
	i := len(tmp)
	for v > 0 {
		i--
		tmp[i] = byte('0' + v%10)
		v /= 10
	}
	return append(b, tmp[i:]...)
}

// SimplifyOnce performs a single row-equivalence refinement pass over dfa
// and returns the minimized automaton built from that pass's partition,
// along with whether the partition actually shrank the state count
// relative to dfa.
func SimplifyOnce(dfa *FA) (*FA, bool) {
	block, nblocks := partitionOf(dfa)
	changed := nblocks < dfa.NStates()
	return buildFromPartition(dfa, block, nblocks), changed
}

func buildFromPartition(dfa *FA, block []int, nblocks int) *FA {
	out := New(dfa.nsymbols, true)
	for i := 0; i < nblocks; i++ {
		out.AddState()
	}
	rep := make([]int, nblocks)
	for s := 0; s < dfa.NStates(); s++ {
		rep[block[s]] = s
	}
	for b := 0; b < nblocks; b++ {
		s := rep[b]
		if tok := dfa.Accept(s); tok >= 0 {
			out.AddAccept(b, tok)
		}
	}
	set := make([][]bool, nblocks)
	for b := range set {
		set[b] = make([]bool, dfa.NSymbols())
	}
	for s := 0; s < dfa.NStates(); s++ {
		b := block[s]
		for sym := 0; sym < dfa.NSymbols(); sym++ {
			if set[b][sym] {
				continue
			}
			to := dfa.Step(s, sym)
			if to < 0 {
				continue
			}
			out.AddTransition(b, sym, block[to])
			set[b][sym] = true
		}
	}
	return out
}

// Simplify minimizes dfa by iterating SimplifyOnce's row-equivalence
// refinement to a fixpoint: each pass merges the states of the previous
// pass's output that share an (accept token, transition row) signature,
// until the state count stops shrinking. A merge can make predecessor
// rows identical, so chains of mergeable states take one pass per link;
// when more than two passes are needed a warning is logged, as
// parsegen_finite_automaton.cpp does.
func Simplify(dfa *FA) *FA {
	cur := dfa
	passes := 0
	for {
		next, changed := SimplifyOnce(cur)
		passes++
		if !changed {
			if passes > 2 && logger != nil {
				logger.Warn("simplify() actually took multiple steps!",
					zap.Int("passes", passes),
					zap.Int("states", next.NStates()),
				)
			}
			return next
		}
		cur = next
	}
}
