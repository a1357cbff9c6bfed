package regex

import (
	"fmt"
	"strings"

	"github.com/micpowe/parsegen-cpp/chartab"
	"github.com/micpowe/parsegen-cpp/errs"
	"github.com/micpowe/parsegen-cpp/fa"
	"github.com/micpowe/parsegen-cpp/grammar"
	"github.com/micpowe/parsegen-cpp/table"
)

// internalToken tags every intermediate automaton built while parsing a
// pattern. BuildDFA retags the finished automaton's accept states to the
// caller's real token only once, at the very end, the way
// parsegen_regex.cpp's parser builds up finite_automaton values with a
// placeholder and only applies the real token tag at the top.
const internalToken = 0

type stackEntry struct {
	state int
	value interface{}
}

// driveParser runs pattern through the bootstrap lexer and the bootstrap
// grammar's shift-reduce table, returning the NFA the pattern denotes
// (tagged with internalToken throughout). Once the real token stream is
// exhausted, every further lookup uses the synthesized $end terminal: the
// first such lookup shifts $end into the state holding the fully dotted
// accept item, and the next lookup in that state is the Accept action, so
// no explicit end-of-input bookkeeping beyond "are we past pos" is needed.
func driveParser(pattern string) (*fa.FA, error) {
	b := getBootstrap()
	toks, err := tokenize(pattern)
	if err != nil {
		return nil, err
	}
	g := b.grammar
	pt := b.tables

	stack := []stackEntry{{state: 0}}
	pos := 0
	charTokIdx := tokenIndex(tokCHAR)

	for {
		top := stack[len(stack)-1]
		atEnd := pos >= len(toks)
		term := g.End
		if !atEnd {
			term = b.tokenSymbols[toks[pos].kind]
		}
		action := pt.ActionAt(top.state, term)

		switch action.Kind {
		case table.ActionShift:
			var val interface{}
			if !atEnd && toks[pos].kind == charTokIdx {
				val = toks[pos].char
			}
			stack = append(stack, stackEntry{state: action.Target, value: val})
			if !atEnd {
				pos++
			}

		case table.ActionReduce:
			prod := g.Productions[action.Target]
			n := len(prod.RHS)
			args := make([]interface{}, n)
			for i := 0; i < n; i++ {
				args[i] = stack[len(stack)-n+i].value
			}
			stack = stack[:len(stack)-n]
			value := reduce(action.Target, args)
			below := stack[len(stack)-1]
			nextState := pt.GotoAt(below.state, prod.LHS)
			stack = append(stack, stackEntry{state: nextState, value: value})

		case table.ActionAccept:
			return stack[len(stack)-2].value.(*fa.FA), nil

		default:
			return nil, errs.RegexParseError("", pattern,
				fmt.Sprintf("unexpected input at token offset %d", pos),
				debugTrace(g, pt, top.state))
		}
	}
}

func reduce(prodID int, args []interface{}) interface{} {
	switch prodID {
	case prodREGEX:
		return args[0]
	case prodUNION:
		return fa.Union(args[0].(*fa.FA), args[2].(*fa.FA))
	case prodUNIONDecay:
		return args[0]
	case prodCONCAT:
		return fa.Concat(args[0].(*fa.FA), args[1].(*fa.FA), internalToken)
	case prodCONCATDecay:
		return args[0]
	case prodSTAR:
		return fa.Star(args[0].(*fa.FA), internalToken)
	case prodPLUS:
		return fa.Plus(args[0].(*fa.FA), internalToken)
	case prodMAYBE:
		return fa.Maybe(args[0].(*fa.FA), internalToken)
	case prodQUALDecay:
		return args[0]
	case prodSINGLEChar:
		return fa.Single(chartab.NCHARS, args[0].(int), internalToken)
	case prodANY:
		return fa.Range(chartab.NCHARS, 0, chartab.NCHARS-1, internalToken)
	case prodPARENSUnion:
		return args[1]
	case prodNEGATIVESet:
		return fa.Set(chartab.NCHARS, complementChars(args[2].([]int)), internalToken)
	case prodPOSITIVESet:
		return fa.Set(chartab.NCHARS, args[1].([]int), internalToken)
	case prodSETITEMSAdd:
		return append(args[0].([]int), args[1].([]int)...)
	case prodSETITEMSDecay:
		return args[0]
	case prodSETITEMChar:
		return []int{args[0].(int)}
	case prodSETITEMRange:
		lo, hi := args[0].(int), args[2].(int)
		out := make([]int, 0, hi-lo+1)
		for c := lo; c <= hi; c++ {
			out = append(out, c)
		}
		return out
	}
	panic(fmt.Sprintf("regex: unknown production id %d", prodID))
}

func complementChars(syms []int) []int {
	in := make([]bool, chartab.NCHARS)
	for _, s := range syms {
		in[s] = true
	}
	var out []int
	for i := 0; i < chartab.NCHARS; i++ {
		if !in[i] {
			out = append(out, i)
		}
	}
	return out
}

// debugTrace lists the tokens that would have been valid at state, giving
// RegexParseError's caller something more actionable than a bare syntax
// error.
func debugTrace(g *grammar.Grammar, pt *table.ParserTables, state int) string {
	var expected []string
	for _, name := range tokenNames {
		sym, ok := g.Symbols.Lookup(name)
		if ok && pt.ActionAt(state, sym).Kind != table.ActionError {
			expected = append(expected, name)
		}
	}
	if pt.ActionAt(state, g.End).Kind != table.ActionError {
		expected = append(expected, "end of pattern")
	}
	if len(expected) == 0 {
		return ""
	}
	return "expected one of: " + strings.Join(expected, ", ")
}
