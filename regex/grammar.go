// Package regex is the bootstrapped regex front end: a hand-built lexer
// DFA over the eleven regex meta-characters, backslash escapes and plain
// characters (twelve token kinds), a small LALR(1) grammar
// for regex syntax built through this module's own
// grammar/lr0/lalr1/table pipeline, and BuildDFA, which drives that
// grammar's parser to turn a pattern string into a character-level DFA.
//
// Grounded on _examples/original_source/parsegen_regex.cpp's build_language,
// build_lexer, and the parser::shift/parser::reduce reduction semantics.
package regex

import (
	"sync"

	"github.com/micpowe/parsegen-cpp/grammar"
	"github.com/micpowe/parsegen-cpp/lalr1"
	"github.com/micpowe/parsegen-cpp/symbol"
	"github.com/micpowe/parsegen-cpp/table"
)

// Token names, in declaration order. Declaration order is also terminal
// id order (grammar.Build assigns ids that way), which the lexer and
// parser driver below both rely on.
const (
	tokCHAR     = "CHAR"
	tokDOT      = "DOT"
	tokLPAREN   = "LPAREN"
	tokRPAREN   = "RPAREN"
	tokPIPE     = "PIPE"
	tokSTAR     = "STAR"
	tokPLUS     = "PLUS"
	tokQUESTION = "QUESTION"
	tokLBRACKET = "LBRACKET"
	tokRBRACKET = "RBRACKET"
	tokCARET    = "CARET"
	tokDASH     = "DASH"
)

var tokenNames = []string{
	tokCHAR, tokDOT, tokLPAREN, tokRPAREN, tokPIPE, tokSTAR, tokPLUS,
	tokQUESTION, tokLBRACKET, tokRBRACKET, tokCARET, tokDASH,
}

// production kinds, in grammar.Build declaration order. Each one's
// grammar.Production.ID equals its index here directly: grammar.Build
// assigns user productions ids 0..n-1 in declaration order and appends
// the synthesized accept production last, at id n.
const (
	prodREGEX = iota
	prodUNION
	prodUNIONDecay
	prodCONCAT
	prodCONCATDecay
	prodSTAR
	prodPLUS
	prodMAYBE
	prodQUALDecay
	prodSINGLEChar
	prodANY
	prodPARENSUnion
	prodNEGATIVESet
	prodPOSITIVESet
	prodSETITEMSAdd
	prodSETITEMSDecay
	prodSETITEMChar
	prodSETITEMRange
)

var productionDecls = []grammar.ProductionDecl{
	prodREGEX:        {LHS: "regex", RHS: []string{"union"}},
	prodUNION:        {LHS: "union", RHS: []string{"union", tokPIPE, "concat"}},
	prodUNIONDecay:   {LHS: "union", RHS: []string{"concat"}},
	prodCONCAT:       {LHS: "concat", RHS: []string{"concat", "qual"}},
	prodCONCATDecay:  {LHS: "concat", RHS: []string{"qual"}},
	prodSTAR:         {LHS: "qual", RHS: []string{"qual", tokSTAR}},
	prodPLUS:         {LHS: "qual", RHS: []string{"qual", tokPLUS}},
	prodMAYBE:        {LHS: "qual", RHS: []string{"qual", tokQUESTION}},
	prodQUALDecay:    {LHS: "qual", RHS: []string{"single"}},
	prodSINGLEChar:   {LHS: "single", RHS: []string{tokCHAR}},
	prodANY:          {LHS: "single", RHS: []string{tokDOT}},
	prodPARENSUnion:  {LHS: "single", RHS: []string{tokLPAREN, "union", tokRPAREN}},
	prodNEGATIVESet:  {LHS: "single", RHS: []string{tokLBRACKET, tokCARET, "setitems", tokRBRACKET}},
	prodPOSITIVESet:  {LHS: "single", RHS: []string{tokLBRACKET, "setitems", tokRBRACKET}},
	prodSETITEMSAdd:  {LHS: "setitems", RHS: []string{"setitems", "setitem"}},
	prodSETITEMSDecay: {LHS: "setitems", RHS: []string{"setitem"}},
	prodSETITEMChar:  {LHS: "setitem", RHS: []string{tokCHAR}},
	prodSETITEMRange: {LHS: "setitem", RHS: []string{tokCHAR, tokDASH, tokCHAR}},
}

type bootstrap struct {
	grammar      *grammar.Grammar
	tables       *table.ParserTables
	tokenSymbols []symbol.Symbol // indexed by position in tokenNames
}

var (
	bootstrapOnce sync.Once
	bootstrapVal  *bootstrap
)

func getBootstrap() *bootstrap {
	bootstrapOnce.Do(func() {
		tokens := make([]grammar.TokenDecl, len(tokenNames))
		for i, n := range tokenNames {
			tokens[i] = grammar.TokenDecl{Name: n}
		}
		g, err := grammar.Build(grammar.Input{
			Tokens:      tokens,
			Productions: productionDecls,
		})
		if err != nil {
			panic("regex: bootstrap grammar failed to build: " + err.Error())
		}
		res, err := lalr1.Build(g)
		if err != nil {
			panic("regex: bootstrap grammar is not LALR(1): " + err.Error())
		}
		pt, err := table.Build(g, res)
		if err != nil {
			panic("regex: bootstrap table failed to build: " + err.Error())
		}
		tokenSymbols := make([]symbol.Symbol, len(tokenNames))
		for i, n := range tokenNames {
			sym, ok := g.Symbols.Lookup(n)
			if !ok {
				panic("regex: bootstrap token " + n + " missing from symbol table")
			}
			tokenSymbols[i] = sym
		}
		bootstrapVal = &bootstrap{grammar: g, tables: pt, tokenSymbols: tokenSymbols}
	})
	return bootstrapVal
}
