package regex

import (
	"fmt"
	"sync"

	"github.com/micpowe/parsegen-cpp/chartab"
	"github.com/micpowe/parsegen-cpp/errs"
	"github.com/micpowe/parsegen-cpp/fa"
)

// metaChars are the regex syntax characters that stop CHAR from matching
// and instead get their own single-character token.
var metaChars = []byte{'.', '[', ']', '(', ')', '|', '-', '^', '*', '+', '?'}

const backslash = '\\'

// lexToken is one token scanned from a pattern string: its kind (a
// tokenNames index), and, for CHAR, the chartab symbol of the character
// it denotes (after un-escaping).
type lexToken struct {
	kind int
	char int // only meaningful when kind == tokenIndex(tokCHAR)
}

func tokenIndex(name string) int {
	for i, n := range tokenNames {
		if n == name {
			return i
		}
	}
	panic("regex: unknown token name " + name)
}

var (
	lexerOnce sync.Once
	lexerDFA  *fa.FA
)

func buildLexerDFA() *fa.FA {
	nfas := make([]*fa.FA, 0, len(metaChars)+1)

	isMeta := make([]bool, chartab.NCHARS)
	for _, c := range metaChars {
		isMeta[chartab.Symbol(c)] = true
	}
	isMeta[chartab.Symbol(backslash)] = true

	var nonMeta []int
	for sym := 0; sym < chartab.NCHARS; sym++ {
		if !isMeta[sym] {
			nonMeta = append(nonMeta, sym)
		}
	}

	charTok := tokenIndex(tokCHAR)
	literal := fa.Set(chartab.NCHARS, nonMeta, charTok)
	escaped := fa.Concat(
		fa.Single(chartab.NCHARS, chartab.Symbol(backslash), charTok),
		fa.Range(chartab.NCHARS, 0, chartab.NCHARS-1, charTok),
		charTok,
	)
	nfas = append(nfas, fa.Union(literal, escaped))

	for _, c := range metaChars {
		tok := tokenIndex(metaTokenName(c))
		nfas = append(nfas, fa.Single(chartab.NCHARS, chartab.Symbol(c), tok))
	}

	combined := nfas[0]
	for _, n := range nfas[1:] {
		combined = fa.Union(combined, n)
	}
	return fa.Simplify(fa.Determinize(combined))
}

func getLexerDFA() *fa.FA {
	lexerOnce.Do(func() {
		lexerDFA = buildLexerDFA()
	})
	return lexerDFA
}

func metaTokenName(c byte) string {
	switch c {
	case '.':
		return tokDOT
	case '[':
		return tokLBRACKET
	case ']':
		return tokRBRACKET
	case '(':
		return tokLPAREN
	case ')':
		return tokRPAREN
	case '|':
		return tokPIPE
	case '-':
		return tokDASH
	case '^':
		return tokCARET
	case '*':
		return tokSTAR
	case '+':
		return tokPLUS
	case '?':
		return tokQUESTION
	}
	panic(fmt.Sprintf("regex: %q is not a meta character", c))
}

// tokenize scans pattern into a sequence of lexTokens by maximal munch:
// at each position, run the lexer DFA as far as it will go and take the
// longest prefix that landed on an accepting state.
func tokenize(pattern string) ([]lexToken, error) {
	dfa := getLexerDFA()
	var out []lexToken
	pos := 0
	for pos < len(pattern) {
		state := 0
		lastAccept := -1
		lastAcceptLen := 0
		for i := pos; i < len(pattern); i++ {
			c := pattern[i]
			if !chartab.IsChar(c) {
				return nil, errs.RegexParseError("", pattern, fmt.Sprintf("illegal character %q at offset %d", c, i), "")
			}
			next := dfa.Step(state, chartab.Symbol(c))
			if next < 0 {
				break
			}
			state = next
			if tok := dfa.Accept(state); tok >= 0 {
				lastAccept = tok
				lastAcceptLen = i - pos + 1
			}
		}
		if lastAccept < 0 {
			return nil, errs.RegexParseError("", pattern, fmt.Sprintf("no token matches at offset %d", pos), "")
		}
		lt := lexToken{kind: lastAccept}
		if lastAccept == tokenIndex(tokCHAR) {
			text := pattern[pos : pos+lastAcceptLen]
			ch := text[0]
			if ch == backslash {
				ch = text[1]
			}
			lt.char = chartab.Symbol(ch)
		}
		out = append(out, lt)
		pos += lastAcceptLen
	}
	return out, nil
}
