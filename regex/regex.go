package regex

import (
	"fmt"

	"github.com/micpowe/parsegen-cpp/chartab"
	"github.com/micpowe/parsegen-cpp/errs"
	"github.com/micpowe/parsegen-cpp/fa"
)

// BuildDFA parses pattern into an NFA via the bootstrap grammar, retags its
// accept states from the internal placeholder to token, and determinizes
// and simplifies the result. name is used only to annotate the
// empty-pattern error; errors reported by the lexer and parser carry an
// empty token name.
func BuildDFA(name, pattern string, token int) (*fa.FA, error) {
	if pattern == "" {
		return nil, errs.RegexParseError(name, pattern, "pattern must not be empty", "")
	}
	nfa, err := driveParser(pattern)
	if err != nil {
		return nil, err
	}
	nfa.RetagAccept(internalToken, token)
	return fa.Simplify(fa.Determinize(nfa)), nil
}

// matchToken is the placeholder accept token Matches's scratch DFA is
// built with; there is only ever one token in play, so any non-negative
// value would do.
const matchToken = 1

// Matches reports whether text, taken as a whole, is in the language
// pattern denotes. It builds a fresh DFA on every call; callers matching
// the same pattern repeatedly should call BuildDFA once and drive the
// resulting automaton themselves.
func Matches(pattern, text string) (bool, error) {
	dfa, err := BuildDFA("", pattern, matchToken)
	if err != nil {
		return false, err
	}
	syms, err := textToSymbols(pattern, text)
	if err != nil {
		return false, err
	}
	return fa.Accepts(dfa, syms), nil
}

func textToSymbols(pattern, text string) ([]int, error) {
	syms := make([]int, len(text))
	for i := 0; i < len(text); i++ {
		c := text[i]
		if !chartab.IsChar(c) {
			return nil, errs.RegexParseError("", pattern, fmt.Sprintf("illegal character %q in input at offset %d", c, i), "")
		}
		syms[i] = chartab.Symbol(c)
	}
	return syms, nil
}
