// Package indent validates the INDENT/DEDENT/NEWLINE token triad a
// Python-like indentation-sensitive language declares, and reports the
// declaration-order positions of those three tokens so a lexer assembly
// step can find them by the same terminal ids grammar.Build assigns.
//
// Grounded on _examples/original_source/parsegen_language.cpp's
// build_indent_info.
package indent

import "github.com/micpowe/parsegen-cpp/errs"

const (
	indentName  = "INDENT"
	dedentName  = "DEDENT"
	newlineName = "NEWLINE"
)

// Info reports whether a language is indentation-sensitive and, if so,
// the declaration-order index of each of its three indent tokens. These
// indices line up with grammar terminal ids, since grammar.Build assigns
// terminal ids in the same declaration order.
type Info struct {
	IndentSensitive bool
	NewlineIndex    int
	IndentIndex     int
	DedentIndex     int
}

// Build scans tokenNames (in declaration order) for INDENT, DEDENT, and
// NEWLINE. A language is indentation-sensitive iff it declares an INDENT
// token; NEWLINE and DEDENT are irrelevant to that determination on their
// own. Once a language is indentation-sensitive, it must also declare
// NEWLINE and DEDENT exactly once each, with NEWLINE declared before
// INDENT/DEDENT: a DEDENT or INDENT can only be recognized relative to a
// NEWLINE the lexer has already seen, so NEWLINE's token id must be
// assigned first. Any of the three declared more than once is always
// invalid, indentation-sensitive or not.
func Build(tokenNames []string) (*Info, error) {
	indentIdx, dedentIdx, newlineIdx := -1, -1, -1
	for i, name := range tokenNames {
		switch name {
		case indentName:
			if indentIdx >= 0 {
				return nil, errs.InvalidLanguage("two or more %s tokens", indentName)
			}
			indentIdx = i
		case dedentName:
			if dedentIdx >= 0 {
				return nil, errs.InvalidLanguage("two or more %s tokens", dedentName)
			}
			dedentIdx = i
		case newlineName:
			if newlineIdx >= 0 {
				return nil, errs.InvalidLanguage("two or more %s tokens", newlineName)
			}
			newlineIdx = i
		}
	}

	if indentIdx < 0 {
		return &Info{IndentSensitive: false}, nil
	}
	if dedentIdx < 0 || newlineIdx < 0 {
		return nil, errs.InvalidLanguage(
			"an indentation-sensitive language needs all of %s, %s, and %s",
			indentName, dedentName, newlineName,
		)
	}
	if newlineIdx > indentIdx || newlineIdx > dedentIdx {
		return nil, errs.InvalidLanguage("%s must be declared before %s and %s", newlineName, indentName, dedentName)
	}

	return &Info{
		IndentSensitive: true,
		NewlineIndex:    newlineIdx,
		IndentIndex:     indentIdx,
		DedentIndex:     dedentIdx,
	}, nil
}
