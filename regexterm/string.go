package regexterm

import (
	"strings"

	"github.com/micpowe/parsegen-cpp/chartab"
)

const metaChars = ".[]()|-^*+?\\"

func escapeChar(c byte) string {
	if strings.IndexByte(metaChars, c) >= 0 {
		return "\\" + string(c)
	}
	return string(c)
}

// String renders t as regex source text. CharSet terms use range-folding
// and pick whichever of the positive or negated class spelling is
// shorter, following internal_from_charset/from_charset in
// parsegen_regex.cpp. Null has no valid regex spelling and renders as the
// sentinel "(?!)"; Epsilon renders as the empty string.
func (t *Term) String() string {
	switch t.Kind {
	case KindNull:
		return "(?!)"
	case KindEpsilon:
		return ""
	case KindCharSet:
		return charSetString(t.Chars)
	case KindEither:
		if opt, ok := asOptional(t); ok {
			return wrapIf(opt, needsPostfixParens(opt)) + "?"
		}
		parts := make([]string, len(t.Subs))
		for i, s := range t.Subs {
			parts[i] = s.String()
		}
		return strings.Join(parts, "|")
	case KindConcat:
		var b strings.Builder
		for _, s := range t.Subs {
			b.WriteString(wrapIf(s, s.Kind == KindEither))
		}
		return b.String()
	case KindStar:
		return wrapIf(t.Subs[0], needsPostfixParens(t.Subs[0])) + "*"
	}
	return ""
}

func asOptional(t *Term) (*Term, bool) {
	if len(t.Subs) != 2 {
		return nil, false
	}
	if t.Subs[0].Kind == KindEpsilon {
		return t.Subs[1], true
	}
	if t.Subs[1].Kind == KindEpsilon {
		return t.Subs[0], true
	}
	return nil, false
}

func needsPostfixParens(t *Term) bool {
	return t.Kind == KindEither || t.Kind == KindConcat
}

func wrapIf(t *Term, wrap bool) string {
	s := t.String()
	if wrap {
		return "(" + s + ")"
	}
	return s
}

func charSetString(chars []int) string {
	positive := classBody(chars)
	negated := complement(chars)
	negSpelling := "[^" + classBody(negated) + "]"
	var posSpelling string
	if len(chars) == 1 {
		posSpelling = escapeChar(chartab.Char(chars[0]))
	} else {
		posSpelling = "[" + positive + "]"
	}
	if len(negSpelling) < len(posSpelling) {
		return negSpelling
	}
	return posSpelling
}

func complement(chars []int) []int {
	in := make([]bool, chartab.NCHARS)
	for _, c := range chars {
		in[c] = true
	}
	var out []int
	for i := 0; i < chartab.NCHARS; i++ {
		if !in[i] {
			out = append(out, i)
		}
	}
	return out
}

// classBody folds sorted, deduplicated symbol ids into a character-class
// body: runs of three or more consecutive symbols become lo-hi, shorter
// runs are spelled out individually.
func classBody(syms []int) string {
	var b strings.Builder
	for i := 0; i < len(syms); {
		j := i
		for j+1 < len(syms) && syms[j+1] == syms[j]+1 {
			j++
		}
		if j-i >= 2 {
			b.WriteString(escapeChar(chartab.Char(syms[i])))
			b.WriteByte('-')
			b.WriteString(escapeChar(chartab.Char(syms[j])))
		} else {
			for k := i; k <= j; k++ {
				b.WriteString(escapeChar(chartab.Char(syms[k])))
			}
		}
		i = j + 1
	}
	return b.String()
}

// Len reports the length of t's rendered form, used by dfa2regex's
// Delgado-Morais weight heuristic without allocating the string twice.
func Len(t *Term) int {
	return len(t.String())
}
