package regexterm

// Either builds the simplified union of terms: nested Eithers are
// flattened, Null operands (the union identity) are dropped, duplicate
// operands are removed, and all CharSet operands are folded into a single
// CharSet by union, placed after the other operands.
func Either(terms ...*Term) *Term {
	flat := flattenEither(terms)
	flat = foldCharSets(flat)
	flat = dedupTerms(flat)
	switch len(flat) {
	case 0:
		return Null()
	case 1:
		return flat[0]
	default:
		if factored := factorCommonPrefix(flat); factored != nil {
			return factored
		}
		return &Term{Kind: KindEither, Subs: flat}
	}
}

func flattenEither(terms []*Term) []*Term {
	var out []*Term
	for _, t := range terms {
		switch t.Kind {
		case KindNull:
			// identity for union: drop it
		case KindEither:
			out = append(out, flattenEither(t.Subs)...)
		default:
			out = append(out, t)
		}
	}
	return out
}

func foldCharSets(terms []*Term) []*Term {
	var merged []int
	var out []*Term
	for _, t := range terms {
		if t.Kind == KindCharSet {
			merged = append(merged, t.Chars...)
			continue
		}
		out = append(out, t)
	}
	if len(merged) > 0 {
		out = append(out, CharSet(merged))
	}
	return out
}

func dedupTerms(terms []*Term) []*Term {
	var out []*Term
	for _, t := range terms {
		dup := false
		for _, u := range out {
			if Equals(t, u) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, t)
		}
	}
	return out
}

// factorCommonPrefix looks for exactly two Concat operands that share a
// leading sub-term and refactors them to Concat(prefix, Either(rest...)),
// the rewrite parsegen_regex.cpp's regex_concat::either_with performs
// while building up a DFA's regex incrementally. It returns nil when no
// such pair exists, leaving the caller to keep the flat Either.
func factorCommonPrefix(terms []*Term) *Term {
	if len(terms) != 2 {
		return nil
	}
	a, b := terms[0], terms[1]
	if a.Kind != KindConcat || b.Kind != KindConcat {
		return nil
	}
	if len(a.Subs) == 0 || len(b.Subs) == 0 || !Equals(a.Subs[0], b.Subs[0]) {
		return nil
	}
	return Concat(a.Subs[0], Either(Concat(a.Subs[1:]...), Concat(b.Subs[1:]...)))
}

// Concat builds the simplified concatenation of terms: nested Concats are
// flattened, a Null operand makes the whole concatenation Null, and
// Epsilon operands (the concatenation identity) are dropped.
func Concat(terms ...*Term) *Term {
	flat := flattenConcat(terms)
	for _, t := range flat {
		if t.Kind == KindNull {
			return Null()
		}
	}
	var out []*Term
	for _, t := range flat {
		if t.Kind == KindEpsilon {
			continue
		}
		out = append(out, t)
	}
	switch len(out) {
	case 0:
		return Epsilon()
	case 1:
		return out[0]
	default:
		return &Term{Kind: KindConcat, Subs: out}
	}
}

func flattenConcat(terms []*Term) []*Term {
	var out []*Term
	for _, t := range terms {
		if t.Kind == KindConcat {
			out = append(out, flattenConcat(t.Subs)...)
		} else {
			out = append(out, t)
		}
	}
	return out
}

// Star builds the simplified Kleene closure of t: Null* and Epsilon* both
// collapse to Epsilon, and Star is idempotent ((t*)* == t*).
func Star(t *Term) *Term {
	switch t.Kind {
	case KindNull, KindEpsilon:
		return Epsilon()
	case KindStar:
		return t
	default:
		return &Term{Kind: KindStar, Subs: []*Term{t}}
	}
}

// Optional builds t? as Either(Epsilon, t), the form String renders with
// the ? postfix operator when the result has exactly two operands (it has
// more when t is itself an Either of several operands).
func Optional(t *Term) *Term {
	return Either(Epsilon(), t)
}

// Plus builds t+ as Concat(t, Star(t)), matching one-or-more repetitions
// without a dedicated Kind of its own.
func Plus(t *Term) *Term {
	return Concat(t, Star(t))
}
