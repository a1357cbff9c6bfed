package fa

// Single builds the two-state NFA that accepts exactly the one-symbol
// string "sym", tagged with accept token.
func Single(nsymbols, sym, token int) *FA {
	nfa := New(nsymbols, false)
	s0 := nfa.AddState()
	s1 := nfa.AddState()
	nfa.AddTransition(s0, sym, s1)
	nfa.AddAccept(s1, token)
	return nfa
}

// Range builds the two-state NFA that accepts any single symbol in
// [lo, hi], tagged with accept token.
func Range(nsymbols, lo, hi, token int) *FA {
	nfa := New(nsymbols, false)
	s0 := nfa.AddState()
	s1 := nfa.AddState()
	for sym := lo; sym <= hi; sym++ {
		nfa.AddTransition(s0, sym, s1)
	}
	nfa.AddAccept(s1, token)
	return nfa
}

// Set builds the two-state NFA that accepts any single symbol named in
// syms, tagged with accept token.
func Set(nsymbols int, syms []int, token int) *FA {
	nfa := New(nsymbols, false)
	s0 := nfa.AddState()
	s1 := nfa.AddState()
	for _, sym := range syms {
		nfa.AddTransition(s0, sym, s1)
	}
	nfa.AddAccept(s1, token)
	return nfa
}

// Union builds the NFA for "a|b": a fresh start state epsilon-branching
// into a copy of a (via eps0) and a copy of b (via eps1). Neither a nor b
// is mutated.
func Union(a, b *FA) *FA {
	nfa := New(a.nsymbols, false)
	start := nfa.AddState()
	aOffset := AppendStates(nfa, a)
	bOffset := AppendStates(nfa, b)
	nfa.AddTransition(start, nfa.Epsilon0(), aOffset)
	nfa.AddTransition(start, nfa.Epsilon1(), bOffset)
	return nfa
}

// Concat builds the NFA for "ab": a copy of a whose accepting states gain
// an eps0 transition into a copy of b and lose their own accept marking;
// b's accepting states are retagged with token, the token of the
// construct as a whole. Neither a nor b is mutated.
func Concat(a, b *FA, token int) *FA {
	nfa := New(a.nsymbols, false)
	aOffset := AppendStates(nfa, a)
	bOffset := AppendStates(nfa, b)
	for s := 0; s < a.NStates(); s++ {
		if a.Accept(s) < 0 {
			continue
		}
		my := s + aOffset
		nfa.RemoveAccept(my)
		nfa.AddTransition(my, nfa.Epsilon0(), bOffset)
	}
	for s := 0; s < b.NStates(); s++ {
		if b.Accept(s) < 0 {
			continue
		}
		nfa.AddAccept(s+bOffset, token)
	}
	return nfa
}

// Plus builds the NFA for "a+": a copy of a whose accepting states each
// gain an eps0 transition to a fresh accept state and an eps1 transition
// back to a's start state (the repeat-loop), losing their own accept
// marking. The fresh accept state is tagged with token. a is not mutated.
func Plus(a *FA, token int) *FA {
	nfa := New(a.nsymbols, false)
	aOffset := AppendStates(nfa, a)
	newAccept := nfa.AddState()
	nfa.AddAccept(newAccept, token)
	for s := 0; s < a.NStates(); s++ {
		if a.Accept(s) < 0 {
			continue
		}
		my := s + aOffset
		nfa.RemoveAccept(my)
		nfa.AddTransition(my, nfa.Epsilon0(), newAccept)
		nfa.AddTransition(my, nfa.Epsilon1(), aOffset)
	}
	return nfa
}

// Maybe builds the NFA for "a?": a fresh start state with an eps1
// transition straight into a copy of a, and an eps0 transition into a
// fresh accept state tagged with token. Each of a's own accepting states
// gains its own eps0 transition into that same fresh accept state and
// loses its own accept marking. a is not mutated.
func Maybe(a *FA, token int) *FA {
	nfa := New(a.nsymbols, false)
	newStart := nfa.AddState()
	aOffset := AppendStates(nfa, a)
	newAccept := nfa.AddState()
	nfa.AddAccept(newAccept, token)
	nfa.AddTransition(newStart, nfa.Epsilon1(), aOffset)
	nfa.AddTransition(newStart, nfa.Epsilon0(), newAccept)
	for s := 0; s < a.NStates(); s++ {
		if a.Accept(s) < 0 {
			continue
		}
		my := s + aOffset
		nfa.RemoveAccept(my)
		nfa.AddTransition(my, nfa.Epsilon0(), newAccept)
	}
	return nfa
}

// Star builds the NFA for "a*" as Maybe(Plus(a, token), token), the same
// decomposition parsegen_finite_automaton.cpp uses.
func Star(a *FA, token int) *FA {
	return Maybe(Plus(a, token), token)
}
