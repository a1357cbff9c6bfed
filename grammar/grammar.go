package grammar

import (
	"go.uber.org/multierr"

	"github.com/micpowe/parsegen-cpp/errs"
	"github.com/micpowe/parsegen-cpp/symbol"
)

// acceptName and endName are the synthesized start nonterminal and
// end-of-input terminal every grammar gets augmented with. Build does not
// reject a caller-declared token or production named "$accept" or "$end";
// such a name is registered once and shared with the synthesized symbol.
const (
	acceptName = "$accept"
	endName    = "$end"
)

// TokenDecl names one declared terminal, in the order its regex is
// assembled into the combined lexer (spec section 4.3's declaration-order
// priority applies to this same order).
type TokenDecl struct {
	Name string
}

// ProductionDecl is one user-declared production before symbol
// resolution: RHS names a sequence of terminal or nonterminal names.
type ProductionDecl struct {
	LHS string
	RHS []string
}

// Input is everything grammar.Build needs: the declared terminals, the
// productions over them and over nonterminals introduced by LHS
// occurrence, and the subset of terminals the parser driver should skip
// rather than shift.
type Input struct {
	Tokens      []TokenDecl
	Productions []ProductionDecl
	Ignored     []string
}

// Grammar is the augmented, fully symbol-resolved grammar: an accept
// production accept -> start $end has been appended last, and $end
// appended as the last terminal.
type Grammar struct {
	Symbols       *symbol.Table
	Productions   []*Production       // last element is the accept production
	ProductionsOf map[symbol.Symbol][]*Production
	Start         symbol.Symbol // the caller's start nonterminal
	Accept        symbol.Symbol // the synthesized accept nonterminal
	End           symbol.Symbol // the synthesized end-of-input terminal
	Ignored       []symbol.Symbol
}

// Build resolves in into a Grammar, or returns an error aggregating every
// unknown RHS symbol and every unknown ignored-token name found across
// the whole input, rather than stopping at the first
// (multierr.Append-backed, matching vartan's GrammarBuilder.errs
// pattern of batching semantic errors).
func Build(in Input) (*Grammar, error) {
	if len(in.Productions) == 0 {
		return nil, errs.InvalidLanguage("a grammar needs at least one production")
	}

	w := symbol.NewTableWriter()
	for _, tok := range in.Tokens {
		if tok.Name == "" {
			return nil, errs.InvalidLanguage("a token name must not be empty")
		}
		w.Terminal(tok.Name)
	}
	w.Terminal(endName)

	for _, p := range in.Productions {
		if p.LHS == "" {
			return nil, errs.InvalidLanguage("a production's LHS must not be empty")
		}
		w.Nonterminal(p.LHS)
	}
	w.Nonterminal(acceptName)

	var errsFound error
	for _, p := range in.Productions {
		for _, name := range p.RHS {
			if !w.Declared(name) {
				errsFound = multierr.Append(errsFound, errs.UnknownSymbol(name))
			}
		}
	}
	for _, name := range in.Ignored {
		if !w.Declared(name) {
			errsFound = multierr.Append(errsFound, errs.UnknownIgnoredToken(name))
		}
	}
	if errsFound != nil {
		return nil, errsFound
	}

	tbl := w.Build()
	start, _ := tbl.Lookup(in.Productions[0].LHS)
	accept, _ := tbl.Lookup(acceptName)
	end, _ := tbl.Lookup(endName)

	g := &Grammar{
		Symbols:       tbl,
		Start:         start,
		Accept:        accept,
		End:           end,
		ProductionsOf: make(map[symbol.Symbol][]*Production),
	}

	for _, p := range in.Productions {
		lhs, _ := tbl.Lookup(p.LHS)
		rhs := make([]symbol.Symbol, len(p.RHS))
		for i, name := range p.RHS {
			rhs[i], _ = tbl.Lookup(name)
		}
		prod := &Production{ID: len(g.Productions), LHS: lhs, RHS: rhs}
		g.Productions = append(g.Productions, prod)
		g.ProductionsOf[lhs] = append(g.ProductionsOf[lhs], prod)
	}

	acceptProd := &Production{ID: len(g.Productions), LHS: accept, RHS: []symbol.Symbol{start, end}}
	g.Productions = append(g.Productions, acceptProd)
	g.ProductionsOf[accept] = append(g.ProductionsOf[accept], acceptProd)

	for _, name := range in.Ignored {
		sym, _ := tbl.Lookup(name)
		g.Ignored = append(g.Ignored, sym)
	}

	return g, nil
}

// IsNullable reports whether sym can derive the empty string under the
// fixed-point nullable set computed by Nullable.
func (g *Grammar) IsNullable(sym symbol.Symbol, nullable map[symbol.Symbol]bool) bool {
	if g.Symbols.IsTerminal(sym) {
		return false
	}
	return nullable[sym]
}

// Nullable computes the set of nonterminals that can derive the empty
// string, by straightforward fixed-point iteration over every production.
func (g *Grammar) Nullable() map[symbol.Symbol]bool {
	nullable := make(map[symbol.Symbol]bool)
	for {
		changed := false
		for _, p := range g.Productions {
			if nullable[p.LHS] {
				continue
			}
			allNullable := true
			for _, s := range p.RHS {
				if g.Symbols.IsTerminal(s) || !nullable[s] {
					allNullable = false
					break
				}
			}
			if allNullable {
				nullable[p.LHS] = true
				changed = true
			}
		}
		if !changed {
			return nullable
		}
	}
}
