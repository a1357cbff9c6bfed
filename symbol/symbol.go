// Package symbol implements the grammar/lexer symbol space: terminals
// and nonterminals are both just small non-negative integers, terminals
// numbered first in declaration order and nonterminals numbered after
// them in first-occurrence order, per spec section 3.
//
// Grounded on nihei9-vartan/grammar/symbol/symbol.go's writer/reader
// split, simplified from vartan's bit-packed uint16 representation to a
// flat int, since this module has no serialized symbol-table format to
// pack for.
package symbol

// Symbol is a symbol index. Terminals occupy [0, NTerminals), and
// nonterminals occupy [NTerminals, NSymbols).
type Symbol int

// Table is the read-only view of a finished symbol space, handed out by
// TableWriter.Build. Names may only be resolved to Symbols through it,
// never through the writer, since nonterminal ids aren't final until
// Build runs.
type Table struct {
	names      []string
	byName     map[string]Symbol
	nterminals int
}

// IsTerminal reports whether s is a terminal symbol.
func (t *Table) IsTerminal(s Symbol) bool {
	return int(s) < t.nterminals
}

// IsNonterminal reports whether s is a nonterminal symbol.
func (t *Table) IsNonterminal(s Symbol) bool {
	return !t.IsTerminal(s)
}

// Name returns the declared name of s.
func (t *Table) Name(s Symbol) string {
	return t.names[s]
}

// Lookup resolves name to its Symbol, if it was registered as either a
// terminal or a nonterminal.
func (t *Table) Lookup(name string) (Symbol, bool) {
	s, ok := t.byName[name]
	return s, ok
}

// NSymbols is the total number of terminals and nonterminals.
func (t *Table) NSymbols() int { return len(t.names) }

// NTerminals is the number of terminal symbols.
func (t *Table) NTerminals() int { return t.nterminals }

// NNonterminals is the number of nonterminal symbols.
func (t *Table) NNonterminals() int { return len(t.names) - t.nterminals }

// Terminals returns every terminal Symbol, in ascending id order.
func (t *Table) Terminals() []Symbol {
	out := make([]Symbol, t.nterminals)
	for i := range out {
		out[i] = Symbol(i)
	}
	return out
}

// Nonterminals returns every nonterminal Symbol, in ascending id order.
func (t *Table) Nonterminals() []Symbol {
	out := make([]Symbol, t.NNonterminals())
	for i := range out {
		out[i] = Symbol(t.nterminals + i)
	}
	return out
}

// TableWriter accumulates terminals and nonterminals in the two-phase
// order the grammar builder discovers them in (every terminal, in
// declaration order, then every nonterminal, in first-occurrence order)
// and produces the finished Table.
type TableWriter struct {
	terminals    []string
	nonterminals []string
	declared     map[string]bool
}

// NewTableWriter returns an empty writer.
func NewTableWriter() *TableWriter {
	return &TableWriter{declared: make(map[string]bool)}
}

// Terminal registers name as the next terminal if it hasn't been seen
// before.
func (w *TableWriter) Terminal(name string) {
	if w.declared[name] {
		return
	}
	w.declared[name] = true
	w.terminals = append(w.terminals, name)
}

// Nonterminal registers name as the next nonterminal if it hasn't been
// seen before, as either kind.
func (w *TableWriter) Nonterminal(name string) {
	if w.declared[name] {
		return
	}
	w.declared[name] = true
	w.nonterminals = append(w.nonterminals, name)
}

// Declared reports whether name has been registered as a terminal or
// nonterminal.
func (w *TableWriter) Declared(name string) bool {
	return w.declared[name]
}

// Build finalizes the symbol numbering: terminals keep the order they
// were registered in, and nonterminals are numbered to start immediately
// after the last terminal.
func (w *TableWriter) Build() *Table {
	nterminals := len(w.terminals)
	names := make([]string, 0, nterminals+len(w.nonterminals))
	names = append(names, w.terminals...)
	names = append(names, w.nonterminals...)
	byName := make(map[string]Symbol, len(names))
	for i, name := range names {
		byName[name] = Symbol(i)
	}
	return &Table{names: names, byName: byName, nterminals: nterminals}
}
