// Package chartab implements the fixed bijection between the byte subset
// a Language's regexes are written over and small integer symbol indices.
// Spec section 1 treats this table as a given primitive; this package
// picks the concrete subset (printable ASCII plus common whitespace) and
// keeps it process-wide and immutable, the way parsegen's chartab.hpp
// fixes NCHARS once for the whole library.
package chartab

import "fmt"

// NCHARS is the number of legal input characters, and thus the symbol
// count of every character-level finite automaton built by this module.
const NCHARS = 98

var (
	char2sym [256]int
	sym2char [NCHARS]byte
)

func init() {
	for i := range char2sym {
		char2sym[i] = -1
	}
	n := 0
	// Tab, newline, carriage return, then the printable ASCII range
	// 0x20..0x7e. This covers every character a hand-written grammar or
	// token regex is realistically written against.
	for _, c := range []byte{'\t', '\n', '\r'} {
		char2sym[c] = n
		sym2char[n] = c
		n++
	}
	for c := byte(0x20); c <= 0x7e; c++ {
		char2sym[c] = n
		sym2char[n] = c
		n++
	}
	if n != NCHARS {
		panic(fmt.Sprintf("chartab: built %d symbols, want %d", n, NCHARS))
	}
}

// IsChar reports whether c is a legal input character.
func IsChar(c byte) bool {
	return char2sym[c] >= 0
}

// Symbol maps a legal input character to its symbol index. It panics if c
// is not in the table; callers must check IsChar at input boundaries.
func Symbol(c byte) int {
	s := char2sym[c]
	if s < 0 {
		panic(fmt.Sprintf("chartab: %q is not a legal character", c))
	}
	return s
}

// Char maps a symbol index back to its character. It panics if sym is out
// of range.
func Char(sym int) byte {
	if sym < 0 || sym >= NCHARS {
		panic(fmt.Sprintf("chartab: symbol %d out of range", sym))
	}
	return sym2char[sym]
}
