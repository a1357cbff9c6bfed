package regexterm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEitherDropsNullAndDedupes(t *testing.T) {
	a := CharSet([]int{1})
	got := Either(Null(), a, a)
	require.True(t, Equals(got, a), "Either(Null, a, a) = %v, want a", got)
}

func TestConcatDominatedByNull(t *testing.T) {
	a := CharSet([]int{1})
	got := Concat(a, Null(), a)
	require.Equal(t, KindNull, got.Kind)
}

func TestConcatDropsEpsilon(t *testing.T) {
	a := CharSet([]int{1})
	b := CharSet([]int{2})
	got := Concat(a, Epsilon(), b)
	want := Concat(a, b)
	require.True(t, Equals(got, want), "Concat with Epsilon operand = %v, want %v", got, want)
}

func TestStarIdempotent(t *testing.T) {
	a := CharSet([]int{1})
	once := Star(a)
	twice := Star(once)
	require.True(t, Equals(once, twice), "Star(Star(a)) = %v, want Star(a)", twice)
}

func TestStarOfNullAndEpsilonIsEpsilon(t *testing.T) {
	require.Equal(t, KindEpsilon, Star(Null()).Kind)
	require.Equal(t, KindEpsilon, Star(Epsilon()).Kind)
}

func TestCharSetRangeFolds(t *testing.T) {
	// chartab lays out tab, newline, cr, then printable ascii from 0x20,
	// so 'a' (0x61) sits at symbol index 3 + (0x61 - 0x20).
	const aOffset = 3 + (0x61 - 0x20)
	chars := make([]int, 26)
	for i := range chars {
		chars[i] = aOffset + i
	}
	require.Equal(t, "[a-z]", CharSet(chars).String())
}
