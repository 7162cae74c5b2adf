package alphabet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/language/dene/alphabet"
)

// dene is a small Dene-flavored fixture table: accented vowels, the
// barred l, a digraph, an ejective, and a case-neutral glottal stop.
var dene = alphabet.MustNew([]alphabet.SymbolDefinition{
	{Symbol: " ", SortBase: 0, Case: alphabet.Neutral},
	{Symbol: "a", SortBase: 1, Case: alphabet.Lower},
	{Symbol: "A", SortBase: 1, Case: alphabet.Upper},
	{Symbol: "á", SortBase: 1, AccentRank: 1, Case: alphabet.Lower},
	{Symbol: "Á", SortBase: 1, AccentRank: 1, Case: alphabet.Upper},
	{Symbol: "b", SortBase: 2, Case: alphabet.Lower},
	{Symbol: "B", SortBase: 2, Case: alphabet.Upper},
	{Symbol: "ch", SortBase: 3, Case: alphabet.Lower},
	{Symbol: "Ch", SortBase: 3, Case: alphabet.Upper},
	{Symbol: "ch'", SortBase: 4, Case: alphabet.Lower},
	{Symbol: "Ch'", SortBase: 4, Case: alphabet.Upper},
	{Symbol: "é", LegacyPattern: "´e", SortBase: 5, AccentRank: 1, Case: alphabet.Lower},
	{Symbol: "É", LegacyPattern: "´E", SortBase: 5, AccentRank: 1, Case: alphabet.Upper},
	{Symbol: "e", SortBase: 5, Case: alphabet.Lower},
	{Symbol: "E", SortBase: 5, Case: alphabet.Upper},
	{Symbol: "ł", LegacyPattern: "¬l", SortBase: 6, Case: alphabet.Lower},
	{Symbol: "Ł", LegacyPattern: "¬L", SortBase: 6, Case: alphabet.Upper},
	{Symbol: "ʔ", LegacyPattern: `\?`, SortBase: 7, Case: alphabet.Neutral},
})

// TestNew_EmptyTable verifies that a table without definitions is
// rejected outright.
func TestNew_EmptyTable(t *testing.T) {
	_, err := alphabet.New(nil)
	assert.ErrorIs(t, err, alphabet.ErrEmptyAlphabet, "nil table must error")

	_, err = alphabet.New([]alphabet.SymbolDefinition{})
	assert.ErrorIs(t, err, alphabet.ErrEmptyAlphabet, "empty table must error")
}

// TestNew_Validation exercises every per-definition construction error.
func TestNew_Validation(t *testing.T) {
	cases := []struct {
		name string
		def  alphabet.SymbolDefinition
		want error
	}{
		{"empty symbol", alphabet.SymbolDefinition{Symbol: "", SortBase: 1}, alphabet.ErrEmptySymbol},
		{"sort base below range", alphabet.SymbolDefinition{Symbol: "a", SortBase: -1}, alphabet.ErrSortBaseRange},
		{"sort base above range", alphabet.SymbolDefinition{Symbol: "a", SortBase: 100}, alphabet.ErrSortBaseRange},
		{"bad case value", alphabet.SymbolDefinition{Symbol: "a", SortBase: 1, Case: 2}, alphabet.ErrBadCaseValue},
		{"bad legacy pattern", alphabet.SymbolDefinition{Symbol: "a", SortBase: 1, LegacyPattern: "?"}, alphabet.ErrBadLegacyPattern},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := alphabet.New([]alphabet.SymbolDefinition{tc.def})
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestSymbols_PreservesOrder checks the projection keeps table order.
func TestSymbols_PreservesOrder(t *testing.T) {
	syms := dene.Symbols()
	require.Len(t, syms, dene.Len())
	assert.Equal(t, " ", syms[0])
	assert.Equal(t, "a", syms[1])
	assert.Equal(t, "ʔ", syms[len(syms)-1])
}

// TestLookup_ExactMatch verifies exact lookup and its projections.
func TestLookup_ExactMatch(t *testing.T) {
	def, err := dene.Lookup("ch'")
	require.NoError(t, err)
	assert.Equal(t, 4, def.SortBase)
	assert.Equal(t, alphabet.Lower, def.Case)

	base, err := dene.SortBase("B")
	require.NoError(t, err)
	assert.Equal(t, 2, base)
}

// TestLookup_UnknownSymbol verifies the absent-symbol failure mode.
func TestLookup_UnknownSymbol(t *testing.T) {
	_, err := dene.Lookup("z")
	assert.ErrorIs(t, err, alphabet.ErrUnknownSymbol)
	assert.Contains(t, err.Error(), `"z"`, "error must carry the offending symbol")

	_, err = dene.SortBase("z")
	assert.ErrorIs(t, err, alphabet.ErrUnknownSymbol)
}

// TestLookup_FirstMatchWins: duplicate symbol strings resolve to the
// earliest definition in table order.
func TestLookup_FirstMatchWins(t *testing.T) {
	a, err := alphabet.New([]alphabet.SymbolDefinition{
		{Symbol: "x", SortBase: 1, Case: alphabet.Lower},
		{Symbol: "x", SortBase: 9, Case: alphabet.Neutral},
	})
	require.NoError(t, err)

	def, err := a.Lookup("x")
	require.NoError(t, err)
	assert.Equal(t, 1, def.SortBase, "first definition in table order must win")
}

// TestIsPrefix covers partial, full, and absent candidates.
func TestIsPrefix(t *testing.T) {
	assert.True(t, dene.IsPrefix("c"), "strict prefix of ch/ch'")
	assert.True(t, dene.IsPrefix("ch"), "full symbol is its own prefix")
	assert.True(t, dene.IsPrefix("ch'"))
	assert.False(t, dene.IsPrefix("cx"))
	assert.False(t, dene.IsPrefix(""), "empty string is not a prefix")

	assert.True(t, dene.IsSymbol("ch"))
	assert.False(t, dene.IsSymbol("c"), "strict prefix is not a symbol")
}

// TestGroup returns collation siblings in table order.
func TestGroup(t *testing.T) {
	grp := dene.Group(1, 0)
	require.Len(t, grp, 2)
	assert.Equal(t, "a", grp[0].Symbol)
	assert.Equal(t, "A", grp[1].Symbol)

	assert.Nil(t, dene.Group(42, 0), "absent group yields nil")
}

// TestLegacyRules compiles rules in table order with the symbol as
// replacement.
func TestLegacyRules(t *testing.T) {
	rules := dene.LegacyRules()
	require.Len(t, rules, 5)
	assert.Equal(t, "´e", rules[0].Pattern.String())
	assert.Equal(t, "é", rules[0].Replacement)
	assert.Equal(t, "ʔ", rules[4].Replacement)
}

// TestCaseValue_String names the three case classes.
func TestCaseValue_String(t *testing.T) {
	assert.Equal(t, "Lower", alphabet.Lower.String())
	assert.Equal(t, "Upper", alphabet.Upper.String())
	assert.Equal(t, "Neutral", alphabet.Neutral.String())
}
