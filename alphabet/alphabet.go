// SPDX-License-Identifier: MIT
//
// File: alphabet.go
// Role: Construction and read-only lookup surface of the Alphabet table.
// Policy:
//   - New validates everything eagerly; a constructed Alphabet is sound.
//   - All methods are read-only; internal state is never exposed by
//     reference, so an Alphabet is safe for concurrent use.

package alphabet

import (
	"fmt"
	"regexp"
)

// Alphabet is a validated, immutable symbol table with derived lookup
// indices. Construct with New or Load; the zero value is not usable.
type Alphabet struct {
	defs []SymbolDefinition

	// bySymbol maps a symbol string to the index of its first
	// definition; table order wins for duplicate symbols.
	bySymbol map[string]int

	// prefixes holds every rune-boundary prefix of every symbol,
	// full symbols included. Tokenization tests membership here to
	// decide whether a candidate buffer can still grow.
	prefixes map[string]struct{}

	// groups maps (SortBase, AccentRank) to the definition indices of
	// one collation group, in table order.
	groups map[groupKey][]int

	// legacy holds the compiled legacy-substitution rules in table
	// order, one per definition with a non-empty LegacyPattern.
	legacy []LegacyRule
}

// New builds an Alphabet from defs, validating every definition and
// precomputing the lookup indices.
//
// Validation (first violation wins, wrapped for errors.Is):
//   - at least one definition       — ErrEmptyAlphabet
//   - Symbol non-empty              — ErrEmptySymbol
//   - SortBase in [0, 99]           — ErrSortBaseRange
//   - Case in {Lower,Upper,Neutral} — ErrBadCaseValue
//   - LegacyPattern compiles        — ErrBadLegacyPattern
//
// Duplicate symbol strings are permitted; lookups resolve to the first
// definition in table order.
//
// Complexity: O(total symbol bytes) time and space.
func New(defs []SymbolDefinition) (*Alphabet, error) {
	if len(defs) == 0 {
		return nil, ErrEmptyAlphabet
	}

	a := &Alphabet{
		defs:     make([]SymbolDefinition, len(defs)),
		bySymbol: make(map[string]int, len(defs)),
		prefixes: make(map[string]struct{}, len(defs)*2),
		groups:   make(map[groupKey][]int, len(defs)),
	}
	copy(a.defs, defs) // callers keep no handle into our table

	for i, d := range a.defs {
		if d.Symbol == "" {
			return nil, fmt.Errorf("alphabet: definition %d: %w", i, ErrEmptySymbol)
		}
		if d.SortBase < 0 || d.SortBase > 99 {
			return nil, fmt.Errorf("alphabet: symbol %q: sort base %d: %w", d.Symbol, d.SortBase, ErrSortBaseRange)
		}
		if !d.Case.valid() {
			return nil, fmt.Errorf("alphabet: symbol %q: case %d: %w", d.Symbol, int(d.Case), ErrBadCaseValue)
		}

		if _, dup := a.bySymbol[d.Symbol]; !dup {
			a.bySymbol[d.Symbol] = i
		}

		// Every rune-boundary prefix, full symbol included. The
		// tokenizer's buffer grows rune by rune, so it only ever
		// probes strings that end on a rune boundary.
		for j := range d.Symbol {
			if j > 0 {
				a.prefixes[d.Symbol[:j]] = struct{}{}
			}
		}
		a.prefixes[d.Symbol] = struct{}{}

		k := groupKey{base: d.SortBase, accent: d.AccentRank}
		a.groups[k] = append(a.groups[k], i)

		if d.LegacyPattern != "" {
			re, err := regexp.Compile(d.LegacyPattern)
			if err != nil {
				return nil, fmt.Errorf("alphabet: symbol %q: pattern %q: %w", d.Symbol, d.LegacyPattern, ErrBadLegacyPattern)
			}
			a.legacy = append(a.legacy, LegacyRule{Pattern: re, Replacement: d.Symbol})
		}
	}

	return a, nil
}

// MustNew is New, panicking on error. Intended for table literals in
// tests and package initialization.
func MustNew(defs []SymbolDefinition) *Alphabet {
	a, err := New(defs)
	if err != nil {
		panic(err)
	}
	return a
}

// Len returns the number of definitions in the table.
func (a *Alphabet) Len() int { return len(a.defs) }

// Def returns the i-th definition, in table order. The definition is
// returned by value; mutating it does not affect the table.
func (a *Alphabet) Def(i int) SymbolDefinition { return a.defs[i] }

// Symbols returns the symbol strings of the table, preserving table
// order. The slice is freshly allocated on each call.
//
// Complexity: O(n).
func (a *Alphabet) Symbols() []string {
	out := make([]string, len(a.defs))
	for i, d := range a.defs {
		out[i] = d.Symbol
	}
	return out
}

// Lookup returns the definition for an exact symbol string, resolving
// duplicates to the first definition in table order. A symbol not in
// the table yields an error wrapping ErrUnknownSymbol.
//
// Complexity: O(1).
func (a *Alphabet) Lookup(symbol string) (SymbolDefinition, error) {
	i, ok := a.bySymbol[symbol]
	if !ok {
		return SymbolDefinition{}, fmt.Errorf("alphabet: symbol %q: %w", symbol, ErrUnknownSymbol)
	}
	return a.defs[i], nil
}

// SortBase returns the primary collation rank of an exact symbol.
// Same failure mode as Lookup.
func (a *Alphabet) SortBase(symbol string) (int, error) {
	d, err := a.Lookup(symbol)
	if err != nil {
		return 0, err
	}
	return d.SortBase, nil
}

// IsSymbol reports whether s is exactly a defined symbol.
func (a *Alphabet) IsSymbol(s string) bool {
	_, ok := a.bySymbol[s]
	return ok
}

// IsPrefix reports whether at least one defined symbol starts with s.
// A full symbol is a prefix of itself. The empty string is not a
// prefix of anything.
func (a *Alphabet) IsPrefix(s string) bool {
	_, ok := a.prefixes[s]
	return ok
}

// Group returns the definitions sharing a (SortBase, AccentRank)
// collation group, in table order. The slice is freshly allocated;
// an absent group yields nil.
//
// Case conversion and accent stripping resolve siblings through this
// view instead of rescanning the whole table.
func (a *Alphabet) Group(sortBase, accentRank int) []SymbolDefinition {
	idx := a.groups[groupKey{base: sortBase, accent: accentRank}]
	if len(idx) == 0 {
		return nil
	}
	out := make([]SymbolDefinition, len(idx))
	for i, j := range idx {
		out[i] = a.defs[j]
	}
	return out
}

// LegacyRules returns the compiled legacy-substitution rules in table
// order. The slice is freshly allocated; the compiled patterns are
// shared, which is safe as regexps are read-only after compilation.
func (a *Alphabet) LegacyRules() []LegacyRule {
	out := make([]LegacyRule, len(a.legacy))
	copy(out, a.legacy)
	return out
}
