// Package alphabet: value types of the symbol table.
package alphabet

import "regexp"

// CaseValue classifies a symbol's case form.
//
//   - Lower   — the lowercase member of a case pair.
//   - Upper   — the uppercase member of a case pair.
//   - Neutral — a symbol with a single form (punctuation, tone marks,
//     glottal stops); case conversion passes it through unchanged.
type CaseValue int8

const (
	// Lower marks the lowercase member of a case pair.
	Lower CaseValue = 0

	// Upper marks the uppercase member of a case pair.
	Upper CaseValue = 1

	// Neutral marks a symbol with no case distinction.
	Neutral CaseValue = -1
)

// String returns the name of the case value.
func (c CaseValue) String() string {
	switch c {
	case Lower:
		return "Lower"
	case Upper:
		return "Upper"
	case Neutral:
		return "Neutral"
	default:
		return "CaseValue(?)"
	}
}

// valid reports whether c is one of the three defined case values.
func (c CaseValue) valid() bool {
	return c == Lower || c == Upper || c == Neutral
}

// SymbolDefinition describes one symbol of an alphabet.
//
// Fields:
//   - Symbol        — the literal glyph(s), non-empty; may span several
//     runes (digraphs such as "ch", ejectives such as "ch'").
//   - LegacyPattern — optional regular expression matching the symbol's
//     historical single-byte spelling; occurrences are rewritten to
//     Symbol during legacy normalization. Empty means no legacy form.
//   - SortBase      — primary collation rank in [0, 99], shared across
//     the case and accent variants of one letter.
//   - AccentRank    — secondary rank; 0 is the unaccented base form,
//     any other value an accented variant of the same SortBase.
//   - Case          — Lower, Upper, or Neutral.
type SymbolDefinition struct {
	Symbol        string    `yaml:"symbol"`
	LegacyPattern string    `yaml:"legacy_pattern,omitempty"`
	SortBase      int       `yaml:"sort_base"`
	AccentRank    int       `yaml:"accent_rank"`
	Case          CaseValue `yaml:"case"`
}

// LegacyRule is one compiled legacy-substitution step: every match of
// Pattern is rewritten to Replacement. Rules apply strictly in table
// order; later rules see the output of earlier ones.
type LegacyRule struct {
	Pattern     *regexp.Regexp
	Replacement string
}

// groupKey identifies a collation group: the set of definitions that
// are case siblings of one (possibly accented) letter.
type groupKey struct {
	base   int
	accent int
}
