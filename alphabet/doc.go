// Package alphabet defines the declarative symbol table every dene
// transform interprets: SymbolDefinition records, the CaseValue enum,
// and the immutable Alphabet built from them.
//
// 🚀 What is an alphabet table?
//
//	An ordered sequence of SymbolDefinition records, each binding one
//	literal glyph (possibly multi-character, e.g. the digraph "ch") to:
//	  • SortBase    — primary collation rank, shared by all case/accent
//	    variants of "the same letter" (0..99)
//	  • AccentRank  — secondary rank; 0 marks the unaccented base form
//	  • Case        — Lower, Upper, or Neutral (one-form symbols)
//	  • LegacyPattern — optional pattern matching the symbol's historical
//	    single-byte ("winmac") spelling
//
// New validates the table eagerly and builds the derived indices (exact
// lookup map, rune-boundary prefix set, collation-group index, compiled
// legacy rules) that keep every downstream transform linear-time. The
// resulting Alphabet is immutable: all methods are read-only and safe
// for unsynchronized concurrent use.
//
// ⚙️ Usage:
//
//	a, err := alphabet.New([]alphabet.SymbolDefinition{
//	  {Symbol: "a", SortBase: 1, Case: alphabet.Neutral},
//	  {Symbol: "b", SortBase: 2, Case: alphabet.Lower},
//	  {Symbol: "B", SortBase: 2, Case: alphabet.Upper},
//	})
//	if err != nil {
//	  // handle ErrEmptySymbol, ErrSortBaseRange, ...
//	}
//	def, err := a.Lookup("B") // def.SortBase == 2
//
// Tables may also be read from YAML via Load / LoadFile; see yaml.go.
package alphabet
