// Package dene is an alphabet-table interpreter for languages whose
// collation order, casing, and accent relationships cannot be derived
// from native character-code ordering — custom and historical
// orthographies described by a declarative symbol table.
//
// 🚀 What is dene?
//
//	A small, pure-Go library that reads one declarative alphabet table
//	and derives every transform an orthography needs:
//		• Tokenization: longest-match splitting of text into alphabet symbols
//		• Collation: opaque, byte-sortable surrogate keys for ordered stores
//		• Casing: table-driven upper/lower conversion, digraphs included
//		• Accents: case-preserving reduction to unaccented base letters
//		• Legacy encodings: winmac-era single-byte text back to canonical symbols
//
// ✨ Why choose dene?
//
//   - Table-driven – the alphabet is data, not code; swap tables, not logic
//   - Exact by design – malformed tables and unknown symbols are errors,
//     never first-match guesses
//   - Pure Go – stateless functions over an immutable table, safe for
//     unsynchronized concurrent use
//
// Everything is organized under small sibling packages:
//
//	alphabet/ — SymbolDefinition, CaseValue, the validated Alphabet table & lookups
//	tokenize/ — greedy longest-match symbol splitting
//	collate/  — sort-key derivation & ordering helpers
//	casing/   — case conversion (SetCase, ToUpper, ToLower)
//	accent/   — accent stripping (Strip, StripSymbol)
//	legacy/   — legacy-pattern normalization & winmac codepage decoding
//
// Quick example, a three-symbol table:
//
//	[a 1 0 neutral] [b 2 0 lower] [B 2 0 upper]
//
//	tokenize.Split(a, "aB")  → ["a", "B"]
//	collate.SortKey(a, "aB") → "0102"
//	casing.ToLower(a, "aB")  → "ab"
//
//	go get github.com/language/dene
package dene
