// Package tokenize splits text into alphabet symbols by greedy
// longest match.
//
// Splitting is the root of every other transform in this module:
// collation, casing, and accent stripping all begin by resolving text
// into the symbol sequence Split produces. The contract is exact —
// concatenating the returned tokens reproduces the input byte for
// byte, and every token is a defined symbol of the table.
//
// The scan is single-pass with a growing candidate buffer and no
// backtracking; see Split for the outline. Tables are assumed
// prefix-unambiguous: whenever a buffered prefix can no longer grow,
// it must itself be a complete symbol. A table violating that (a
// symbol prefix that is never a symbol) surfaces as an unknown-symbol
// error rather than a mis-tokenization.
//
// ⚙️ Usage:
//
//	toks, err := tokenize.Split(a, "ch'a")
//	// toks == ["ch'", "a"] given symbols "ch'" and "a"
//
// Complexity: O(len(text)) with the alphabet's prefix index; safe for
// concurrent use.
package tokenize
