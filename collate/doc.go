// Package collate derives byte-sortable surrogate keys from text under
// an alphabet's intended collation.
//
// SortKey maps every symbol of the input to its two-digit primary
// rank; plain lexicographic comparison of two keys then agrees with
// the alphabet's ordering of the original strings. The key is one-way
// — the original text cannot be reconstructed — and is meant to be
// handed to any external store with byte-lexicographic ordering as an
// index key.
//
// Less and Strings are small conveniences over SortKey for in-process
// comparison and sorting.
package collate
