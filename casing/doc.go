// Package casing converts text between the case forms an alphabet
// table declares, including multi-character symbols the native case
// tables know nothing about ("ch" ⇄ "Ch").
//
// SetCase resolves every token to the sibling definition sharing its
// SortBase and AccentRank whose Case is the requested form or Neutral;
// Neutral symbols therefore pass through unchanged. Exactly one
// sibling must qualify — a table offering none is reported as
// ErrUnmappedCase, one offering several as ErrAmbiguousCase. Neither
// is resolved by first match: both indicate an authoring defect in the
// table, and collation correctness depends on surfacing it.
//
// ToUpper and ToLower are fixed-target wrappers.
package casing
