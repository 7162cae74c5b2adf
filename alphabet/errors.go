// Package alphabet: sentinel error set.
// This file defines ONLY package-level sentinel errors. Callers match
// them via errors.Is; failure sites wrap them with fmt.Errorf("ctx: %w",
// ErrX) to attach the offending symbol and the original input.

package alphabet

import "errors"

var (
	// ErrUnknownSymbol indicates that a character or sequence in input
	// text matches no definition in the table. Returned by Lookup and
	// SortBase for absent symbols, and wrapped by the tokenizer when a
	// character can neither extend nor start a symbol.
	ErrUnknownSymbol = errors.New("alphabet: unknown symbol")

	// ErrEmptyAlphabet indicates that New was given no definitions.
	ErrEmptyAlphabet = errors.New("alphabet: table has no definitions")

	// ErrEmptySymbol indicates a definition whose Symbol field is "".
	ErrEmptySymbol = errors.New("alphabet: empty symbol string")

	// ErrSortBaseRange indicates a SortBase outside [0, 99]. Sort keys
	// are two zero-padded digits per token, capping an alphabet at 100
	// distinct base-collation classes.
	ErrSortBaseRange = errors.New("alphabet: sort base outside [0, 99]")

	// ErrBadCaseValue indicates a Case outside {Lower, Upper, Neutral}.
	ErrBadCaseValue = errors.New("alphabet: invalid case value")

	// ErrBadLegacyPattern indicates a LegacyPattern that does not
	// compile as a regular expression.
	ErrBadLegacyPattern = errors.New("alphabet: invalid legacy pattern")
)
