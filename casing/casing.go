package casing

import (
	"errors"
	"fmt"
	"strings"

	"github.com/language/dene/alphabet"
	"github.com/language/dene/tokenize"
)

var (
	// ErrBadTargetCase indicates a SetCase target other than
	// alphabet.Lower or alphabet.Upper.
	ErrBadTargetCase = errors.New("casing: target must be Lower or Upper")

	// ErrUnmappedCase indicates that a token's collation group holds no
	// definition in the requested case: the table lacks a case pair.
	ErrUnmappedCase = errors.New("casing: no matching character")

	// ErrAmbiguousCase indicates that more than one definition in a
	// token's collation group qualifies for the requested case.
	ErrAmbiguousCase = errors.New("casing: multiple matching characters")
)

// SetCase rewrites text into the target case form. Each token's
// definition is resolved to the unique sibling sharing its SortBase
// and AccentRank with Case == target or Case == alphabet.Neutral;
// case-neutral symbols are their own sibling and pass through.
//
// target must be alphabet.Lower or alphabet.Upper.
//
// Errors: ErrBadTargetCase, alphabet.ErrUnknownSymbol (tokenization),
// ErrUnmappedCase, ErrAmbiguousCase — the latter two carry the
// offending token and indicate a malformed table.
func SetCase(a *alphabet.Alphabet, text string, target alphabet.CaseValue) (string, error) {
	if target != alphabet.Lower && target != alphabet.Upper {
		return "", fmt.Errorf("casing: %v: %w", target, ErrBadTargetCase)
	}

	tokens, err := tokenize.Split(a, text)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, tok := range tokens {
		def, err := a.Lookup(tok)
		if err != nil {
			return "", err
		}

		var (
			resolved alphabet.SymbolDefinition
			matches  int
		)
		for _, sib := range a.Group(def.SortBase, def.AccentRank) {
			if sib.Case == target || sib.Case == alphabet.Neutral {
				resolved = sib
				matches++
			}
		}
		switch {
		case matches == 0:
			return "", fmt.Errorf("casing: symbol %q in %q to %v: %w", tok, text, target, ErrUnmappedCase)
		case matches > 1:
			return "", fmt.Errorf("casing: symbol %q in %q to %v: %w", tok, text, target, ErrAmbiguousCase)
		}
		b.WriteString(resolved.Symbol)
	}
	return b.String(), nil
}

// ToUpper converts text to the alphabet's uppercase forms.
func ToUpper(a *alphabet.Alphabet, text string) (string, error) {
	return SetCase(a, text, alphabet.Upper)
}

// ToLower converts text to the alphabet's lowercase forms.
func ToLower(a *alphabet.Alphabet, text string) (string, error) {
	return SetCase(a, text, alphabet.Lower)
}
