package accent

import (
	"errors"
	"fmt"
	"strings"

	"github.com/language/dene/alphabet"
	"github.com/language/dene/tokenize"
)

var (
	// ErrNoUnaccentedForm indicates that an accented symbol's collation
	// base has no AccentRank-0 definition in its case.
	ErrNoUnaccentedForm = errors.New("accent: no unaccented form")

	// ErrAmbiguousForm indicates more than one AccentRank-0 definition
	// in the symbol's case — a table authoring defect.
	ErrAmbiguousForm = errors.New("accent: multiple unaccented forms")
)

// StripSymbol returns the unaccented symbol for one definition.
// Definitions with AccentRank 0 return their own Symbol unchanged.
// Otherwise the unique (SortBase, AccentRank 0, same Case) sibling is
// resolved; zero siblings yield ErrNoUnaccentedForm, several yield
// ErrAmbiguousForm.
func StripSymbol(a *alphabet.Alphabet, def alphabet.SymbolDefinition) (string, error) {
	if def.AccentRank == 0 {
		return def.Symbol, nil
	}

	var (
		resolved alphabet.SymbolDefinition
		matches  int
	)
	for _, sib := range a.Group(def.SortBase, 0) {
		if sib.Case == def.Case {
			resolved = sib
			matches++
		}
	}
	switch {
	case matches == 0:
		return "", fmt.Errorf("accent: symbol %q (base %d, %v): %w", def.Symbol, def.SortBase, def.Case, ErrNoUnaccentedForm)
	case matches > 1:
		return "", fmt.Errorf("accent: symbol %q (base %d, %v): %w", def.Symbol, def.SortBase, def.Case, ErrAmbiguousForm)
	}
	return resolved.Symbol, nil
}

// Strip rewrites text with every accented symbol replaced by its
// unaccented base form. Case is preserved; unaccented and case-neutral
// symbols pass through. Strip(Strip(text)) == Strip(text).
func Strip(a *alphabet.Alphabet, text string) (string, error) {
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
		base, err := StripSymbol(a, def)
		if err != nil {
			return "", fmt.Errorf("%w (in %q)", err, text)
		}
		b.WriteString(base)
	}
	return b.String(), nil
}
