package collate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/language/dene/alphabet"
	"github.com/language/dene/tokenize"
)

// sortBaseWidth is the zero-padded width of one token's rank in a sort
// key. Two digits cover the full SortBase range [0, 99].
const sortBaseWidth = 2

// SortKey derives the collation key of text: the input is tokenized,
// each token mapped to its SortBase, and the ranks concatenated as
// zero-padded two-digit fields in token order.
//
// For strings x and y the alphabet ranks symbol-by-symbol, the keys
// compare in the same relative order under plain byte comparison:
//
//	SortKey(a, x) < SortKey(a, y)  ⇔  x collates before y
//
// Fails with alphabet.ErrUnknownSymbol (via tokenization) when text is
// not representable in the table.
func SortKey(a *alphabet.Alphabet, text string) (string, error) {
	tokens, err := tokenize.Split(a, text)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.Grow(len(tokens) * sortBaseWidth)
	for _, tok := range tokens {
		base, err := a.SortBase(tok)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "%0*d", sortBaseWidth, base)
	}
	return b.String(), nil
}

// Less reports whether x collates strictly before y under a.
func Less(a *alphabet.Alphabet, x, y string) (bool, error) {
	kx, err := SortKey(a, x)
	if err != nil {
		return false, err
	}
	ky, err := SortKey(a, y)
	if err != nil {
		return false, err
	}
	return kx < ky, nil
}

// Strings sorts items in place by the alphabet's collation. Keys are
// derived once per element before sorting; the first underivable
// element aborts with the slice unmodified.
//
// Complexity: O(total text length + n·log n key comparisons).
func Strings(a *alphabet.Alphabet, items []string) error {
	keys := make([]string, len(items))
	for i, s := range items {
		k, err := SortKey(a, s)
		if err != nil {
			return err
		}
		keys[i] = k
	}
	sort.Sort(&byKey{items: items, keys: keys})
	return nil
}

// byKey sorts items and their precomputed keys in lockstep.
type byKey struct {
	items []string
	keys  []string
}

func (s *byKey) Len() int           { return len(s.items) }
func (s *byKey) Less(i, j int) bool { return s.keys[i] < s.keys[j] }
func (s *byKey) Swap(i, j int) {
	s.items[i], s.items[j] = s.items[j], s.items[i]
	s.keys[i], s.keys[j] = s.keys[j], s.keys[i]
}
