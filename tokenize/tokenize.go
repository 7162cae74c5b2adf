package tokenize

import (
	"fmt"

	"github.com/language/dene/alphabet"
)

// Split tokenizes text into symbols of a, preferring the longest
// symbol at every position.
//
// Algorithm Outline (greedy, single pass, no backtracking):
//  1. Keep a candidate buffer, initially empty.
//  2. For each rune r of text, probe whether buffer+r is a prefix of
//     at least one symbol (a partial match counts: some symbol merely
//     has to start with it).
//  3. If so, grow the buffer and continue — a longer symbol is still
//     possible, so committing now would break longest match.
//  4. If not, the buffer can no longer grow: it must be a complete
//     symbol, which is emitted, and r is retried as a fresh one-rune
//     buffer. A rune that cannot start any symbol, or a dead-end
//     buffer that is not itself a symbol, fails with
//     alphabet.ErrUnknownSymbol.
//  5. After the last rune, a non-empty buffer is emitted the same way.
//
// The returned tokens concatenate to exactly text.
//
// Errors wrap alphabet.ErrUnknownSymbol and carry the offending rune
// or buffer together with the full input, so the failure can be
// diagnosed without re-tracing the scan.
//
// Complexity: O(len(text)) probes against the prefix index.
func Split(a *alphabet.Alphabet, text string) ([]string, error) {
	var (
		tokens []string
		buf    string
	)

	flush := func() error {
		if !a.IsSymbol(buf) {
			// The buffer is a strict prefix of some symbol but never a
			// symbol itself: a table authoring defect, reported rather
			// than emitted as an invalid token.
			return fmt.Errorf("tokenize: %q in %q is not a complete symbol: %w", buf, text, alphabet.ErrUnknownSymbol)
		}
		tokens = append(tokens, buf)
		buf = ""
		return nil
	}

	for _, r := range text {
		if a.IsPrefix(buf + string(r)) {
			buf += string(r)
			continue
		}
		if buf != "" {
			if err := flush(); err != nil {
				return nil, err
			}
		}
		if !a.IsPrefix(string(r)) {
			return nil, fmt.Errorf("tokenize: character %q in %q: %w", r, text, alphabet.ErrUnknownSymbol)
		}
		buf = string(r)
	}
	if buf != "" {
		if err := flush(); err != nil {
			return nil, err
		}
	}

	return tokens, nil
}
