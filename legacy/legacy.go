package legacy

import "github.com/language/dene/alphabet"

// Normalize rewrites every legacy-pattern occurrence in text to its
// canonical symbol, applying the table's rules strictly in table
// order. Each rule substitutes globally across the whole accumulated
// string, so later rules operate on the output of earlier ones.
//
// Entries without a legacy pattern contribute no rule; text containing
// no pattern passes through unchanged. Normalize has no failure mode.
func Normalize(a *alphabet.Alphabet, text string) string {
	for _, rule := range a.LegacyRules() {
		text = rule.Pattern.ReplaceAllString(text, rule.Replacement)
	}
	return text
}
