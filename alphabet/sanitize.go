// SPDX-License-Identifier: MIT

package alphabet

import (
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// Filter returns a transformer that removes every rune outside the alphabet
// and folds the rest to uppercase symbols. Combining marks are not part of
// any alphabet and are removed like any other foreign rune.
// Transformers carry state; build a fresh one per use.
func (a *Alphabet) Filter() transform.Transformer {
	return transform.Chain(
		runes.Remove(runes.Predicate(func(r rune) bool { return !a.Contains(r) })),
		runes.Map(a.ToUpper),
	)
}

// Sanitize runs s through Filter. The result holds only uppercase symbols
// and may be empty.
// Complexity: O(len(s)).
func (a *Alphabet) Sanitize(s string) string {
	out, _, err := transform.String(a.Filter(), s)
	if err != nil {
		// Nothing in the chain reports errors on complete input; treat a
		// failure as "no symbols survived".
		return ""
	}
	return out
}
