// SPDX-License-Identifier: MIT

package tableroute

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// letterFilter returns a fresh drop non-letters → uppercase chain.
// Runes are never composed or reordered, so Sanitize is a fixed point on its
// own output and on any permutation of it.
func letterFilter() transform.Transformer {
	return transform.Chain(
		runes.Remove(runes.NotIn(unicode.Letter)),
		runes.Map(unicode.ToUpper),
	)
}

// Sanitize keeps the letters of text, uppercased, in order. Digits, spaces,
// punctuation and combining marks are dropped. The result may be empty.
// Complexity: O(len(text)).
func Sanitize(text string) string {
	out, _, err := transform.String(letterFilter(), text)
	if err != nil {
		return ""
	}
	return out
}
