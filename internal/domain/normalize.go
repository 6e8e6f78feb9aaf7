package domain

import (
	"strings"
)

// NormalizeLemma prepares a word for lexicon lookup and comparison:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - compresses multiple spaces into one (multiword lemmas)
//
// Diacritics, hyphens, and apostrophes are preserved.
func NormalizeLemma(word string) string {
	word = strings.TrimSpace(word)
	if word == "" {
		return ""
	}
	word = strings.ToLower(word)

	// Compress multiple spaces into one.
	var b strings.Builder
	b.Grow(len(word))
	prevSpace := false
	for _, r := range word {
		if r == ' ' {
			if prevSpace {
				continue
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// GameWord normalizes a word the way the game assets key it:
// trimmed and uppercased. Pool membership and the definitions file
// both use this form.
func GameWord(word string) string {
	return strings.ToUpper(strings.TrimSpace(word))
}
