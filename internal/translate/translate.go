// Package translate resolves words to their bundled Japanese glosses.
package translate

// Placeholder is shown for words without a registered translation.
const Placeholder = "（訳未登録）"

// Lookup returns the Japanese gloss for a word, or Placeholder when the
// table has no entry. It never fails.
func Lookup(word string) string {
	if gloss, ok := ja[word]; ok {
		return gloss
	}
	return Placeholder
}

// Has reports whether a translation is registered for the word.
func Has(word string) bool {
	_, ok := ja[word]
	return ok
}
