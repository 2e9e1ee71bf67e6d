// Package wordlist provides word list filtering helpers.
package wordlist

// FilterFunc returns true when a word should be kept.
type FilterFunc func(string) bool

// DefaultFilter keeps words a sight-word drill can display and speak:
// ASCII letters plus the apostrophe (don't, it's).
func DefaultFilter() FilterFunc {
	return filterEnglishWord
}

func filterEnglishWord(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		ch := word[i]
		switch {
		case ch >= 'a' && ch <= 'z':
		case ch >= 'A' && ch <= 'Z':
		case ch == '\'':
		default:
			return false
		}
	}
	return true
}
