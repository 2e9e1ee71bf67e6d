package wordlist

// Built-in list identifiers.
const (
	ListDolch = "dolch"
	ListFry   = "fry"
)

// BuiltinIDs returns the identifiers of the bundled word lists.
func BuiltinIDs() []string {
	return []string{ListDolch, ListFry}
}

// Builtin returns the bundled word list for an identifier.
func Builtin(id string) ([]string, bool) {
	switch id {
	case ListDolch:
		return dolch, true
	case ListFry:
		return fry100, true
	default:
		return nil, false
	}
}

// The 220 Dolch sight words, pre-primer through third grade.
var dolch = []string{
	// Pre-primer.
	"a", "and", "away", "big", "blue", "can", "come", "down", "find", "for",
	"funny", "go", "help", "here", "I", "in", "is", "it", "jump", "little",
	"look", "make", "me", "my", "not", "one", "play", "red", "run", "said",
	"see", "the", "three", "to", "two", "up", "we", "where", "yellow", "you",
	// Primer.
	"all", "am", "are", "at", "ate", "be", "black", "brown", "but", "came",
	"did", "do", "eat", "four", "get", "good", "have", "he", "into", "like",
	"must", "new", "no", "now", "on", "our", "out", "please", "pretty", "ran",
	"ride", "saw", "say", "she", "so", "soon", "that", "there", "they", "this",
	"too", "under", "want", "was", "well", "went", "what", "white", "who",
	"will", "with", "yes",
	// First grade.
	"after", "again", "an", "any", "as", "ask", "by", "could", "every", "fly",
	"from", "give", "going", "had", "has", "her", "him", "his", "how", "just",
	"know", "let", "live", "may", "of", "old", "once", "open", "over", "put",
	"round", "some", "stop", "take", "thank", "them", "then", "think", "walk",
	"were", "when",
	// Second grade.
	"always", "around", "because", "been", "before", "best", "both", "buy",
	"call", "cold", "does", "don't", "fast", "first", "five", "found", "gave",
	"goes", "green", "its", "made", "many", "off", "or", "pull", "read",
	"right", "sing", "sit", "sleep", "tell", "their", "these", "those", "upon",
	"us", "use", "very", "wash", "which", "why", "wish", "work", "would",
	"write", "your",
	// Third grade.
	"about", "better", "bring", "carry", "clean", "cut", "done", "draw",
	"drink", "eight", "fall", "far", "full", "got", "grow", "hold", "hot",
	"hurt", "if", "keep", "kind", "laugh", "light", "long", "much", "myself",
	"never", "only", "own", "pick", "seven", "shall", "show", "six", "small",
	"start", "ten", "today", "together", "try", "warm",
}

// The first 100 words of the Fry instant word list.
var fry100 = []string{
	"the", "of", "and", "a", "to", "in", "is", "you", "that", "it",
	"he", "was", "for", "on", "are", "as", "with", "his", "they", "I",
	"at", "be", "this", "have", "from", "or", "one", "had", "by", "word",
	"but", "not", "what", "all", "were", "we", "when", "your", "can", "said",
	"there", "use", "an", "each", "which", "she", "do", "how", "their", "if",
	"will", "up", "other", "about", "out", "many", "then", "them", "these",
	"so", "some", "her", "would", "make", "like", "him", "into", "time",
	"has", "look", "two", "more", "write", "go", "see", "number", "no",
	"way", "could", "people", "my", "than", "first", "water", "been", "call",
	"who", "oil", "its", "now", "find", "long", "down", "day", "did", "get",
	"come",
	"made", "may", "part",
}
