// Package picker builds drill word queues.
package picker

import (
	"math/rand"
	"strings"
	"time"
)

// Picker produces randomized word selections.
type Picker struct {
	rnd *rand.Rand
}

// New returns a Picker seeded with the current time.
func New() *Picker {
	return NewWithRand(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewWithRand returns a Picker using the provided random source.
func NewWithRand(rnd *rand.Rand) *Picker {
	return &Picker{rnd: rnd}
}

// Normalize trims a word for comparison and storage.
func Normalize(word string) string {
	return strings.TrimSpace(word)
}

// PickRandomSubset returns up to n unique words from source, excluding any
// word in exclude, in uniform random order. Fewer than n candidates means
// all of them are returned; the result is never padded.
func (p *Picker) PickRandomSubset(source, exclude []string, n int) []string {
	excluded := make(map[string]struct{}, len(exclude))
	for _, word := range exclude {
		excluded[Normalize(word)] = struct{}{}
	}

	seen := make(map[string]struct{}, len(source))
	candidates := make([]string, 0, len(source))
	for _, word := range source {
		word = Normalize(word)
		if word == "" {
			continue
		}
		if _, ok := seen[word]; ok {
			continue
		}
		seen[word] = struct{}{}
		if _, ok := excluded[word]; ok {
			continue
		}
		candidates = append(candidates, word)
	}

	p.shuffle(candidates)
	if n > len(candidates) {
		n = len(candidates)
	}
	if n < 0 {
		n = 0
	}
	return candidates[:n]
}

// RepeatWord returns the trimmed word repeated n times, or nil when the
// word normalizes to empty.
func (p *Picker) RepeatWord(word string, n int) []string {
	word = Normalize(word)
	if word == "" || n <= 0 {
		return nil
	}
	out := make([]string, n)
	for i := range out {
		out[i] = word
	}
	return out
}

// Shuffle returns a uniformly shuffled copy of the list.
func (p *Picker) Shuffle(list []string) []string {
	out := make([]string, len(list))
	copy(out, list)
	p.shuffle(out)
	return out
}

// Fisher-Yates.
func (p *Picker) shuffle(list []string) {
	for i := len(list) - 1; i > 0; i-- {
		j := p.rnd.Intn(i + 1)
		list[i], list[j] = list[j], list[i]
	}
}
