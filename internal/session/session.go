// Package session drives one drill session over a word queue.
package session

import (
	"math"

	"github.com/kmori/sightswipe/internal/model"
)

// Session tracks the cursor and per-session answer lists for one drill.
// It is view-free; callers log answers and trigger side effects.
type Session struct {
	queue   []string
	cursor  int
	known   []string
	unknown []string
}

// New starts a session over the given queue at the first word.
func New(queue []string) *Session {
	return &Session{queue: queue}
}

// Current returns the word under the cursor, or false when complete.
func (s *Session) Current() (string, bool) {
	if s.Complete() {
		return "", false
	}
	return s.queue[s.cursor], true
}

// Complete reports whether the queue is exhausted.
func (s *Session) Complete() bool {
	return s.cursor >= len(s.queue)
}

// Answer records the response for the current word, advances the cursor,
// and returns the answered word. It is a no-op once the session is
// complete. The cursor never moves backwards; answers are not retractable.
func (s *Session) Answer(kind model.Answer) (string, bool) {
	word, ok := s.Current()
	if !ok {
		return "", false
	}
	if kind == model.AnswerKnown {
		s.known = append(s.known, word)
	} else {
		s.unknown = append(s.unknown, word)
	}
	s.cursor++
	return word, true
}

// Extend appends more words without touching the cursor or answer lists.
func (s *Session) Extend(words []string) {
	s.queue = append(s.queue, words...)
}

// Restart replaces the queue and clears all progress.
func (s *Session) Restart(queue []string) {
	s.queue = queue
	s.cursor = 0
	s.known = nil
	s.unknown = nil
}

// Position returns the 1-based display position, clamped to the queue length.
func (s *Session) Position() int {
	if len(s.queue) == 0 {
		return 0
	}
	if s.Complete() {
		return len(s.queue)
	}
	return s.cursor + 1
}

// Length returns the queue length.
func (s *Session) Length() int {
	return len(s.queue)
}

// KnownCount returns how many words were marked known this session.
func (s *Session) KnownCount() int {
	return len(s.known)
}

// UnknownCount returns how many words were marked unknown this session.
func (s *Session) UnknownCount() int {
	return len(s.unknown)
}

// Queue returns the session's word queue.
func (s *Session) Queue() []string {
	return s.queue
}

// ProgressPercent returns the rounded display progress, clamped to 100.
func (s *Session) ProgressPercent() int {
	if len(s.queue) == 0 {
		return 0
	}
	pct := int(math.Round(100 * float64(s.cursor+1) / float64(len(s.queue))))
	if pct > 100 {
		pct = 100
	}
	return pct
}
