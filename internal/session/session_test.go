package session

import (
	"testing"

	"github.com/kmori/sightswipe/internal/model"
)

func TestSingleWordSessionCompletes(t *testing.T) {
	s := New([]string{"run"})
	if s.Complete() {
		t.Fatalf("session must start active")
	}

	word, ok := s.Answer(model.AnswerKnown)
	if !ok || word != "run" {
		t.Fatalf("expected answer to log run, got %q ok=%v", word, ok)
	}
	if !s.Complete() {
		t.Fatalf("expected session complete after one answer")
	}
	if s.KnownCount() != 1 || s.UnknownCount() != 0 {
		t.Fatalf("unexpected counts: known=%d unknown=%d", s.KnownCount(), s.UnknownCount())
	}

	// Further answers are no-ops.
	if word, ok := s.Answer(model.AnswerUnknown); ok || word != "" {
		t.Fatalf("expected no-op after completion, got %q ok=%v", word, ok)
	}
	if s.KnownCount() != 1 || s.UnknownCount() != 0 {
		t.Fatalf("no-op answer changed lists: known=%d unknown=%d", s.KnownCount(), s.UnknownCount())
	}
}

func TestAnswerAdvancesAndSplitsLists(t *testing.T) {
	s := New([]string{"one", "two", "three"})

	if word, _ := s.Current(); word != "one" {
		t.Fatalf("expected one first, got %q", word)
	}
	s.Answer(model.AnswerUnknown)
	if word, _ := s.Current(); word != "two" {
		t.Fatalf("expected two after answer, got %q", word)
	}
	s.Answer(model.AnswerKnown)
	s.Answer(model.AnswerKnown)

	if s.KnownCount() != 2 || s.UnknownCount() != 1 {
		t.Fatalf("unexpected counts: known=%d unknown=%d", s.KnownCount(), s.UnknownCount())
	}
	if _, ok := s.Current(); ok {
		t.Fatalf("expected no current word after completion")
	}
}

func TestExtendKeepsProgress(t *testing.T) {
	s := New([]string{"a", "b"})
	s.Answer(model.AnswerKnown)
	s.Extend([]string{"c", "d"})

	if s.Complete() {
		t.Fatalf("extended session must stay active")
	}
	if s.Length() != 4 {
		t.Fatalf("expected length 4, got %d", s.Length())
	}
	if word, _ := s.Current(); word != "b" {
		t.Fatalf("cursor moved on extend: %q", word)
	}
	if s.KnownCount() != 1 {
		t.Fatalf("answer list changed on extend")
	}
}

func TestExtendAfterCompleteReturnsToActive(t *testing.T) {
	s := New([]string{"a"})
	s.Answer(model.AnswerUnknown)
	if !s.Complete() {
		t.Fatalf("expected complete")
	}
	s.Extend([]string{"b"})
	if s.Complete() {
		t.Fatalf("expected active after extend")
	}
	if word, _ := s.Current(); word != "b" {
		t.Fatalf("expected b, got %q", word)
	}
}

func TestRestartClearsEverything(t *testing.T) {
	s := New([]string{"a", "b"})
	s.Answer(model.AnswerKnown)
	s.Restart([]string{"x", "y", "z"})

	if s.Length() != 3 || s.KnownCount() != 0 || s.UnknownCount() != 0 {
		t.Fatalf("restart did not clear state")
	}
	if word, _ := s.Current(); word != "x" {
		t.Fatalf("expected cursor at start, got %q", word)
	}
}

func TestProgressPercent(t *testing.T) {
	s := New([]string{"a", "b", "c"})
	if got := s.ProgressPercent(); got != 33 {
		t.Fatalf("expected 33%%, got %d", got)
	}
	s.Answer(model.AnswerKnown)
	if got := s.ProgressPercent(); got != 67 {
		t.Fatalf("expected 67%%, got %d", got)
	}
	s.Answer(model.AnswerKnown)
	s.Answer(model.AnswerKnown)
	if got := s.ProgressPercent(); got != 100 {
		t.Fatalf("expected clamp at 100%%, got %d", got)
	}

	empty := New(nil)
	if got := empty.ProgressPercent(); got != 0 {
		t.Fatalf("expected 0%% for empty queue, got %d", got)
	}
}
