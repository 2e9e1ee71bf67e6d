package drill

import (
	"context"
	"math/rand"
	"path/filepath"
	"testing"
	"time"

	"github.com/kmori/sightswipe/internal/model"
	"github.com/kmori/sightswipe/internal/picker"
	"github.com/kmori/sightswipe/internal/store"
)

var testWords = []string{
	"the", "of", "and", "a", "to", "in", "is", "you", "that", "it",
	"he", "was", "for", "on", "are", "as", "with", "his", "they", "I",
	"at", "be", "this", "have", "from",
}

type testClock struct {
	at time.Time
}

func (c *testClock) now() time.Time {
	c.at = c.at.Add(time.Second)
	return c.at
}

func newTestController(t *testing.T) (*Controller, *store.Store) {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "sightswipe.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	clock := &testClock{at: time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)}
	p := picker.NewWithRand(rand.New(rand.NewSource(7)))
	return NewWithClock(st, p, 20, clock.now), st
}

func TestStartNormalBumpsSessionCount(t *testing.T) {
	c, st := newTestController(t)

	if err := c.StartNormal("fry", testWords); err != nil {
		t.Fatalf("start normal: %v", err)
	}
	if c.History().Sessions != 1 {
		t.Fatalf("expected 1 session, got %d", c.History().Sessions)
	}
	if c.History().LastStudiedAt == nil {
		t.Fatalf("expected lastStudiedAt set")
	}
	if c.Session() == nil || c.Session().Length() != 20 {
		t.Fatalf("expected 20-word queue")
	}
	if c.Label() != "FRY" {
		t.Fatalf("unexpected label %q", c.Label())
	}

	// The bump is persisted, not only in memory.
	if got := st.LoadHistory(context.Background()).Sessions; got != 1 {
		t.Fatalf("expected persisted session count 1, got %d", got)
	}
}

func TestStartNormalShortList(t *testing.T) {
	c, _ := newTestController(t)
	if err := c.StartNormal("tiny", []string{"one", "two", "one"}); err != nil {
		t.Fatalf("start normal: %v", err)
	}
	if c.Session().Length() != 2 {
		t.Fatalf("expected all unique words, got %d", c.Session().Length())
	}
}

func TestStartReviewWordGuardsEmpty(t *testing.T) {
	c, _ := newTestController(t)

	started, err := c.StartReviewWord("   ")
	if err != nil {
		t.Fatalf("start review word: %v", err)
	}
	if started {
		t.Fatalf("expected blank word to be a no-op")
	}
	if c.History().Sessions != 0 {
		t.Fatalf("no-op start must not bump session count")
	}

	started, err = c.StartReviewWord(" where ")
	if err != nil || !started {
		t.Fatalf("start review word: started=%v err=%v", started, err)
	}
	if c.Label() != "REVIEW: where" {
		t.Fatalf("unexpected label %q", c.Label())
	}
	word, _ := c.Session().Current()
	if word != "where" || c.Session().Length() != 20 {
		t.Fatalf("expected trimmed word repeated 20 times, got %q x%d", word, c.Session().Length())
	}
}

func TestStartReviewSetShufflesSameWords(t *testing.T) {
	c, _ := newTestController(t)
	set := []string{"alpha", "bravo", "charlie", "delta", "echo"}

	started, err := c.StartReviewSet(set)
	if err != nil || !started {
		t.Fatalf("start review set: started=%v err=%v", started, err)
	}
	if c.Session().Length() != len(set) {
		t.Fatalf("review set must use the full set, got %d", c.Session().Length())
	}
	queued := map[string]bool{}
	for _, word := range c.Session().Queue() {
		queued[word] = true
	}
	for _, word := range set {
		if !queued[word] {
			t.Fatalf("word %q missing from review queue", word)
		}
	}

	if started, _ := c.StartReviewSet([]string{" ", ""}); started {
		t.Fatalf("expected empty set to be a no-op")
	}
}

func TestAddMoreKeepsProgressAndCount(t *testing.T) {
	c, _ := newTestController(t)
	if err := c.StartNormal("fry", testWords); err != nil {
		t.Fatalf("start normal: %v", err)
	}
	c.Answer(model.AnswerKnown)
	sessionsBefore := c.History().Sessions

	c.AddMore()
	if c.History().Sessions != sessionsBefore {
		t.Fatalf("add more must not bump session count")
	}
	if c.Session().KnownCount() != 1 {
		t.Fatalf("add more must not clear answer lists")
	}
	if c.Session().Length() != 25 {
		// 25 source words, 20 already queued: only 5 unused remain.
		t.Fatalf("expected 25 queued words, got %d", c.Session().Length())
	}
	seen := map[string]bool{}
	for _, word := range c.Session().Queue() {
		if seen[word] {
			t.Fatalf("duplicate %q after add more", word)
		}
		seen[word] = true
	}
}

func TestNextSetRestartsAndBumps(t *testing.T) {
	c, _ := newTestController(t)
	if err := c.StartNormal("fry", testWords); err != nil {
		t.Fatalf("start normal: %v", err)
	}
	c.Answer(model.AnswerUnknown)

	if err := c.NextSet(); err != nil {
		t.Fatalf("next set: %v", err)
	}
	if c.History().Sessions != 2 {
		t.Fatalf("expected next set to count as a session start, got %d", c.History().Sessions)
	}
	if c.Session().KnownCount() != 0 || c.Session().UnknownCount() != 0 {
		t.Fatalf("expected cleared answer lists")
	}
	if c.Session().Length() != 20 {
		t.Fatalf("expected a fresh 20-word queue, got %d", c.Session().Length())
	}
}

func TestLogAnswerAccumulates(t *testing.T) {
	c, st := newTestController(t)

	if err := c.LogAnswer("run", model.AnswerKnown); err != nil {
		t.Fatalf("log answer: %v", err)
	}
	if err := c.LogAnswer("run", model.AnswerUnknown); err != nil {
		t.Fatalf("log answer: %v", err)
	}

	stat := c.History().WordStats["run"]
	if stat.Known != 1 || stat.Unknown != 1 {
		t.Fatalf("unexpected stats: %+v", stat)
	}
	if stat.Last == nil || c.History().LastStudiedAt == nil {
		t.Fatalf("expected timestamps set")
	}
	if !stat.Last.Equal(*c.History().LastStudiedAt) {
		t.Fatalf("word timestamp should match record timestamp after the second call")
	}

	loaded := st.LoadHistory(context.Background())
	if loaded.WordStats["run"].Known != 1 || loaded.WordStats["run"].Unknown != 1 {
		t.Fatalf("answers not persisted: %+v", loaded.WordStats["run"])
	}

	if err := c.LogAnswer("   ", model.AnswerKnown); err != nil {
		t.Fatalf("log answer: %v", err)
	}
	if len(c.History().WordStats) != 1 {
		t.Fatalf("blank word must not create an entry")
	}
}

func TestAnswerDrivesSessionAndHistory(t *testing.T) {
	c, _ := newTestController(t)
	started, err := c.StartReviewWord("said")
	if err != nil || !started {
		t.Fatalf("start review word: %v", err)
	}

	word, ok, err := c.Answer(model.AnswerUnknown)
	if err != nil || !ok || word != "said" {
		t.Fatalf("answer: word=%q ok=%v err=%v", word, ok, err)
	}
	if c.History().WordStats["said"].Unknown != 1 {
		t.Fatalf("expected logged answer, got %+v", c.History().WordStats["said"])
	}
}

func TestResetHistory(t *testing.T) {
	c, st := newTestController(t)
	if err := c.StartNormal("fry", testWords); err != nil {
		t.Fatalf("start normal: %v", err)
	}
	c.Answer(model.AnswerKnown)

	if err := c.ResetHistory(); err != nil {
		t.Fatalf("reset history: %v", err)
	}
	if c.History().Sessions != 0 || len(c.History().WordStats) != 0 {
		t.Fatalf("expected empty in-memory record, got %+v", c.History())
	}
	loaded := st.LoadHistory(context.Background())
	if loaded.Sessions != 0 || len(loaded.WordStats) != 0 {
		t.Fatalf("expected empty persisted record, got %+v", loaded)
	}

	// The active session is untouched by a reset.
	if c.Session() == nil || c.Session().KnownCount() != 1 {
		t.Fatalf("reset must not touch the active session")
	}
}
