// Package drill orchestrates drill sessions over the history record.
package drill

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/kmori/sightswipe/internal/model"
	"github.com/kmori/sightswipe/internal/picker"
	"github.com/kmori/sightswipe/internal/session"
	"github.com/kmori/sightswipe/internal/store"
)

// Controller owns the in-memory history record and the active session.
// Every history mutation replaces the whole record and persists it through
// one funnel; there is no partial in-place patching.
type Controller struct {
	store   *store.Store
	picker  *picker.Picker
	setSize int
	now     func() time.Time

	history model.HistoryRecord

	kind       model.SessionKind
	listID     string
	source     []string
	reviewWord string
	reviewSet  []string
	sess       *session.Session
}

// New loads the history record and returns a ready controller. setSize is
// the queue length for normal and review-word sessions.
func New(st *store.Store, p *picker.Picker, setSize int) *Controller {
	return NewWithClock(st, p, setSize, time.Now)
}

// NewWithClock is New with an injectable clock.
func NewWithClock(st *store.Store, p *picker.Picker, setSize int, now func() time.Time) *Controller {
	return &Controller{
		store:   st,
		picker:  p,
		setSize: setSize,
		now:     now,
		history: st.LoadHistory(context.Background()),
	}
}

// History returns the current in-memory history record.
func (c *Controller) History() model.HistoryRecord {
	return c.history
}

// Session returns the active session, or nil before any start.
func (c *Controller) Session() *session.Session {
	return c.sess
}

// Kind returns the active session kind.
func (c *Controller) Kind() model.SessionKind {
	return c.kind
}

// Label returns the session header label for display.
func (c *Controller) Label() string {
	switch c.kind {
	case model.KindReviewWord:
		return "REVIEW: " + c.reviewWord
	case model.KindReviewSet:
		return fmt.Sprintf("REVIEW SET: TOP%d", len(c.reviewSet))
	default:
		return strings.ToUpper(c.listID)
	}
}

// StartNormal begins a session over a random subset of the source list.
func (c *Controller) StartNormal(listID string, source []string) error {
	queue := c.picker.PickRandomSubset(source, nil, c.setSize)
	if len(queue) == 0 {
		return fmt.Errorf("word list %q has no usable words", listID)
	}
	c.kind = model.KindNormal
	c.listID = listID
	c.source = source
	c.reviewWord = ""
	c.reviewSet = nil
	c.sess = session.New(queue)
	return c.markSessionStart()
}

// StartReviewWord begins a session repeating one word. An empty word is a
// silent no-op and reports false.
func (c *Controller) StartReviewWord(word string) (bool, error) {
	queue := c.picker.RepeatWord(word, c.setSize)
	if len(queue) == 0 {
		return false, nil
	}
	c.kind = model.KindReviewWord
	c.reviewWord = queue[0]
	c.reviewSet = nil
	c.sess = session.New(queue)
	return true, c.markSessionStart()
}

// StartReviewSet begins a session over a fixed weak-word set, shuffled.
// An empty set is a silent no-op and reports false.
func (c *Controller) StartReviewSet(words []string) (bool, error) {
	set := make([]string, 0, len(words))
	for _, word := range words {
		if word = picker.Normalize(word); word != "" {
			set = append(set, word)
		}
	}
	if len(set) == 0 {
		return false, nil
	}
	c.kind = model.KindReviewSet
	c.reviewWord = ""
	c.reviewSet = set
	c.sess = session.New(c.picker.Shuffle(set))
	return true, c.markSessionStart()
}

// AddMore appends another batch mid-session without resetting the cursor
// or the answer lists. Not a session start.
func (c *Controller) AddMore() {
	if c.sess == nil {
		return
	}
	switch c.kind {
	case model.KindReviewWord:
		c.sess.Extend(c.picker.RepeatWord(c.reviewWord, c.setSize))
	case model.KindReviewSet:
		c.sess.Extend(c.picker.Shuffle(c.reviewSet))
	default:
		c.sess.Extend(c.picker.PickRandomSubset(c.source, c.sess.Queue(), c.setSize))
	}
}

// NextSet rebuilds the queue for the current kind and restarts the session
// from scratch. Counts as a session start.
func (c *Controller) NextSet() error {
	if c.sess == nil {
		return nil
	}
	switch c.kind {
	case model.KindReviewWord:
		c.sess.Restart(c.picker.RepeatWord(c.reviewWord, c.setSize))
	case model.KindReviewSet:
		c.sess.Restart(c.picker.Shuffle(c.reviewSet))
	default:
		// A fresh subset, ignoring what the previous queue contained.
		c.sess.Restart(c.picker.PickRandomSubset(c.source, nil, c.setSize))
	}
	return c.markSessionStart()
}

// Answer records the response for the current word, logs it into history,
// and returns the answered word. Exhausted sessions are a no-op.
func (c *Controller) Answer(kind model.Answer) (string, bool, error) {
	if c.sess == nil {
		return "", false, nil
	}
	word, ok := c.sess.Answer(kind)
	if !ok {
		return "", false, nil
	}
	return word, true, c.LogAnswer(word, kind)
}

// LogAnswer increments the word's counter and stamps both the word and the
// record, then persists.
func (c *Controller) LogAnswer(word string, kind model.Answer) error {
	word = picker.Normalize(word)
	if word == "" {
		return nil
	}
	now := c.now()

	record := cloneRecord(c.history)
	stat := record.WordStats[word]
	if kind == model.AnswerKnown {
		stat.Known++
	} else {
		stat.Unknown++
	}
	stat.Last = &now
	record.WordStats[word] = stat
	record.LastStudiedAt = &now
	return c.persist(record)
}

// ResetHistory replaces history with the empty record, in memory and in
// the store, independent of any active session.
func (c *Controller) ResetHistory() error {
	empty, err := c.store.ResetHistory(context.Background())
	if err != nil {
		return err
	}
	c.history = empty
	return nil
}

func (c *Controller) markSessionStart() error {
	now := c.now()
	record := cloneRecord(c.history)
	record.Sessions++
	record.LastStudiedAt = &now
	return c.persist(record)
}

// persist is the single mutation funnel: the in-memory record is replaced
// only when the write succeeded.
func (c *Controller) persist(record model.HistoryRecord) error {
	if err := c.store.SaveHistory(context.Background(), record); err != nil {
		return err
	}
	c.history = record
	return nil
}

func cloneRecord(record model.HistoryRecord) model.HistoryRecord {
	out := record
	out.WordStats = make(map[string]model.WordStat, len(record.WordStats)+1)
	for word, stat := range record.WordStats {
		out.WordStats[word] = stat
	}
	return out
}
