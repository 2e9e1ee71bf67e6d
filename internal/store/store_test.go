package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/kmori/sightswipe/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	st, err := Open(filepath.Join(dir, "sightswipe.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

func TestLoadHistoryMissingKey(t *testing.T) {
	st := openTestStore(t)
	record := st.LoadHistory(context.Background())
	if record.Sessions != 0 {
		t.Fatalf("expected 0 sessions, got %d", record.Sessions)
	}
	if record.LastStudiedAt != nil {
		t.Fatalf("expected absent lastStudiedAt")
	}
	if len(record.WordStats) != 0 {
		t.Fatalf("expected empty word stats, got %d entries", len(record.WordStats))
	}
}

func TestHistoryRoundTrip(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	last := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	record := model.HistoryRecord{
		Sessions:      7,
		LastStudiedAt: &last,
		WordStats: map[string]model.WordStat{
			"run":  {Known: 3, Unknown: 1, Last: &last},
			"blue": {Known: 0, Unknown: 2, Last: nil},
		},
	}
	if err := st.SaveHistory(ctx, record); err != nil {
		t.Fatalf("save history: %v", err)
	}

	loaded := st.LoadHistory(ctx)
	if loaded.Sessions != 7 {
		t.Fatalf("expected 7 sessions, got %d", loaded.Sessions)
	}
	if loaded.LastStudiedAt == nil || !loaded.LastStudiedAt.Equal(last) {
		t.Fatalf("unexpected lastStudiedAt: %v", loaded.LastStudiedAt)
	}
	run, ok := loaded.WordStats["run"]
	if !ok {
		t.Fatalf("expected stats for run")
	}
	if run.Known != 3 || run.Unknown != 1 {
		t.Fatalf("unexpected stats for run: %+v", run)
	}
	if run.Last == nil || !run.Last.Equal(last) {
		t.Fatalf("unexpected last for run: %v", run.Last)
	}
	blue := loaded.WordStats["blue"]
	if blue.Known != 0 || blue.Unknown != 2 || blue.Last != nil {
		t.Fatalf("unexpected stats for blue: %+v", blue)
	}
}

func TestSaveOverwritesPriorValue(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	first := model.EmptyHistory()
	first.Sessions = 1
	if err := st.SaveHistory(ctx, first); err != nil {
		t.Fatalf("save history: %v", err)
	}
	second := model.EmptyHistory()
	second.Sessions = 2
	if err := st.SaveHistory(ctx, second); err != nil {
		t.Fatalf("save history: %v", err)
	}
	if got := st.LoadHistory(ctx).Sessions; got != 2 {
		t.Fatalf("expected last write to win, got %d sessions", got)
	}
}

func TestResetHistory(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	record := model.EmptyHistory()
	record.Sessions = 12
	record.WordStats["the"] = model.WordStat{Known: 4, Unknown: 9}
	if err := st.SaveHistory(ctx, record); err != nil {
		t.Fatalf("save history: %v", err)
	}

	empty, err := st.ResetHistory(ctx)
	if err != nil {
		t.Fatalf("reset history: %v", err)
	}
	if empty.Sessions != 0 || len(empty.WordStats) != 0 {
		t.Fatalf("expected empty record, got %+v", empty)
	}
	loaded := st.LoadHistory(ctx)
	if loaded.Sessions != 0 || len(loaded.WordStats) != 0 {
		t.Fatalf("expected empty record after reset, got %+v", loaded)
	}
}

func TestDecodeHistoryMalformed(t *testing.T) {
	cases := map[string]string{
		"not json":        "definitely not json",
		"json array":      `[1, 2, 3]`,
		"json string":     `"hello"`,
		"null":            `null`,
		"wrong shapes":    `{"sessions": "ten", "lastStudiedAt": 42, "wordStats": []}`,
		"bad timestamps":  `{"sessions": 2, "lastStudiedAt": "yesterday", "wordStats": {"a": {"known": 1, "unknown": 0, "last": "noon"}}}`,
		"partial entries": `{"wordStats": {"a": "oops", "b": {"known": 5}}}`,
	}
	for name, raw := range cases {
		record := decodeHistory(raw)
		if record.WordStats == nil {
			t.Fatalf("%s: word stats map must never be nil", name)
		}
		if record.LastStudiedAt != nil {
			t.Fatalf("%s: expected absent lastStudiedAt", name)
		}
	}

	record := decodeHistory(`{"sessions": 2, "lastStudiedAt": "yesterday", "wordStats": {"a": {"known": 1, "unknown": 0, "last": "noon"}}}`)
	if record.Sessions != 2 {
		t.Fatalf("expected valid sessions field to survive, got %d", record.Sessions)
	}
	if stat := record.WordStats["a"]; stat.Known != 1 || stat.Last != nil {
		t.Fatalf("expected counters kept and bad timestamp dropped, got %+v", stat)
	}

	partial := decodeHistory(`{"wordStats": {"a": "oops", "b": {"known": 5}}}`)
	if stat := partial.WordStats["b"]; stat.Known != 5 || stat.Unknown != 0 {
		t.Fatalf("unexpected stats for b: %+v", stat)
	}
	if stat := partial.WordStats["a"]; stat.Known != 0 || stat.Unknown != 0 {
		t.Fatalf("malformed entry should default to zero counts, got %+v", stat)
	}
}
