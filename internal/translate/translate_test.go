package translate

import "testing"

func TestLookup(t *testing.T) {
	if got := Lookup("run"); got != "はしる" {
		t.Fatalf("unexpected gloss for run: %q", got)
	}
	if got := Lookup("zyzzyva"); got != Placeholder {
		t.Fatalf("expected placeholder for missing word, got %q", got)
	}
	if !Has("run") || Has("zyzzyva") {
		t.Fatalf("Has disagrees with Lookup")
	}
}
