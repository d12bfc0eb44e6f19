package htr

import "testing"

func TestBestTranscriptPrefersCleanText(t *testing.T) {
	candidates := []string{
		"| . ~ _ ' ` ,",
		"buy milk and eggs",
		"b u y m 1 l k",
	}
	best, ok := bestTranscript(candidates)
	if !ok {
		t.Fatalf("no transcript chosen")
	}
	if best != "buy milk and eggs" {
		t.Fatalf("expected clean text to win, got %q", best)
	}
}

func TestBestTranscriptNoneForGarbageOnly(t *testing.T) {
	if _, ok := bestTranscript([]string{"", "~~~ ||| ...", "- -"}); ok {
		t.Fatalf("expected no plausible transcript")
	}
}

func TestBestTranscriptDeterministicTieBreak(t *testing.T) {
	a, _ := bestTranscript([]string{"abc def", "def abc"})
	b, _ := bestTranscript([]string{"def abc", "abc def"})
	if a != b {
		t.Fatalf("tie break not deterministic: %q vs %q", a, b)
	}
}
