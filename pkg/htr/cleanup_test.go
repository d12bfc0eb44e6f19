package htr

import "testing"

func TestCleanTranscriptCollapsesWhitespace(t *testing.T) {
	got := CleanTranscript("  meeting\tnotes \n 14 May  ")
	if got != "meeting notes 14 May" {
		t.Fatalf("unexpected transcript %q", got)
	}
}

func TestCleanTranscriptDropsControlRunes(t *testing.T) {
	got := CleanTranscript("hello\x00\x07 world\x1b")
	if got != "hello world" {
		t.Fatalf("expected control runes stripped, got %q", got)
	}
}

func TestCleanTranscriptEmpty(t *testing.T) {
	if got := CleanTranscript(" \n\t "); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}
