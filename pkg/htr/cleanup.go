package htr

import (
	"strings"
	"unicode"
)

// CleanTranscript normalizes raw engine output into a single printable line:
// control and other non-printable runes are dropped, whitespace runs collapse
// to one space. This is the decode/strip step applied to every engine result.
func CleanTranscript(t string) string {
	t = strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' || r == '\r' {
			return ' '
		}
		if !unicode.IsPrint(r) {
			return -1
		}
		return r
	}, t)
	return strings.Join(strings.Fields(t), " ")
}

// snippet returns a shortened version of text for logging.
func snippet(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "…"
}
