package htr

import "unicode"

// scoreTranscript rates a cleaned transcript candidate. Letters and digits count
// for it, lone symbols and one-rune "words" (classic OCR noise on handwriting)
// count against it. Longer plausible text wins over short fragments.
func scoreTranscript(t string) int {
	if t == "" {
		return 0
	}
	letters, digits, symbols := 0, 0, 0
	for _, r := range t {
		switch {
		case unicode.IsLetter(r):
			letters++
		case unicode.IsDigit(r):
			digits++
		case unicode.IsSpace(r):
		default:
			symbols++
		}
	}
	s := letters*3 + digits*2 - symbols*2
	// Penalize fragment soup: count single-rune words.
	inWord := false
	wordLen := 0
	shorties := 0
	for _, r := range t + " " {
		if unicode.IsSpace(r) {
			if inWord && wordLen == 1 {
				shorties++
			}
			inWord = false
			wordLen = 0
			continue
		}
		inWord = true
		wordLen++
	}
	s -= shorties * 2
	if s < 0 {
		s = 0
	}
	return s
}

// bestTranscript picks the highest-scoring candidate. Ties break toward the
// longer text, then lexicographically for determinism across runs.
func bestTranscript(candidates []string) (string, bool) {
	best := ""
	bestScore := 0
	for _, c := range candidates {
		sc := scoreTranscript(c)
		if sc == 0 {
			continue
		}
		replace := sc > bestScore
		if sc == bestScore {
			if len(c) > len(best) {
				replace = true
			} else if len(c) == len(best) && c < best {
				replace = true
			}
		}
		if replace {
			best = c
			bestScore = sc
		}
	}
	return best, bestScore > 0
}
