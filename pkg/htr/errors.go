package htr

import "errors"

// ErrNoText is returned when no recognition pass produced a plausible transcript.
var ErrNoText = errors.New("no text recognized")
