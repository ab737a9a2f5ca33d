package game

import "strings"

// Classification is the conformance class of a raw responder reply under
// the two-token protocol.
type Classification int

const (
	// Affirmative is the exact reply "correct": the guess was right.
	Affirmative Classification = iota

	// Negative is the exact reply "not correct": the guess was wrong.
	Negative

	// Malformed is any other reply; the session answers it with a
	// correction prompt.
	Malformed
)

// String returns a human-readable name for logging.
func (c Classification) String() string {
	switch c {
	case Affirmative:
		return "affirmative"
	case Negative:
		return "negative"
	default:
		return "malformed"
	}
}

// Classify maps a raw reply onto the two-token protocol. Matching is exact
// after trimming whitespace and lower-casing: a substring check would read
// "not correct" as a success. Total over all inputs, no side effects.
func Classify(raw string) Classification {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "correct":
		return Affirmative
	case "not correct":
		return Negative
	default:
		return Malformed
	}
}
