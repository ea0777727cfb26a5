package text

import "golang.org/x/text/unicode/bidi"

// Direction represents the dominant writing direction of a run of text.
type Direction int

const (
	// LTR (Left-to-Right) for Latin, Cyrillic, etc.
	LTR Direction = iota
	// RTL (Right-to-Left) for Arabic, Hebrew, etc.
	RTL
	// Neutral for numbers, punctuation, and whitespace.
	Neutral
)

// String returns "LTR", "RTL", or "Neutral".
func (d Direction) String() string {
	switch d {
	case LTR:
		return "LTR"
	case RTL:
		return "RTL"
	default:
		return "Neutral"
	}
}

// DetectDirection returns the dominant direction of a string by counting
// strong directional characters per the Unicode bidi classes. Strings with
// no strong characters are Neutral.
func DetectDirection(s string) Direction {
	ltr, rtl := 0, 0
	for _, r := range s {
		props, _ := bidi.LookupRune(r)
		switch props.Class() {
		case bidi.L:
			ltr++
		case bidi.R, bidi.AL:
			rtl++
		}
	}
	switch {
	case rtl > ltr:
		return RTL
	case ltr > 0:
		return LTR
	default:
		return Neutral
	}
}
