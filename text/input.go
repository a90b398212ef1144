package text

import "github.com/dhamidi/parsec"

// CharSequenceInput is the text-capable extension of parsec.Input[rune]:
// it additionally exposes a cheap slice of the upcoming runes, which
// Regex needs to hand the stream's remaining text to the regex engine
// without copying the whole buffer.
type CharSequenceInput interface {
	parsec.Input[rune]

	// CharSequenceFrom returns the next maxLen runes from the cursor, or
	// all remaining runes if maxLen <= 0.
	CharSequenceFrom(maxLen int) []rune
}

// runeInput is the character-sequence construction: an owned slice of
// runes with a cursor, offering O(1) Advance and a zero-copy text view.
type runeInput struct {
	buf []rune
	pos int
}

// NewRuneInput builds a CharSequenceInput over an owned slice of runes.
func NewRuneInput(runes []rune) CharSequenceInput {
	return &runeInput{buf: runes}
}

// NewStringInput builds a CharSequenceInput over s, decoding it to runes
// once up front so every later Advance and CharSequenceFrom is O(1).
func NewStringInput(s string) CharSequenceInput {
	return &runeInput{buf: []rune(s)}
}

func (in *runeInput) Position() int { return in.pos }

func (in *runeInput) End() bool { return in.pos >= len(in.buf) }

func (in *runeInput) Current() (rune, bool) {
	if in.End() {
		return 0, false
	}
	return in.buf[in.pos], true
}

func (in *runeInput) Advance(n int) parsec.Input[rune] {
	return &runeInput{buf: in.buf, pos: in.pos + n}
}

func (in *runeInput) CharSequenceFrom(maxLen int) []rune {
	remaining := in.buf[in.pos:]
	if maxLen <= 0 || maxLen >= len(remaining) {
		return remaining
	}
	return remaining[:maxLen]
}
