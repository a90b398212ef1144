package text

import (
	"strconv"

	"github.com/dhamidi/parsec"
)

const (
	integerPattern = `[-+]?[0-9]+`
	// doublePattern keeps the trailing [fFdD]? type suffix from the
	// reference grammar (a leftover from a host language that tags
	// float vs. double literals) even though Go has no such suffix and
	// strconv.ParseFloat would reject it; trimSuffixLetter strips it
	// before parsing.
	doublePattern = `[-+]?([0-9]+(\.[0-9]*)?|[0-9]*\.[0-9]+)([eE][-+]?[0-9]+)?[fFdD]?`
)

// trimSuffixLetter strips a trailing f/F/d/D type suffix matched by
// doublePattern, which strconv.ParseFloat does not understand.
func trimSuffixLetter(s string) string {
	if n := len(s); n > 0 {
		switch s[n-1] {
		case 'f', 'F', 'd', 'D':
			return s[:n-1]
		}
	}
	return s
}

// Intr parses a (possibly signed) decimal integer that fits in an int.
// Overflow fails the parse rather than silently wrapping, matching the
// original library's translation of a NumberFormatException into a
// parse error instead of letting it escape as a panic.
var Intr = safeParse("integer", integerPattern, func(s string) (int, error) {
	n, err := strconv.ParseInt(s, 10, strconv.IntSize)
	return int(n), err
})

// Lng parses a (possibly signed) decimal integer that fits in an
// int64.
var Lng = safeParse("long", integerPattern, func(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
})

// Dble parses a floating-point literal: an optional sign, digits, an
// optional decimal point and fractional digits, and an optional
// exponent, e.g. "12345.6789e12".
var Dble = safeParse("double", doublePattern, func(s string) (float64, error) {
	return strconv.ParseFloat(trimSuffixLetter(s), 64)
})

// Number parses a double-shaped literal and boxes it as an int64 when
// the parsed float64 is a whole number that survives the round trip
// through int64 unchanged, or as a float64 otherwise. Mirrors the
// original library's dynamically-typed "number" production, which
// hands back a Long or a Double depending on the parsed value rather
// than the literal's surface syntax.
var Number = safeParse("number", doublePattern, func(s string) (any, error) {
	d, err := strconv.ParseFloat(trimSuffixLetter(s), 64)
	if err != nil {
		return nil, err
	}
	l := int64(d)
	if float64(l) == d {
		return l, nil
	}
	return d, nil
})

func safeParse[A any](label, pattern string, parse func(string) (A, error)) parsec.Parser[rune, A] {
	return parsec.Label(parsec.Bind(Regex(pattern), func(s string) parsec.Parser[rune, A] {
		v, err := parse(s)
		if err != nil {
			return failWith[A](label, err)
		}
		return parsec.Retn[rune, A](v)
	}), label)
}

// failWith turns a strconv error, discovered only after a regex match
// already consumed input, into an error Consumed. Per Bind's
// Consumed×Reply protocol this still reports Consumed=true overall,
// since the underlying regex already advanced the cursor. That means
// the outer Label in safeParse never gets a chance to rewrite the
// expected set, since Label only touches outcomes that didn't advance
// the cursor. failWith must therefore set expected to label itself,
// matching the original library's safeRetn, which takes the expected
// name as an argument rather than leaning on an outer label() call.
func failWith[A any](label string, err error) parsec.Parser[rune, A] {
	return func(in parsec.Input[rune]) parsec.Consumed[rune, A] {
		return parsec.EmptyErr[rune, A](parsec.NewMessageUnexpected[rune](in.Position(), err.Error(), label))
	}
}
