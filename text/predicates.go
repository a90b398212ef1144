package text

import (
	"unicode"

	"github.com/dhamidi/parsec"
)

// isAlphabetic matches Unicode letters (general category L*).
func isAlphabetic(r rune) bool { return unicode.IsLetter(r) }

// isAlphaNumeric matches letters and decimal digits.
func isAlphaNumeric(r rune) bool { return isAlphabetic(r) || unicode.IsDigit(r) }

// isSpaceChar matches Unicode space separators (general categories Zs,
// Zl, Zp). Narrower than isWhitespace, which also covers the control
// characters conventionally treated as whitespace (tab, newline, ...).
func isSpaceChar(r rune) bool { return unicode.In(r, unicode.Zs, unicode.Zl, unicode.Zp) }

// isWhitespace matches everything the host platform's White_Space
// property covers, via the standard library's own notion of space.
func isWhitespace(r rune) bool { return unicode.IsSpace(r) }

// Alpha parses a single alphabetic character.
var Alpha = parsec.Label(parsec.Satisfy(isAlphabetic), "alpha")

// Digit parses a single decimal digit character.
var Digit = parsec.Label(parsec.Satisfy(unicode.IsDigit), "digit")

// Space parses a single Unicode space-separator character.
var Space = parsec.Label(parsec.Satisfy(isSpaceChar), "space")

// WSpace parses a single whitespace character (in the broader,
// control-character-inclusive sense).
var WSpace = parsec.Label(parsec.Satisfy(isWhitespace), "wspace")

// WSpaces skips zero or more whitespace characters.
var WSpaces = parsec.SkipMany(WSpace)

// Chr parses exactly the rune c.
func Chr(c rune) parsec.Parser[rune, rune] {
	return parsec.SatisfyEq(c, string(c))
}

// AlphaNum parses one or more alphanumeric characters and returns them
// joined into a string. It fails without consuming if the first
// character isn't alphanumeric.
var AlphaNum = parsec.Label(runesToString(parsec.Many1(parsec.Satisfy(isAlphaNumeric))), "alphaNum")

// runesToString adapts a []rune parser to a string result.
func runesToString(p parsec.Parser[rune, []rune]) parsec.Parser[rune, string] {
	return parsec.Bind(p, func(rs []rune) parsec.Parser[rune, string] {
		return parsec.Retn[rune, string](string(rs))
	})
}
