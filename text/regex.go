package text

import (
	"regexp"

	"github.com/dhamidi/parsec"
)

// Matcher reports how much of a character sequence, anchored at its
// start, a pattern matches. It is the minimal capability Regex needs,
// so alternative regex engines can be substituted for the standard
// library's without touching the parser.
type Matcher interface {
	// MatchLength returns the length, in runes, of the match anchored at
	// the start of seq, and whether any match was found at all. A
	// zero-length match (ok=true, n=0) is a legal outcome. The standard
	// library engine reports regexp's leftmost-first match, which is not
	// necessarily the longest one (e.g. "a|ab" on "ab" has length 1).
	MatchLength(seq []rune) (n int, ok bool)
}

// RegexEngine compiles patterns into Matchers.
type RegexEngine interface {
	Compile(pattern string) (Matcher, error)
}

// StdlibRegexEngine compiles patterns with the standard library's
// regexp package, anchoring every pattern at the start of the input
// with \A so a match is always reported from the cursor's position
// rather than from wherever the engine happens to find one.
type StdlibRegexEngine struct{}

func (StdlibRegexEngine) Compile(pattern string) (Matcher, error) {
	re, err := regexp.Compile(`\A(?:` + pattern + `)`)
	if err != nil {
		return nil, err
	}
	return stdlibMatcher{re}, nil
}

type stdlibMatcher struct {
	re *regexp.Regexp
}

func (m stdlibMatcher) MatchLength(seq []rune) (int, bool) {
	loc := m.re.FindStringIndex(string(seq))
	if loc == nil {
		return 0, false
	}
	return len([]rune(string(seq)[:loc[1]])), true
}

// DefaultRegexEngine is the engine Regex uses when none is supplied.
var DefaultRegexEngine RegexEngine = StdlibRegexEngine{}

// Regex matches pattern against the input's remaining character
// sequence, anchored at the cursor, and returns the matched text.
//
// A match of length zero succeeds as an Empty* result rather than a
// Consumed* one. This is a deliberate departure from the reference Java
// library (which reports any successful regex match, including a
// zero-length one, as having consumed input): a parser combinator that
// claims to have consumed nothing it did not in fact consume lets
// Many/SkipMany and friends retry it without risk of an infinite loop
// on patterns like "a*".
//
// Regex requires the Input to implement CharSequenceInput; applying it
// to an Input that doesn't is a programmer error, and panics rather
// than silently degrading to a one-rune-at-a-time scan.
func Regex(pattern string) parsec.Parser[rune, string] {
	return RegexWith(DefaultRegexEngine, pattern)
}

// RegexWith is Regex parameterized on an explicit engine, for tests and
// callers that want a different regex implementation than the standard
// library's.
func RegexWith(engine RegexEngine, pattern string) parsec.Parser[rune, string] {
	matcher, err := engine.Compile(pattern)
	if err != nil {
		return func(in parsec.Input[rune]) parsec.Consumed[rune, string] {
			return parsec.EmptyErr[rune, string](parsec.NewMessageUnexpected[rune](in.Position(), "invalid regex: "+err.Error(), pattern))
		}
	}
	return func(in parsec.Input[rune]) parsec.Consumed[rune, string] {
		seq := remainingRunes(in)
		n, matched := matcher.MatchLength(seq)
		if !matched {
			return parsec.EmptyErr[rune, string](parsec.NewMessageUnexpected[rune](in.Position(), currentRune(in), pattern))
		}
		text := string(seq[:n])
		rest := in.Advance(n)
		msg := parsec.NewMessage[rune](rest.Position())
		if n == 0 {
			return parsec.EmptyOk[rune, string](text, rest, msg)
		}
		return parsec.ConsumedOk[rune, string](text, rest, msg)
	}
}

// remainingRunes retrieves the cursor's remaining text via the
// CharSequenceInput capability. The concrete Input must provide it;
// regex matching has no well-defined meaning over an arbitrary
// Input[rune] that can't hand back its remaining character sequence.
func remainingRunes(in parsec.Input[rune]) []rune {
	cs, ok := in.(CharSequenceInput)
	if !ok {
		panic("parsec/text: Regex requires an Input implementing CharSequenceInput")
	}
	return cs.CharSequenceFrom(0)
}

func currentRune(in parsec.Input[rune]) string {
	c, ok := in.Current()
	if !ok {
		return "end of input"
	}
	return string(c)
}
