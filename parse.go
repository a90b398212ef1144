package parsec

import "fmt"

// ParseError is the user-facing report produced when a parse fails: the
// furthest position reached, the symbol found there (if any), and the
// set of productions that were expected at that point.
type ParseError struct {
	Position      int
	Unexpected    string
	HasUnexpected bool
	Expected      []string
}

func (e *ParseError) Error() string {
	if len(e.Expected) == 0 {
		if e.HasUnexpected {
			return fmt.Sprintf("position %d: unexpected %s", e.Position, e.Unexpected)
		}
		return fmt.Sprintf("position %d: parse error", e.Position)
	}
	if e.HasUnexpected {
		return fmt.Sprintf("position %d: unexpected %s, expected %s", e.Position, e.Unexpected, joinExpected(e.Expected))
	}
	return fmt.Sprintf("position %d: expected %s", e.Position, joinExpected(e.Expected))
}

func joinExpected(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	default:
		out := names[0]
		for _, n := range names[1:] {
			out += " or " + n
		}
		return out
	}
}

// Parse runs p against in, then requires the input to be fully consumed,
// and converts a failing reply into a *ParseError. A successful p that
// leaves input unconsumed reports "expected EOF" at the point p stopped,
// merged with whatever p itself was still willing to accept there.
func Parse[S, A any](p Parser[S, A], in Input[S]) (A, *ParseError) {
	c := p(in)
	r := c.Reply()
	if !r.IsOk() {
		var zero A
		return zero, toParseError(r.Msg)
	}
	ce := Eof[S]()(r.Rest)
	re := ce.Reply()
	if re.IsOk() {
		return r.Result, nil
	}
	var zero A
	return zero, toParseError(MergeMessages(r.Msg, re.Msg))
}

func toParseError[S any](m Message[S]) *ParseError {
	return &ParseError{
		Position:      m.Position,
		Unexpected:    m.Unexpected,
		HasUnexpected: m.HasSymbol,
		Expected:      m.ExpectedNames(),
	}
}
