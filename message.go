package parsec

import "sort"

// Message is an error record: a position, the symbol that was found
// there (if any), and the set of production names a parser was
// expecting at that position. A Message is a plain value built eagerly
// wherever a parser reports an outcome; its construction is not
// deferred.
type Message[S any] struct {
	Position   int
	Unexpected string
	HasSymbol  bool
	Expected   map[string]struct{}
}

// endOfInputMarker is the unexpected-symbol sentinel used when a parser
// ran out of input rather than seeing a mismatched symbol.
const endOfInputMarker = "end of input"

// NewMessage builds an empty message at pos: no unexpected symbol, no
// expected names.
func NewMessage[S any](pos int) Message[S] {
	return Message[S]{Position: pos, Expected: map[string]struct{}{}}
}

// NewMessageUnexpected builds a message reporting an unexpected symbol
// with a singleton expected set.
func NewMessageUnexpected[S any](pos int, unexpected string, expected string) Message[S] {
	m := Message[S]{Position: pos, Unexpected: unexpected, HasSymbol: true, Expected: map[string]struct{}{}}
	if expected != "" {
		m.Expected[expected] = struct{}{}
	}
	return m
}

// NewMessageEndOfInput builds a message reporting end-of-input as the
// unexpected "symbol", with a singleton expected set.
func NewMessageEndOfInput[S any](pos int, expected string) Message[S] {
	m := Message[S]{Position: pos, Unexpected: endOfInputMarker, HasSymbol: true, Expected: map[string]struct{}{}}
	if expected != "" {
		m.Expected[expected] = struct{}{}
	}
	return m
}

// Expect returns a new message whose expected set is replaced by the
// singleton {name}. This is the mechanism Label uses; per the library's
// resolution of spec's open question, replacement wins over union.
func (m Message[S]) Expect(name string) Message[S] {
	m.Expected = map[string]struct{}{name: {}}
	return m
}

// ExpectedNames returns the expected set as a sorted slice, for stable
// rendering in ParseError.
func (m Message[S]) ExpectedNames() []string {
	names := make([]string, 0, len(m.Expected))
	for name := range m.Expected {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MergeMessages merges two messages: the later position wins outright;
// at equal positions the expected sets are unioned and a's unexpected
// symbol is preferred. Merge is commutative and associative on the
// expected set at a fixed winning position.
func MergeMessages[S any](a, b Message[S]) Message[S] {
	switch {
	case a.Position > b.Position:
		return a
	case b.Position > a.Position:
		return b
	default:
		merged := Message[S]{
			Position:   a.Position,
			Unexpected: a.Unexpected,
			HasSymbol:  a.HasSymbol,
			Expected:   make(map[string]struct{}, len(a.Expected)+len(b.Expected)),
		}
		if !merged.HasSymbol {
			merged.Unexpected = b.Unexpected
			merged.HasSymbol = b.HasSymbol
		}
		for name := range a.Expected {
			merged.Expected[name] = struct{}{}
		}
		for name := range b.Expected {
			merged.Expected[name] = struct{}{}
		}
		return merged
	}
}
