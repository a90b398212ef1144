package text

import (
	"fmt"

	"github.com/dhamidi/parsec"
)

// String parses exactly the given literal, rune by rune, scanning by
// hand rather than chaining Satisfy/Bind. A partial match (e.g. "hello"
// attempted against "help") consumes "hel" before failing on 'l' vs 'p':
// that ConsumedError is built directly here, with expected set to the
// whole literal (`"hello"`), since Label cannot rewrite a Consumed
// outcome's expected set (it only decorates outcomes that never
// advanced the cursor). An enclosing Or will not backtrack past that
// point unless the caller wraps the call in Attempt.
func String(s string) parsec.Parser[rune, string] {
	runes := []rune(s)
	label := fmt.Sprintf("%q", s)
	return func(in parsec.Input[rune]) parsec.Consumed[rune, string] {
		cur := in
		for i, want := range runes {
			got, ok := cur.Current()
			if !ok {
				msg := parsec.NewMessageEndOfInput[rune](cur.Position(), label)
				if i == 0 {
					return parsec.EmptyErr[rune, string](msg)
				}
				return parsec.ConsumedErr[rune, string](msg)
			}
			if got != want {
				msg := parsec.NewMessageUnexpected[rune](cur.Position(), string(got), label)
				if i == 0 {
					return parsec.EmptyErr[rune, string](msg)
				}
				return parsec.ConsumedErr[rune, string](msg)
			}
			cur = cur.Advance(1)
		}
		if len(runes) == 0 {
			return parsec.EmptyOk[rune, string]("", cur, parsec.NewMessage[rune](cur.Position()))
		}
		return parsec.ConsumedOk[rune, string](s, cur, parsec.NewMessage[rune](cur.Position()))
	}
}

// StrBetween parses open, then characters up to and including the
// first point where close succeeds, returning the text collected in
// between. It is the one piece of Text.java's API with no direct
// spec.md mention, useful enough for delimited literals (comments,
// quoted strings with no escape handling) to carry over from the
// original library. close is attempted once per character, so it can
// be any single-character parser, not just a literal match.
func StrBetween(open, close parsec.Parser[rune, rune]) parsec.Parser[rune, string] {
	return func(in parsec.Input[rune]) parsec.Consumed[rune, string] {
		if in.End() {
			return parsec.EmptyErr[rune, string](parsec.NewMessageEndOfInput[rune](in.Position(), "strBetween"))
		}
		co := open(in)
		ro := co.Reply()
		if !ro.IsOk() {
			if co.Consumed {
				return parsec.ConsumedErr[rune, string](ro.Msg)
			}
			return parsec.EmptyErr[rune, string](ro.Msg)
		}

		var collected []rune
		cur := ro.Rest
		for {
			if cur.End() {
				return parsec.ConsumedErr[rune, string](parsec.NewMessageEndOfInput[rune](cur.Position(), "<char>"))
			}
			cc := close(cur)
			rc := cc.Reply()
			if rc.IsOk() {
				cur = rc.Rest
				break
			}
			c, _ := cur.Current()
			collected = append(collected, c)
			cur = cur.Advance(1)
		}

		return parsec.ConsumedOk[rune, string](string(collected), cur, parsec.NewMessage[rune](cur.Position()))
	}
}
