package parsec

import "fmt"

// Parser is a pure function from an Input to a Consumed reply. Parsers
// hold no state outside the Input they're given; the same Parser applied
// twice to the same Input yields structurally equal results.
type Parser[S, A any] func(Input[S]) Consumed[S, A]

// Retn always succeeds without consuming input, returning x unchanged.
func Retn[S, A any](x A) Parser[S, A] {
	return func(in Input[S]) Consumed[S, A] {
		return emptyReply(Ok[S, A](x, in, NewMessage[S](in.Position())))
	}
}

// Fail always fails without consuming input and without any expected
// names.
func Fail[S, A any]() Parser[S, A] {
	return func(in Input[S]) Consumed[S, A] {
		return emptyReply(Err[S, A](NewMessage[S](in.Position())))
	}
}

// Eof succeeds without consuming when the input is exhausted, and fails
// without consuming otherwise.
func Eof[S any]() Parser[S, struct{}] {
	return func(in Input[S]) Consumed[S, struct{}] {
		if in.End() {
			return emptyReply(Ok[S, struct{}](struct{}{}, in, NewMessage[S](in.Position())))
		}
		return emptyReply(Err[S, struct{}](NewMessageUnexpected[S](in.Position(), currentName(in), "EOF")))
	}
}

// Satisfy succeeds, consuming one symbol, when pred holds for the
// current symbol; otherwise it fails without consuming. On end of input
// it fails without consuming, reporting "end of input" as unexpected.
func Satisfy[S any](pred func(S) bool) Parser[S, S] {
	return func(in Input[S]) Consumed[S, S] {
		cur, ok := in.Current()
		if !ok {
			return emptyReply(Err[S, S](NewMessageEndOfInput[S](in.Position(), "")))
		}
		if !pred(cur) {
			return emptyReply(Err[S, S](NewMessageUnexpected[S](in.Position(), currentName(in), "")))
		}
		rest := in.Advance(1)
		return consumedNow(Ok[S, S](cur, rest, NewMessage[S](rest.Position())))
	}
}

// SatisfyEq is Satisfy(func(s S) bool { return s == value }) labelled
// with name, which callers conventionally set to value's string form.
func SatisfyEq[S comparable](value S, name string) Parser[S, S] {
	return Label(Satisfy(func(s S) bool { return s == value }), name)
}

// SatisfyEqR behaves like SatisfyEq but returns result instead of the
// matched symbol on success.
func SatisfyEqR[S comparable, A any](value S, name string, result A) Parser[S, A] {
	return Label(Bind(Satisfy(func(s S) bool { return s == value }), func(S) Parser[S, A] {
		return Retn[S, A](result)
	}), name)
}

// currentName renders the current symbol for use as a message's
// unexpected field. It falls back to "end of input" when the input is
// exhausted, matching Satisfy's own reporting.
func currentName[S any](in Input[S]) string {
	cur, ok := in.Current()
	if !ok {
		return endOfInputMarker
	}
	return stringOf(cur)
}

// stringOf renders a symbol for diagnostics. Runes print as themselves;
// everything else falls back to fmt's default verb.
func stringOf[S any](s S) string {
	if r, ok := any(s).(rune); ok {
		return string(r)
	}
	if b, ok := any(s).(byte); ok {
		return string(rune(b))
	}
	return fmt.Sprint(s)
}

// Bind runs p; on success it runs f(result) on the remaining input and
// threads consumption and message-merging through per the library's
// Consumed × Reply protocol:
//
//   - p ConsumedOk: the whole bind is Consumed regardless of what f
//     produces, since p already advanced.
//   - p ConsumedError: propagated unchanged.
//   - p EmptyOk: if f's result is Consumed*, propagate verbatim; if it's
//     Empty*, merge p's message into it.
//   - p EmptyError: propagated unchanged.
func Bind[S, A, B any](p Parser[S, A], f func(A) Parser[S, B]) Parser[S, B] {
	return func(in Input[S]) Consumed[S, B] {
		cp := p(in)
		if cp.Consumed {
			return consumedReply(func() Reply[S, B] {
				r := cp.Reply()
				if !r.IsOk() {
					return ReplyCast[S, A, B](r)
				}
				return f(r.Result)(r.Rest).Reply()
			})
		}
		r := cp.Reply()
		if !r.IsOk() {
			return emptyReply(ReplyCast[S, A, B](r))
		}
		cq := f(r.Result)(r.Rest)
		if cq.Consumed {
			return cq
		}
		q := cq.Reply()
		if q.IsOk() {
			return emptyReply(Ok[S, B](q.Result, q.Rest, MergeMessages(r.Msg, q.Msg)))
		}
		return emptyReply(Err[S, B](MergeMessages(r.Msg, q.Msg)))
	}
}

// Then runs p, discards its result, then runs q. It is Bind(p, func(A)
// Parser[S, B] { return q }) with identical message-flow semantics.
func Then[S, A, B any](p Parser[S, A], q Parser[S, B]) Parser[S, B] {
	return Bind(p, func(A) Parser[S, B] { return q })
}

// Or runs p. If p consumed input (Ok or Error), Or commits to that
// outcome without ever running q. Otherwise it runs q and merges
// messages the way spec's error-reporting discipline requires:
// succeeding with either parser's value while keeping both sets of
// expectations visible in the merged message.
func Or[S, A any](p, q Parser[S, A]) Parser[S, A] {
	return func(in Input[S]) Consumed[S, A] {
		cp := p(in)
		if cp.Consumed {
			return cp
		}
		rp := cp.Reply()
		cq := q(in)
		if cq.Consumed {
			return cq
		}
		rq := cq.Reply()
		merged := MergeMessages(rp.Msg, rq.Msg)
		if rp.IsOk() {
			return emptyReply(Ok[S, A](rp.Result, rp.Rest, merged))
		}
		if rq.IsOk() {
			return emptyReply(Ok[S, A](rq.Result, rq.Rest, merged))
		}
		return emptyReply(Err[S, A](merged))
	}
}

// Attempt runs p. If p fails after consuming input, Attempt demotes the
// outcome to an unconsumed failure with the same message, so that Or can
// backtrack across it. Every other outcome propagates unchanged. This is
// the library's sole mechanism for arbitrary-length lookahead.
func Attempt[S, A any](p Parser[S, A]) Parser[S, A] {
	return func(in Input[S]) Consumed[S, A] {
		cp := p(in)
		if !cp.Consumed {
			return cp
		}
		r := cp.Reply()
		if r.IsOk() {
			return cp
		}
		return emptyReply(r)
	}
}

// Label runs p. Consumed outcomes propagate unchanged: labels only
// decorate outcomes that didn't advance the cursor. Empty outcomes have
// their expected set replaced (not unioned) with {name}.
func Label[S, A any](p Parser[S, A], name string) Parser[S, A] {
	return func(in Input[S]) Consumed[S, A] {
		cp := p(in)
		if cp.Consumed {
			return cp
		}
		r := cp.Reply()
		if r.IsOk() {
			return emptyReply(Ok[S, A](r.Result, r.Rest, r.Msg.Expect(name)))
		}
		return emptyReply(Err[S, A](r.Msg.Expect(name)))
	}
}
