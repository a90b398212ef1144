package parsec

// Reply is the outcome of running a parser: either Ok, carrying a result,
// the rest of the input, and a message (used if a later combinator needs
// to report "got this far, then..."), or Error, carrying only a message.
//
// There is deliberately no generic Ok.Cast: changing the result type of
// a successful reply would discard a real value, so no such operation
// exists. Error.Cast is safe because an Error carries no value.
type Reply[S, A any] struct {
	ok         bool
	Result     A
	Rest       Input[S]
	Msg        Message[S]
	hasMessage bool
}

// Ok builds a successful reply.
func Ok[S, A any](result A, rest Input[S], msg Message[S]) Reply[S, A] {
	return Reply[S, A]{ok: true, Result: result, Rest: rest, Msg: msg, hasMessage: true}
}

// Err builds a failed reply.
func Err[S, A any](msg Message[S]) Reply[S, A] {
	return Reply[S, A]{ok: false, Msg: msg, hasMessage: true}
}

// IsOk reports whether the reply succeeded.
func (r Reply[S, A]) IsOk() bool { return r.ok }

// ReplyCast converts an Error reply's phantom value type from A to B. It
// panics if r is Ok.
func ReplyCast[S, A, B any](r Reply[S, A]) Reply[S, B] {
	if r.ok {
		panic("parsec: illegal cast of an Ok reply")
	}
	return Err[S, B](r.Msg)
}
