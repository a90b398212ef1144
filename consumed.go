package parsec

// Consumed pairs an authoritative "did this advance the cursor" flag
// with a (possibly lazy) Reply. The flag must be known without forcing
// the Reply, because Or decides whether to try an alternative purely
// from the first parser's flag.
type Consumed[S, A any] struct {
	Consumed bool
	reply    *Lazy[Reply[S, A]]
}

// consumedReply builds a Consumed with Consumed=true from a thunk.
func consumedReply[S, A any](thunk func() Reply[S, A]) Consumed[S, A] {
	l := NewLazy(thunk)
	return Consumed[S, A]{Consumed: true, reply: &l}
}

// consumedNow builds a Consumed with Consumed=true from an already
// evaluated reply.
func consumedNow[S, A any](r Reply[S, A]) Consumed[S, A] {
	l := Now(r)
	return Consumed[S, A]{Consumed: true, reply: &l}
}

// emptyReply builds a Consumed with Consumed=false from an already
// evaluated reply.
func emptyReply[S, A any](r Reply[S, A]) Consumed[S, A] {
	l := Now(r)
	return Consumed[S, A]{Consumed: false, reply: &l}
}

// Reply forces and returns the wrapped reply.
func (c Consumed[S, A]) Reply() Reply[S, A] {
	return c.reply.Force()
}

// ConsumedOk builds a successful, input-advancing Consumed. Primitive
// parsers outside this package (the text layer's hand-rolled scanners,
// for instance) use this to report a match that moved the cursor.
func ConsumedOk[S, A any](result A, rest Input[S], msg Message[S]) Consumed[S, A] {
	return consumedNow(Ok[S, A](result, rest, msg))
}

// ConsumedErr builds a failing, input-advancing Consumed.
func ConsumedErr[S, A any](msg Message[S]) Consumed[S, A] {
	return consumedNow(Err[S, A](msg))
}

// EmptyOk builds a successful Consumed that did not advance the cursor.
func EmptyOk[S, A any](result A, rest Input[S], msg Message[S]) Consumed[S, A] {
	return emptyReply(Ok[S, A](result, rest, msg))
}

// EmptyErr builds a failing Consumed that did not advance the cursor.
func EmptyErr[S, A any](msg Message[S]) Consumed[S, A] {
	return emptyReply(Err[S, A](msg))
}
