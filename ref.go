package parsec

import "sync/atomic"

// Ref is a deferred parser reference: a box that can be handed out and
// embedded into other parsers before the parser it refers to exists,
// then resolved once with Set. It is the library's answer to tying the
// knot in mutually or self-recursive grammars without forward-declaring
// every production.
//
// A Ref is typically set once, early (often from a package init), and
// read many times by concurrent parses afterward; the pointer is atomic
// so that publish-once/read-many pattern needs no mutex.
type Ref[S, A any] struct {
	p atomic.Pointer[Parser[S, A]]
}

// NewRef allocates an unresolved parser reference.
func NewRef[S, A any]() *Ref[S, A] {
	return &Ref[S, A]{}
}

// Set resolves the reference to p. Calling Set more than once replaces
// the parser seen by subsequent calls to Parser(); in-flight parses that
// already looked up the pointer are unaffected.
func (r *Ref[S, A]) Set(p Parser[S, A]) {
	r.p.Store(&p)
}

// Parser returns a parser that, when applied, looks up and runs whatever
// parser Set last installed. It panics if no parser has been installed
// yet: a programmer error, not a parse error, since it means the
// grammar's knot was never tied.
func (r *Ref[S, A]) Parser() Parser[S, A] {
	return func(in Input[S]) Consumed[S, A] {
		p := r.p.Load()
		if p == nil {
			panic("parsec: Ref used before Set")
		}
		return (*p)(in)
	}
}
