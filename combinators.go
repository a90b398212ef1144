package parsec

// Choice tries each parser in turn via Or, left to right.
func Choice[S, A any](ps ...Parser[S, A]) Parser[S, A] {
	if len(ps) == 0 {
		return Fail[S, A]()
	}
	result := ps[len(ps)-1]
	for i := len(ps) - 2; i >= 0; i-- {
		result = Or(ps[i], result)
	}
	return result
}

// Option runs p; if p fails without consuming, it succeeds with x
// instead.
func Option[S, A any](p Parser[S, A], x A) Parser[S, A] {
	return Or(p, Retn[S, A](x))
}

// Optional runs p for its side effect on the cursor and discards the
// result, succeeding whether or not p matched.
func Optional[S, A any](p Parser[S, A]) Parser[S, struct{}] {
	return Or(Then(p, Retn[S, struct{}](struct{}{})), Retn[S, struct{}](struct{}{}))
}

// OptionalOpt runs p and wraps a match in Some, or returns None if p
// fails without consuming.
func OptionalOpt[S, A any](p Parser[S, A]) Parser[S, Option2[A]] {
	return Option(Bind(p, func(x A) Parser[S, Option2[A]] {
		return Retn[S, Option2[A]](Some(x))
	}), None2[A]())
}

// Option2 is the Maybe/Optional value returned by OptionalOpt. It is
// named Option2 to avoid clashing with the Option combinator above.
type Option2[A any] struct {
	Value   A
	Present bool
}

// Some builds a present Option2.
func Some[A any](v A) Option2[A] { return Option2[A]{Value: v, Present: true} }

// None2 builds an absent Option2.
func None2[A any]() Option2[A] { return Option2[A]{} }

// Between parses open, then p, then close, and returns p's result.
func Between[S, OPEN, A, CLOSE any](open Parser[S, OPEN], close Parser[S, CLOSE], p Parser[S, A]) Parser[S, A] {
	return Then(open, Bind(p, func(a A) Parser[S, A] {
		return Then(close, Retn[S, A](a))
	}))
}

// Many collects zero or more matches of p, stopping the first time p
// fails without consuming input. If p fails after consuming input, Many
// propagates that failure rather than silently stopping: a parser that
// consumes then fails inside a loop is a grammar bug, not end-of-list.
//
// The loop is iterative, not recursive, so Many is stack-safe on inputs
// with millions of matches.
func Many[S, A any](p Parser[S, A]) Parser[S, []A] {
	return func(in Input[S]) Consumed[S, []A] {
		var results []A
		cur := in
		consumedAny := false
		lastMsg := NewMessage[S](in.Position())
		for {
			c := p(cur)
			r := c.Reply()
			if !c.Consumed {
				if r.IsOk() {
					// p matched without consuming: per spec's safety
					// contract this must not happen for a well-formed
					// p, but treat it as "no more matches" rather than
					// looping forever.
					lastMsg = r.Msg
					break
				}
				lastMsg = r.Msg
				break
			}
			if !r.IsOk() {
				return consumedReplyFromFlag[S, []A](consumedAny || c.Consumed, func() Reply[S, []A] {
					return ReplyCast[S, A, []A](r)
				})
			}
			results = append(results, r.Result)
			cur = r.Rest
			consumedAny = true
		}
		if !consumedAny {
			return emptyReply(Ok[S, []A](results, cur, lastMsg))
		}
		return consumedNow(Ok[S, []A](results, cur, lastMsg))
	}
}

// consumedReplyFromFlag builds a Consumed with the given flag from an
// already-decided reply thunk. It exists because Many's failure path
// must report Consumed=true whenever any iteration advanced the cursor,
// even though the final, failing iteration is what produced the Error.
func consumedReplyFromFlag[S, A any](flag bool, thunk func() Reply[S, A]) Consumed[S, A] {
	if flag {
		return consumedReply(thunk)
	}
	return emptyReply(thunk())
}

// Many1 requires at least one match of p.
func Many1[S, A any](p Parser[S, A]) Parser[S, []A] {
	return Bind(p, func(first A) Parser[S, []A] {
		return Bind(Many(p), func(rest []A) Parser[S, []A] {
			return Retn[S, []A](append([]A{first}, rest...))
		})
	})
}

// SkipMany is Many with the results discarded.
func SkipMany[S, A any](p Parser[S, A]) Parser[S, struct{}] {
	return Bind(Many(p), func([]A) Parser[S, struct{}] {
		return Retn[S, struct{}](struct{}{})
	})
}

// SkipMany1 is Many1 with the results discarded.
func SkipMany1[S, A any](p Parser[S, A]) Parser[S, struct{}] {
	return Bind(Many1(p), func([]A) Parser[S, struct{}] {
		return Retn[S, struct{}](struct{}{})
	})
}

// SepBy1 parses one or more p separated by sep, requiring at least one
// p.
func SepBy1[S, A, SEP any](p Parser[S, A], sep Parser[S, SEP]) Parser[S, []A] {
	return Bind(p, func(first A) Parser[S, []A] {
		return Bind(Many(Then(sep, p)), func(rest []A) Parser[S, []A] {
			return Retn[S, []A](append([]A{first}, rest...))
		})
	})
}

// SepBy parses zero or more p separated by sep.
func SepBy[S, A, SEP any](p Parser[S, A], sep Parser[S, SEP]) Parser[S, []A] {
	return Option(SepBy1(p, sep), nil)
}

// SepEndBy1 parses one or more p, each optionally followed by a trailing
// sep, requiring at least one p.
//
// The repeating step is wrapped in Attempt: without it, sep matching on
// the last element followed by no further p would consume the trailing
// sep and then fail on the absent p, and Many propagates that as a
// ConsumedError rather than stopping the loop: the trailing
// Optional(sep) below would never be reached. Attempt demotes that
// case back to an EmptyError so Many just stops, letting Optional(sep)
// pick up the sep that's actually there.
func SepEndBy1[S, A, SEP any](p Parser[S, A], sep Parser[S, SEP]) Parser[S, []A] {
	return Bind(p, func(first A) Parser[S, []A] {
		return Bind(Many(Attempt(Then(sep, p))), func(rest []A) Parser[S, []A] {
			all := append([]A{first}, rest...)
			return Then(Optional(sep), Retn[S, []A](all))
		})
	})
}

// SepEndBy parses zero or more p, each optionally followed by a trailing
// sep.
func SepEndBy[S, A, SEP any](p Parser[S, A], sep Parser[S, SEP]) Parser[S, []A] {
	return Option(SepEndBy1(p, sep), nil)
}

// EndBy parses zero or more p, each followed by a mandatory sep.
func EndBy[S, A, SEP any](p Parser[S, A], sep Parser[S, SEP]) Parser[S, []A] {
	return Many(Bind(p, func(a A) Parser[S, A] {
		return Then(sep, Retn[S, A](a))
	}))
}

// EndBy1 is EndBy requiring at least one p.
func EndBy1[S, A, SEP any](p Parser[S, A], sep Parser[S, SEP]) Parser[S, []A] {
	return Many1(Bind(p, func(a A) Parser[S, A] {
		return Then(sep, Retn[S, A](a))
	}))
}

// Count applies p exactly n times, failing the whole if any application
// fails. n=0 yields an empty slice without running p.
func Count[S, A any](p Parser[S, A], n int) Parser[S, []A] {
	if n <= 0 {
		return Retn[S, []A](nil)
	}
	return Bind(p, func(first A) Parser[S, []A] {
		return Bind(Count(p, n-1), func(rest []A) Parser[S, []A] {
			return Retn[S, []A](append([]A{first}, rest...))
		})
	})
}

// chainlPair is one (operator, right-hand operand) step collected while
// folding a left-associative chain.
type chainlPair[A any] struct {
	op  func(A, A) A
	rhs A
}

// Chainl1 parses p, then greedily parses (op, p) pairs, folding left:
// ((p1 `op` p2) `op` p3) ... This requires at least one p. The greedy
// part is built on Many, so it inherits Many's iterative, stack-safe
// implementation rather than recursing once per operator.
func Chainl1[S, A any](p Parser[S, A], op Parser[S, func(A, A) A]) Parser[S, A] {
	pair := Bind(op, func(f func(A, A) A) Parser[S, chainlPair[A]] {
		return Bind(p, func(rhs A) Parser[S, chainlPair[A]] {
			return Retn[S, chainlPair[A]](chainlPair[A]{op: f, rhs: rhs})
		})
	})
	return Bind(p, func(first A) Parser[S, A] {
		return Bind(Many(pair), func(pairs []chainlPair[A]) Parser[S, A] {
			acc := first
			for _, pr := range pairs {
				acc = pr.op(acc, pr.rhs)
			}
			return Retn[S, A](acc)
		})
	})
}

// Chainl is Chainl1 that returns x when there are zero operands.
func Chainl[S, A any](p Parser[S, A], op Parser[S, func(A, A) A], x A) Parser[S, A] {
	return Option(Chainl1(p, op), x)
}

// Chainr1 parses p; if op follows, it parses the right-hand side with a
// recursive Chainr1 and applies the operator, making chains
// right-associative: p1 `op` (p2 `op` (p3 ...)).
func Chainr1[S, A any](p Parser[S, A], op Parser[S, func(A, A) A]) Parser[S, A] {
	return Bind(p, func(lhs A) Parser[S, A] {
		return Or(
			Bind(op, func(f func(A, A) A) Parser[S, A] {
				return Bind(Chainr1(p, op), func(rhs A) Parser[S, A] {
					return Retn[S, A](f(lhs, rhs))
				})
			}),
			Retn[S, A](lhs),
		)
	})
}

// Chainr is Chainr1 that returns x when there are zero operands.
func Chainr[S, A any](p Parser[S, A], op Parser[S, func(A, A) A], x A) Parser[S, A] {
	return Option(Chainr1(p, op), x)
}
