// Package parsec implements a Parsec-style parser combinator library.
//
// # Overview
//
// A Parser is a pure function from an Input to a Consumed reply: it never
// mutates its argument and applying the same parser twice to the same
// input yields structurally equal results. Combinators compose parsers
// into larger parsers; none of them perform I/O or hold state outside the
// Input they are given.
//
// # Architecture
//
//	┌─────────────┐     ┌─────────────┐     ┌─────────────┐
//	│   Input     │────▶│   Parser    │────▶│  Consumed   │
//	│  (cursor)   │     │ (pure func) │     │ flag+Reply  │
//	└─────────────┘     └─────────────┘     └─────────────┘
//	                                               │
//	                                               ▼
//	                                        ┌─────────────┐
//	                                        │    Reply    │
//	                                        │  Ok | Error │
//	                                        └─────────────┘
//
// # Consumed × Reply protocol
//
// Every parser application produces one of four shapes:
//
//	EmptyOk       matched without advancing the cursor
//	EmptyError    failed without advancing the cursor
//	ConsumedOk    matched after advancing the cursor
//	ConsumedError failed after advancing the cursor
//
// Or uses this distinction to decide whether it may still try an
// alternative: once a parser has consumed input, Or commits to its
// outcome. Attempt is the only combinator that can undo a consumed
// failure, demoting a ConsumedError back to an EmptyError so that Or can
// backtrack across it. This is what gives the library unbounded lookahead
// (LL(∞)) without making every parser backtrack by default.
//
// # Error messages
//
// A Message carries a position, an optional unexpected symbol, and a set
// of expected production names. Messages merge by keeping the
// furthest-progress position and unioning expected names when two
// messages disagree at the same position. So after a chain of failed
// alternatives, the reported error reflects the deepest point the parser
// reached and everything it was looking for there.
//
// # Recursive grammars
//
// Parser values are ordinary values, so mutually recursive productions
// need a way to refer to each other before they're fully constructed. Ref
// provides that:
//
//	var expr = parsec.NewRef[rune, Expr]()
//	var factor = parsec.Or(number, parsec.Between(openParen, closeParen, expr.Parser()))
//	func init() { expr.Set(parsec.Chainl1(term, addOp)) }
//
// # Text layer
//
// The text subpackage builds character-stream parsers (Alpha, Digit,
// String, Regex, Number, ...) entirely on top of this package's exported
// API. Nothing in text reaches into parsec's internals, which is the
// concrete demonstration that component parsers are mechanically
// derivable once the core above is fixed.
package parsec
