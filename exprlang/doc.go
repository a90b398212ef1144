// Package exprlang is a small arithmetic expression language built on
// top of parsec and text. It exists to exercise the combinator library
// end to end (Chainl1 for left-associative operators, Between for
// parenthesized grouping, Ref for the mutual recursion between an
// expression and its parenthesized sub-expressions), and to give
// cmd/parsec and langsvr something concrete to parse and evaluate.
//
// It is not a general-purpose language: no statements, no variables
// beyond a flat lookup environment, no user-defined functions.
package exprlang
