// Package text builds character-stream parsers (alpha, digit, string
// literals, regular expressions, numbers) entirely on top of parsec's
// exported API. Nothing here reaches into parsec's internals: this
// package is the concrete demonstration that component parsers are
// mechanically derivable once the core combinator algebra is fixed.
//
// Character classification follows the host platform's Unicode tables
// (package unicode), the same delegation the core library specifies for
// any character-aware predicate. The regex collaborator is equally
// swappable: Regex is built against the small Matcher/RegexEngine
// interfaces in regex.go, backed by the standard library's regexp
// package by default.
package text
