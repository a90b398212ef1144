package exprlang

import (
	"unicode"

	"github.com/dhamidi/parsec"
	"github.com/dhamidi/parsec/text"
)

var exprRef = parsec.NewRef[rune, Expr]()

func init() {
	exprRef.Set(buildExpr())
}

// buildExpr wires up the grammar:
//
//	expr    → term (('+' | '-') term)*        -- Chainl1
//	term    → factor (('*' | '/') factor)*    -- Chainl1
//	factor  → number | string | ident | '(' expr ')' | '-' factor
//	number  → text.Number
//	string  → text.StrBetween(text.Chr('"'), text.Chr('"'))
//	ident   → text.Alpha, (letter | digit | '_')*
//
// factor and expr are mutually recursive through the parenthesized
// sub-expression case, so factor is built against exprRef rather than
// against a local variable that doesn't exist yet.
func buildExpr() parsec.Parser[rune, Expr] {
	factor := parsec.NewRef[rune, Expr]()

	negFactor := parsec.Bind(tok(parsec.Then(text.Chr('-'), factor.Parser())), func(operand Expr) parsec.Parser[rune, Expr] {
		return parsec.Retn[rune, Expr](Neg{Operand: operand})
	})

	paren := parsec.Between(tok(text.Chr('(')), tok(text.Chr(')')), exprRef.Parser())

	number := parsec.Bind(tok(text.Number), func(v any) parsec.Parser[rune, Expr] {
		return parsec.Retn[rune, Expr](Num{Value: v})
	})

	str := parsec.Bind(tok(text.StrBetween(text.Chr('"'), text.Chr('"'))), func(s string) parsec.Parser[rune, Expr] {
		return parsec.Retn[rune, Expr](Str{Value: s})
	})

	ident := parsec.Bind(tok(identifier()), func(name string) parsec.Parser[rune, Expr] {
		return parsec.Retn[rune, Expr](Ident{Name: name})
	})

	factor.Set(parsec.Choice(
		parsec.Attempt(number),
		str,
		parsec.Attempt(negFactor),
		paren,
		ident,
	))

	term := parsec.Chainl1(factor.Parser(), mulOp())
	expr := parsec.Chainl1(term, addOp())

	return parsec.Then(text.WSpaces, expr)
}

// identifier parses a letter followed by zero or more letters, digits
// or underscores.
func identifier() parsec.Parser[rune, string] {
	return parsec.Bind(text.Alpha, func(first rune) parsec.Parser[rune, string] {
		return parsec.Bind(parsec.Many(parsec.Satisfy(isIdentContinue)), func(rest []rune) parsec.Parser[rune, string] {
			return parsec.Retn[rune, string](string(first) + string(rest))
		})
	})
}

func isIdentContinue(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// tok runs p, then skips any trailing whitespace, giving every token
// parser automatic whitespace handling between tokens without needing
// a separate lexer pass.
func tok[A any](p parsec.Parser[rune, A]) parsec.Parser[rune, A] {
	return parsec.Bind(p, func(a A) parsec.Parser[rune, A] {
		return parsec.Then(text.WSpaces, parsec.Retn[rune, A](a))
	})
}

func addOp() parsec.Parser[rune, func(Expr, Expr) Expr] {
	plus := parsec.SatisfyEqR[rune, func(Expr, Expr) Expr]('+', "+", func(l, r Expr) Expr { return BinOp{Op: '+', Left: l, Right: r} })
	minus := parsec.SatisfyEqR[rune, func(Expr, Expr) Expr]('-', "-", func(l, r Expr) Expr { return BinOp{Op: '-', Left: l, Right: r} })
	return tok(parsec.Or(plus, minus))
}

func mulOp() parsec.Parser[rune, func(Expr, Expr) Expr] {
	star := parsec.SatisfyEqR[rune, func(Expr, Expr) Expr]('*', "*", func(l, r Expr) Expr { return BinOp{Op: '*', Left: l, Right: r} })
	slash := parsec.SatisfyEqR[rune, func(Expr, Expr) Expr]('/', "/", func(l, r Expr) Expr { return BinOp{Op: '/', Left: l, Right: r} })
	return tok(parsec.Or(star, slash))
}

// Parse parses src as a complete exprlang expression.
func Parse(src string) (Expr, *parsec.ParseError) {
	return parsec.Parse(exprRef.Parser(), text.NewStringInput(src))
}
