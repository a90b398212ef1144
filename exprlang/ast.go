package exprlang

import "fmt"

// Expr is the closed set of expression forms exprlang parses. It is
// sealed by the unexported exprNode method; the only implementations
// live in this package.
type Expr interface {
	exprNode()
}

// Num is a numeric literal, boxed the same way text.Number boxes its
// match: an int64 when the parsed value is a whole number (so "2.0"
// gives int64 2), a float64 otherwise.
type Num struct {
	Value any
}

// Str is a double-quoted string literal with no escape processing.
type Str struct {
	Value string
}

// Ident is a bare identifier, resolved against an Env at evaluation
// time.
type Ident struct {
	Name string
}

// BinOp is a binary arithmetic expression: Left Op Right.
type BinOp struct {
	Op    byte
	Left  Expr
	Right Expr
}

// Neg is unary negation.
type Neg struct {
	Operand Expr
}

func (Num) exprNode()   {}
func (Str) exprNode()   {}
func (Ident) exprNode() {}
func (BinOp) exprNode() {}
func (Neg) exprNode()   {}

func (n Num) String() string   { return fmt.Sprintf("%v", n.Value) }
func (s Str) String() string   { return fmt.Sprintf("%q", s.Value) }
func (i Ident) String() string { return i.Name }
func (b BinOp) String() string { return fmt.Sprintf("(%s %c %s)", b.Left, b.Op, b.Right) }
func (n Neg) String() string   { return fmt.Sprintf("(- %s)", n.Operand) }
