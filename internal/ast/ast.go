package ast

import (
	"strconv"

	"github.com/DjordjeVuckovic/mcalc/internal/token"
)

// Node is an arithmetic expression tree node.
type Node interface {
	// String renders the node fully parenthesized, e.g. "(2 + (4 * 8))".
	String() string
	node()
}

// Number is a literal. Integers are widened to float64 when parsed.
type Number struct {
	Value float64
	Pos   int
}

// Unary is a sign applied to its operand; Op is token.ADD or token.SUB.
type Unary struct {
	Op      token.Type
	OpPos   int
	Operand Node
}

// Binary applies one of token.ADD, SUB, MUL, DIV or EXP to two operands.
type Binary struct {
	Op    token.Type
	OpPos int
	Left  Node
	Right Node
}

func (*Number) node() {}
func (*Unary) node()  {}
func (*Binary) node() {}

func (n *Number) String() string {
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

func (u *Unary) String() string {
	return "(" + u.Op.Symbol() + u.Operand.String() + ")"
}

func (b *Binary) String() string {
	return "(" + b.Left.String() + " " + b.Op.Symbol() + " " + b.Right.String() + ")"
}
