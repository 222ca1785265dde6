package ast

import (
	"fmt"
	"math"
	"strings"

	"github.com/DjordjeVuckovic/mcalc/internal/calcerr"
	"github.com/DjordjeVuckovic/mcalc/internal/token"
)

// Division selects what happens when a divisor is zero.
type Division int

const (
	// DivideStrict fails with calcerr.DivisionByZero.
	DivideStrict Division = iota
	// DivideIEEE follows IEEE-754 and yields +Inf, -Inf or NaN.
	DivideIEEE
)

func (d Division) String() string {
	switch d {
	case DivideStrict:
		return "strict"
	case DivideIEEE:
		return "ieee"
	default:
		return "unknown"
	}
}

func ParseDivision(s string) (Division, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "strict":
		return DivideStrict, nil
	case "ieee":
		return DivideIEEE, nil
	default:
		return DivideStrict, fmt.Errorf("invalid division policy %q, expected one of [strict ieee]", s)
	}
}

// Eval computes the value of the tree in float64 arithmetic.
func Eval(n Node, div Division) (float64, error) {
	switch n := n.(type) {
	case *Number:
		return n.Value, nil
	case *Unary:
		v, err := Eval(n.Operand, div)
		if err != nil {
			return 0, err
		}
		if n.Op == token.SUB {
			return -v, nil
		}
		return v, nil
	case *Binary:
		left, err := Eval(n.Left, div)
		if err != nil {
			return 0, err
		}
		right, err := Eval(n.Right, div)
		if err != nil {
			return 0, err
		}
		return apply(n, left, right, div)
	default:
		return 0, fmt.Errorf("unsupported node %T", n)
	}
}

func apply(b *Binary, left, right float64, div Division) (float64, error) {
	switch b.Op {
	case token.ADD:
		return left + right, nil
	case token.SUB:
		return left - right, nil
	case token.MUL:
		return left * right, nil
	case token.DIV:
		if right == 0 && div == DivideStrict {
			return 0, &calcerr.Error{Kind: calcerr.DivisionByZero, Pos: b.OpPos}
		}
		return left / right, nil
	case token.EXP:
		return math.Pow(left, right), nil
	default:
		return 0, fmt.Errorf("unsupported operator %s", b.Op)
	}
}
