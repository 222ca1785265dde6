package token

import (
	"strconv"
	"strings"
)

type Type int

const (
	EOF Type = iota
	INTEGER
	DECIMAL

	// operators
	ADD
	SUB
	MUL
	DIV
	EXP

	LPAREN
	RPAREN

	// reserved functions, recognized but not evaluated
	SIN
	COS
	TAN
	LOG
	LN

	// reserved constants, recognized but not evaluated
	PI
	E
)

func (t Type) String() string {
	switch t {
	case EOF:
		return "EOF"
	case INTEGER:
		return "INTEGER"
	case DECIMAL:
		return "DECIMAL"
	case ADD:
		return "ADD"
	case SUB:
		return "SUB"
	case MUL:
		return "MUL"
	case DIV:
		return "DIV"
	case EXP:
		return "EXP"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	case SIN:
		return "SIN"
	case COS:
		return "COS"
	case TAN:
		return "TAN"
	case LOG:
		return "LOG"
	case LN:
		return "LN"
	case PI:
		return "PI"
	case E:
		return "E"
	default:
		return "UNKNOWN"
	}
}

// Symbol returns the source spelling of fixed tokens. Numbers and EOF have none.
func (t Type) Symbol() string {
	switch t {
	case ADD:
		return "+"
	case SUB:
		return "-"
	case MUL:
		return "*"
	case DIV:
		return "/"
	case EXP:
		return "^"
	case LPAREN:
		return "("
	case RPAREN:
		return ")"
	case SIN:
		return "sin"
	case COS:
		return "cos"
	case TAN:
		return "tan"
	case LOG:
		return "log"
	case LN:
		return "ln"
	case PI:
		return "pi"
	case E:
		return "e"
	default:
		return ""
	}
}

func (t Type) IsOperator() bool { return t >= ADD && t <= EXP }
func (t Type) IsFunction() bool { return t >= SIN && t <= LN }
func (t Type) IsConstant() bool { return t == PI || t == E }
func (t Type) IsNumber() bool   { return t == INTEGER || t == DECIMAL }

// Token represents a lexical token with its type, literal source text and
// byte offset. Numeric payloads are only meaningful for INTEGER and DECIMAL.
type Token struct {
	Type    Type
	Literal string
	Pos     int

	ival int64
	fval float64
}

func New(typ Type, literal string, pos int) Token {
	return Token{Type: typ, Literal: literal, Pos: pos}
}

func NewInteger(literal string, pos int, v int64) Token {
	return Token{Type: INTEGER, Literal: literal, Pos: pos, ival: v}
}

func NewDecimal(literal string, pos int, v float64) Token {
	return Token{Type: DECIMAL, Literal: literal, Pos: pos, fval: v}
}

// Int returns the integer payload; zero for non-INTEGER tokens.
func (t Token) Int() int64 {
	if t.Type != INTEGER {
		return 0
	}
	return t.ival
}

// Float returns the numeric payload widened to float64; zero for non-numeric tokens.
func (t Token) Float() float64 {
	switch t.Type {
	case INTEGER:
		return float64(t.ival)
	case DECIMAL:
		return t.fval
	default:
		return 0
	}
}

func (t Token) String() string {
	switch t.Type {
	case INTEGER:
		return "INTEGER(" + strconv.FormatInt(t.ival, 10) + ")"
	case DECIMAL:
		return "DECIMAL(" + strconv.FormatFloat(t.fval, 'g', -1, 64) + ")"
	default:
		return t.Type.String()
	}
}

// Describe returns how the token reads in an error message.
func (t Token) Describe() string {
	if t.Type == EOF {
		return "end of input"
	}
	return t.Literal
}

// Format renders a token sequence for diagnostics, e.g. "INTEGER(2) ADD INTEGER(4) EOF".
func Format(tokens []Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = tok.String()
	}
	return strings.Join(parts, " ")
}
