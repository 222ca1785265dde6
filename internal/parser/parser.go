package parser

import (
	"github.com/DjordjeVuckovic/mcalc/internal/ast"
	"github.com/DjordjeVuckovic/mcalc/internal/calcerr"
	"github.com/DjordjeVuckovic/mcalc/internal/token"
)

const expectFactor = "number or '('"

// Parse builds an expression tree from tokens using recursive descent:
//
//	Expr   := Term (('+' | '-') Term)*
//	Term   := Unary (('*' | '/') Unary)*
//	Unary  := ('+' | '-') Unary | Power
//	Power  := Factor ('^' Unary)?
//	Factor := INTEGER | DECIMAL | '(' Expr ')'
//
// Additive and multiplicative operators are left-associative, '^' is
// right-associative and binds tighter than a leading sign. The whole token
// slice must be consumed.
func Parse(tokens []token.Token) (ast.Node, error) {
	p := &parser{tokens: tokens}

	node, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if tok := p.peek(); tok.Type != token.EOF {
		return nil, unexpected(tok, "end of input")
	}
	return node, nil
}

// Evaluate parses tokens and computes the result in one call.
func Evaluate(tokens []token.Token, div ast.Division) (float64, error) {
	node, err := Parse(tokens)
	if err != nil {
		return 0, err
	}
	return ast.Eval(node, div)
}

type parser struct {
	tokens []token.Token
	pos    int
}

// peek returns the token at the cursor. Past the end it behaves as EOF so
// slices without a trailing EOF token still parse.
func (p *parser) peek() token.Token {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	end := 0
	if n := len(p.tokens); n > 0 {
		last := p.tokens[n-1]
		end = last.Pos + len(last.Literal)
	}
	return token.New(token.EOF, "", end)
}

func (p *parser) advance() token.Token {
	tok := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

// consume advances only when the current token has the expected type.
func (p *parser) consume(typ token.Type) (token.Token, error) {
	tok := p.peek()
	if tok.Type != typ {
		return tok, unexpected(tok, "'"+typ.Symbol()+"'")
	}
	p.pos++
	return tok, nil
}

func (p *parser) parseExpr() (ast.Node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	for {
		op := p.peek()
		if op.Type != token.ADD && op.Type != token.SUB {
			return left, nil
		}
		p.advance()

		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Op: op.Type, OpPos: op.Pos, Left: left, Right: right}
	}
}

func (p *parser) parseTerm() (ast.Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for {
		op := p.peek()
		if op.Type != token.MUL && op.Type != token.DIV {
			return left, nil
		}
		p.advance()

		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Op: op.Type, OpPos: op.Pos, Left: left, Right: right}
	}
}

func (p *parser) parseUnary() (ast.Node, error) {
	op := p.peek()
	if op.Type != token.ADD && op.Type != token.SUB {
		return p.parsePower()
	}
	p.advance()

	operand, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return &ast.Unary{Op: op.Type, OpPos: op.Pos, Operand: operand}, nil
}

func (p *parser) parsePower() (ast.Node, error) {
	base, err := p.parseFactor()
	if err != nil {
		return nil, err
	}

	op := p.peek()
	if op.Type != token.EXP {
		return base, nil
	}
	p.advance()

	exponent, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return &ast.Binary{Op: token.EXP, OpPos: op.Pos, Left: base, Right: exponent}, nil
}

func (p *parser) parseFactor() (ast.Node, error) {
	tok := p.peek()

	switch tok.Type {
	case token.INTEGER, token.DECIMAL:
		p.advance()
		return &ast.Number{Value: tok.Float(), Pos: tok.Pos}, nil
	case token.LPAREN:
		p.advance()
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.RPAREN); err != nil {
			return nil, err
		}
		return inner, nil
	default:
		return nil, unexpected(tok, expectFactor)
	}
}

func unexpected(tok token.Token, expected string) error {
	if tok.Type == token.EOF {
		return &calcerr.Error{Kind: calcerr.UnexpectedEndOfInput, Pos: tok.Pos, Expected: expected}
	}
	return &calcerr.Error{Kind: calcerr.UnexpectedToken, Pos: tok.Pos, Found: tok.Literal, Expected: expected}
}
