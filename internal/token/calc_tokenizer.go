package token

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/DjordjeVuckovic/mcalc/internal/calcerr"
)

const (
	DefaultMaxTokens      = 100
	DefaultMaxInputLength = 4096
)

var singleCharTokens = map[byte]Type{
	'+': ADD,
	'-': SUB,
	'*': MUL,
	'/': DIV,
	'^': EXP,
	'(': LPAREN,
	')': RPAREN,
}

// Name sets are disjoint by prefix, so the first match wins.
var names = []struct {
	name string
	typ  Type
}{
	{"sin", SIN},
	{"cos", COS},
	{"tan", TAN},
	{"log", LOG},
	{"ln", LN},
	{"pi", PI},
	{"e", E},
}

// CalcTokenizer turns arithmetic expressions into tokens. It holds only
// limits, so one instance can be shared between goroutines.
type CalcTokenizer struct {
	maxTokens      int
	maxInputLength int
}

type Option func(*CalcTokenizer)

// WithMaxTokens caps the number of tokens, EOF excluded. Zero disables the cap.
func WithMaxTokens(n int) Option {
	return func(t *CalcTokenizer) {
		t.maxTokens = n
	}
}

// WithMaxInputLength caps the input size in bytes. Zero disables the cap.
func WithMaxInputLength(n int) Option {
	return func(t *CalcTokenizer) {
		t.maxInputLength = n
	}
}

func NewCalcTokenizer(opts ...Option) *CalcTokenizer {
	t := &CalcTokenizer{
		maxTokens:      DefaultMaxTokens,
		maxInputLength: DefaultMaxInputLength,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Tokenize converts the input string into a slice of Tokens terminated by EOF.
// Example: Input: `2 + 4 * (6 - 1.5)`
func (t *CalcTokenizer) Tokenize(input string) ([]Token, error) {
	if t.maxInputLength > 0 && len(input) > t.maxInputLength {
		return nil, &calcerr.Error{Kind: calcerr.InputTooLong, Limit: t.maxInputLength}
	}

	s := &scanner{input: input}
	tokens := make([]Token, 0, len(input)/2+1)

	for {
		s.skipWhitespace()
		if s.done() {
			break
		}

		tok, err := s.next()
		if err != nil {
			return nil, err
		}
		if t.maxTokens > 0 && len(tokens) >= t.maxTokens {
			return nil, &calcerr.Error{Kind: calcerr.TooManyTokens, Pos: tok.Pos, Limit: t.maxTokens}
		}
		tokens = append(tokens, tok)
	}

	tokens = append(tokens, New(EOF, "", len(input)))
	return tokens, nil
}

type scanner struct {
	input string
	pos   int
}

func (s *scanner) done() bool {
	return s.pos >= len(s.input)
}

func (s *scanner) skipWhitespace() {
	for !s.done() && isSpace(s.input[s.pos]) {
		s.pos++
	}
}

func (s *scanner) next() (Token, error) {
	ch := s.input[s.pos]

	if typ, ok := singleCharTokens[ch]; ok {
		tok := New(typ, s.input[s.pos:s.pos+1], s.pos)
		s.pos++
		return tok, nil
	}

	switch {
	case isDigit(ch) || ch == '.':
		return s.readNumber()
	case isLetter(ch):
		return s.readName()
	default:
		return Token{}, s.invalidAt(s.pos)
	}
}

// readNumber consumes a maximal run of digits and dots. The cursor is left on
// the first character after the run.
func (s *scanner) readNumber() (Token, error) {
	start := s.pos
	decimal := false
	for !s.done() && (isDigit(s.input[s.pos]) || s.input[s.pos] == '.') {
		if s.input[s.pos] == '.' {
			decimal = true
		}
		s.pos++
	}

	lit := s.input[start:s.pos]
	if decimal {
		v, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			return Token{}, &calcerr.Error{Kind: calcerr.InvalidCharacter, Pos: start, Found: lit}
		}
		return NewDecimal(lit, start, v), nil
	}

	v, err := strconv.ParseInt(lit, 10, 64)
	if err != nil {
		return Token{}, &calcerr.Error{Kind: calcerr.InvalidCharacter, Pos: start, Found: lit}
	}
	return NewInteger(lit, start, v), nil
}

func (s *scanner) readName() (Token, error) {
	rest := s.input[s.pos:]
	for _, n := range names {
		if strings.HasPrefix(rest, n.name) {
			tok := New(n.typ, n.name, s.pos)
			s.pos += len(n.name)
			return tok, nil
		}
	}
	return Token{}, s.invalidAt(s.pos)
}

func (s *scanner) invalidAt(pos int) error {
	r, _ := utf8.DecodeRuneInString(s.input[pos:])
	return &calcerr.Error{Kind: calcerr.InvalidCharacter, Pos: pos, Found: string(r)}
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}
