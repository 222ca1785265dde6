package calcerr

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies why an expression could not be evaluated.
type Kind int

const (
	None Kind = iota
	InvalidCharacter
	TooManyTokens
	InputTooLong
	UnexpectedToken
	UnexpectedEndOfInput
	DivisionByZero
)

var kindNames = map[Kind]string{
	None:                 "none",
	InvalidCharacter:     "invalid_character",
	TooManyTokens:        "too_many_tokens",
	InputTooLong:         "input_too_long",
	UnexpectedToken:      "unexpected_token",
	UnexpectedEndOfInput: "unexpected_end_of_input",
	DivisionByZero:       "division_by_zero",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// IsLex reports whether the kind is raised while tokenizing.
func (k Kind) IsLex() bool {
	return k == InvalidCharacter || k == TooManyTokens || k == InputTooLong
}

// IsParse reports whether the kind is raised while parsing or evaluating.
func (k Kind) IsParse() bool {
	return k == UnexpectedToken || k == UnexpectedEndOfInput || k == DivisionByZero
}

// ParseKind resolves the snake_case name used in suites and API responses.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range kindNames {
		if n == name && k != None {
			return k, nil
		}
	}
	return None, fmt.Errorf("unknown error kind %q", s)
}

// Error describes a failed tokenize or parse call. Pos is a byte offset into
// the expression.
type Error struct {
	Kind     Kind
	Pos      int
	Found    string
	Expected string
	Limit    int
}

func (e *Error) Error() string {
	switch e.Kind {
	case InvalidCharacter:
		return fmt.Sprintf("invalid character %q at position %d", e.Found, e.Pos)
	case TooManyTokens:
		return fmt.Sprintf("too many tokens at position %d: limit is %d", e.Pos, e.Limit)
	case InputTooLong:
		return fmt.Sprintf("input too long: limit is %d bytes", e.Limit)
	case UnexpectedToken:
		return fmt.Sprintf("unexpected token %q at position %d: expected %s", e.Found, e.Pos, e.Expected)
	case UnexpectedEndOfInput:
		return fmt.Sprintf("unexpected end of input at position %d: expected %s", e.Pos, e.Expected)
	case DivisionByZero:
		return fmt.Sprintf("division by zero at position %d", e.Pos)
	default:
		return e.Kind.String()
	}
}

// Is matches any *Error of the same kind, so the sentinels below work with errors.Is.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

var (
	ErrInvalidCharacter     = &Error{Kind: InvalidCharacter}
	ErrTooManyTokens        = &Error{Kind: TooManyTokens}
	ErrInputTooLong         = &Error{Kind: InputTooLong}
	ErrUnexpectedToken      = &Error{Kind: UnexpectedToken}
	ErrUnexpectedEndOfInput = &Error{Kind: UnexpectedEndOfInput}
	ErrDivisionByZero       = &Error{Kind: DivisionByZero}
)

// KindOf returns the kind carried by err, or None when err is nil or foreign.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return None
}
