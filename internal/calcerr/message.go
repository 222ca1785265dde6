package calcerr

import (
	"errors"
	"fmt"
)

// Message maps a kind to its fixed, human-readable text.
func Message(k Kind) string {
	switch k {
	case None:
		return "No error."
	case InvalidCharacter:
		return "Invalid character was found."
	case TooManyTokens:
		return "Tokens limit reached. Expression too long."
	case InputTooLong:
		return "Input length limit reached. Expression too long."
	case UnexpectedToken:
		return "Unexpected token in expression."
	case UnexpectedEndOfInput:
		return "Unexpected end of expression."
	case DivisionByZero:
		return "Division by zero."
	default:
		return "Invalid error code."
	}
}

// Describe renders err for people: the kind message followed by where it happened.
func Describe(err error) string {
	if err == nil {
		return Message(None)
	}

	var e *Error
	if !errors.As(err, &e) {
		return err.Error()
	}

	msg := Message(e.Kind)
	switch e.Kind {
	case InvalidCharacter:
		return fmt.Sprintf("%s (found %q at position %d)", msg, e.Found, e.Pos)
	case TooManyTokens:
		return fmt.Sprintf("%s (limit %d)", msg, e.Limit)
	case InputTooLong:
		return fmt.Sprintf("%s (limit %d bytes)", msg, e.Limit)
	case UnexpectedToken:
		return fmt.Sprintf("%s (expected %s, found %q at position %d)", msg, e.Expected, e.Found, e.Pos)
	case UnexpectedEndOfInput:
		return fmt.Sprintf("%s (expected %s at position %d)", msg, e.Expected, e.Pos)
	case DivisionByZero:
		return fmt.Sprintf("%s (at position %d)", msg, e.Pos)
	default:
		return msg
	}
}
