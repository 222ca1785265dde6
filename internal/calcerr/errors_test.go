package calcerr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/DjordjeVuckovic/mcalc/internal/calcerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind_Classification(t *testing.T) {
	lex := []calcerr.Kind{calcerr.InvalidCharacter, calcerr.TooManyTokens, calcerr.InputTooLong}
	parse := []calcerr.Kind{calcerr.UnexpectedToken, calcerr.UnexpectedEndOfInput, calcerr.DivisionByZero}

	for _, k := range lex {
		assert.True(t, k.IsLex(), k.String())
		assert.False(t, k.IsParse(), k.String())
	}
	for _, k := range parse {
		assert.True(t, k.IsParse(), k.String())
		assert.False(t, k.IsLex(), k.String())
	}
	assert.False(t, calcerr.None.IsLex())
	assert.False(t, calcerr.None.IsParse())
}

func TestParseKind(t *testing.T) {
	k, err := calcerr.ParseKind("unexpected_end_of_input")
	require.NoError(t, err)
	assert.Equal(t, calcerr.UnexpectedEndOfInput, k)

	k, err = calcerr.ParseKind(" Invalid_Character ")
	require.NoError(t, err)
	assert.Equal(t, calcerr.InvalidCharacter, k)

	_, err = calcerr.ParseKind("none")
	assert.Error(t, err)

	_, err = calcerr.ParseKind("overflow")
	assert.Error(t, err)
}

func TestError_IsMatchesKind(t *testing.T) {
	err := &calcerr.Error{Kind: calcerr.UnexpectedToken, Pos: 4, Found: ")", Expected: "number or '('"}
	wrapped := fmt.Errorf("evaluate: %w", err)

	assert.ErrorIs(t, wrapped, calcerr.ErrUnexpectedToken)
	assert.NotErrorIs(t, wrapped, calcerr.ErrUnexpectedEndOfInput)
	assert.Equal(t, calcerr.UnexpectedToken, calcerr.KindOf(wrapped))
}

func TestKindOf_ForeignError(t *testing.T) {
	assert.Equal(t, calcerr.None, calcerr.KindOf(nil))
	assert.Equal(t, calcerr.None, calcerr.KindOf(errors.New("boom")))
}

func TestError_Error(t *testing.T) {
	tests := []struct {
		err      *calcerr.Error
		expected string
	}{
		{&calcerr.Error{Kind: calcerr.InvalidCharacter, Pos: 1, Found: "x"}, `invalid character "x" at position 1`},
		{&calcerr.Error{Kind: calcerr.TooManyTokens, Pos: 9, Limit: 5}, "too many tokens at position 9: limit is 5"},
		{&calcerr.Error{Kind: calcerr.InputTooLong, Limit: 10}, "input too long: limit is 10 bytes"},
		{&calcerr.Error{Kind: calcerr.UnexpectedToken, Pos: 4, Found: ")", Expected: "number or '('"}, `unexpected token ")" at position 4: expected number or '('`},
		{&calcerr.Error{Kind: calcerr.UnexpectedEndOfInput, Pos: 6, Expected: "')'"}, "unexpected end of input at position 6: expected ')'"},
		{&calcerr.Error{Kind: calcerr.DivisionByZero, Pos: 2}, "division by zero at position 2"},
	}

	for _, tt := range tests {
		t.Run(tt.err.Kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestMessage_Total(t *testing.T) {
	for k := calcerr.None; k <= calcerr.DivisionByZero; k++ {
		assert.NotEmpty(t, calcerr.Message(k))
	}
	assert.Equal(t, "Invalid error code.", calcerr.Message(calcerr.Kind(99)))
	assert.Equal(t, "Invalid character was found.", calcerr.Message(calcerr.InvalidCharacter))
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "No error.", calcerr.Describe(nil))
	assert.Equal(t, "boom", calcerr.Describe(errors.New("boom")))
	assert.Equal(t,
		`Invalid character was found. (found "x" at position 1)`,
		calcerr.Describe(&calcerr.Error{Kind: calcerr.InvalidCharacter, Pos: 1, Found: "x"}),
	)
	assert.Equal(t,
		"Unexpected end of expression. (expected ')' at position 6)",
		calcerr.Describe(fmt.Errorf("wrapped: %w", &calcerr.Error{Kind: calcerr.UnexpectedEndOfInput, Pos: 6, Expected: "')'"})),
	)
}
