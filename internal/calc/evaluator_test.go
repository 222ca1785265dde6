package calc

import (
	"math"
	"sync"
	"testing"

	"github.com/DjordjeVuckovic/mcalc/internal/ast"
	"github.com/DjordjeVuckovic/mcalc/internal/calcerr"
	"github.com/DjordjeVuckovic/mcalc/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"2 + 4 * 8", 34},
		{"2 * (4 + 8)", 24},
		{"(2 + 4) * 8", 48},
		{"(2 + 4) / (6 + 8)", 6.0 / 14.0},
		{"8 - 4 - 2", 2},
		{"2.5 + 4", 6.5},
		{"2 + 4 * (6 - 1)", 22},
		{"2 ^ 3 ^ 2", 512},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, err := Evaluate(tt.input)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, v, 1e-12)
		})
	}
}

func TestEvaluate_Errors(t *testing.T) {
	tests := []struct {
		input string
		kind  calcerr.Kind
	}{
		{"2x + 5", calcerr.InvalidCharacter},
		{"(2 + 4", calcerr.UnexpectedEndOfInput},
		{"2 + )", calcerr.UnexpectedToken},
		{"", calcerr.UnexpectedEndOfInput},
		{"1 / 0", calcerr.DivisionByZero},
		{"sin(pi / 2)", calcerr.UnexpectedToken},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, err := Evaluate(tt.input)
			assert.Zero(t, v)
			assert.Equal(t, tt.kind, calcerr.KindOf(err))
		})
	}
}

func TestEvaluate_Idempotent(t *testing.T) {
	ev := New()
	for _, input := range []string{"2 + 4 * 8", "2x + 5", "(2 + 4"} {
		v1, err1 := ev.Evaluate(input)
		v2, err2 := ev.Evaluate(input)
		assert.Equal(t, v1, v2, input)
		assert.Equal(t, calcerr.KindOf(err1), calcerr.KindOf(err2), input)
	}
}

func TestEvaluator_Options(t *testing.T) {
	t.Run("ieee division", func(t *testing.T) {
		v, err := New(WithDivision(ast.DivideIEEE)).Evaluate("-1 / 0")
		require.NoError(t, err)
		assert.True(t, math.IsInf(v, -1))
	})

	t.Run("token limit", func(t *testing.T) {
		_, err := New(WithMaxTokens(2)).Evaluate("1 + 2")
		assert.ErrorIs(t, err, calcerr.ErrTooManyTokens)
	})

	t.Run("input limit", func(t *testing.T) {
		_, err := New(WithMaxInputLength(3)).Evaluate("1 + 2")
		assert.ErrorIs(t, err, calcerr.ErrInputTooLong)
	})

	t.Run("custom tokenizer", func(t *testing.T) {
		ev := New(WithTokenizer(token.NewCalcTokenizer(token.WithMaxTokens(0))), WithMaxTokens(1))
		v, err := ev.Evaluate("1 + 2 + 3")
		require.NoError(t, err)
		assert.Equal(t, 6.0, v)
	})

	t.Run("from config", func(t *testing.T) {
		ev := NewFromConfig(Config{MaxTokens: 0, MaxInputLength: 0, Division: ast.DivideIEEE})
		assert.Equal(t, ast.DivideIEEE, ev.Division())
		v, err := ev.Evaluate("0 / 0")
		require.NoError(t, err)
		assert.True(t, math.IsNaN(v))
	})
}

func TestEvaluator_Stages(t *testing.T) {
	ev := New()

	tokens, err := ev.Tokens("2 * (4 + 8)")
	require.NoError(t, err)
	assert.Equal(t, "INTEGER(2) MUL LPAREN INTEGER(4) ADD INTEGER(8) RPAREN EOF", token.Format(tokens))

	node, err := ev.Parse("2 * (4 + 8)")
	require.NoError(t, err)
	assert.Equal(t, "(2 * (4 + 8))", node.String())

	_, err = ev.Parse("2x")
	assert.ErrorIs(t, err, calcerr.ErrInvalidCharacter)
}

func TestEvaluator_Concurrent(t *testing.T) {
	ev := New()
	var wg sync.WaitGroup
	results := make([]float64, 32)

	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := ev.Evaluate("(2 + 4) * 8")
			if err == nil {
				results[i] = v
			}
		}(i)
	}
	wg.Wait()

	for _, v := range results {
		assert.Equal(t, 48.0, v)
	}
}
