package suite

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/DjordjeVuckovic/mcalc/internal/calcerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("valid suite", func(t *testing.T) {
		yaml := `
name: precedence
version: "1.0"
cases:
  - id: add-mul
    description: multiplication first
    expression: "2 + 4 * 8"
    expect: 34
  - id: lex-fail
    expression: "2x + 5"
    error: invalid_character
  - id: empty
    expression: ""
    error: unexpected_end_of_input
`
		s, err := Parse([]byte(yaml))
		require.NoError(t, err)
		assert.Equal(t, "precedence", s.Name)
		require.Len(t, s.Cases, 3)
		assert.Equal(t, "2 + 4 * 8", s.Cases[0].Input())
		assert.Equal(t, 34.0, *s.Cases[0].Expect)
		assert.Equal(t, calcerr.InvalidCharacter, s.Cases[1].ExpectedKind())
		assert.Equal(t, "", s.Cases[2].Input())
	})

	t.Run("infinity expectation", func(t *testing.T) {
		yaml := `
name: ieee
cases:
  - id: inf
    expression: "1 / 0"
    expect: .inf
`
		s, err := Parse([]byte(yaml))
		require.NoError(t, err)
		assert.True(t, math.IsInf(*s.Cases[0].Expect, 1))
	})

	errorCases := []struct {
		name    string
		yaml    string
		message string
	}{
		{
			name:    "no cases",
			yaml:    "name: test\ncases: []\n",
			message: "no cases",
		},
		{
			name:    "case missing id",
			yaml:    "name: test\ncases:\n  - expression: \"1\"\n    expect: 1\n",
			message: "no id",
		},
		{
			name:    "duplicate id",
			yaml:    "name: test\ncases:\n  - id: a\n    expression: \"1\"\n    expect: 1\n  - id: a\n    expression: \"2\"\n    expect: 2\n",
			message: "duplicate case id",
		},
		{
			name:    "missing expression",
			yaml:    "name: test\ncases:\n  - id: a\n    expect: 1\n",
			message: "no expression",
		},
		{
			name:    "both expect and error",
			yaml:    "name: test\ncases:\n  - id: a\n    expression: \"1\"\n    expect: 1\n    error: invalid_character\n",
			message: "both expect and error",
		},
		{
			name:    "neither expect nor error",
			yaml:    "name: test\ncases:\n  - id: a\n    expression: \"1\"\n",
			message: "neither expect nor error",
		},
		{
			name:    "unknown error kind",
			yaml:    "name: test\ncases:\n  - id: a\n    expression: \"1\"\n    error: overflow\n",
			message: "unknown error kind",
		},
		{
			name:    "negative tolerance",
			yaml:    "name: test\ncases:\n  - id: a\n    expression: \"1\"\n    expect: 1\n    tolerance: -1\n",
			message: "negative tolerance",
		},
		{
			name:    "malformed yaml",
			yaml:    "name: [unclosed\n",
			message: "parse suite YAML",
		},
	}

	for _, tt := range errorCases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestCase_Verify(t *testing.T) {
	expect := func(v float64) *float64 { return &v }

	tests := []struct {
		name    string
		c       Case
		value   float64
		err     error
		wantErr bool
	}{
		{name: "exact match", c: Case{Expect: expect(34)}, value: 34},
		{name: "within default tolerance", c: Case{Expect: expect(6.0 / 14.0)}, value: 0.428571428571},
		{name: "outside tolerance", c: Case{Expect: expect(2)}, value: 6, wantErr: true},
		{name: "custom tolerance", c: Case{Expect: expect(1), Tolerance: 0.5}, value: 1.4},
		{name: "nan matches nan", c: Case{Expect: expect(math.NaN())}, value: math.NaN()},
		{name: "inf matches inf", c: Case{Expect: expect(math.Inf(1))}, value: math.Inf(1)},
		{name: "inf sign differs", c: Case{Expect: expect(math.Inf(1))}, value: math.Inf(-1), wantErr: true},
		{name: "unexpected error", c: Case{Expect: expect(1)}, err: calcerr.ErrUnexpectedToken, wantErr: true},
		{name: "expected error kind", c: Case{Error: "unexpected_token"}, err: &calcerr.Error{Kind: calcerr.UnexpectedToken}},
		{name: "other error kind", c: Case{Error: "unexpected_token"}, err: &calcerr.Error{Kind: calcerr.InvalidCharacter}, wantErr: true},
		{name: "expected error but succeeded", c: Case{Error: "division_by_zero"}, value: 3, wantErr: true},
		{name: "foreign error", c: Case{Error: "division_by_zero"}, err: errors.New("boom"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.c.Verify(tt.value, tt.err)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	suiteFile := filepath.Join(dir, "suite.yaml")
	content := `
name: file suite
cases:
  - id: q1
    expression: "8 - 4 - 2"
    expect: 2
`
	require.NoError(t, os.WriteFile(suiteFile, []byte(content), 0644))

	s, err := LoadFromFile(suiteFile)
	require.NoError(t, err)
	assert.Equal(t, "file suite", s.Name)

	_, err = LoadFromFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read suite file")
}
