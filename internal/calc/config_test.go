package calc

import (
	"testing"

	"github.com/DjordjeVuckovic/mcalc/internal/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnv_Defaults(t *testing.T) {
	t.Setenv("MCALC_MAX_TOKENS", "")
	t.Setenv("MCALC_MAX_INPUT_LENGTH", "")
	t.Setenv("MCALC_DIVISION", "")

	cfg, err := LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), *cfg)
}

func TestLoadEnv_Overrides(t *testing.T) {
	t.Setenv("MCALC_MAX_TOKENS", "0")
	t.Setenv("MCALC_MAX_INPUT_LENGTH", "256")
	t.Setenv("MCALC_DIVISION", "ieee")

	cfg, err := LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.MaxTokens)
	assert.Equal(t, 256, cfg.MaxInputLength)
	assert.Equal(t, ast.DivideIEEE, cfg.Division)
}

func TestLoadEnv_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"non-numeric tokens", "MCALC_MAX_TOKENS", "many"},
		{"negative input length", "MCALC_MAX_INPUT_LENGTH", "-1"},
		{"unknown division", "MCALC_DIVISION", "lenient"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("MCALC_MAX_TOKENS", "")
			t.Setenv("MCALC_MAX_INPUT_LENGTH", "")
			t.Setenv("MCALC_DIVISION", "")
			t.Setenv(tt.key, tt.value)

			_, err := LoadEnv()
			assert.Error(t, err)
		})
	}
}
