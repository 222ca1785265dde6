package calc

import (
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/mcalc/internal/ast"
	"github.com/DjordjeVuckovic/mcalc/internal/token"
	"github.com/DjordjeVuckovic/mcalc/pkg/config/env"
)

type Config struct {
	MaxTokens      int
	MaxInputLength int
	Division       ast.Division
}

func DefaultConfig() Config {
	return Config{
		MaxTokens:      token.DefaultMaxTokens,
		MaxInputLength: token.DefaultMaxInputLength,
		Division:       ast.DivideStrict,
	}
}

// LoadEnv reads MCALC_MAX_TOKENS, MCALC_MAX_INPUT_LENGTH and MCALC_DIVISION.
// Unset variables keep their defaults.
func LoadEnv() (*Config, error) {
	cfg := DefaultConfig()

	maxTokens, err := env.Int("MCALC_MAX_TOKENS", cfg.MaxTokens)
	if err != nil {
		slog.Error("Invalid MCALC_MAX_TOKENS environment variable value", "error", err)
		return nil, err
	}
	cfg.MaxTokens = maxTokens

	maxInput, err := env.Int("MCALC_MAX_INPUT_LENGTH", cfg.MaxInputLength)
	if err != nil {
		slog.Error("Invalid MCALC_MAX_INPUT_LENGTH environment variable value", "error", err)
		return nil, err
	}
	cfg.MaxInputLength = maxInput

	div, err := ast.ParseDivision(os.Getenv("MCALC_DIVISION"))
	if err != nil {
		slog.Error("Invalid MCALC_DIVISION environment variable value", "value", os.Getenv("MCALC_DIVISION"))
		return nil, err
	}
	cfg.Division = div

	return &cfg, nil
}
