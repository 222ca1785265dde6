package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/mcalc/internal/ast"
	"github.com/DjordjeVuckovic/mcalc/internal/calc"
	"github.com/DjordjeVuckovic/mcalc/internal/runner"
	"github.com/DjordjeVuckovic/mcalc/pkg/config/env"
)

var errUsage = errors.New("usage: mcalc [flags] <expression>... | mcalc -suite <file.yaml>")

type cliConfig struct {
	SuitePath  string
	Runs       int
	Warmup     int
	Output     string
	Tokens     bool
	Watch      bool
	Division   ast.Division
	MaxTokens  int
	MaxInput   int
	LogLevel   slog.Level
	Expression []string
}

func (c cliConfig) calcConfig() calc.Config {
	return calc.Config{
		MaxTokens:      c.MaxTokens,
		MaxInputLength: c.MaxInput,
		Division:       c.Division,
	}
}

func (c cliConfig) runnerConfig() runner.Config {
	return runner.Config{WarmupRuns: c.Warmup, Runs: c.Runs}
}

// parseFlags takes defaults from the environment and lets flags override them.
func parseFlags(args []string, stderr io.Writer) (cliConfig, error) {
	base, err := calc.LoadEnv()
	if err != nil {
		return cliConfig{}, err
	}

	fs := flag.NewFlagSet("mcalc", flag.ContinueOnError)
	fs.SetOutput(stderr)

	cfg := cliConfig{}
	var division, logLevel string

	fs.StringVar(&cfg.SuitePath, "suite", "", "Path to an expression suite YAML")
	fs.IntVar(&cfg.Runs, "runs", runner.DefaultRuns, "Number of measured runs per suite case")
	fs.IntVar(&cfg.Warmup, "warmup", runner.DefaultWarmupRuns, "Number of warmup runs per suite case")
	fs.StringVar(&cfg.Output, "output", "", "Output path for the JSON suite report")
	fs.BoolVar(&cfg.Watch, "watch", false, "Re-run the suite whenever the suite file changes")
	fs.BoolVar(&cfg.Tokens, "tokens", false, "Log the token stream of each expression at debug level")
	fs.StringVar(&division, "division", base.Division.String(), "Division by zero policy: strict or ieee")
	fs.IntVar(&cfg.MaxTokens, "max-tokens", base.MaxTokens, "Maximum tokens per expression, 0 for unlimited")
	fs.IntVar(&cfg.MaxInput, "max-input", base.MaxInputLength, "Maximum expression length in bytes, 0 for unlimited")
	fs.StringVar(&logLevel, "log-level", os.Getenv("LOG_LEVEL"), "Log level: debug, info, warn or error")

	if err := fs.Parse(args); err != nil {
		return cliConfig{}, err
	}

	if cfg.Division, err = ast.ParseDivision(division); err != nil {
		return cliConfig{}, err
	}
	if cfg.LogLevel, err = env.ParseLogLevel(logLevel); err != nil {
		return cliConfig{}, err
	}
	if cfg.MaxTokens < 0 || cfg.MaxInput < 0 {
		return cliConfig{}, fmt.Errorf("limits must not be negative")
	}
	if cfg.Tokens && cfg.LogLevel > slog.LevelDebug {
		cfg.LogLevel = slog.LevelDebug
	}

	if cfg.Watch && cfg.SuitePath == "" {
		return cliConfig{}, fmt.Errorf("-watch requires -suite")
	}

	cfg.Expression = fs.Args()
	if len(cfg.Expression) == 0 && cfg.SuitePath == "" {
		return cliConfig{}, errUsage
	}

	return cfg, nil
}
