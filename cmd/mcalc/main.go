package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/DjordjeVuckovic/mcalc/internal/calc"
	"github.com/DjordjeVuckovic/mcalc/internal/calcerr"
	"github.com/DjordjeVuckovic/mcalc/internal/report"
	"github.com/DjordjeVuckovic/mcalc/internal/runner"
	"github.com/DjordjeVuckovic/mcalc/internal/suite"
	"github.com/DjordjeVuckovic/mcalc/internal/token"
	"github.com/DjordjeVuckovic/mcalc/pkg/config/env"
)

const (
	exitOK     = 0
	exitFailed = 1
	exitUsage  = 2
)

func main() {
	if err := env.LoadDotEnv(os.Getenv("APP_ENV"), "cmd/mcalc/.env"); err != nil {
		slog.Debug("Skipping .env ...", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	slog.SetLogLoggerLevel(cfg.LogLevel)

	ev := calc.NewFromConfig(cfg.calcConfig())
	code := exitOK

	for _, expr := range cfg.Expression {
		if cfg.Tokens {
			logTokens(ev, expr)
		}
		v, err := ev.Evaluate(expr)
		if err != nil {
			fmt.Fprintf(stderr, "%s: %s\n", expr, calcerr.Describe(err))
			code = exitFailed
			continue
		}
		fmt.Fprintf(stdout, "%s = %s\n", expr, report.FormatValue(v))
	}

	switch {
	case cfg.Watch:
		if !watchSuite(ctx, cfg, ev, stdout) {
			code = exitFailed
		}
	case cfg.SuitePath != "":
		if !runSuite(ctx, cfg, ev, stdout) {
			code = exitFailed
		}
	}

	return code
}

func logTokens(ev *calc.Evaluator, expr string) {
	tokens, err := ev.Tokens(expr)
	if err != nil {
		slog.Debug("Tokenize failed", "expression", expr, "error", err)
		return
	}
	slog.Debug("Tokens", "expression", expr, "tokens", token.Format(tokens))
}

func runSuite(ctx context.Context, cfg cliConfig, ev *calc.Evaluator, stdout io.Writer) bool {
	s, err := suite.LoadFromFile(cfg.SuitePath)
	if err != nil {
		slog.Error("Failed to load suite", "path", cfg.SuitePath, "error", err)
		return false
	}

	slog.Info("Running suite", "suite", s.Name, "cases", len(s.Cases), "runs", cfg.Runs, "warmup", cfg.Warmup)

	result, err := runner.New(cfg.runnerConfig(), ev).Run(ctx, s)
	if err != nil {
		slog.Error("Suite run failed", "suite", s.Name, "error", err)
		return false
	}

	r := report.Generate(result)
	report.WriteTable(r, stdout)

	if cfg.Output != "" {
		if err := report.WriteJSON(r, cfg.Output); err != nil {
			slog.Error("Failed to write report", "path", cfg.Output, "error", err)
			return false
		}
		slog.Info("Report written", "path", cfg.Output)
	}

	return result.AllPassed()
}
