package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/DjordjeVuckovic/mcalc/internal/calcerr"
	"github.com/DjordjeVuckovic/mcalc/internal/suite"
	"github.com/google/uuid"
)

var ErrNonDeterministic = errors.New("non-deterministic result")

// Evaluator is the part of calc.Evaluator the runner needs.
type Evaluator interface {
	Evaluate(expr string) (float64, error)
}

type Runner struct {
	config    Config
	evaluator Evaluator
}

func New(cfg Config, ev Evaluator) *Runner {
	if cfg.Runs < 1 {
		cfg.Runs = 1
	}
	if cfg.WarmupRuns < 0 {
		cfg.WarmupRuns = 0
	}
	return &Runner{config: cfg, evaluator: ev}
}

// Run evaluates every case of s. The context is checked between cases.
func (r *Runner) Run(ctx context.Context, s *suite.Suite) (*SuiteResult, error) {
	sr := &SuiteResult{
		RunID:        uuid.New(),
		SuiteName:    s.Name,
		SuiteVersion: s.Version,
		StartedAt:    time.Now(),
		Config:       r.config,
	}

	for i := range s.Cases {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("run suite %q: %w", s.Name, err)
		}

		cr := r.RunCase(&s.Cases[i])
		if !cr.Passed() {
			slog.Warn("case failed", "suite", s.Name, "case", cr.CaseID, "error", cr.Failure)
		}
		sr.Cases = append(sr.Cases, cr)
	}

	sr.Duration = time.Since(sr.StartedAt)
	return sr, nil
}

// RunCase evaluates c WarmupRuns+Runs times. Every measured run must agree with
// the first one.
func (r *Runner) RunCase(c *suite.Case) CaseResult {
	expr := c.Input()
	for i := 0; i < r.config.WarmupRuns; i++ {
		_, _ = r.evaluator.Evaluate(expr)
	}

	cr := CaseResult{CaseID: c.ID, Expression: expr}
	latencies := make([]time.Duration, 0, r.config.Runs)

	for i := 0; i < r.config.Runs; i++ {
		start := time.Now()
		v, err := r.evaluator.Evaluate(expr)
		latencies = append(latencies, time.Since(start))

		if i == 0 {
			cr.Value, cr.Err, cr.Kind = v, err, calcerr.KindOf(err)
			continue
		}
		if !sameOutcome(cr.Value, cr.Kind, v, calcerr.KindOf(err)) && cr.Failure == nil {
			cr.Failure = fmt.Errorf("run %d: %w", i+1, ErrNonDeterministic)
		}
	}

	cr.Latency = ComputeLatencyStats(latencies)
	if cr.Failure == nil {
		cr.Failure = c.Verify(cr.Value, cr.Err)
	}
	return cr
}

func sameOutcome(v1 float64, k1 calcerr.Kind, v2 float64, k2 calcerr.Kind) bool {
	if k1 != k2 {
		return false
	}
	return v1 == v2 || (math.IsNaN(v1) && math.IsNaN(v2))
}
