package report

import (
	"github.com/DjordjeVuckovic/mcalc/internal/calcerr"
	"github.com/DjordjeVuckovic/mcalc/internal/runner"
)

func Generate(sr *runner.SuiteResult) *Report {
	r := &Report{
		Meta: Meta{
			RunID:        sr.RunID,
			Suite:        sr.SuiteName,
			SuiteVersion: sr.SuiteVersion,
			Timestamp:    sr.StartedAt,
			Duration:     sr.Duration,
			Runs:         sr.Config.Runs,
			WarmupRuns:   sr.Config.WarmupRuns,
			Environment:  NewEnvironmentInfo(),
		},
		Summary: Summary{
			Total:  len(sr.Cases),
			Passed: sr.PassedCount(),
			Failed: sr.FailedCount(),
		},
		Cases: make([]Entry, 0, len(sr.Cases)),
	}

	for _, cr := range sr.Cases {
		e := Entry{
			CaseID:     cr.CaseID,
			Expression: cr.Expression,
			Status:     StatusPass,
			Latency:    cr.Latency,
		}
		if cr.Err != nil {
			e.Kind = cr.Kind.String()
			e.Error = calcerr.Describe(cr.Err)
		} else {
			e.Result = FormatValue(cr.Value)
		}
		if !cr.Passed() {
			e.Status = StatusFail
			e.Failure = cr.Failure.Error()
		}
		r.Cases = append(r.Cases, e)
	}

	return r
}
