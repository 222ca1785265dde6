package runner

import (
	"time"

	"github.com/DjordjeVuckovic/mcalc/internal/calcerr"
	"github.com/google/uuid"
)

type CaseResult struct {
	CaseID     string
	Expression string
	Value      float64
	Kind       calcerr.Kind
	// Err is the evaluation error, expected or not.
	Err error
	// Failure is set when the outcome does not match the case.
	Failure error
	Latency LatencyStats
}

func (cr CaseResult) Passed() bool {
	return cr.Failure == nil
}

type SuiteResult struct {
	RunID        uuid.UUID
	SuiteName    string
	SuiteVersion string
	StartedAt    time.Time
	Duration     time.Duration
	Config       Config
	Cases        []CaseResult
}

func (sr *SuiteResult) PassedCount() int {
	n := 0
	for _, c := range sr.Cases {
		if c.Passed() {
			n++
		}
	}
	return n
}

func (sr *SuiteResult) FailedCount() int {
	return len(sr.Cases) - sr.PassedCount()
}

func (sr *SuiteResult) AllPassed() bool {
	return sr.FailedCount() == 0
}
