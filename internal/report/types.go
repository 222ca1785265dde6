package report

import (
	"runtime"
	"strconv"
	"time"

	"github.com/DjordjeVuckovic/mcalc/internal/runner"
	"github.com/google/uuid"
)

type Report struct {
	Meta    Meta    `json:"meta"`
	Summary Summary `json:"summary"`
	Cases   []Entry `json:"cases"`
}

type Meta struct {
	RunID        uuid.UUID       `json:"run_id"`
	Suite        string          `json:"suite"`
	SuiteVersion string          `json:"suite_version,omitempty"`
	Timestamp    time.Time       `json:"timestamp"`
	Duration     time.Duration   `json:"duration"`
	Runs         int             `json:"runs"`
	WarmupRuns   int             `json:"warmup_runs"`
	Environment  EnvironmentInfo `json:"environment"`
}

type EnvironmentInfo struct {
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
	NumCPU    int    `json:"num_cpu"`
}

func NewEnvironmentInfo() EnvironmentInfo {
	return EnvironmentInfo{
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		NumCPU:    runtime.NumCPU(),
	}
}

type Summary struct {
	Total  int `json:"total"`
	Passed int `json:"passed"`
	Failed int `json:"failed"`
}

// Entry is one case row. Result is a string so non-finite values survive JSON.
type Entry struct {
	CaseID     string              `json:"case_id"`
	Expression string              `json:"expression"`
	Result     string              `json:"result,omitempty"`
	Kind       string              `json:"error_kind,omitempty"`
	Error      string              `json:"error,omitempty"`
	Status     string              `json:"status"`
	Failure    string              `json:"failure,omitempty"`
	Latency    runner.LatencyStats `json:"latency"`
}

const (
	StatusPass = "PASS"
	StatusFail = "FAIL"
)

// FormatValue renders a result the way the CLI prints it: shortest
// round-tripping form, with "+Inf", "-Inf" and "NaN" for non-finite values.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
