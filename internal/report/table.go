package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"
)

func WriteTable(r *Report, w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== Suite: %s ===\n", r.Meta.Suite)
	fmt.Fprintf(tw, "Run %s, %d measured run(s) per case\n\n", r.Meta.RunID, r.Meta.Runs)

	header := []string{"Case", "Expression", "Result", "p50", "p99", "Status"}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintln(tw, strings.Join(sep, "\t"))

	for _, e := range r.Cases {
		result := e.Result
		if e.Kind != "" {
			result = e.Kind
		}
		row := []string{
			e.CaseID,
			e.Expression,
			result,
			fmtDuration(e.Latency.P50()),
			fmtDuration(e.Latency.P99()),
			e.Status,
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	fmt.Fprintf(tw, "\nPassed %d/%d, failed %d\n", r.Summary.Passed, r.Summary.Total, r.Summary.Failed)

	for _, e := range r.Cases {
		if e.Failure != "" {
			fmt.Fprintf(tw, "  %s: %s\n", e.CaseID, e.Failure)
		}
	}

	tw.Flush()
}

func fmtDuration(d time.Duration) string {
	if d == 0 {
		return "-"
	}
	if d < time.Microsecond {
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
	if d < time.Millisecond {
		return fmt.Sprintf("%.1fµs", float64(d.Nanoseconds())/1000)
	}
	return fmt.Sprintf("%.2fms", float64(d.Microseconds())/1000)
}
