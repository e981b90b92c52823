package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

func WriteTable(r *Report, w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== Expression Suite: %s ===\n\n", r.Suite)

	header := []string{"Case", "Dialect", "Expression", "Postfix", "Expected", "Got", "Latency", "Status"}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintln(tw, strings.Join(sep, "\t"))

	for _, e := range r.Entries {
		status := "PASS"
		if !e.Passed {
			status = "FAIL"
		}
		row := []string{
			e.ID,
			string(e.Dialect),
			e.Expression,
			e.Postfix,
			e.Expected,
			e.Got,
			e.Latency.Truncate(100).String(),
			status,
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	fmt.Fprintln(tw)

	writeFailures(tw, r)
	fmt.Fprintf(tw, "%d passed, %d failed\n", r.Passed, r.Failed)

	tw.Flush()
}

func writeFailures(w io.Writer, r *Report) {
	if r.Failed == 0 {
		return
	}
	fmt.Fprintf(w, "--- Failures ---\n\n")
	for _, e := range r.Entries {
		if !e.Passed {
			fmt.Fprintf(w, "%s: %s\n", e.ID, e.Reason)
		}
	}
	fmt.Fprintln(w)
}
