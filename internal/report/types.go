package report

import (
	"time"

	"github.com/DjordjeVuckovic/exprtree/internal/suite"
	"github.com/DjordjeVuckovic/exprtree/internal/types/operator"
)

type Report struct {
	Suite   string        `json:"suite"`
	Entries []Entry       `json:"entries"`
	Passed  int           `json:"passed"`
	Failed  int           `json:"failed"`
	Elapsed time.Duration `json:"elapsed_ns"`
}

type Entry struct {
	ID         string           `json:"id"`
	Dialect    operator.Dialect `json:"dialect"`
	Expression string           `json:"expression"`
	Postfix    string           `json:"postfix"`
	Expected   string           `json:"expected"`
	Got        string           `json:"got"`
	Passed     bool             `json:"passed"`
	Reason     string           `json:"reason,omitempty"`
	Latency    time.Duration    `json:"latency_ns"`
}

func New(name string, results []suite.Result) *Report {
	r := &Report{Suite: name, Entries: make([]Entry, 0, len(results))}

	for _, res := range results {
		expected := res.Case.Expect
		if res.Case.Error != "" {
			expected = "error: " + res.Case.Error
		}
		got := res.Got
		if res.Err != nil {
			got = "error"
		}

		r.Entries = append(r.Entries, Entry{
			ID:         res.Case.ID,
			Dialect:    res.Case.Dialect,
			Expression: res.Case.Expression,
			Postfix:    res.Postfix,
			Expected:   expected,
			Got:        got,
			Passed:     res.Passed,
			Reason:     res.Reason,
			Latency:    res.Latency,
		})
		r.Elapsed += res.Latency
		if res.Passed {
			r.Passed++
		} else {
			r.Failed++
		}
	}
	return r
}

func (r *Report) OK() bool {
	return r.Failed == 0
}
