package suite

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/DjordjeVuckovic/exprtree/internal/apperr"
	"github.com/DjordjeVuckovic/exprtree/internal/domain"
	"github.com/DjordjeVuckovic/exprtree/internal/expr"
	"github.com/DjordjeVuckovic/exprtree/internal/history"
	"github.com/DjordjeVuckovic/exprtree/internal/types/operator"
)

type Result struct {
	Case    Case
	Postfix string
	Got     string
	Err     error
	Passed  bool
	// Reason explains a failure.
	Reason  string
	Latency time.Duration
}

// Run evaluates every case in order through rec.
func Run(ctx context.Context, s *Suite, rec *history.Recorder) ([]Result, error) {
	engines := make(map[operator.Dialect]expr.Engine)
	results := make([]Result, 0, len(s.Cases))

	for _, c := range s.Cases {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		engine, ok := engines[c.Dialect]
		if !ok {
			var err error
			if engine, err = expr.New(c.Dialect); err != nil {
				return results, fmt.Errorf("case %q: %w", c.ID, err)
			}
			engines[c.Dialect] = engine
		}

		start := time.Now()
		e, res, err := rec.Evaluate(ctx, engine, domain.SourceCLI, c.Expression)
		r := Result{
			Case:    c,
			Postfix: e.Postfix,
			Err:     err,
			Latency: time.Since(start),
		}
		if err == nil {
			r.Got = res.String()
		}
		r.Passed, r.Reason = check(c, res, err, s.Tolerance)
		results = append(results, r)
	}
	return results, nil
}

func check(c Case, res expr.Result, err error, tolerance float64) (bool, string) {
	if c.Error != "" {
		if err == nil {
			return false, fmt.Sprintf("expected %s error, got %s", c.Error, res.String())
		}
		switch c.Error {
		case ErrMalformed:
			var me *apperr.MalformedExpressionError
			if !errors.As(err, &me) {
				return false, "expected malformed error, got: " + err.Error()
			}
		case ErrUnderflow:
			var se *apperr.StackUnderflowError
			if !errors.As(err, &se) {
				return false, "expected underflow error, got: " + err.Error()
			}
		}
		return true, ""
	}

	if err != nil {
		return false, err.Error()
	}

	if c.Dialect == operator.Boolean {
		want, _ := strconv.ParseBool(c.Expect)
		if res.Bool != want {
			return false, fmt.Sprintf("expected %t, got %t", want, res.Bool)
		}
		return true, ""
	}

	want, _ := strconv.ParseFloat(c.Expect, 64)
	if math.Abs(res.Number-want) > tolerance {
		return false, fmt.Sprintf("expected %s, got %s", c.Expect, res.String())
	}
	return true, ""
}
