// Package history evaluates expressions and records every attempt, successful
// or not, to a storage backend.
package history

import (
	"context"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/exprtree/internal/domain"
	"github.com/DjordjeVuckovic/exprtree/internal/expr"
	"github.com/DjordjeVuckovic/exprtree/internal/storage"
)

type Recorder struct {
	store storage.Storer
	now   func() time.Time
}

// NewRecorder returns a Recorder saving to store. A nil store disables recording.
func NewRecorder(store storage.Storer) *Recorder {
	return &Recorder{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Evaluate runs infix through engine and saves the outcome. The returned error
// is the evaluation error; a failure to save is logged and does not fail the call.
func (r *Recorder) Evaluate(ctx context.Context, engine expr.Engine, source, infix string) (domain.Evaluation, expr.Result, error) {
	e := domain.Evaluation{
		Source:     source,
		Dialect:    engine.Dialect(),
		Expression: infix,
	}.WithDefaults(r.now())

	result, err := run(engine, infix, &e)
	if err != nil {
		e.Error = err.Error()
	} else {
		e.Result = result.String()
	}

	r.save(ctx, e)
	return e, result, err
}

func run(engine expr.Engine, infix string, e *domain.Evaluation) (expr.Result, error) {
	postfix, root, err := engine.Compile(infix)
	e.Postfix = postfix
	if err != nil {
		return expr.Result{Dialect: engine.Dialect()}, err
	}
	return engine.Eval(root)
}

func (r *Recorder) save(ctx context.Context, e domain.Evaluation) {
	if r.store == nil {
		return
	}
	if _, err := r.store.Save(ctx, e); err != nil {
		slog.Error("failed to record evaluation", "id", e.ID, "source", e.Source, "error", err)
	}
}
