// Command exprcalc evaluates a single expression or runs an expression suite.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/exprtree/internal/domain"
	"github.com/DjordjeVuckovic/exprtree/internal/expr"
	"github.com/DjordjeVuckovic/exprtree/internal/history"
	"github.com/DjordjeVuckovic/exprtree/internal/report"
	"github.com/DjordjeVuckovic/exprtree/internal/storage"
	"github.com/DjordjeVuckovic/exprtree/internal/storage/factory"
	"github.com/DjordjeVuckovic/exprtree/internal/suite"
	"github.com/DjordjeVuckovic/exprtree/internal/types/operator"
	"github.com/DjordjeVuckovic/exprtree/pkg/logging"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout))
}

func run(ctx context.Context, args []string, out io.Writer) int {
	cfg, err := parseFlags(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	slog.SetDefault(slog.New(logging.NewHandler(os.Stderr, logging.Config{Level: level})))

	var store storage.Storer
	if cfg.History {
		storageCfg, err := factory.LoadEnv()
		if err != nil {
			slog.Error("Failed to load storage configuration from environment", "error", err)
			return 1
		}
		s, cleanup, err := factory.NewStore(ctx, *storageCfg)
		if err != nil {
			slog.Error("Failed to create history store", "error", err)
			return 1
		}
		defer cleanup()
		store = s
	}
	rec := history.NewRecorder(store)

	if cfg.SuitePath != "" {
		return runSuite(ctx, cfg, rec, out)
	}
	return runExpression(ctx, cfg, rec, out)
}

func runExpression(ctx context.Context, cfg cliConfig, rec *history.Recorder, out io.Writer) int {
	dialect, _ := operator.ParseDialect(cfg.Dialect)
	engine, err := expr.New(dialect)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	e, result, err := rec.Evaluate(ctx, engine, domain.SourceCLI, cfg.Expression)
	if e.Postfix != "" {
		fmt.Fprintf(out, "postfix: %s\n", e.Postfix)
	}
	if err != nil {
		fmt.Fprintf(out, "error:   %s\n", err)
		return 1
	}

	root, err := engine.BuildTree(e.Postfix)
	if err == nil && root != nil {
		fmt.Fprintf(out, "tree:    %s\n", root)
	}
	fmt.Fprintf(out, "result:  %s\n", result)
	return 0
}

func runSuite(ctx context.Context, cfg cliConfig, rec *history.Recorder, out io.Writer) int {
	s, err := suite.LoadFromFile(cfg.SuitePath)
	if err != nil {
		slog.Error("Failed to load suite", "path", cfg.SuitePath, "error", err)
		return 1
	}

	results, err := suite.Run(ctx, s, rec)
	if err != nil {
		slog.Error("Suite run aborted", "error", err)
		return 1
	}

	r := report.New(s.Name, results)
	report.WriteTable(r, out)

	if cfg.Output != "" {
		if err := report.WriteJSON(r, cfg.Output); err != nil {
			slog.Error("Failed to write report", "path", cfg.Output, "error", err)
			return 1
		}
	}

	if !r.OK() {
		return 1
	}
	return 0
}
