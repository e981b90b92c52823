package main

import (
	"flag"
	"fmt"

	"github.com/DjordjeVuckovic/exprtree/internal/types/operator"
	"github.com/DjordjeVuckovic/exprtree/pkg/config/env"
)

const defaultLogLevel = "warn"

type cliConfig struct {
	Dialect    string
	Expression string
	SuitePath  string
	Output     string
	History    bool
	LogLevel   string
}

func parseFlags(args []string) (cliConfig, error) {
	cfg := cliConfig{}

	fs := flag.NewFlagSet("exprcalc", flag.ContinueOnError)
	fs.StringVar(&cfg.Dialect, "dialect", string(operator.DefaultDialect), "Expression dialect: arithmetic or boolean")
	fs.StringVar(&cfg.Expression, "expr", "", "Infix expression to evaluate")
	fs.StringVar(&cfg.SuitePath, "suite", "", "Path to an expression suite YAML")
	fs.StringVar(&cfg.Output, "output", "", "Write the suite report as JSON to this path")
	fs.BoolVar(&cfg.History, "history", false, "Record evaluations to the store selected by HISTORY_STORAGE")
	fs.StringVar(&cfg.LogLevel, "log-level", env.String("LOG_LEVEL", defaultLogLevel), "Log level: debug, info, warn or error (overrides LOG_LEVEL)")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if cfg.Expression == "" && cfg.SuitePath == "" {
		if fs.NArg() == 0 {
			return cfg, fmt.Errorf("either -expr or -suite is required")
		}
		cfg.Expression = fs.Arg(0)
	}
	if cfg.Expression != "" && cfg.SuitePath != "" {
		return cfg, fmt.Errorf("-expr and -suite are mutually exclusive")
	}
	if _, err := operator.ParseDialect(cfg.Dialect); err != nil {
		return cfg, err
	}
	return cfg, nil
}
