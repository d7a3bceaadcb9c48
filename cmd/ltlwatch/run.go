package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/kripkelabs/ltlwatch/ltl"
)

type runOptions struct {
	*rootOptions
	scenario    string
	tracePath   string
	limit       int
	deadlineSec int64
}

func newRunCommand(rootOpts *rootOptions) *cobra.Command {
	opts := &runOptions{rootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "run a scenario's formula against a trace fixture and report the verdict",
		Long: `Drive one of the built-in formula scenarios (max_notifications,
error_disappears, eventually) against a YAML trace fixture, reporting
Passed, Failed (with the violation that falsified it), or Inconclusive
(with the residual still pending when the trace ran out).

Example:
  ltlwatch run --scenario max_notifications --trace fixtures/notifications.yaml --limit 5`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenario(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.scenario, "scenario", "", "scenario name (required)")
	cmd.Flags().StringVar(&opts.tracePath, "trace", "", "path to a YAML trace fixture (required)")
	cmd.Flags().IntVar(&opts.limit, "limit", 5, "limit parameter for max_notifications")
	cmd.Flags().Int64Var(&opts.deadlineSec, "deadline", 5, "deadline in seconds for error_disappears/eventually")
	_ = cmd.MarkFlagRequired("scenario")
	_ = cmd.MarkFlagRequired("trace")

	return cmd
}

func runScenario(cmd *cobra.Command, opts *runOptions) error {
	s, err := lookupScenario(opts.scenario)
	if err != nil {
		return WrapExitError(ExitCommandError, "bad scenario", err)
	}

	fix, err := loadFixture(opts.tracePath)
	if err != nil {
		return WrapExitError(ExitCommandError, "bad fixture", err)
	}

	rt := ltl.NewRuntime[genericState]()
	formula := s.build(rt, opts.limit, opts.deadlineSec)

	slog.Info("running scenario", "scenario", s.name, "points", len(fix.Trace))

	result, err := ltl.Test(rt, formula, fix.tracePoints())
	if err != nil {
		return WrapExitError(ExitCommandError, "evaluation error", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "formula: %s\n", formula.Pretty())
	fmt.Fprintf(out, "verdict: %s\n", result.Kind())

	switch result.Kind() {
	case ltl.TestFailed:
		violation, _ := result.Violation()
		fmt.Fprintf(out, "violation: %s\n", ltl.RenderViolation(violation))
		return WrapExitError(ExitFailure, "formula violated", nil)
	case ltl.TestInconclusive:
		residual, _ := result.PendingResidual()
		fmt.Fprintf(out, "pending: %s\n", ltl.RenderResidual(residual))
	}
	return nil
}
