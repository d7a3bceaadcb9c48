package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kripkelabs/ltlwatch/ltl"
)

type explainOptions struct {
	*rootOptions
	scenario    string
	tracePath   string
	limit       int
	deadlineSec int64
}

// newExplainCommand builds a command that always prints the formula and the
// value after every admitted state, regardless of verdict, stopping at the
// first state whose value is no longer pending — useful for inspecting a
// still-pending residual's shape, which `run` only prints for an
// Inconclusive result.
func newExplainCommand(rootOpts *rootOptions) *cobra.Command {
	opts := &explainOptions{rootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:           "explain",
		Short:         "print a scenario's formula and the full evaluation trace over a fixture",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return explainScenario(cmd, opts)
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

func explainScenario(cmd *cobra.Command, opts *explainOptions) error {
	s, err := lookupScenario(opts.scenario)
	if err != nil {
		return WrapExitError(ExitCommandError, "bad scenario", err)
	}

	fix, err := loadFixture(opts.tracePath)
	if err != nil {
		return WrapExitError(ExitCommandError, "bad fixture", err)
	}
	points := fix.tracePoints()
	if len(points) == 0 {
		return WrapExitError(ExitCommandError, "empty fixture", nil)
	}

	rt := ltl.NewRuntime[genericState]()
	formula := s.build(rt, opts.limit, opts.deadlineSec)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "formula: %s\n", formula.Pretty())

	t, err := rt.RegisterState(points[0].State, points[0].TimestampMs)
	if err != nil {
		return WrapExitError(ExitCommandError, "admission error", err)
	}
	value, err := ltl.Evaluate(formula, t)
	if err != nil {
		return WrapExitError(ExitCommandError, "evaluation error", err)
	}
	fmt.Fprintf(out, "t=%s: %s\n", t, describeValue(value))

	for _, p := range points[1:] {
		if value.Kind() != ltl.ValueResidualKind {
			break
		}
		residual, _ := value.ResidualValue()
		t, err = rt.RegisterState(p.State, p.TimestampMs)
		if err != nil {
			return WrapExitError(ExitCommandError, "admission error", err)
		}
		value, err = ltl.Step(residual, t)
		if err != nil {
			return WrapExitError(ExitCommandError, "evaluation error", err)
		}
		fmt.Fprintf(out, "t=%s: %s\n", t, describeValue(value))
	}

	return nil
}

func describeValue(v ltl.Value) string {
	switch v.Kind() {
	case ltl.ValueTrueKind:
		return "true"
	case ltl.ValueFalseKind:
		violation, _ := v.Violation()
		return "false: " + ltl.RenderViolation(violation)
	default:
		residual, _ := v.ResidualValue()
		return "pending: " + ltl.RenderResidual(residual)
	}
}
