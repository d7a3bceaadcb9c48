package ltl

import "github.com/google/uuid"

// TestOutcomeKind discriminates the three possible results of running a
// formula over a complete trace.
type TestOutcomeKind int

const (
	TestPassed TestOutcomeKind = iota
	TestFailed
	TestInconclusive
)

func (k TestOutcomeKind) String() string {
	switch k {
	case TestPassed:
		return "passed"
	case TestFailed:
		return "failed"
	case TestInconclusive:
		return "inconclusive"
	default:
		return "unknown"
	}
}

// TestResult is the outcome of running Test to the end of a trace: Passed,
// Failed with the violation that falsified the formula, or Inconclusive
// with the residual still pending when the trace ran out (for example an
// always(...) that was never contradicted, or an eventually(...) whose
// deadline the trace never reached).
type TestResult struct {
	kind        TestOutcomeKind
	violation   *ViolationTree
	residual    *Residual
	admissionID uuid.UUID
}

// Kind reports which of Passed/Failed/Inconclusive this result holds.
func (r TestResult) Kind() TestOutcomeKind { return r.kind }

// AdmissionID returns the uuid stamped on the trace's last admitted state,
// for cross-referencing this verdict with Runtime's admission logs.
func (r TestResult) AdmissionID() uuid.UUID { return r.admissionID }

// Violation returns the violation tree and true if this result is Failed.
func (r TestResult) Violation() (ViolationTree, bool) {
	if r.kind != TestFailed {
		return ViolationTree{}, false
	}
	return *r.violation, true
}

// PendingResidual returns the residual still outstanding and true if this
// result is Inconclusive.
func (r TestResult) PendingResidual() (Residual, bool) {
	if r.kind != TestInconclusive {
		return Residual{}, false
	}
	return *r.residual, true
}

// TracePoint is one admitted (state, timestamp) pair of an offline trace.
type TracePoint[S any] struct {
	State       S
	TimestampMs int64
}

// Test drives formula over trace from the beginning, feeding each point
// through runtime in order via Evaluate/Step, and classifies the
// final Value. It returns EmptyTraceError if trace has no points.
//
// Test is a convenience for offline fixtures (golden traces, replay logs):
// an online caller instead calls Runtime.RegisterState and Evaluate/Step
// directly as states arrive, since Test always replays a trace in one
// shot and has no notion of a formula outliving the call.
func Test[S any](runtime *Runtime[S], formula Formula, trace []TracePoint[S]) (TestResult, error) {
	if len(trace) == 0 {
		return TestResult{}, &EmptyTraceError{}
	}

	first := trace[0]
	t, err := runtime.RegisterState(first.State, first.TimestampMs)
	if err != nil {
		return TestResult{}, err
	}
	value, err := Evaluate(formula, t)
	if err != nil {
		return TestResult{}, err
	}

	for _, point := range trace[1:] {
		if result, done := classify(runtime, value); done {
			return result, nil
		}

		t, err = runtime.RegisterState(point.State, point.TimestampMs)
		if err != nil {
			return TestResult{}, err
		}
		value, err = Step(*value.residual, t)
		if err != nil {
			return TestResult{}, err
		}
	}

	admissionID, _ := runtime.LastAdmissionID()
	switch value.kind {
	case ValueTrueKind:
		return TestResult{kind: TestPassed, admissionID: admissionID}, nil
	case ValueFalseKind:
		return TestResult{kind: TestFailed, violation: value.violation, admissionID: admissionID}, nil
	default:
		return TestResult{kind: TestInconclusive, residual: value.residual, admissionID: admissionID}, nil
	}
}

// classify reports a terminal TestResult for value if it is already
// True/False, stamped with the runtime's most recent admission id.
func classify[S any](runtime *Runtime[S], value Value) (TestResult, bool) {
	admissionID, _ := runtime.LastAdmissionID()
	switch value.kind {
	case ValueTrueKind:
		return TestResult{kind: TestPassed, admissionID: admissionID}, true
	case ValueFalseKind:
		return TestResult{kind: TestFailed, violation: value.violation, admissionID: admissionID}, true
	default:
		return TestResult{}, false
	}
}
