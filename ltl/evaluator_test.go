package ltl

import "testing"

func mustValue(t *testing.T, v Value, err error) Value {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return v
}

func TestEvaluatePureLeaves(t *testing.T) {
	val1, err1 := Evaluate(Pure(true), NewTime(0))
	v := mustValue(t, val1, err1)
	if v.Kind() != ValueTrueKind {
		t.Errorf("expected Pure(true) to evaluate True, got %v", v.Kind())
	}

	val2, err2 := Evaluate(Pure(false), NewTime(0))
	v = mustValue(t, val2, err2)
	if v.Kind() != ValueFalseKind {
		t.Errorf("expected Pure(false) to evaluate False, got %v", v.Kind())
	}
}

func TestEvaluateNot(t *testing.T) {
	val1, err1 := Evaluate(Not(Pure(true)), NewTime(0))
	v := mustValue(t, val1, err1)
	if v.Kind() != ValueFalseKind {
		t.Errorf("expected not(true) to be False, got %v", v.Kind())
	}

	val2, err2 := Evaluate(Not(Pure(false)), NewTime(0))
	v = mustValue(t, val2, err2)
	if v.Kind() != ValueTrueKind {
		t.Errorf("expected not(false) to be True, got %v", v.Kind())
	}
}

func TestEvaluateNotOfModalRejected(t *testing.T) {
	_, err := Evaluate(Not(Next(Pure(true))), NewTime(0))
	if err == nil {
		t.Fatal("expected an error negating next(...) directly")
	}
	if _, ok := err.(*NegationOfModalError); !ok {
		t.Errorf("expected NegationOfModalError, got %T", err)
	}
}

func TestEvaluateAndOr(t *testing.T) {
	cases := []struct {
		name  string
		left  bool
		right bool
		want  ValueKind
	}{
		{"and true/true", true, true, ValueTrueKind},
		{"and true/false", true, false, ValueFalseKind},
		{"and false/false", false, false, ValueFalseKind},
	}
	for _, c := range cases {
		val, err := Evaluate(And(Pure(c.left), Pure(c.right)), NewTime(0))
		v := mustValue(t, val, err)
		if v.Kind() != c.want {
			t.Errorf("%v: expected %v, got %v", c.name, c.want, v.Kind())
		}
	}

	orCases := []struct {
		name  string
		left  bool
		right bool
		want  ValueKind
	}{
		{"or true/false", true, false, ValueTrueKind},
		{"or false/false", false, false, ValueFalseKind},
		{"or false/true", false, true, ValueTrueKind},
	}
	for _, c := range orCases {
		val, err := Evaluate(Or(Pure(c.left), Pure(c.right)), NewTime(0))
		v := mustValue(t, val, err)
		if v.Kind() != c.want {
			t.Errorf("%v: expected %v, got %v", c.name, c.want, v.Kind())
		}
	}
}

func TestEvaluateImplies(t *testing.T) {
	val1, err1 := Evaluate(Implies(Pure(false), Pure(false)), NewTime(0))
	v := mustValue(t, val1, err1)
	if v.Kind() != ValueTrueKind {
		t.Error("expected false implies anything to be True")
	}

	val2, err2 := Evaluate(Implies(Pure(true), Pure(false)), NewTime(0))
	v = mustValue(t, val2, err2)
	if v.Kind() != ValueFalseKind {
		t.Error("expected true implies false to be False")
	}

	val3, err3 := Evaluate(Implies(Pure(true), Pure(true)), NewTime(0))
	v = mustValue(t, val3, err3)
	if v.Kind() != ValueTrueKind {
		t.Error("expected true implies true to be True")
	}
}

func TestEvaluateNextYieldsResidual(t *testing.T) {
	val, err := Evaluate(Next(Pure(true)), NewTime(0))
	v := mustValue(t, val, err)
	if v.Kind() != ValueResidualKind {
		t.Fatalf("expected next(...) to yield a residual at evaluation time, got %v", v.Kind())
	}

	resumedVal, resumedErr := Step(*v.residual, NewTime(10))
	resumed := mustValue(t, resumedVal, resumedErr)
	if resumed.Kind() != ValueTrueKind {
		t.Errorf("expected next(true) to resolve True on step, got %v", resumed.Kind())
	}
}

func TestEvaluateAlwaysUnboundedStaysResidualUntilViolated(t *testing.T) {
	held := true
	f := Always(Now(func() bool { return held }))

	val1, err1 := Evaluate(f, NewTime(0))
	v := mustValue(t, val1, err1)
	if v.Kind() != ValueResidualKind {
		t.Fatalf("expected always(...) to be Residual while holding, got %v", v.Kind())
	}

	val2, err2 := Step(*v.residual, NewTime(10))
	v = mustValue(t, val2, err2)
	if v.Kind() != ValueResidualKind {
		t.Fatalf("expected always(...) to remain Residual while still holding, got %v", v.Kind())
	}

	held = false
	val3, err3 := Step(*v.residual, NewTime(20))
	v = mustValue(t, val3, err3)
	if v.Kind() != ValueFalseKind {
		t.Fatalf("expected always(...) to go False once the subformula breaks, got %v", v.Kind())
	}
}

func TestEvaluateAlwaysWithinExpiresTrue(t *testing.T) {
	f := Always(Pure(true)).Within(10, Milliseconds)

	val1, err1 := Evaluate(f, NewTime(0))
	v := mustValue(t, val1, err1)
	if v.Kind() != ValueResidualKind {
		t.Fatalf("expected a pending residual within the window, got %v", v.Kind())
	}

	val2, err2 := Step(*v.residual, NewTime(20))
	v = mustValue(t, val2, err2)
	if v.Kind() != ValueTrueKind {
		t.Fatalf("expected always(...) to become True once its deadline passes unbroken, got %v", v.Kind())
	}
}

func TestEvaluateEventuallyBecomesTrue(t *testing.T) {
	arrived := false
	f := Eventually(Now(func() bool { return arrived })).Within(100, Milliseconds)

	val1, err1 := Evaluate(f, NewTime(0))
	v := mustValue(t, val1, err1)
	if v.Kind() != ValueResidualKind {
		t.Fatalf("expected eventually(...) to be Residual before it happens, got %v", v.Kind())
	}

	arrived = true
	val2, err2 := Step(*v.residual, NewTime(50))
	v = mustValue(t, val2, err2)
	if v.Kind() != ValueTrueKind {
		t.Fatalf("expected eventually(...) to become True once the subformula holds, got %v", v.Kind())
	}
}

func TestEvaluateEventuallyTimesOut(t *testing.T) {
	f := Eventually(Pure(false)).Within(10, Milliseconds)

	val1, err1 := Evaluate(f, NewTime(0))
	v := mustValue(t, val1, err1)
	if v.Kind() != ValueResidualKind {
		t.Fatalf("expected a pending residual, got %v", v.Kind())
	}

	val2, err2 := Step(*v.residual, NewTime(20))
	v = mustValue(t, val2, err2)
	if v.Kind() != ValueFalseKind {
		t.Fatalf("expected eventually(...) to go False once its deadline is exceeded, got %v", v.Kind())
	}
	violation, ok := v.Violation()
	if !ok {
		t.Fatal("expected a violation tree")
	}
	if violation.Kind() != ViolationEventually {
		t.Errorf("expected ViolationEventually, got %s", violation.Kind())
	}
}

func TestEvaluateThunkPropagatesExtractorFailure(t *testing.T) {
	boom := &ExtractorFailedError{Cell: "door", Cause: &CurrentWithoutAdmissionError{}}
	f := Lift(func() Formula {
		panic(boom)
	})

	_, err := Evaluate(f, NewTime(0))
	if err == nil {
		t.Fatal("expected the panic raised inside the thunk to surface as an error")
	}
	failure, ok := err.(*ExtractorFailedError)
	if !ok {
		t.Fatalf("expected ExtractorFailedError, got %T", err)
	}
	if failure.Cause != boom {
		t.Errorf("expected the original panic value to be preserved as Cause, got %v", failure.Cause)
	}
}
