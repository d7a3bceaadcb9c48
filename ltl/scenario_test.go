package ltl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kripkelabs/ltlwatch/examples"
	"github.com/kripkelabs/ltlwatch/ltl"
)

func TestScenarioMaxNotifications(t *testing.T) {
	rt, _, formula, trace := examples.MaxNotifications()

	result, err := ltl.Test(rt, formula, trace)
	require.NoError(t, err)
	require.Equal(t, ltl.TestFailed, result.Kind())

	violation, ok := result.Violation()
	require.True(t, ok)
	assert.Equal(t, ltl.ViolationAlways, violation.Kind())
	assert.Equal(t, int64(3000), violation.Time().Milliseconds())
}

func TestScenarioErrorDisappearsIsInconclusive(t *testing.T) {
	rt, _, formula, trace := examples.ErrorDisappears()

	result, err := ltl.Test(rt, formula, trace)
	require.NoError(t, err)
	assert.Equal(t, ltl.TestInconclusive, result.Kind())

	_, ok := result.PendingResidual()
	assert.True(t, ok)
}

func TestScenarioEventuallyTimesOut(t *testing.T) {
	rt, formula, trace := examples.EventuallyTimesOut()

	result, err := ltl.Test(rt, formula, trace)
	require.NoError(t, err)
	require.Equal(t, ltl.TestFailed, result.Kind())

	violation, ok := result.Violation()
	require.True(t, ok)
	assert.Equal(t, ltl.ViolationEventually, violation.Kind())
	assert.Equal(t, int64(3000), violation.Time().Milliseconds())
}

func TestScenarioEventuallySatisfied(t *testing.T) {
	rt, formula, trace := examples.EventuallySatisfied()

	result, err := ltl.Test(rt, formula, trace)
	require.NoError(t, err)
	assert.Equal(t, ltl.TestPassed, result.Kind())
}

func TestScenarioAndOfAlwaysShortCircuitsToFailingChild(t *testing.T) {
	rt, formula, trace := examples.AndOfAlways()

	result, err := ltl.Test(rt, formula, trace)
	require.NoError(t, err)
	require.Equal(t, ltl.TestFailed, result.Kind())

	violation, ok := result.Violation()
	require.True(t, ok)
	require.Equal(t, ltl.ViolationAlways, violation.Kind())
}

func TestScenarioNonMonotonicAdmissionRejected(t *testing.T) {
	_, first, second := examples.NonMonotonicAdmission()

	_, err := first()
	require.NoError(t, err)

	_, err = second()
	require.Error(t, err)
	assert.IsType(t, &ltl.NonMonotonicTimeError{}, err)
}
