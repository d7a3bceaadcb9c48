package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kripkelabs/ltlwatch/ltl"
)

// genericState is the state shape a YAML trace fixture is decoded into:
// every field known scenarios might extract from, left at its zero value
// when the fixture omits it.
type genericState struct {
	Count int    `yaml:"count"`
	Err   string `yaml:"err"`
	B     bool   `yaml:"b"`
}

type fixturePoint struct {
	TimeMs int64        `yaml:"time_ms"`
	State  genericState `yaml:",inline"`
}

type fixture struct {
	Trace []fixturePoint `yaml:"trace"`
}

func loadFixture(path string) (*fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fixture %s: %w", path, err)
	}
	var f fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing fixture %s: %w", path, err)
	}
	return &f, nil
}

func (f *fixture) tracePoints() []ltl.TracePoint[genericState] {
	points := make([]ltl.TracePoint[genericState], len(f.Trace))
	for i, p := range f.Trace {
		points[i] = ltl.TracePoint[genericState]{State: p.State, TimestampMs: p.TimeMs}
	}
	return points
}

// scenario names a built-in formula over genericState, parameterized by the
// run/explain commands' flags.
type scenario struct {
	name  string
	build func(rt *ltl.Runtime[genericState], limit int, deadlineSeconds int64) ltl.Formula
}

var scenarios = map[string]scenario{
	"max_notifications": {
		name: "max_notifications",
		build: func(rt *ltl.Runtime[genericState], limit int, _ int64) ltl.Formula {
			count := ltl.Extract(rt, func(s genericState) int { return s.Count }, ltl.WithName[int]("count"))
			return ltl.Always(ltl.Now(func() bool { return count.Current() <= limit }).
				WithPretty(fmt.Sprintf("count <= %d", limit)))
		},
	},
	"error_disappears": {
		name: "error_disappears",
		build: func(rt *ltl.Runtime[genericState], _ int, deadlineSeconds int64) ltl.Formula {
			errCell := ltl.Extract(rt, func(s genericState) string { return s.Err }, ltl.WithName[string]("err"))
			return ltl.Always(ltl.Implies(
				ltl.Now(func() bool { return errCell.Current() != "" }).WithPretty("err != null"),
				ltl.Lift(func() ltl.Formula {
					return ltl.Eventually(
						ltl.Now(func() bool { return errCell.Current() == "" }).WithPretty("err == null"),
					).Within(deadlineSeconds, ltl.Seconds)
				}),
			))
		},
	},
	"eventually": {
		name: "eventually",
		build: func(rt *ltl.Runtime[genericState], _ int, deadlineSeconds int64) ltl.Formula {
			b := ltl.Extract(rt, func(s genericState) bool { return s.B }, ltl.WithName[bool]("b"))
			return ltl.Eventually(ltl.Now(func() bool { return b.Current() }).WithPretty("b")).
				Within(deadlineSeconds, ltl.Seconds)
		},
	},
}

func lookupScenario(name string) (scenario, error) {
	s, ok := scenarios[name]
	if !ok {
		return scenario{}, fmt.Errorf("unknown scenario %q (known: max_notifications, error_disappears, eventually)", name)
	}
	return s, nil
}
