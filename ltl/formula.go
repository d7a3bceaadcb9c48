package ltl

// Kind discriminates the variants of Formula. Dispatch throughout this
// package is an explicit switch over Kind rather than interface methods,
// so every case is spelled out where a reviewer can check it for
// exhaustiveness rather than resolved implicitly.
type Kind int

const (
	KindPure Kind = iota
	KindThunk
	KindNot
	KindAnd
	KindOr
	KindImplies
	KindNext
	KindAlways
	KindEventually
)

func (k Kind) String() string {
	switch k {
	case KindPure:
		return "pure"
	case KindThunk:
		return "thunk"
	case KindNot:
		return "not"
	case KindAnd:
		return "and"
	case KindOr:
		return "or"
	case KindImplies:
		return "implies"
	case KindNext:
		return "next"
	case KindAlways:
		return "always"
	case KindEventually:
		return "eventually"
	default:
		return "unknown"
	}
}

// Formula is an LTL formula, immutable once constructed and freely shared
// between containing formulas (it forms a DAG, never a cycle, since every
// constructor here is bottom-up).
type Formula struct {
	kind Kind

	pretty string
	value  bool          // KindPure
	thunk  func() Formula // KindThunk

	left, right *Formula // KindAnd/KindOr/KindImplies(antecedent=left, consequent=right)
	sub         *Formula // KindNot/KindNext/KindAlways/KindEventually

	bound *Duration // KindAlways (optional), KindEventually (required once built)
}

// Kind reports the formula's variant.
func (f Formula) Kind() Kind { return f.kind }

// Pretty returns the formula's prettyprint string, falling back to a
// structural rendering when none was supplied at construction. See
// RenderFormula for a full tree rendering.
func (f Formula) Pretty() string {
	if f.pretty != "" {
		return f.pretty
	}
	return RenderFormula(f)
}

// WithPretty attaches a human-readable name to a Pure or Thunk leaf.
func (f Formula) WithPretty(pretty string) Formula {
	if f.kind != KindPure && f.kind != KindThunk {
		panic("WithPretty only applies to pure or thunk leaves")
	}
	f.pretty = pretty
	return f
}

// Pure builds a leaf carrying a precomputed boolean.
func Pure(b bool) Formula {
	pretty := "false"
	if b {
		pretty = "true"
	}
	return Formula{kind: KindPure, value: b, pretty: pretty}
}

// Now lifts a boolean-producing closure into a Thunk that, when observed,
// resolves to Pure(fn()). The closure is invoked exactly once per
// evaluation site.
func Now(fn func() bool) Formula {
	return Formula{kind: KindThunk, pretty: "<thunk>", thunk: func() Formula {
		return Pure(fn())
	}}
}

// Lift wraps a closure that itself produces a Formula, deferred until
// evaluation time so it observes current cell values.
func Lift(fn func() Formula) Formula {
	return Formula{kind: KindThunk, pretty: "<thunk>", thunk: fn}
}

// Not negates a formula. Not directly wrapping Next/Always/Eventually is
// rejected at evaluation time (NegationOfModalError), not here — the
// subformula is opaque at construction (it may itself be a Thunk that only
// resolves to a modal later).
func Not(f Formula) Formula {
	return Formula{kind: KindNot, sub: &f}
}

// And builds a conjunction.
func And(left, right Formula) Formula {
	return Formula{kind: KindAnd, left: &left, right: &right}
}

// Or builds a disjunction.
func Or(left, right Formula) Formula {
	return Formula{kind: KindOr, left: &left, right: &right}
}

// Implies builds a classical implication antecedent -> consequent.
func Implies(antecedent, consequent Formula) Formula {
	return Formula{kind: KindImplies, left: &antecedent, right: &consequent}
}

// Next defers a formula to be evaluated at the next admitted state.
func Next(f Formula) Formula {
	return Formula{kind: KindNext, sub: &f}
}

// Always builds an unbounded "for all future admitted states" formula.
// Chain .Within(n, unit) to bound it to a fixed window.
func Always(f Formula) Formula {
	return Formula{kind: KindAlways, sub: &f}
}

// Within attaches a Duration bound to an Always formula. Panics with
// BoundAlreadySetError if a bound is already attached, and with a plain
// message if called on anything but an Always formula (Eventually's bound
// is mandatory and handled by EventuallyBuilder instead, so a bare,
// unbounded Eventually formula is unconstructible).
func (f Formula) Within(amount int64, unit Unit) Formula {
	if f.kind != KindAlways {
		panic("Within only applies to always(...) formulas; eventually(...) requires within(...) immediately")
	}
	if f.bound != nil {
		panic(&BoundAlreadySetError{Operator: "always"})
	}
	d := NewDuration(amount, unit)
	f.bound = &d
	return f
}

// EventuallyBuilder is the mandatory intermediate state of eventually(...):
// there is no way to obtain a bare, unbounded Eventually Formula, because
// spec-wise there is no sound way to resolve one online.
type EventuallyBuilder struct {
	sub Formula
}

// Eventually begins building an eventually(sub) formula. The result must be
// bounded with .Within(...) before it is a usable Formula.
func Eventually(sub Formula) EventuallyBuilder {
	return EventuallyBuilder{sub: sub}
}

// Within attaches the mandatory Duration bound and returns the Formula.
func (b EventuallyBuilder) Within(amount int64, unit Unit) Formula {
	d := NewDuration(amount, unit)
	sub := b.sub
	return Formula{kind: KindEventually, sub: &sub, bound: &d}
}
