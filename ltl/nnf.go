package ltl

// PushNegations rewrites f into an equivalent formula where every Not sits
// directly over a Pure or Thunk leaf, by pushing negations inward with De
// Morgan's laws and double-negation elimination.
//
// The evaluator itself never does this rewrite implicitly: a bare
// not(eventually(p)) is an evaluation-time error (NegationOfModalError)
// rather than a silently-accepted always(not p), because the two are only
// equivalent once the bound on eventually is fixed, and the evaluator
// would rather force the caller to write the bounded form they mean. This
// is exposed separately for callers who want to normalise a formula before
// constructing it by hand, or for tooling that displays an equivalent
// rewritten form.
func PushNegations(f Formula) Formula {
	return pushNegations(f, false)
}

// pushNegations rewrites f, tracking whether an odd number of negations is
// still pending above it (negate).
func pushNegations(f Formula, negate bool) Formula {
	switch f.kind {
	case KindPure:
		if negate {
			return Pure(!f.value)
		}
		return f

	case KindThunk:
		if !negate {
			return f
		}
		thunk := f.thunk
		return Lift(func() Formula {
			resolved, err := invokeThunk(thunk)
			if err != nil {
				panic(err)
			}
			return pushNegations(resolved, true)
		})

	case KindNot:
		return pushNegations(*f.sub, !negate)

	case KindAnd:
		left := pushNegations(*f.left, negate)
		right := pushNegations(*f.right, negate)
		if negate {
			return Or(left, right)
		}
		return And(left, right)

	case KindOr:
		left := pushNegations(*f.left, negate)
		right := pushNegations(*f.right, negate)
		if negate {
			return And(left, right)
		}
		return Or(left, right)

	case KindImplies:
		if negate {
			// not(p implies q) === p and not(q)
			return And(pushNegations(*f.left, false), pushNegations(*f.right, true))
		}
		// p implies q === not(p) or q
		return Or(pushNegations(*f.left, true), pushNegations(*f.right, false))

	case KindNext, KindAlways, KindEventually:
		if negate {
			panic(&NegationOfModalError{Operator: f.kind.String()})
		}
		sub := pushNegations(*f.sub, false)
		f.sub = &sub
		return f
	}
	panic("unreachable formula kind")
}
