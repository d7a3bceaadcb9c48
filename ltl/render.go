package ltl

import (
	"fmt"
	"strings"
)

// RenderFormula produces a structural, parenthesised rendering of a
// formula for use when no prettier name was attached with WithPretty.
func RenderFormula(f Formula) string {
	switch f.kind {
	case KindPure:
		if f.pretty != "" {
			return f.pretty
		}
		if f.value {
			return "true"
		}
		return "false"
	case KindThunk:
		if f.pretty != "" {
			return f.pretty
		}
		return "<thunk>"
	case KindNot:
		return fmt.Sprintf("not(%s)", RenderFormula(*f.sub))
	case KindAnd:
		return fmt.Sprintf("(%s and %s)", RenderFormula(*f.left), RenderFormula(*f.right))
	case KindOr:
		return fmt.Sprintf("(%s or %s)", RenderFormula(*f.left), RenderFormula(*f.right))
	case KindImplies:
		return fmt.Sprintf("(%s implies %s)", RenderFormula(*f.left), RenderFormula(*f.right))
	case KindNext:
		return fmt.Sprintf("next(%s)", RenderFormula(*f.sub))
	case KindAlways:
		if f.bound != nil {
			return fmt.Sprintf("always(%s within %s)", RenderFormula(*f.sub), f.bound.String())
		}
		return fmt.Sprintf("always(%s)", RenderFormula(*f.sub))
	case KindEventually:
		return fmt.Sprintf("eventually(%s within %s)", RenderFormula(*f.sub), f.bound.String())
	default:
		return "<unknown formula>"
	}
}

// RenderViolation produces a human-readable explanation of a violation
// tree, in the style of a test failure message: what failed, and when.
// The original this evaluator's algebra was ported from left the And/Or
// cases unhandled in its own renderer; this completes them: an And
// violation reports the earlier of its two branches' violations, and an Or
// violation reports both branches.
func RenderViolation(v ViolationTree) string {
	switch v.kind {
	case ViolationFalse:
		return fmt.Sprintf("condition was false at %s", v.time)
	case ViolationAtomic:
		return fmt.Sprintf("%s became true at %s, falsifying its negation", RenderFormula(*v.formula), v.time)
	case ViolationAlways:
		return fmt.Sprintf("always(%s) broke at %s (holding since %s): %s",
			RenderFormula(*v.formula), v.time, v.start, RenderViolation(*v.inner))
	case ViolationEventually:
		return fmt.Sprintf("eventually(%s) never became true (%s) by %s", RenderFormula(*v.formula), v.reason, v.time)
	case ViolationAnd:
		return fmt.Sprintf("conjunction failed at %s: %s", v.time, renderEarlierBranch(*v.left, *v.right))
	case ViolationOr:
		return fmt.Sprintf("disjunction failed at %s: both sides failed (%s; %s)",
			v.time, RenderViolation(*v.left), RenderViolation(*v.right))
	case ViolationImplies:
		return fmt.Sprintf("implication failed at %s: %s held, but %s",
			v.time, RenderFormula(*v.formula), RenderViolation(*v.consequent))
	default:
		return "<unknown violation>"
	}
}

func renderEarlierBranch(left, right ViolationTree) string {
	if left.time.IsBefore(right.time) || left.time.Equal(right.time) {
		return RenderViolation(left)
	}
	return RenderViolation(right)
}

// RenderResidual produces a short, indented description of a pending
// residual, intended for an interactive explain command rather than a
// failure report.
func RenderResidual(r Residual) string {
	var b strings.Builder
	renderResidualInto(&b, r, 0)
	return strings.TrimRight(b.String(), "\n")
}

func renderResidualInto(b *strings.Builder, r Residual, depth int) {
	indent := strings.Repeat("  ", depth)
	switch r.kind {
	case ResidualTrue:
		fmt.Fprintf(b, "%strue\n", indent)
	case ResidualFalse:
		fmt.Fprintf(b, "%sfalse: %s\n", indent, RenderViolation(*r.violation))
	case ResidualDerived:
		deadline := "unbounded"
		if r.end != nil {
			deadline = r.end.String()
		}
		fmt.Fprintf(b, "%spending %s(%s) since %s, deadline %s\n",
			indent, r.derived, RenderFormula(*r.formula), r.start, deadline)
	case ResidualAnd:
		fmt.Fprintf(b, "%sand:\n", indent)
		renderResidualInto(b, *r.left, depth+1)
		renderResidualInto(b, *r.right, depth+1)
	case ResidualOr:
		fmt.Fprintf(b, "%sor:\n", indent)
		renderResidualInto(b, *r.left, depth+1)
		renderResidualInto(b, *r.right, depth+1)
	case ResidualImplies:
		fmt.Fprintf(b, "%simplies (antecedent %s):\n", indent, RenderFormula(*r.formula))
		renderResidualInto(b, *r.left, depth+1)
		renderResidualInto(b, *r.right, depth+1)
	case ResidualAndAlways:
		fmt.Fprintf(b, "%sand-always %s since %s:\n", indent, RenderFormula(*r.formula), r.start)
		renderResidualInto(b, *r.left, depth+1)
		renderResidualInto(b, *r.right, depth+1)
	case ResidualOrEventually:
		fmt.Fprintf(b, "%sor-eventually %s since %s:\n", indent, RenderFormula(*r.formula), r.start)
		renderResidualInto(b, *r.left, depth+1)
		renderResidualInto(b, *r.right, depth+1)
	default:
		fmt.Fprintf(b, "%s<unknown residual>\n", indent)
	}
}
