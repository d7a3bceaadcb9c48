package ltl

import "fmt"

// NonMonotonicTimeError is returned by Runtime.RegisterState when the new
// timestamp is strictly earlier than the runtime's current time.
type NonMonotonicTimeError struct {
	Previous Time
	Attempted Time
}

func (e *NonMonotonicTimeError) Error() string {
	return fmt.Sprintf("non-monotonic time: attempted %s after %s", e.Attempted, e.Previous)
}

// EmptyTraceError is returned by Test when given an empty trace.
type EmptyTraceError struct{}

func (e *EmptyTraceError) Error() string {
	return "empty trace"
}

// FutureAccessError is returned by Cell.At when the requested time is later
// than the cell's current time.
type FutureAccessError struct {
	Requested Time
	Current   Time
}

func (e *FutureAccessError) Error() string {
	return fmt.Sprintf("future access: requested %s, current time is %s", e.Requested, e.Current)
}

// UnknownTimeError is returned by Cell.At when the requested time was never
// admitted, or predates the cell's own registration.
type UnknownTimeError struct {
	Requested Time
}

func (e *UnknownTimeError) Error() string {
	return fmt.Sprintf("unknown time: %s was never admitted for this cell", e.Requested)
}

// ExtractorFailedError wraps an error raised by a user extractor function
// during state admission, or by a thunk closure during evaluation (Cell
// "<thunk>"), for example a failed cell read.
type ExtractorFailedError struct {
	Cell  string
	Cause error
}

func (e *ExtractorFailedError) Error() string {
	return fmt.Sprintf("extractor %q failed: %v", e.Cell, e.Cause)
}

func (e *ExtractorFailedError) Unwrap() error {
	return e.Cause
}

// CurrentWithoutAdmissionError is returned by Cell.Current before any state
// has ever been admitted to the owning Runtime.
type CurrentWithoutAdmissionError struct{}

func (e *CurrentWithoutAdmissionError) Error() string {
	return "current: no state has been admitted yet"
}

// LateRegistrationError is returned by Runtime.RegisterExtractor once a
// state has already been admitted.
type LateRegistrationError struct{}

func (e *LateRegistrationError) Error() string {
	return "extractors must be registered before the first state is admitted"
}

// BoundAlreadySetError is a programmer error: within(...) was called twice
// on the same Always/Eventually builder.
type BoundAlreadySetError struct {
	Operator string
}

func (e *BoundAlreadySetError) Error() string {
	return fmt.Sprintf("within() already set a bound for %s", e.Operator)
}

// UnboundedEventuallyError names the error kind an unbounded eventually(x)
// would raise. EventuallyBuilder.Within (formula.go) makes that condition
// statically unconstructible — there is no way to obtain a Formula from
// Eventually(...) without first calling Within — so nothing ever
// constructs this type at runtime. It exists only so the error taxonomy
// has a name for the case the type system already rules out.
type UnboundedEventuallyError struct{}

func (e *UnboundedEventuallyError) Error() string {
	return "eventually(...) requires within(...); there is no honest way to resolve an unbounded eventually online"
}

// NegationOfModalError is a programmer error: Not(...) was applied directly
// to a Next/Always/Eventually formula.
type NegationOfModalError struct {
	Operator string
}

func (e *NegationOfModalError) Error() string {
	return fmt.Sprintf("not() cannot wrap %s directly; rewrite the property instead (e.g. always(not p) rather than not(eventually(p)))", e.Operator)
}
