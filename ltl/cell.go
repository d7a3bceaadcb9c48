package ltl

import (
	"fmt"
	"sync"
)

// Cell is the read side of the extractor abstraction: current() and at()
// over a time-indexed history, both of which may fail (FutureAccessError,
// UnknownTimeError, CurrentWithoutAdmissionError) rather than return an
// error value, matching the rest of this package's thunk-facing API so a
// predicate closure can call Current()/At() inline without threading an
// error return through every boolean expression. TryCurrent/TryAt are the
// non-panicking equivalents for code that wants to handle the failure
// itself.
type Cell[T any] interface {
	Current() T
	At(t Time) T
	TryCurrent() (T, error)
	TryAt(t Time) (T, error)
}

// ExtractorCell is a Cell backed by a pure extraction function over a state
// S, with its results retained in a time-keyed history so predicates can
// look back at any previously admitted time.
type ExtractorCell[S, T any] struct {
	mu sync.RWMutex

	name     string
	fn       func(S) T
	snapshot func(T) T // optional deep-copy hook for non-scalar T

	hasValue    bool
	currentTime Time
	history     map[int64]T
}

// ExtractorOption configures an ExtractorCell at construction.
type ExtractorOption[T any] func(*extractorConfig[T])

type extractorConfig[T any] struct {
	name     string
	snapshot func(T) T
}

// WithName attaches a name used in ExtractorFailedError messages.
func WithName[T any](name string) ExtractorOption[T] {
	return func(c *extractorConfig[T]) { c.name = name }
}

// WithSnapshot supplies a deep-copy hook applied to every extracted value
// before it is retained, so later mutation of the source state (or a
// caller's mutation of a returned slice/map) cannot corrupt history.
func WithSnapshot[T any](fn func(T) T) ExtractorOption[T] {
	return func(c *extractorConfig[T]) { c.snapshot = fn }
}

// NewExtractorCell builds an ExtractorCell from a pure extraction function.
// It is not yet attached to a Runtime; see Extract or Runtime's
// RegisterExtractor.
func NewExtractorCell[S, T any](fn func(S) T, opts ...ExtractorOption[T]) *ExtractorCell[S, T] {
	cfg := extractorConfig[T]{name: "<extractor>"}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &ExtractorCell[S, T]{
		name:     cfg.name,
		fn:       fn,
		snapshot: cfg.snapshot,
		history:  make(map[int64]T),
	}
}

// extractorName identifies this cell in ExtractorFailedError messages.
func (c *ExtractorCell[S, T]) extractorName() string { return c.name }

// update applies the extraction function over state and records the
// result at time t. Called by Runtime.RegisterState in registration order.
// A panic in the extraction function (or snapshot hook) is returned as an
// error and nothing is recorded.
func (c *ExtractorCell[S, T]) update(state S, t Time) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if cause, ok := r.(error); ok {
				err = cause
				return
			}
			err = fmt.Errorf("%v", r)
		}
	}()
	value := c.fn(state)
	if c.snapshot != nil {
		value = c.snapshot(value)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hasValue = true
	c.currentTime = t
	c.history[t.Milliseconds()] = value
	return nil
}

// Current returns the value at the runtime's most recently admitted time.
// Panics with CurrentWithoutAdmissionError if no state has ever been
// admitted.
func (c *ExtractorCell[S, T]) Current() T {
	v, err := c.TryCurrent()
	if err != nil {
		panic(err)
	}
	return v
}

// TryCurrent is the non-panicking form of Current.
func (c *ExtractorCell[S, T]) TryCurrent() (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.hasValue {
		var zero T
		return zero, &CurrentWithoutAdmissionError{}
	}
	return c.history[c.currentTime.Milliseconds()], nil
}

// At returns the value recorded at time t. Panics with FutureAccessError if
// t is later than the current time, or UnknownTimeError if t was never
// admitted (including times before this cell was registered).
func (c *ExtractorCell[S, T]) At(t Time) T {
	v, err := c.TryAt(t)
	if err != nil {
		panic(err)
	}
	return v
}

// TryAt is the non-panicking form of At.
func (c *ExtractorCell[S, T]) TryAt(t Time) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var zero T
	if !c.hasValue {
		return zero, &CurrentWithoutAdmissionError{}
	}
	if c.currentTime.IsBefore(t) {
		return zero, &FutureAccessError{Requested: t, Current: c.currentTime}
	}
	if t.Equal(c.currentTime) {
		return c.history[t.Milliseconds()], nil
	}
	value, ok := c.history[t.Milliseconds()]
	if !ok {
		return zero, &UnknownTimeError{Requested: t}
	}
	return value, nil
}

// prune drops history entries strictly older than floor, which bounds
// memory to the minimum start time referenced by any live residual when
// given that time. Nothing in this package calls it (the Runtime does not),
// and correctness never depends on calling it.
func (c *ExtractorCell[S, T]) prune(floor Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for ms := range c.history {
		if ms < floor.Milliseconds() {
			delete(c.history, ms)
		}
	}
}

// TimeCell is the distinguished cell whose current value is the runtime's
// current time; At(t) returns t itself, since a Time is its own witness.
type TimeCell struct {
	mu          sync.RWMutex
	hasValue    bool
	currentTime Time
}

func (c *TimeCell) update(t Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hasValue = true
	c.currentTime = t
}

// Current returns the runtime's current time.
func (c *TimeCell) Current() Time {
	v, err := c.TryCurrent()
	if err != nil {
		panic(err)
	}
	return v
}

// TryCurrent is the non-panicking form of Current.
func (c *TimeCell) TryCurrent() (Time, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.hasValue {
		return Time{}, &CurrentWithoutAdmissionError{}
	}
	return c.currentTime, nil
}

// At returns t itself.
func (c *TimeCell) At(t Time) Time {
	return t
}

// TryAt is the non-panicking form of At; it never fails.
func (c *TimeCell) TryAt(t Time) (Time, error) {
	return t, nil
}
