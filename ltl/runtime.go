package ltl

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// extractorUpdater is the Runtime-facing view of an ExtractorCell[S, T] for
// some fixed S, erasing its value type T so a slice of heterogeneous cells
// can be driven uniformly.
type extractorUpdater[S any] interface {
	update(state S, t Time) error
	extractorName() string
}

// Runtime is the process-wide (per test run) registrar of extractor cells.
// It owns the current {state, time} and drives every registered cell's
// update hook in registration order on each admitted state. A Runtime is
// not concurrency-safe: exactly one RegisterState or Test call may be in
// flight at a time.
type Runtime[S any] struct {
	mu sync.Mutex

	logger *slog.Logger

	extractors         []extractorUpdater[S]
	registrationClosed bool

	timeCell *TimeCell

	hasState        bool
	currentState    S
	currentTime     Time
	lastAdmissionID uuid.UUID
}

// NewRuntime constructs an empty Runtime with no current state and no
// registered cells.
func NewRuntime[S any]() *Runtime[S] {
	return &Runtime[S]{
		logger:   slog.Default(),
		timeCell: &TimeCell{},
	}
}

// SetLogger overrides the runtime's logger (slog.Default() otherwise).
func (r *Runtime[S]) SetLogger(logger *slog.Logger) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logger = logger
}

// TimeCell returns the distinguished cell whose current value is the
// runtime's current time.
func (r *Runtime[S]) TimeCell() *TimeCell {
	return r.timeCell
}

// RegisterExtractor attaches cell to the update list. Cells may only be
// registered before the first state admission.
func RegisterExtractor[S, T any](r *Runtime[S], cell *ExtractorCell[S, T]) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.registrationClosed {
		return &LateRegistrationError{}
	}
	r.extractors = append(r.extractors, cell)
	return nil
}

// Extract builds an ExtractorCell from fn and registers it on r in one
// step. Panics with LateRegistrationError if a state has already been
// admitted, matching the spec's classification of late registration as a
// programmer error rather than a recoverable condition at this call site
// (RegisterExtractor remains available for callers that want the error
// returned instead).
func Extract[S, T any](r *Runtime[S], fn func(S) T, opts ...ExtractorOption[T]) *ExtractorCell[S, T] {
	cell := NewExtractorCell[S, T](fn, opts...)
	if err := RegisterExtractor(r, cell); err != nil {
		panic(err)
	}
	return cell
}

// RegisterState admits a new (state, timestamp) pair: it constructs
// Time(timestampMs), rejects it with NonMonotonicTimeError if it is
// strictly earlier than the current time, installs the new current state,
// and invokes every registered cell's update hook in registration order.
//
// If an extractor's update fails, admission is aborted: previously-updated
// cells in this call retain their new value but the runtime's current time
// is left unchanged, and ExtractorFailedError is returned.
func (r *Runtime[S]) RegisterState(state S, timestampMs int64) (Time, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t := NewTime(timestampMs)
	if r.hasState && t.IsBefore(r.currentTime) {
		err := &NonMonotonicTimeError{Previous: r.currentTime, Attempted: t}
		r.logger.Warn("rejected non-monotonic state admission",
			"previous", r.currentTime.String(), "attempted", t.String())
		return Time{}, err
	}
	r.registrationClosed = true

	r.timeCell.update(t)
	for _, cell := range r.extractors {
		if err := cell.update(state, t); err != nil {
			failure := &ExtractorFailedError{Cell: cell.extractorName(), Cause: err}
			r.logger.Warn("extractor failed during admission",
				"cell", cell.extractorName(), "time", t.String(), "error", err)
			return Time{}, failure
		}
	}

	r.currentState = state
	r.currentTime = t
	r.hasState = true
	r.lastAdmissionID = uuid.New()

	r.logger.Debug("admitted state",
		"time", t.String(), "cells", len(r.extractors), "admission", r.lastAdmissionID.String())

	return t, nil
}

// CurrentTime returns the runtime's current time and true, or false if no
// state has yet been admitted.
func (r *Runtime[S]) CurrentTime() (Time, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.currentTime, r.hasState
}

// LastAdmissionID returns the uuid stamped on the most recent successful
// RegisterState call, for log/report correlation.
func (r *Runtime[S]) LastAdmissionID() (uuid.UUID, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastAdmissionID, r.hasState
}

// Reset drops the current state and clears registered cells, returning the
// Runtime to its just-constructed state.
func (r *Runtime[S]) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.extractors = nil
	r.registrationClosed = false
	r.hasState = false
	r.currentTime = Time{}
	r.timeCell = &TimeCell{}
	r.lastAdmissionID = uuid.UUID{}
}
