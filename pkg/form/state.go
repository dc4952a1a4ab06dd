package form

import "sync"

// Snapshot is an immutable view of the display state: the error message per
// field (empty when the field is valid or untouched), whether the submit
// control is enabled, and the most recent all-valid summary.
type Snapshot struct {
	Errors        map[Field]string
	SubmitEnabled bool
	Summary       string
}

// Listener observes every state mutation. Front ends use it to re-render.
// Listeners run under the state lock so snapshots arrive in mutation order;
// they must not call back into State.
type Listener func(Snapshot)

// State holds the component-local mutable display state. Each piece is
// written by exactly one pipeline stage, but transports may read concurrently
// so access is guarded by a mutex.
type State struct {
	mu         sync.Mutex
	errors     map[Field]string
	enabled    bool
	summary    string
	hasSummary bool
	listener   Listener
}

// NewState returns an empty state. The listener may be nil.
func NewState(listener Listener) *State {
	return &State{
		errors:   make(map[Field]string),
		listener: listener,
	}
}

// Snapshot returns a copy of the current state.
func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *State) snapshotLocked() Snapshot {
	errs := make(map[Field]string, len(s.errors))
	for k, v := range s.errors {
		errs[k] = v
	}
	return Snapshot{
		Errors:        errs,
		SubmitEnabled: s.enabled,
		Summary:       s.summary,
	}
}

func (s *State) setError(field Field, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errors[field] = message
	s.notifyLocked()
}

func (s *State) setSubmitEnabled(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enabled = enabled
	s.notifyLocked()
}

func (s *State) setSummary(summary string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.summary = summary
	s.hasSummary = true
	s.notifyLocked()
}

// summaryValue reports the last all-valid summary, if one was ever derived.
// The value persists even after a later emission invalidates the form.
func (s *State) summaryValue() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.summary, s.hasSummary
}

// notifyLocked delivers a snapshot while still holding the lock, so two
// concurrent mutations cannot hand the listener their snapshots out of order.
func (s *State) notifyLocked() {
	if s.listener != nil {
		s.listener(s.snapshotLocked())
	}
}
