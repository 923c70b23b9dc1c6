package usecase

import (
	"context"
	"errors"
	"sync"

	"SecureBank/internal/domain/repository"
)

// Status is the phase of one page load.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
	StatusError   Status = "error"
)

// State is what the rendering layer sees. Data is set only when Ready and
// Error only when Error.
type State[T any] struct {
	Status Status `json:"state"`
	Error  string `json:"error,omitempty"`
	Data   *T     `json:"data,omitempty"`
}

// PageError is a load failure carrying the message to show the user.
type PageError struct {
	Message string
	Err     error
}

func (e *PageError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *PageError) Unwrap() error { return e.Err }

// LoadFunc fetches and normalizes the data of one page.
type LoadFunc[T any] func(ctx context.Context) (T, error)

// Machine drives a page through Idle, Loading and then Ready or Error.
// Observers run synchronously on every transition and must not call back
// into the machine.
type Machine[T any] struct {
	page    string
	load    LoadFunc[T]
	metrics repository.Metrics
	generic string

	mu        sync.Mutex
	state     State[T]
	seq       uint64
	observers []func(State[T])
}

// NewMachine returns an Idle machine. generic is shown for failures that are
// not a *PageError.
func NewMachine[T any](page string, load LoadFunc[T], m repository.Metrics, generic string) *Machine[T] {
	return &Machine[T]{
		page:    page,
		load:    load,
		metrics: m,
		generic: generic,
		state:   State[T]{Status: StatusIdle},
	}
}

// Observe registers fn for every later transition.
func (m *Machine[T]) Observe(fn func(State[T])) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.observers = append(m.observers, fn)
}

// State returns the current state.
func (m *Machine[T]) State() State[T] {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Load runs the loader and returns the state it settled in. A load whose
// context is cancelled, or that was overtaken by a newer Load, never
// publishes its result: the former returns the machine to Idle.
func (m *Machine[T]) Load(ctx context.Context) State[T] {
	m.mu.Lock()
	m.seq++
	seq := m.seq
	m.setLocked(State[T]{Status: StatusLoading})
	m.mu.Unlock()

	data, err := m.load(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()

	if seq != m.seq {
		return m.state
	}
	if ctx.Err() != nil {
		m.setLocked(State[T]{Status: StatusIdle})
		return m.state
	}

	if err != nil {
		m.setLocked(State[T]{Status: StatusError, Error: m.messageOf(err)})
	} else {
		m.setLocked(State[T]{Status: StatusReady, Data: &data})
	}
	if m.metrics != nil {
		m.metrics.RecordPageLoad(m.page, string(m.state.Status))
	}
	return m.state
}

func (m *Machine[T]) setLocked(s State[T]) {
	m.state = s
	for _, fn := range m.observers {
		fn(s)
	}
}

func (m *Machine[T]) messageOf(err error) string {
	var pe *PageError
	if errors.As(err, &pe) && pe.Message != "" {
		return pe.Message
	}
	return m.generic
}
