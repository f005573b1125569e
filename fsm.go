// Package fsmx implements a minimal generic finite-state machine: a current
// and previous state, a caller-supplied transition mapper, and synchronous
// notification hooks. The machine owns no graph, no queue, and no locks; it
// is a building block meant to be embedded and externally serialized if the
// host needs concurrent access.
package fsmx

// Mapper is the machine's entire transition logic: a pure function from the
// current state and an incoming event to the next state. Returning ok=false
// refuses the event (no state change); returning the current state with
// ok=true is a valid same-state transition and still notifies.
//
// The mapper is captured at construction and never mutated. It must be
// side-effect-free; the machine calls it exactly once per Send.
type Mapper[S, E any] func(state S, evt E) (next S, ok bool)

// TransitionHandler observes successful transitions. It receives the state
// the machine just entered and the event that triggered the move.
type TransitionHandler[S, E any] func(next S, evt E)

// EventHandler observes every event the machine receives, whether or not it
// caused a transition. It receives the event and the machine's current state
// at dispatch time, i.e. reflecting any transition that just happened.
type EventHandler[S, E any] func(evt E, current S)

// Machine tracks a current and previous state and applies events through its
// mapper. It is not safe for concurrent use; callers needing that must
// serialize Send externally.
type Machine[S, E any] struct {
	mapper   Mapper[S, E]
	current  S
	previous S

	onTransition []TransitionHandler[S, E]
	onEvent      []EventHandler[S, E]
}

// Option applies configuration to a Machine at construction.
type Option[S, E any] func(*Machine[S, E])

// WithTransitionHandler appends a transition handler at construction.
func WithTransitionHandler[S, E any](fn TransitionHandler[S, E]) Option[S, E] {
	return func(m *Machine[S, E]) {
		m.onTransition = append(m.onTransition, fn)
	}
}

// WithEventHandler appends an event handler at construction.
func WithEventHandler[S, E any](fn EventHandler[S, E]) Option[S, E] {
	return func(m *Machine[S, E]) {
		m.onEvent = append(m.onEvent, fn)
	}
}

//
// Public API
//

// New creates a machine in the given initial state. Both Current and
// Previous report initial until the first successful transition. The mapper
// is not validated; a nil mapper panics on the first Send.
func New[S, E any](initial S, mapper Mapper[S, E], opts ...Option[S, E]) *Machine[S, E] {
	m := &Machine[S, E]{
		mapper:   mapper,
		current:  initial,
		previous: initial,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Current returns the machine's current state.
func (m *Machine[S, E]) Current() S {
	return m.current
}

// Previous returns the state the machine was in immediately before its most
// recent successful transition.
func (m *Machine[S, E]) Previous() S {
	return m.previous
}

// Send applies evt through the mapper. On a successful mapping the previous
// and current states are updated and the transition handlers run, in
// registration order, with the new state. The event handlers then run
// unconditionally. All dispatch completes on the caller's goroutine before
// Send returns.
//
// A refused event mutates nothing and skips the transition handlers; the
// event handlers still see it.
//
// Re-entrant Send from inside a handler is permitted but discouraged: the
// per-call ordering guarantees hold, but the machine's state can move
// between the start and end of the outer handler's view. A panic inside the
// mapper or a handler propagates to the caller untouched.
func (m *Machine[S, E]) Send(evt E) {
	if next, ok := m.mapper(m.current, evt); ok {
		m.previous = m.current
		m.current = next
		for _, fn := range m.onTransition {
			fn(next, evt)
		}
	}

	for _, fn := range m.onEvent {
		fn(evt, m.current)
	}
}

// OnTransition registers fn as the sole transition handler, discarding any
// handlers registered earlier. A nil fn clears the registry. Use
// AddTransitionHandler to keep existing handlers.
func (m *Machine[S, E]) OnTransition(fn TransitionHandler[S, E]) {
	if fn == nil {
		m.onTransition = nil
		return
	}
	m.onTransition = []TransitionHandler[S, E]{fn}
}

// OnEvent registers fn as the sole event handler, same replace-on-register
// semantics as OnTransition.
func (m *Machine[S, E]) OnEvent(fn EventHandler[S, E]) {
	if fn == nil {
		m.onEvent = nil
		return
	}
	m.onEvent = []EventHandler[S, E]{fn}
}

// AddTransitionHandler appends fn to the transition registry. Handlers fire
// in registration order.
func (m *Machine[S, E]) AddTransitionHandler(fn TransitionHandler[S, E]) {
	m.onTransition = append(m.onTransition, fn)
}

// AddEventHandler appends fn to the event registry.
func (m *Machine[S, E]) AddEventHandler(fn EventHandler[S, E]) {
	m.onEvent = append(m.onEvent, fn)
}
