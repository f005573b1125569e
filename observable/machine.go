package observable

import (
	"github.com/comalice/fsmx"
)

// Machine is the reactive counterpart of fsmx.Machine: same mapper contract
// and same current/previous semantics, but state reads are observable values
// and every received event is broadcast to any number of subscribers.
type Machine[S, E any] struct {
	// Wrap the core machine and reuse its transition algorithm; only the
	// notification layer differs.
	core *fsmx.Machine[S, E]

	current  *Value[S]
	previous *Value[S]
	events   Stream[E]
}

// New creates an observable machine in the given initial state. Both the
// current and previous state values start at initial.
func New[S, E any](initial S, mapper fsmx.Mapper[S, E]) *Machine[S, E] {
	m := &Machine[S, E]{
		current:  NewValue(initial),
		previous: NewValue(initial),
	}

	m.core = fsmx.New(initial, mapper,
		fsmx.WithTransitionHandler(func(next S, _ E) {
			m.previous.Set(m.core.Previous())
			m.current.Set(next)
		}),
		fsmx.WithEventHandler(func(evt E, _ S) {
			m.events.Emit(evt)
		}),
	)

	return m
}

// Send applies evt through the mapper. On a successful mapping the previous
// then current state values are reassigned, notifying their subscribers
// synchronously; the raw event is then broadcast unconditionally, exactly
// once per Send. Everything completes on the caller's goroutine before Send
// returns.
func (m *Machine[S, E]) Send(evt E) {
	m.core.Send(evt)
}

// Current returns the current state as a plain read.
func (m *Machine[S, E]) Current() S {
	return m.current.Get()
}

// Previous returns the state before the most recent successful transition.
func (m *Machine[S, E]) Previous() S {
	return m.previous.Get()
}

// SubscribeState registers fn on the current-state value. fn is called
// immediately with the current state, then on every successful transition
// (including same-state transitions).
func (m *Machine[S, E]) SubscribeState(fn func(S)) *Subscription {
	return m.current.Subscribe(fn)
}

// SubscribePrevious registers fn on the previous-state value, with the same
// replay-then-notify behavior as SubscribeState.
func (m *Machine[S, E]) SubscribePrevious(fn func(S)) *Subscription {
	return m.previous.Subscribe(fn)
}

// SubscribeEvents registers fn on the event stream. fn sees every event
// sent after subscription, whether or not it caused a transition. No replay.
func (m *Machine[S, E]) SubscribeEvents(fn func(E)) *Subscription {
	return m.events.Subscribe(fn)
}
