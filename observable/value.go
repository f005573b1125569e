package observable

// Value is a single-slot broadcast with last-value replay: it always holds
// exactly one current value, Set notifies subscribers synchronously on
// assignment, and Subscribe replays the current value to the new subscriber
// before returning. Subscribers never get mutable access to the slot.
type Value[T any] struct {
	stream Stream[T]
	last   T
}

// NewValue creates a Value holding initial.
func NewValue[T any](initial T) *Value[T] {
	return &Value[T]{last: initial}
}

// Get returns the current value.
func (v *Value[T]) Get() T {
	return v.last
}

// Set stores val and delivers it to every active subscriber, even when val
// equals the current value. The slot is updated before any subscriber runs,
// so re-reads from inside a callback see the new value.
func (v *Value[T]) Set(val T) {
	v.last = val
	v.stream.Emit(val)
}

// Subscribe registers fn and synchronously replays the current value to it.
func (v *Value[T]) Subscribe(fn func(T)) *Subscription {
	sub := v.stream.Subscribe(fn)
	fn(v.last)
	return sub
}
