package observable

// Subscription is a handle to one subscriber's registration. Cancel stops
// further delivery to that subscriber only; it never affects other
// subscribers or the machine itself.
type Subscription struct {
	stop func()
}

// Cancel detaches the subscriber. Safe to call more than once; calls after
// the first are no-ops. Canceling from inside a delivery callback is
// permitted and suppresses any delivery still pending in the same emit.
func (s *Subscription) Cancel() {
	if s.stop != nil {
		s.stop()
		s.stop = nil
	}
}

type subscriber[T any] struct {
	fn   func(T)
	done bool
}

// Stream is a minimal synchronous multicast: Emit delivers to every active
// subscriber, in subscription order, on the caller's goroutine. A Stream
// has no buffer and no replay; subscribers see only values emitted after
// they subscribe. The zero value is ready to use.
type Stream[T any] struct {
	subs []*subscriber[T]
}

// Subscribe registers fn to receive future emissions.
func (s *Stream[T]) Subscribe(fn func(T)) *Subscription {
	sub := &subscriber[T]{fn: fn}
	s.subs = append(s.subs, sub)
	return &Subscription{stop: func() {
		sub.done = true
		s.remove(sub)
	}}
}

// Emit delivers v to every active subscriber. Subscribers added during an
// emit see only subsequent emissions; subscribers canceled during an emit
// receive nothing further, including later deliveries of this emit.
func (s *Stream[T]) Emit(v T) {
	for _, sub := range s.subs {
		if sub.done {
			continue
		}
		sub.fn(v)
	}
}

// Subscribers reports the number of active subscriptions.
func (s *Stream[T]) Subscribers() int {
	return len(s.subs)
}

func (s *Stream[T]) remove(target *subscriber[T]) {
	for i, sub := range s.subs {
		if sub == target {
			// Three-index slice keeps any in-flight Emit ranging over the
			// old backing array intact.
			s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
			return
		}
	}
}
