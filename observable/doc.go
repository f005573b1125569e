// Package observable provides a reactive runtime for fsmx.
//
// The observable runtime differs from the plain machine in its notification
// model:
//   - Current and previous state are continuously observable values with
//     last-value replay on subscribe
//   - Every received event is broadcast on a multicast stream, whether or
//     not it caused a transition
//   - Any number of subscribers per stream, each individually cancelable
//
// # Example Usage
//
//	m := observable.New(green, mapper)
//	sub := m.SubscribeState(func(s Light) { fmt.Println("now", s) })
//	defer sub.Cancel()
//	m.Send(Timer)
//
// # Architecture
//
// The observable Machine wraps the core fsmx.Machine and reuses its
// transition algorithm unchanged; only the notification layer is replaced.
// State subscribers are notified synchronously on assignment, before the
// event broadcast, all on the caller's goroutine. There is no transition
// hook here: consumers distinguish a transition from a no-effect event by
// observing whether the state value moved.
//
// Like the core, this package does no locking. Concurrent Send without
// external serialization is a data race.
package observable
