package observable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comalice/fsmx/observable"
)

func TestStream_EmitDeliversInSubscriptionOrder(t *testing.T) {
	var s observable.Stream[int]
	var order []string

	s.Subscribe(func(v int) { order = append(order, "first") })
	s.Subscribe(func(v int) { order = append(order, "second") })

	s.Emit(1)

	assert.Equal(t, []string{"first", "second"}, order)
}

func TestStream_NoReplayForLateSubscriber(t *testing.T) {
	var s observable.Stream[int]

	s.Emit(1)

	var got []int
	s.Subscribe(func(v int) { got = append(got, v) })
	s.Emit(2)

	assert.Equal(t, []int{2}, got, "late subscriber should only see later emissions")
}

func TestStream_CancelStopsDelivery(t *testing.T) {
	var s observable.Stream[int]
	var kept, canceled []int

	sub := s.Subscribe(func(v int) { canceled = append(canceled, v) })
	s.Subscribe(func(v int) { kept = append(kept, v) })

	s.Emit(1)
	sub.Cancel()
	s.Emit(2)

	assert.Equal(t, []int{1}, canceled, "canceled subscriber should receive nothing further")
	assert.Equal(t, []int{1, 2}, kept, "other subscribers should be unaffected")
	assert.Equal(t, 1, s.Subscribers())
}

func TestStream_CancelIsIdempotent(t *testing.T) {
	var s observable.Stream[int]

	sub := s.Subscribe(func(v int) {})
	sub.Cancel()
	sub.Cancel()

	assert.Equal(t, 0, s.Subscribers())
}

func TestStream_CancelDuringEmitSuppressesPendingDelivery(t *testing.T) {
	var s observable.Stream[int]
	var secondCalls int

	var second *observable.Subscription
	s.Subscribe(func(v int) { second.Cancel() })
	second = s.Subscribe(func(v int) { secondCalls++ })

	s.Emit(1)

	assert.Equal(t, 0, secondCalls, "subscriber canceled mid-emit should not see the in-flight value")
}

func TestStream_SubscribeDuringEmitSeesOnlyLaterEmissions(t *testing.T) {
	var s observable.Stream[int]
	var got []int

	s.Subscribe(func(v int) {
		if len(got) == 0 {
			s.Subscribe(func(v int) { got = append(got, v+100) })
		}
		got = append(got, v)
	})

	s.Emit(1)
	s.Emit(2)

	assert.Equal(t, []int{1, 2, 102}, got)
}

func TestValue_SubscribeReplaysCurrentValue(t *testing.T) {
	v := observable.NewValue("green")

	var got []string
	sub := v.Subscribe(func(s string) { got = append(got, s) })
	require.NotNil(t, sub)

	assert.Equal(t, []string{"green"}, got, "subscribe should replay the current value synchronously")
	assert.Equal(t, "green", v.Get())
}

func TestValue_SetNotifiesAndUpdatesSlotFirst(t *testing.T) {
	v := observable.NewValue(1)

	var seen []int
	v.Subscribe(func(val int) { seen = append(seen, v.Get()) })

	v.Set(2)

	assert.Equal(t, []int{1, 2}, seen, "slot should be updated before subscribers run")
	assert.Equal(t, 2, v.Get())
}

func TestValue_SetWithEqualValueStillNotifies(t *testing.T) {
	v := observable.NewValue("on")

	calls := 0
	v.Subscribe(func(string) { calls++ })

	v.Set("on")

	assert.Equal(t, 2, calls, "replay plus one notification for the equal-value assignment")
}
