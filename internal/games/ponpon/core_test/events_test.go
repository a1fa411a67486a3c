package core_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/ponpon/internal/games/ponpon/core"
)

type recorder struct {
	events []core.Event
}

func (r *recorder) listen(ev core.Event) {
	r.events = append(r.events, ev)
}

func countEvents[T core.Event](events []core.Event) int {
	n := 0
	for _, ev := range events {
		if _, ok := ev.(T); ok {
			n++
		}
	}
	return n
}

func eventsOf[T core.Event](events []core.Event) []T {
	var out []T
	for _, ev := range events {
		if e, ok := ev.(T); ok {
			out = append(out, e)
		}
	}
	return out
}

func TestBusQueuesUntilDispatch(t *testing.T) {
	bus := core.NewBus()
	var order []string
	bus.Subscribe(func(ev core.Event) {
		order = append(order, "first:"+strconv.Itoa(ev.(core.ComboBrokenEvent).Count))
	})
	bus.Subscribe(func(ev core.Event) {
		order = append(order, "second:"+strconv.Itoa(ev.(core.ComboBrokenEvent).Count))
	})

	bus.Publish(core.ComboBrokenEvent{Count: 1})
	bus.Publish(core.ComboBrokenEvent{Count: 2})
	assert.Empty(t, order)
	assert.True(t, bus.Pending())

	assert.Equal(t, 2, bus.Dispatch())
	assert.Equal(t, []string{"first:1", "second:1", "first:2", "second:2"}, order)
	assert.False(t, bus.Pending())
}

func TestBusUnsubscribe(t *testing.T) {
	bus := core.NewBus()
	a, b := &recorder{}, &recorder{}
	idA := bus.Subscribe(a.listen)
	bus.Subscribe(b.listen)

	assert.True(t, bus.Unsubscribe(idA))
	assert.False(t, bus.Unsubscribe(idA))
	assert.Equal(t, 1, bus.Listeners())

	bus.Publish(core.FeverEndedEvent{})
	bus.Dispatch()

	assert.Empty(t, a.events)
	assert.Len(t, b.events, 1)
}

func TestBusDeliversEventsPublishedDuringDispatch(t *testing.T) {
	bus := core.NewBus()
	rec := &recorder{}
	bus.Subscribe(func(ev core.Event) {
		if _, ok := ev.(core.FeverStartedEvent); ok {
			bus.Publish(core.FeverEndedEvent{})
		}
	})
	bus.Subscribe(rec.listen)

	bus.Publish(core.FeverStartedEvent{})

	assert.Equal(t, 2, bus.Dispatch())
	assert.Equal(t, 1, countEvents[core.FeverEndedEvent](rec.events))
}

func TestBusUnsubscribeDuringDispatch(t *testing.T) {
	bus := core.NewBus()
	rec := &recorder{}
	var id core.SubscriptionID
	id = bus.Subscribe(func(core.Event) {
		bus.Unsubscribe(id)
	})
	bus.Subscribe(rec.listen)

	bus.Publish(core.FeverEndedEvent{})
	bus.Publish(core.FeverEndedEvent{})
	bus.Dispatch()

	assert.Len(t, rec.events, 2)
	assert.Equal(t, 1, bus.Listeners())
}
