package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBusDispatchesByName(t *testing.T) {
	bus := NewBus()
	var got []Event
	bus.Listen(OrderProcessing, func(e Event) { got = append(got, e) })
	bus.Listen(OrderProcessing, func(e Event) { got = append(got, e) })

	bus.Publish(Event{Name: OrderProcessing, SessionID: "s1", Payload: Placement{OrderID: "DB12345"}})
	bus.Publish(Event{Name: OrderConfirmed, SessionID: "s1"})

	assert.Len(t, got, 2)
	assert.Equal(t, "DB12345", got[0].Payload.(Placement).OrderID)
}

func TestBusListenerMayListenDuringPublish(t *testing.T) {
	bus := NewBus()
	calls := 0
	bus.Listen(OrderConfirmed, func(Event) {
		calls++
		bus.Listen(OrderConfirmed, func(Event) { calls++ })
	})

	bus.Publish(Event{Name: OrderConfirmed})
	assert.Equal(t, 1, calls)
}
