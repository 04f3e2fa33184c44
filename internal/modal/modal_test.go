package modal

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bakery_storefront/internal/events"
)

func TestBoardFollowsCheckoutEvents(t *testing.T) {
	bus := events.NewBus()
	board := NewBoard(bus)
	placement := events.Placement{OrderID: "DB12345", EstimatedDelivery: "Today, 1:30 PM - 2:00 PM"}

	assert.False(t, board.Get("s1").Visible)

	bus.Publish(events.Event{Name: events.OrderProcessing, SessionID: "s1", Payload: placement})
	s := board.Get("s1")
	assert.True(t, s.Visible)
	assert.Equal(t, PhaseProcessing, s.Phase)
	assert.Equal(t, "/order-tracking/DB12345", s.TrackingPath)
	assert.False(t, board.Get("s2").Visible)

	bus.Publish(events.Event{Name: events.OrderConfirmed, SessionID: "s1", Payload: placement})
	assert.Equal(t, PhaseConfirmed, board.Get("s1").Phase)

	assert.Equal(t, "/order-tracking/DB12345", board.Close("s1"))
	assert.False(t, board.Get("s1").Visible)
}

func TestBoardIgnoresConfirmationAfterClose(t *testing.T) {
	bus := events.NewBus()
	board := NewBoard(bus)
	placement := events.Placement{OrderID: "DB1"}

	bus.Publish(events.Event{Name: events.OrderProcessing, SessionID: "s1", Payload: placement})
	board.Close("s1")
	bus.Publish(events.Event{Name: events.OrderConfirmed, SessionID: "s1", Payload: placement})

	assert.False(t, board.Get("s1").Visible)
	assert.Equal(t, "", board.Close("s1"))
}

func TestBoardIgnoresStaleConfirmation(t *testing.T) {
	bus := events.NewBus()
	board := NewBoard(bus)

	bus.Publish(events.Event{Name: events.OrderProcessing, SessionID: "s1", Payload: events.Placement{OrderID: "DB1"}})
	bus.Publish(events.Event{Name: events.OrderProcessing, SessionID: "s1", Payload: events.Placement{OrderID: "DB2"}})
	bus.Publish(events.Event{Name: events.OrderConfirmed, SessionID: "s1", Payload: events.Placement{OrderID: "DB1"}})

	s := board.Get("s1")
	assert.Equal(t, "DB2", s.OrderID)
	assert.Equal(t, PhaseProcessing, s.Phase)
}
