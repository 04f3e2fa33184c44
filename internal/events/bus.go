// Package events is a small in-process dispatcher that connects the checkout
// flow to the collaborators reacting to it.
package events

import "sync"

type Name string

const (
	// OrderProcessing fires when checkout opens the processing modal.
	OrderProcessing Name = "order.processing"
	// OrderConfirmed fires when the processing delay has elapsed.
	OrderConfirmed Name = "order.confirmed"
	// OrderStatusChanged fires after an admin status update.
	OrderStatusChanged Name = "order.status_changed"
)

type Event struct {
	Name      Name
	SessionID string
	Payload   interface{}
}

// Placement is the payload of OrderProcessing and OrderConfirmed.
type Placement struct {
	OrderID           string
	EstimatedDelivery string
}

// StatusChange is the payload of OrderStatusChanged.
type StatusChange struct {
	OrderID string
	From    string
	To      string
}

type Handler func(Event)

type Bus struct {
	mu       sync.RWMutex
	handlers map[Name][]Handler
}

func NewBus() *Bus {
	return &Bus{handlers: make(map[Name][]Handler)}
}

// Listen registers a handler for the given event name.
func (b *Bus) Listen(name Name, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[name] = append(b.handlers[name], h)
}

// Publish dispatches an event synchronously to all registered listeners.
func (b *Bus) Publish(e Event) {
	b.mu.RLock()
	hs := make([]Handler, len(b.handlers[e.Name]))
	copy(hs, b.handlers[e.Name])
	b.mu.RUnlock()

	for _, h := range hs {
		h(e)
	}
}
