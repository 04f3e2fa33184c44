// Package modal holds the order-processing modal state of each session. It
// learns about checkouts only through the event bus.
package modal

import (
	"sync"

	"bakery_storefront/internal/events"
)

type Phase string

const (
	PhaseProcessing Phase = "processing"
	PhaseConfirmed  Phase = "confirmed"
)

type State struct {
	Visible           bool   `json:"visible"`
	Phase             Phase  `json:"phase,omitempty"`
	OrderID           string `json:"order_id,omitempty"`
	EstimatedDelivery string `json:"estimated_delivery,omitempty"`
	TrackingPath      string `json:"tracking_path,omitempty"`
}

type Board struct {
	mu     sync.Mutex
	states map[string]State
}

// NewBoard returns a board subscribed to the checkout events on bus.
func NewBoard(bus *events.Bus) *Board {
	b := &Board{states: make(map[string]State)}
	bus.Listen(events.OrderProcessing, b.onProcessing)
	bus.Listen(events.OrderConfirmed, b.onConfirmed)
	return b
}

func (b *Board) onProcessing(e events.Event) {
	p, ok := e.Payload.(events.Placement)
	if !ok {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.states[e.SessionID] = State{
		Visible:           true,
		Phase:             PhaseProcessing,
		OrderID:           p.OrderID,
		EstimatedDelivery: p.EstimatedDelivery,
		TrackingPath:      TrackingPath(p.OrderID),
	}
}

// onConfirmed flips a visible modal to confirmed. A modal closed while
// processing stays closed.
func (b *Board) onConfirmed(e events.Event) {
	p, _ := e.Payload.(events.Placement)
	b.mu.Lock()
	defer b.mu.Unlock()
	s, ok := b.states[e.SessionID]
	if !ok || !s.Visible || (p.OrderID != "" && s.OrderID != p.OrderID) {
		return
	}
	s.Phase = PhaseConfirmed
	b.states[e.SessionID] = s
}

func (b *Board) Get(sessionID string) State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.states[sessionID]
}

// Close hides the modal and returns the path of the order it showed.
func (b *Board) Close(sessionID string) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	s := b.states[sessionID]
	delete(b.states, sessionID)
	return s.TrackingPath
}

// TrackingPath is the route of the tracking page for an order.
func TrackingPath(orderID string) string {
	if orderID == "" {
		return ""
	}
	return "/order-tracking/" + orderID
}
