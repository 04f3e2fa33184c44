package services

import (
	"testing"
	"time"

	"bakery_storefront/internal/events"
	"bakery_storefront/internal/notification"
	"bakery_storefront/internal/repository"
	"bakery_storefront/internal/seed"
)

// stubPicker keeps slices in order and hands out ints from a fixed list.
type stubPicker struct {
	ints []int
	next int
}

func (p *stubPicker) Shuffle(int, func(i, j int)) {}

func (p *stubPicker) Intn(n int) int {
	if len(p.ints) == 0 {
		return 0
	}
	v := p.ints[p.next%len(p.ints)]
	p.next++
	return v % n
}

type toastRecorder struct {
	toasts []notification.Toast
}

func (r *toastRecorder) Notify(t notification.Toast) { r.toasts = append(r.toasts, t) }

type eventRecorder struct {
	events []events.Event
}

func (r *eventRecorder) listen(bus *events.Bus, names ...events.Name) {
	for _, name := range names {
		bus.Listen(name, func(e events.Event) { r.events = append(r.events, e) })
	}
}

func seededRepos(t *testing.T) (*repository.MemoryProductRepository, *repository.MemoryOrderRepository) {
	t.Helper()
	return repository.NewMemoryProductRepository(seed.Products()), repository.NewMemoryOrderRepository(seed.Orders())
}

var noon = time.Date(2024, time.March, 4, 11, 45, 0, 0, time.Local)

func fixedNow() time.Time { return noon }
