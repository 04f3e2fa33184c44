// Package notification implements the toast sink used by the cart, checkout
// and session flows. Toasts dismiss themselves once their duration elapses.
package notification

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Variant string

const (
	VariantDefault     Variant = "default"
	VariantSuccess     Variant = "success"
	VariantDestructive Variant = "destructive"
)

// Persistent is a duration for toasts that never auto-dismiss.
const Persistent time.Duration = -1

type Toast struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Variant     Variant       `json:"variant"`
	Duration    time.Duration `json:"duration"`
	CreatedAt   time.Time     `json:"created_at"`
}

type Notifier interface {
	Notify(toast Toast)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(toast Toast)

func (f NotifierFunc) Notify(toast Toast) { f(toast) }

// Discard drops every toast.
var Discard Notifier = NotifierFunc(func(Toast) {})

// Inbox keeps the live toasts of one browsing session.
type Inbox struct {
	mu       sync.Mutex
	toasts   []Toast
	duration time.Duration
	now      func() time.Time
}

func NewInbox(defaultDuration time.Duration) *Inbox {
	return &Inbox{duration: defaultDuration, now: time.Now}
}

func (b *Inbox) Notify(toast Toast) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if toast.ID == "" {
		toast.ID = uuid.NewString()
	}
	if toast.Variant == "" {
		toast.Variant = VariantDefault
	}
	if toast.Duration == 0 {
		toast.Duration = b.duration
	}
	toast.CreatedAt = b.now()
	b.toasts = append(b.toasts, toast)
}

// Active returns the toasts that have not expired yet, oldest first.
func (b *Inbox) Active() []Toast {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.expire()
	return append([]Toast(nil), b.toasts...)
}

// Dismiss removes a toast before it expires. Unknown ids are ignored.
func (b *Inbox) Dismiss(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, t := range b.toasts {
		if t.ID == id {
			b.toasts = append(b.toasts[:i], b.toasts[i+1:]...)
			return
		}
	}
}

func (b *Inbox) expire() {
	now := b.now()
	kept := b.toasts[:0]
	for _, t := range b.toasts {
		if t.Duration < 0 || now.Sub(t.CreatedAt) < t.Duration {
			kept = append(kept, t)
		}
	}
	b.toasts = kept
}

// Logged returns a Notifier that logs each toast before handing it to next.
func Logged(log *zap.Logger, next Notifier) Notifier {
	return NotifierFunc(func(toast Toast) {
		log.Debug("toast",
			zap.String("title", toast.Title),
			zap.String("description", toast.Description),
			zap.String("variant", string(toast.Variant)),
		)
		next.Notify(toast)
	})
}
