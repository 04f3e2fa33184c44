// Package session tracks browsing sessions. A session bundles the state the
// storefront keeps per visitor: identity, cart and live toasts.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"bakery_storefront/internal/cart"
	"bakery_storefront/internal/notification"
)

type Session struct {
	ID       string
	Identity *Holder
	Cart     *cart.Cart
	Inbox    *notification.Inbox

	lastSeen time.Time
}

type Options struct {
	ToastDuration time.Duration
	// IdleTimeout evicts sessions not seen for this long. Zero keeps them forever.
	IdleTimeout time.Duration
	// OnEvict is called with the id of every evicted session.
	OnEvict func(id string)
}

type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	storage  Storage
	opts     Options
	now      func() time.Time
	log      *zap.Logger
}

func NewManager(storage Storage, opts Options, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{
		sessions: make(map[string]*Session),
		storage:  storage,
		opts:     opts,
		now:      time.Now,
		log:      log,
	}
}

// NewID returns a fresh random session id.
func (m *Manager) NewID() string {
	return uuid.NewString()
}

// Get returns the session for id, creating it on first use. A new session
// starts with an empty cart and the user restored from storage.
func (m *Manager) Get(ctx context.Context, id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if s, ok := m.sessions[id]; ok {
		s.lastSeen = now
		return s, nil
	}
	m.sweep(now)

	inbox := notification.NewInbox(m.opts.ToastDuration)
	log := m.log.With(zap.String("session_id", id))
	notifier := notification.Logged(log, inbox)

	s := &Session{
		ID:       id,
		Identity: NewHolder(m.storage, id+":"+UserKey, notifier, log),
		Cart:     cart.New(notifier, log),
		Inbox:    inbox,
		lastSeen: now,
	}
	s.Cart.Reset()
	if err := s.Identity.Restore(ctx); err != nil {
		return nil, err
	}

	m.sessions[id] = s
	log.Debug("session started")
	return s, nil
}

func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

func (m *Manager) sweep(now time.Time) {
	if m.opts.IdleTimeout <= 0 {
		return
	}
	for id, s := range m.sessions {
		if now.Sub(s.lastSeen) > m.opts.IdleTimeout {
			delete(m.sessions, id)
			if m.opts.OnEvict != nil {
				m.opts.OnEvict(id)
			}
			m.log.Debug("session evicted", zap.String("session_id", id))
		}
	}
}
