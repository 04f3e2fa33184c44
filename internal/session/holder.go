package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"bakery_storefront/internal/models"
	"bakery_storefront/internal/notification"
)

// UserKey is the storage key of the persisted user record.
const UserKey = "user"

// Holder is the identity state of one browsing session. The user record is
// mirrored in memory and in Storage under the holder's key.
type Holder struct {
	mu       sync.RWMutex
	user     *models.User
	storage  Storage
	key      string
	notifier notification.Notifier
	log      *zap.Logger
}

func NewHolder(storage Storage, key string, notifier notification.Notifier, log *zap.Logger) *Holder {
	if notifier == nil {
		notifier = notification.Discard
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Holder{storage: storage, key: key, notifier: notifier, log: log}
}

// Restore loads the persisted user. A missing record leaves the holder
// logged out; a malformed one is discarded.
func (h *Holder) Restore(ctx context.Context) error {
	raw, ok, err := h.storage.Get(ctx, h.key)
	if err != nil {
		return fmt.Errorf("failed to read stored user: %w", err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.user = nil
	if !ok {
		return nil
	}

	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		h.log.Warn("discarding malformed stored user", zap.String("key", h.key), zap.Error(err))
		return h.storage.Delete(ctx, h.key)
	}
	h.user = &user
	return nil
}

func (h *Holder) Login(ctx context.Context, user models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}
	if err := h.storage.Set(ctx, h.key, string(data)); err != nil {
		return err
	}

	h.mu.Lock()
	h.user = &user
	h.mu.Unlock()

	h.log.Info("login", zap.Uint("user_id", user.ID), zap.Bool("is_admin", user.IsAdmin))
	h.notifier.Notify(notification.Toast{
		Title:       "Login successful",
		Description: fmt.Sprintf("Welcome back, %s!", user.Name),
		Variant:     notification.VariantSuccess,
	})
	return nil
}

func (h *Holder) Logout(ctx context.Context) error {
	h.mu.Lock()
	h.user = nil
	h.mu.Unlock()

	if err := h.storage.Delete(ctx, h.key); err != nil {
		return fmt.Errorf("failed to remove stored user: %w", err)
	}

	h.log.Info("logout")
	h.notifier.Notify(notification.Toast{
		Title:       "Logged out",
		Description: "You have been successfully logged out.",
		Variant:     notification.VariantDefault,
	})
	return nil
}

// User returns a copy of the logged-in user.
func (h *Holder) User() (models.User, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.user == nil {
		return models.User{}, false
	}
	return *h.user, true
}

func (h *Holder) IsAuthenticated() bool {
	_, ok := h.User()
	return ok
}

func (h *Holder) IsAdmin() bool {
	u, ok := h.User()
	return ok && u.IsAdmin
}
