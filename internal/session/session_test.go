package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bakery_storefront/internal/models"
	"bakery_storefront/internal/notification"
)

var admin = models.User{ID: 2, Username: "admin", Name: "Admin User", IsAdmin: true}

func TestHolderLoginLogout(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()
	inbox := notification.NewInbox(time.Minute)
	h := NewHolder(storage, "s1:user", inbox, nil)

	assert.False(t, h.IsAuthenticated())

	require.NoError(t, h.Login(ctx, admin))
	assert.True(t, h.IsAuthenticated())
	assert.True(t, h.IsAdmin())
	raw, ok, _ := storage.Get(ctx, "s1:user")
	require.True(t, ok)
	assert.Contains(t, raw, `"is_admin":true`)

	require.NoError(t, h.Logout(ctx))
	assert.False(t, h.IsAuthenticated())
	assert.False(t, h.IsAdmin())
	_, ok, _ = storage.Get(ctx, "s1:user")
	assert.False(t, ok)

	toasts := inbox.Active()
	require.Len(t, toasts, 2)
	assert.Equal(t, "Welcome back, Admin User!", toasts[0].Description)
	assert.Equal(t, "Logged out", toasts[1].Title)
}

func TestHolderAdminMirrorsUser(t *testing.T) {
	h := NewHolder(NewMemoryStorage(), "k", nil, nil)
	require.NoError(t, h.Login(context.Background(), models.User{ID: 1, Username: "test123", Name: "Test User"}))
	assert.True(t, h.IsAuthenticated())
	assert.False(t, h.IsAdmin())
}

func TestHolderRestore(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()
	require.NoError(t, NewHolder(storage, "k", nil, nil).Login(ctx, admin))

	h := NewHolder(storage, "k", nil, nil)
	require.NoError(t, h.Restore(ctx))
	u, ok := h.User()
	require.True(t, ok)
	assert.Equal(t, admin, u)
}

func TestHolderRestoreMalformedRecord(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()
	require.NoError(t, storage.Set(ctx, "k", "{not json"))

	h := NewHolder(storage, "k", nil, nil)
	require.NoError(t, h.Restore(ctx))

	assert.False(t, h.IsAuthenticated())
	_, ok, _ := storage.Get(ctx, "k")
	assert.False(t, ok, "corrupt record is discarded")
}

func TestManagerReusesAndRestoresSessions(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()
	m := NewManager(storage, Options{ToastDuration: time.Second}, nil)

	s1, err := m.Get(ctx, "abc")
	require.NoError(t, err)
	again, err := m.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Same(t, s1, again)

	require.NoError(t, s1.Identity.Login(ctx, admin))
	s1.Cart.AddItem(models.CartItem{ProductID: 1, Name: "Cake", Price: 10, Quantity: 1})
	assert.Len(t, s1.Inbox.Active(), 2)

	// A second manager over the same storage sees the user but not the cart.
	other := NewManager(storage, Options{}, nil)
	s2, err := other.Get(ctx, "abc")
	require.NoError(t, err)
	assert.True(t, s2.Identity.IsAdmin())
	assert.Zero(t, s2.Cart.Len())
}

func TestManagerEvictsIdleSessions(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	var evicted []string
	m := NewManager(NewMemoryStorage(), Options{
		IdleTimeout: time.Hour,
		OnEvict:     func(id string) { evicted = append(evicted, id) },
	}, nil)
	m.now = func() time.Time { return now }

	_, _ = m.Get(ctx, "old")
	now = now.Add(2 * time.Hour)
	_, _ = m.Get(ctx, "new")

	assert.Equal(t, 1, m.Len())
	assert.Equal(t, []string{"old"}, evicted)
	assert.NotEmpty(t, m.NewID())
}
