package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bakery_storefront/internal/seed"
)

func newAuth(t *testing.T) AuthService {
	t.Helper()
	svc, err := NewAuthService(seed.Users(), seed.Passwords(), nil)
	require.NoError(t, err)
	return svc
}

func TestLogin(t *testing.T) {
	auth := newAuth(t)

	user, err := auth.Login("test123", "test123")
	require.NoError(t, err)
	assert.Equal(t, uint(1), user.ID)
	assert.Equal(t, "Test User", user.Name)
	assert.False(t, user.IsAdmin)

	admin, err := auth.Login("admin", "admin123")
	require.NoError(t, err)
	assert.Equal(t, uint(2), admin.ID)
	assert.True(t, admin.IsAdmin)

	_, err = auth.Login("admin", "test123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = auth.Login("nobody", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignup(t *testing.T) {
	auth := newAuth(t)
	req := SignupRequest{
		Name:            "Asha",
		Email:           "asha@example.com",
		Username:        "asha",
		Password:        "secret",
		ConfirmPassword: "secret",
	}

	user, err := auth.Signup(req)
	require.NoError(t, err)
	assert.Equal(t, uint(SignupUserID), user.ID)
	assert.Equal(t, "asha", user.Username)
	assert.Equal(t, "Asha", user.Name)
	assert.False(t, user.IsAdmin)

	incomplete := req
	incomplete.Email = ""
	_, err = auth.Signup(incomplete)
	assert.ErrorIs(t, err, ErrSignupIncomplete)

	mismatch := req
	mismatch.ConfirmPassword = "Secret"
	_, err = auth.Signup(mismatch)
	assert.ErrorIs(t, err, ErrPasswordMismatch)

	_, err = auth.Login("asha", "secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials, "signed-up accounts are not remembered")
}
