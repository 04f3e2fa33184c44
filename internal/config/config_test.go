package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "memory", cfg.StoreDriver)
	assert.Equal(t, "memory", cfg.SessionDriver)
	assert.Equal(t, "create", cfg.CheckoutMode)
	assert.Equal(t, 3*time.Second, cfg.OrderProcessingDelay)
	assert.Equal(t, 5*time.Second, cfg.ToastDuration)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("STORE_DRIVER", "sqlite")
	t.Setenv("CHECKOUT_MODE", "sample")
	t.Setenv("ORDER_PROCESSING_DELAY_MS", "250")
	t.Setenv("SESSION_TIMEOUT", "not-a-number")

	cfg := Load()

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, "sqlite", cfg.StoreDriver)
	assert.Equal(t, "sample", cfg.CheckoutMode)
	assert.Equal(t, 250*time.Millisecond, cfg.OrderProcessingDelay)
	assert.Equal(t, 86400, cfg.SessionTimeout)
}
