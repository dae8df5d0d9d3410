package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fjod/go_storefront/internal/storage"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, storage.BackendSQLite, cfg.StorageBackend)
	assert.Equal(t, "gpt-3.5-turbo", cfg.OpenAIModel)
	assert.Equal(t, 15, cfg.GeneratedProducts)
	assert.Equal(t, "checkout-outbox", cfg.KafkaTopic)
	assert.Equal(t, 2*time.Second, cfg.CheckoutDelay)
	assert.Empty(t, cfg.KafkaBrokers)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("STOREFRONT_HTTP_PORT", "9090")
	t.Setenv("STOREFRONT_STORAGE_BACKEND", "Redis")
	t.Setenv("STOREFRONT_KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("STOREFRONT_CHECKOUT_DELAY", "0s")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, storage.BackendRedis, cfg.StorageBackend)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, time.Duration(0), cfg.CheckoutDelay)
	assert.Equal(t, storage.BackendRedis, cfg.StorageOptions().Backend)
}

func TestLoad_EnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("STOREFRONT_OPENAI_MODEL=gpt-4o-mini\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("STOREFRONT_OPENAI_MODEL") })

	cfg, err := Load(path, filepath.Join(dir, "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAIModel)
}

func TestLoad_MalformedEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("STOREFRONT_HTTP_PORT=9091\nBROKEN LINE=1\n"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("STOREFRONT_STORAGE_BACKEND", "etcd")
	_, err := Load()
	assert.ErrorIs(t, err, storage.ErrUnknownBackend)
}

func TestLoad_InvalidProductCount(t *testing.T) {
	t.Setenv("STOREFRONT_GENERATED_PRODUCTS", "0")
	_, err := Load()
	assert.ErrorContains(t, err, "GENERATED_PRODUCTS")
}
