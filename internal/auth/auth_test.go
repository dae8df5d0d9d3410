package auth

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fjod/go_storefront/internal/logger"
	"github.com/fjod/go_storefront/internal/storage"
)

func TestLoginLogout(t *testing.T) {
	ctx := context.Background()
	st := storage.NewMemory()
	a := New(st, logger.Discard())

	assert.False(t, a.IsAuthenticated(ctx))

	require.NoError(t, a.Login(ctx))
	assert.True(t, a.IsAuthenticated(ctx))
	v, err := st.Get(ctx, StorageKey)
	require.NoError(t, err)
	assert.Equal(t, "true", v)

	require.NoError(t, a.Logout(ctx))
	assert.False(t, a.IsAuthenticated(ctx))
	_, err = st.Get(ctx, StorageKey)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestIsAuthenticated_OnlyExactTrue(t *testing.T) {
	ctx := context.Background()
	st := storage.NewMemory()
	a := New(st, logger.Discard())

	for _, v := range []string{"TRUE", "1", "yes", ""} {
		require.NoError(t, st.Set(ctx, StorageKey, v))
		assert.False(t, a.IsAuthenticated(ctx), v)
	}
}

func TestIsAuthenticated_StorageDown(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	a := New(storage.NewRedis(client), logger.Discard())

	require.NoError(t, a.Login(context.Background()))
	assert.True(t, a.IsAuthenticated(context.Background()))

	mr.Close()
	assert.False(t, a.IsAuthenticated(context.Background()))
	assert.Error(t, a.Login(context.Background()))
}
