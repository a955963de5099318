package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/ppda/pkg/adapters/redis"
	"github.com/aretw0/ppda/pkg/domain"
	"github.com/aretw0/ppda/pkg/ports"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*miniredis.Miniredis, *backend.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err, "Failed to start miniredis")
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRedisStore_Contract(t *testing.T) {
	_, client := setup(t)
	store := redis.NewFromClient(client)
	ports.RunSampleStoreContract(t, store)
}

func TestRedisStore_Prefix(t *testing.T) {
	mr, client := setup(t)
	store := redis.NewFromClient(client, redis.WithPrefix("custom:"))
	ctx := context.Background()

	err := store.Save(ctx, &domain.Sample{ID: "s1", Model: "coin", Text: "a", CreatedAt: time.Now()})
	require.NoError(t, err)

	assert.True(t, mr.Exists("custom:s1"))
	assert.False(t, mr.Exists(redis.DefaultPrefix+"s1"))
}

func TestRedisStore_TTL(t *testing.T) {
	mr, client := setup(t)
	store := redis.NewFromClient(client, redis.WithTTL(time.Minute))
	ctx := context.Background()

	old := &domain.Sample{ID: "old", Model: "coin", CreatedAt: time.Now().Add(-2 * time.Minute)}
	fresh := &domain.Sample{ID: "fresh", Model: "coin", CreatedAt: time.Now()}
	require.NoError(t, store.Save(ctx, old))
	require.NoError(t, store.Save(ctx, fresh))

	ttl := mr.TTL(redis.DefaultPrefix + "fresh")
	assert.Equal(t, time.Minute, ttl)

	ids, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"fresh"}, ids, "index entries older than the TTL are pruned")

	mr.FastForward(2 * time.Minute)
	_, err = store.Load(ctx, "fresh")
	assert.ErrorIs(t, err, domain.ErrSampleNotFound)
}
