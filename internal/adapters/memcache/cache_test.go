package memcache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staybook/internal/adapters/memcache"
	"staybook/internal/domain"
)

func TestMemCache_RoundTrip(t *testing.T) {
	c := memcache.New(time.Minute)
	ctx := context.Background()

	in := []domain.Hotel{{ID: 3, Name: "Aurora Kazan", Rating: 4.2}}
	require.NoError(t, c.Set(ctx, "k", in, 60))

	var out []domain.Hotel
	ok, err := c.Get(ctx, "k", &out)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, in, out)
}

func TestMemCache_MissAndDelete(t *testing.T) {
	c := memcache.New(time.Minute)
	ctx := context.Background()

	var out []domain.Hotel
	ok, err := c.Get(ctx, "nope", &out)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "k", []domain.Hotel{{ID: 1}}, 60))
	require.NoError(t, c.Del(ctx, "k"))
	ok, err = c.Get(ctx, "k", &out)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemCache_CachedValueIsDetached(t *testing.T) {
	c := memcache.New(time.Minute)
	ctx := context.Background()

	in := []domain.Hotel{{ID: 1, Name: "Central Sochi"}}
	require.NoError(t, c.Set(ctx, "k", in, 60))

	// mutating the original must not leak into later reads
	in[0].Name = "CHANGED"

	var out []domain.Hotel
	ok, err := c.Get(ctx, "k", &out)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Central Sochi", out[0].Name)
}
