package app_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staybook/internal/app"
	"staybook/internal/generator"
)

func newStore(size int) *app.PopulationStore {
	return app.NewPopulationStore(generator.New(generator.NewSeededSource(1)), size)
}

func TestPopulationStore_GeneratesOnce(t *testing.T) {
	store := newStore(50)
	ctx := context.Background()

	// race many first-requests at the lazy init
	var wg sync.WaitGroup
	results := make([][]int, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			hs := store.All(ctx)
			ids := make([]int, len(hs))
			for j, h := range hs {
				ids[j] = h.ID
			}
			results[i] = ids
		}(i)
	}
	wg.Wait()

	for i := 1; i < len(results); i++ {
		assert.Equal(t, results[0], results[i])
	}

	// stable until restart: later reads see the same records
	first := store.All(ctx)[0]
	again := store.All(ctx)[0]
	assert.Equal(t, first, again)
}

func TestPopulationStore_ByIDInsidePopulation(t *testing.T) {
	store := newStore(100)
	ctx := context.Background()

	want := store.All(ctx)[41]
	got, err := store.ByID(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestPopulationStore_ByIDSynthesizesOutsidePopulation(t *testing.T) {
	store := newStore(10)
	ctx := context.Background()

	a, err := store.ByID(ctx, 5000)
	require.NoError(t, err)
	assert.Equal(t, 5000, a.ID)

	// memoized: the same id resolves to the identical record
	b, err := store.ByID(ctx, 5000)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	// keyed by id: a different store yields the same synthetic hotel
	other := newStore(10)
	c, err := other.ByID(ctx, 5000)
	require.NoError(t, err)
	assert.Equal(t, a, c)
}

func TestPopulationStore_ByIDRejectsNonPositive(t *testing.T) {
	store := newStore(10)
	_, err := store.ByID(context.Background(), 0)
	assert.Error(t, err)
	_, err = store.ByID(context.Background(), -3)
	assert.Error(t, err)
}

func TestPopulationStore_ForLocation(t *testing.T) {
	store := newStore(10)
	hs := store.ForLocation(context.Background(), "Sochi", 12)
	require.Len(t, hs, 12)
	for _, h := range hs {
		assert.Equal(t, "Sochi", h.Location)
	}
}
