package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/ppda/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contractSample(id, model string, at time.Time) *domain.Sample {
	return &domain.Sample{
		ID:        id,
		Model:     model,
		Seed:      42,
		Symbols:   []domain.Symbol{"a", "b", "$"},
		Text:      "ab$",
		Weight:    "1/4",
		Steps:     3,
		CreatedAt: at,
	}
}

// RunSampleStoreContract runs a suite of tests to verify that a SampleStore
// implementation adheres to the defined interface contract.
func RunSampleStoreContract(t *testing.T, store SampleStore) {
	ctx := context.Background()
	prefix := "contract-" + time.Now().Format("20060102150405")
	base := time.Now().UTC().Truncate(time.Millisecond)

	t.Run("Save and Load", func(t *testing.T) {
		id := prefix + "-load"
		sample := contractSample(id, "anbn", base)

		require.NoError(t, store.Save(ctx, sample), "Save should not return error")

		loaded, err := store.Load(ctx, id)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, sample.ID, loaded.ID)
		assert.Equal(t, sample.Model, loaded.Model)
		assert.Equal(t, sample.Symbols, loaded.Symbols)
		assert.Equal(t, sample.Weight, loaded.Weight)
		assert.Equal(t, sample.Steps, loaded.Steps)
		assert.True(t, sample.CreatedAt.Equal(loaded.CreatedAt))

		// callers must not be able to mutate stored data through the pointer
		loaded.Text = "mutated"
		again, err := store.Load(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "ab$", again.Text)

		require.NoError(t, store.Delete(ctx, id))
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+prefix)
		assert.ErrorIs(t, err, domain.ErrSampleNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		id := prefix + "-delete"
		require.NoError(t, store.Save(ctx, contractSample(id, "coin", base)))

		require.NoError(t, store.Delete(ctx, id), "Delete should not return error")

		_, err := store.Load(ctx, id)
		assert.ErrorIs(t, err, domain.ErrSampleNotFound, "Load after Delete should return ErrSampleNotFound")
		assert.NoError(t, store.Delete(ctx, id), "Deleting twice is not an error")
	})

	t.Run("List oldest first", func(t *testing.T) {
		id1 := prefix + "-1"
		id2 := prefix + "-2"
		id3 := prefix + "-3"
		require.NoError(t, store.Save(ctx, contractSample(id2, "coin", base.Add(2*time.Second))))
		require.NoError(t, store.Save(ctx, contractSample(id1, "dyck", base.Add(time.Second))))
		require.NoError(t, store.Save(ctx, contractSample(id3, "coin", base.Add(3*time.Second))))
		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
			_ = store.Delete(ctx, id3)
		}()

		ids, err := store.List(ctx)
		require.NoError(t, err)

		var ours []string
		for _, id := range ids {
			if id == id1 || id == id2 || id == id3 {
				ours = append(ours, id)
			}
		}
		assert.Equal(t, []string{id1, id2, id3}, ours)

		coins, err := LoadAll(ctx, store, "coin")
		require.NoError(t, err)
		var coinIDs []string
		for _, s := range coins {
			if s.ID == id2 || s.ID == id3 {
				coinIDs = append(coinIDs, s.ID)
			}
			assert.Equal(t, "coin", s.Model)
		}
		assert.Equal(t, []string{id2, id3}, coinIDs)
	})
}
