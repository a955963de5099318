package ports

import (
	"context"
	"errors"
	"fmt"

	"github.com/aretw0/ppda/pkg/domain"
)

// SampleStore defines the interface for persisting generated samples.
// Automata themselves are never persisted; only the strings they produced.
type SampleStore interface {
	// Save persists a sample under sample.ID, replacing any previous one.
	Save(ctx context.Context, sample *domain.Sample) error

	// Load retrieves the sample with the given ID.
	// Returns domain.ErrSampleNotFound if it does not exist.
	Load(ctx context.Context, id string) (*domain.Sample, error)

	// Delete removes the sample. Deleting an unknown ID is not an error.
	Delete(ctx context.Context, id string) error

	// List returns the stored sample IDs, oldest first.
	List(ctx context.Context) ([]string, error)
}

// LoadAll loads every stored sample, oldest first, keeping only those of
// model (all samples when model is empty). Samples that disappear between
// List and Load are skipped.
func LoadAll(ctx context.Context, store SampleStore, model string) ([]*domain.Sample, error) {
	ids, err := store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list samples: %w", err)
	}

	out := make([]*domain.Sample, 0, len(ids))
	for _, id := range ids {
		s, err := store.Load(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrSampleNotFound) {
				continue
			}
			return nil, fmt.Errorf("failed to load sample %s: %w", id, err)
		}
		if model != "" && s.Model != model {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}
