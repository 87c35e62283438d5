package services

import (
	"context"
	"fmt"
	"slices"

	"github.com/custodia-labs/ragdocs/internal/logger"
)

// ensureCollection guarantees the collection exists and its declared vector
// size matches the active provider's dimensionality. It runs at the start
// of every request, under the service mutex.
//
// A mismatch is resolved by destructive recreation: switching embedding
// providers invalidates all previously indexed vectors, so the collection
// is dropped and recreated at the new size. That discards indexed data and
// is logged, not surfaced as an error.
func (s *Service) ensureCollection(ctx context.Context) error {
	if err := s.store.Ping(ctx); err != nil {
		return err
	}

	required := s.embedder.Dimensions()

	names, err := s.store.ListCollections(ctx)
	if err != nil {
		return fmt.Errorf("initializing collection: %w", err)
	}

	if !slices.Contains(names, s.collection) {
		logger.Info("Creating collection %s with vector size %d", s.collection, required)
		return s.store.CreateCollection(ctx, s.collection, required)
	}

	current, err := s.store.CollectionVectorSize(ctx, s.collection)
	if err != nil {
		// Fail safe toward recreation: an unreadable size cannot be
		// trusted to match.
		logger.Warn("Could not determine current vector size, recreating collection: %v", err)
		return s.recreateCollection(ctx, required)
	}

	if current != required {
		logger.Warn("Vector size mismatch: collection=%d, required=%d", current, required)
		return s.recreateCollection(ctx, required)
	}

	return nil
}

// recreateCollection deletes and recreates the collection at the given
// vector size, discarding all indexed points.
func (s *Service) recreateCollection(ctx context.Context, vectorSize int) error {
	logger.Warn("Recreating collection %s with vector size %d (previously indexed data is discarded)",
		s.collection, vectorSize)

	if err := s.store.DeleteCollection(ctx, s.collection); err != nil {
		return fmt.Errorf("recreating collection: %w", err)
	}
	if err := s.store.CreateCollection(ctx, s.collection, vectorSize); err != nil {
		return fmt.Errorf("recreating collection: %w", err)
	}
	return nil
}
