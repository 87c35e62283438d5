package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/custodia-labs/ragdocs/internal/core/domain"
	"github.com/custodia-labs/ragdocs/internal/core/ports/driven"
	"github.com/custodia-labs/ragdocs/internal/logger"
)

// AddDocumentation ingests one URL: acquire chunks, then for each chunk in
// order embed, assign a fresh random id, and upsert with durability
// acknowledged before the next chunk starts. A failure aborts the remaining
// chunks; chunks already upserted stay in the store.
func (s *Service) AddDocumentation(ctx context.Context, url string) (domain.IngestSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	logger.Section("Add Documentation")
	logger.Debug("URL: %s", url)

	if err := s.ensureCollection(ctx); err != nil {
		return domain.IngestSummary{}, err
	}

	chunks, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		return domain.IngestSummary{}, err
	}
	logger.Debug("Fetched %d chunks", len(chunks))

	declaredSize := s.embedder.Dimensions()

	for i, chunk := range chunks {
		vector, err := s.embedder.Embed(ctx, chunk.Text)
		if err != nil {
			return domain.IngestSummary{}, fmt.Errorf("chunk %d/%d: %w", i+1, len(chunks), err)
		}

		// Admission check: a vector that does not match the collection's
		// declared size is rejected, never padded or truncated.
		if len(vector) != declaredSize {
			return domain.IngestSummary{}, fmt.Errorf(
				"chunk %d/%d: embedding has %d dimensions, collection expects %d",
				i+1, len(chunks), len(vector), declaredSize)
		}

		point := driven.Point{
			ID:      uuid.NewString(),
			Vector:  vector,
			Payload: chunk.Payload(),
		}
		if err := s.store.Upsert(ctx, s.collection, point); err != nil {
			return domain.IngestSummary{}, fmt.Errorf("chunk %d/%d: %w", i+1, len(chunks), err)
		}
		logger.Debug("Upserted chunk %d/%d", i+1, len(chunks))
	}

	summary := domain.IngestSummary{URL: url, ChunkCount: len(chunks)}
	if len(chunks) > 0 && chunks[0].IsPDF {
		summary.PDF = true
		summary.Title = chunks[0].Title
		summary.Author = chunks[0].Author
		summary.PageCount = chunks[0].PageCount
	}
	return summary, nil
}
