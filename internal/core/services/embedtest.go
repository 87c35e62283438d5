package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/ragdocs/internal/core/domain"
	"github.com/custodia-labs/ragdocs/internal/logger"
)

// TestEmbeddings validates an embedding configuration by running a real
// embedding call against it, and on success switches the service over to
// the new provider. The previous provider stays active if the candidate
// fails, so a bad configuration never leaves the service without a working
// embedder.
func (s *Service) TestEmbeddings(ctx context.Context, text string, settings domain.EmbeddingSettings) (domain.EmbeddingReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	logger.Section("Test embeddings")

	if settings.Provider == "" {
		settings.Provider = domain.AIProviderOllama
	}
	if !settings.Provider.IsValid() {
		return domain.EmbeddingReport{}, fmt.Errorf("%w: unknown embedding provider %q",
			domain.ErrConfig, settings.Provider)
	}

	candidate, err := s.newEmbedder(settings)
	if err != nil {
		return domain.EmbeddingReport{}, err
	}

	vector, err := candidate.Embed(ctx, text)
	if err != nil {
		candidate.Close()
		return domain.EmbeddingReport{}, err
	}
	logger.Debug("Candidate %s/%s produced a %d-dimensional embedding",
		settings.Provider, candidate.ModelName(), len(vector))

	old := s.embedder
	s.embedder = candidate
	if old != nil {
		if err := old.Close(); err != nil {
			logger.Warn("Closing previous embedding provider: %v", err)
		}
	}

	// The collection must match the new vector size before the next
	// ingest or search. Recreation drops stored chunks when the size
	// changed.
	if err := s.ensureCollection(ctx); err != nil {
		return domain.EmbeddingReport{}, err
	}

	return domain.EmbeddingReport{
		Provider:   settings.Provider,
		Model:      candidate.ModelName(),
		Dimensions: len(vector),
	}, nil
}
