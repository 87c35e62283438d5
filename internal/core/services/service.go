package services

import (
	"sync"

	"github.com/custodia-labs/ragdocs/internal/core/domain"
	"github.com/custodia-labs/ragdocs/internal/core/ports/driven"
	"github.com/custodia-labs/ragdocs/internal/core/ports/driving"
)

// Ensure Service implements the interface.
var _ driving.DocumentationService = (*Service)(nil)

// CollectionName is the single logical collection for this deployment.
const CollectionName = "documentation"

// DefaultSearchLimit is the result limit used when the caller passes none.
const DefaultSearchLimit = 5

// NewEmbedderFunc builds an embedding service from settings. Injected so
// the core never imports provider adapters. Construction failures are
// domain.ErrConfig.
type NewEmbedderFunc func(settings domain.EmbeddingSettings) (driven.EmbeddingService, error)

// Service is the documentation service. One request runs at a time: the
// mutex spans collection alignment plus the upserts or search of a request,
// so two requests can never both observe a dimension mismatch and recreate
// the collection concurrently.
type Service struct {
	mu          sync.Mutex
	store       driven.VectorStore
	embedder    driven.EmbeddingService
	fetcher     driven.ContentFetcher
	newEmbedder NewEmbedderFunc
	collection  string
}

// NewService creates the documentation service.
func NewService(
	store driven.VectorStore,
	embedder driven.EmbeddingService,
	fetcher driven.ContentFetcher,
	newEmbedder NewEmbedderFunc,
) *Service {
	return &Service{
		store:       store,
		embedder:    embedder,
		fetcher:     fetcher,
		newEmbedder: newEmbedder,
		collection:  CollectionName,
	}
}

// Close releases the active embedding provider.
func (s *Service) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.embedder != nil {
		return s.embedder.Close()
	}
	return nil
}
