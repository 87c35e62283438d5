package cli

import (
	"context"

	"github.com/custodia-labs/ragdocs/internal/core/domain"
)

// stubDocsService is a canned driving.DocumentationService for command
// tests.
type stubDocsService struct {
	summary    domain.IngestSummary
	searchOut  string
	sourcesOut string
	report     domain.EmbeddingReport
	err        error
	lastLimit  int
}

func (s *stubDocsService) AddDocumentation(_ context.Context, _ string) (domain.IngestSummary, error) {
	return s.summary, s.err
}

func (s *stubDocsService) Search(_ context.Context, _ string, limit int) (string, error) {
	s.lastLimit = limit
	return s.searchOut, s.err
}

func (s *stubDocsService) ListSources(_ context.Context) (string, error) {
	return s.sourcesOut, s.err
}

func (s *stubDocsService) TestEmbeddings(_ context.Context, _ string, _ domain.EmbeddingSettings) (domain.EmbeddingReport, error) {
	return s.report, s.err
}

// setupTestServices swaps the wired service for a stub and returns a
// cleanup function restoring the previous state.
func setupTestServices(stub *stubDocsService) func() {
	prevService := docsService
	prevInitialized := initialized
	docsService = stub
	initialized = true
	return func() {
		docsService = prevService
		initialized = prevInitialized
	}
}
