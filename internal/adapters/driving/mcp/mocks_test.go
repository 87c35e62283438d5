package mcp

import (
	"context"

	"github.com/custodia-labs/ragdocs/internal/core/domain"
)

// mockDocumentationService is a mock implementation of
// driving.DocumentationService.
type mockDocumentationService struct {
	summary      domain.IngestSummary
	searchOut    string
	sourcesOut   string
	report       domain.EmbeddingReport
	err          error
	lastURL      string
	lastQuery    string
	lastLimit    int
	lastText     string
	lastSettings domain.EmbeddingSettings
}

func (m *mockDocumentationService) AddDocumentation(_ context.Context, url string) (domain.IngestSummary, error) {
	m.lastURL = url
	return m.summary, m.err
}

func (m *mockDocumentationService) Search(_ context.Context, query string, limit int) (string, error) {
	m.lastQuery = query
	m.lastLimit = limit
	return m.searchOut, m.err
}

func (m *mockDocumentationService) ListSources(_ context.Context) (string, error) {
	return m.sourcesOut, m.err
}

func (m *mockDocumentationService) TestEmbeddings(_ context.Context, text string, settings domain.EmbeddingSettings) (domain.EmbeddingReport, error) {
	m.lastText = text
	m.lastSettings = settings
	return m.report, m.err
}
