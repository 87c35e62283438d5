package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/ragdocs/internal/core/domain"
	"github.com/custodia-labs/ragdocs/internal/core/ports/driven"
)

// --- Mock implementations ---

// mockVectorStore implements driven.VectorStore for testing. It keeps the
// collections and upserted points in memory and records every mutating call
// in ops so tests can assert on the exact lifecycle sequence.
type mockVectorStore struct {
	collections map[string]int // name -> vector size
	points      []driven.Point
	hits        []driven.ScoredPayload
	ops         []string

	pingErr   error
	listErr   error
	createErr error
	deleteErr error
	sizeErr   error
	upsertErr error
	searchErr error
	scrollErr error
}

func newMockVectorStore() *mockVectorStore {
	return &mockVectorStore{collections: map[string]int{}}
}

func (m *mockVectorStore) Ping(_ context.Context) error {
	return m.pingErr
}

func (m *mockVectorStore) ListCollections(_ context.Context) ([]string, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	names := make([]string, 0, len(m.collections))
	for name := range m.collections {
		names = append(names, name)
	}
	return names, nil
}

func (m *mockVectorStore) CreateCollection(_ context.Context, name string, vectorSize int) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.ops = append(m.ops, fmt.Sprintf("create %s %d", name, vectorSize))
	m.collections[name] = vectorSize
	return nil
}

func (m *mockVectorStore) DeleteCollection(_ context.Context, name string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.ops = append(m.ops, "delete "+name)
	delete(m.collections, name)
	m.points = nil
	return nil
}

func (m *mockVectorStore) CollectionVectorSize(_ context.Context, name string) (int, error) {
	if m.sizeErr != nil {
		return 0, m.sizeErr
	}
	return m.collections[name], nil
}

func (m *mockVectorStore) Upsert(_ context.Context, _ string, point driven.Point) error {
	if m.upsertErr != nil {
		return m.upsertErr
	}
	m.ops = append(m.ops, "upsert "+point.ID)
	m.points = append(m.points, point)
	return nil
}

func (m *mockVectorStore) Search(_ context.Context, _ string, _ []float32, limit int) ([]driven.ScoredPayload, error) {
	if m.searchErr != nil {
		return nil, m.searchErr
	}
	if limit < len(m.hits) {
		return m.hits[:limit], nil
	}
	return m.hits, nil
}

func (m *mockVectorStore) Scroll(_ context.Context, _ string) ([]map[string]any, error) {
	if m.scrollErr != nil {
		return nil, m.scrollErr
	}
	payloads := make([]map[string]any, len(m.points))
	for i, p := range m.points {
		payloads[i] = p.Payload
	}
	return payloads, nil
}

// mockEmbedder implements driven.EmbeddingService for testing.
type mockEmbedder struct {
	dims     int
	model    string
	embedErr error
	pingErr  error

	// failAfter rejects embedding calls once this many have succeeded.
	// Zero means never fail.
	failAfter int
	calls     int
	closed    bool
}

func (m *mockEmbedder) Embed(_ context.Context, _ string) ([]float32, error) {
	if m.embedErr != nil {
		return nil, m.embedErr
	}
	m.calls++
	if m.failAfter > 0 && m.calls > m.failAfter {
		return nil, fmt.Errorf("%w: embedding backend unavailable", domain.ErrProviderCall)
	}
	return make([]float32, m.dims), nil
}

func (m *mockEmbedder) Dimensions() int { return m.dims }

func (m *mockEmbedder) ModelName() string {
	if m.model != "" {
		return m.model
	}
	return "mock-embed"
}

func (m *mockEmbedder) Ping(_ context.Context) error { return m.pingErr }

func (m *mockEmbedder) Close() error {
	m.closed = true
	return nil
}

// mockFetcher implements driven.ContentFetcher for testing.
type mockFetcher struct {
	chunks   []domain.DocumentChunk
	fetchErr error
}

func (m *mockFetcher) Fetch(_ context.Context, _ string) ([]domain.DocumentChunk, error) {
	if m.fetchErr != nil {
		return nil, m.fetchErr
	}
	return m.chunks, nil
}

// Interface checks.
var (
	_ driven.VectorStore      = (*mockVectorStore)(nil)
	_ driven.EmbeddingService = (*mockEmbedder)(nil)
	_ driven.ContentFetcher   = (*mockFetcher)(nil)
)
