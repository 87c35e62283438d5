package driving

import (
	"context"

	"github.com/custodia-labs/ragdocs/internal/core/domain"
)

// DocumentationService is the application core: ingestion, retrieval, and
// source listing over the documentation collection. Implementations
// serialize requests; each call runs to completion before the next starts.
type DocumentationService interface {
	// AddDocumentation ingests the document at the URL into the vector
	// collection and reports what was indexed.
	AddDocumentation(ctx context.Context, url string) (domain.IngestSummary, error)

	// Search embeds the query, runs a similarity search, and returns the
	// formatted result blocks ordered by descending score. A non-positive
	// limit selects the default of 5.
	Search(ctx context.Context, query string, limit int) (string, error)

	// ListSources returns the newline-joined list of distinct ingested
	// sources as "title (url)" entries.
	ListSources(ctx context.Context) (string, error)

	// TestEmbeddings validates an embedding configuration by embedding the
	// sample text. On success the configuration becomes the active provider
	// and the collection is realigned to its vector size.
	TestEmbeddings(ctx context.Context, text string, settings domain.EmbeddingSettings) (domain.EmbeddingReport, error)
}
