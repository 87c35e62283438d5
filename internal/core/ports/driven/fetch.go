package driven

import (
	"context"

	"github.com/custodia-labs/ragdocs/internal/core/domain"
)

// ContentFetcher acquires a URL and turns it into document chunks ready for
// embedding: one chunk per page for PDFs, word-aligned chunks for HTML.
type ContentFetcher interface {
	Fetch(ctx context.Context, url string) ([]domain.DocumentChunk, error)
}

// Browser renders a page in a shared headless browsing session and returns
// its HTML after scripts have run. Each call opens its own tab and closes it
// before returning, success or failure. The session itself is lazily created
// on first use and lives until Close.
type Browser interface {
	// HTML navigates to the URL and returns the rendered document HTML.
	HTML(ctx context.Context, url string) (string, error)

	// Close tears down the browsing session. Safe to call before first use.
	Close() error
}
