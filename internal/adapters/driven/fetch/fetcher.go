// Package fetch acquires documentation URLs and turns them into document
// chunks: PDFs are downloaded under a size ceiling and chunked per page,
// HTML pages are rendered in the shared headless browser and chunked by the
// word-aligned splitter.
package fetch

import (
	"context"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/custodia-labs/ragdocs/internal/chunker"
	"github.com/custodia-labs/ragdocs/internal/core/domain"
	"github.com/custodia-labs/ragdocs/internal/core/ports/driven"
	"github.com/custodia-labs/ragdocs/internal/logger"
)

// Ensure Fetcher implements the interface.
var _ driven.ContentFetcher = (*Fetcher)(nil)

// Default configuration values.
const (
	// DefaultMaxPDFSize is the hard ceiling on PDF downloads.
	DefaultMaxPDFSize = 20 * 1024 * 1024

	// DefaultDownloadTimeout bounds one PDF download.
	DefaultDownloadTimeout = 15 * time.Second

	// probeTimeout bounds the metadata-only HEAD probe used for URL
	// classification.
	probeTimeout = 5 * time.Second
)

// Config holds configuration for the fetcher.
type Config struct {
	// Browser renders HTML pages. Required for HTML acquisition.
	Browser driven.Browser

	// ChunkSize is the target chunk size for HTML text (default: 1000).
	ChunkSize int

	// MaxPDFSize is the PDF download ceiling in bytes (default: 20 MiB).
	MaxPDFSize int64

	// DownloadTimeout bounds one PDF download (default: 15s).
	DownloadTimeout time.Duration
}

// Fetcher classifies and acquires URLs.
type Fetcher struct {
	client     *http.Client
	browser    driven.Browser
	splitter   *chunker.Splitter
	maxPDFSize int64
}

// New creates a new fetcher.
func New(cfg Config) *Fetcher {
	if cfg.MaxPDFSize == 0 {
		cfg.MaxPDFSize = DefaultMaxPDFSize
	}
	if cfg.DownloadTimeout == 0 {
		cfg.DownloadTimeout = DefaultDownloadTimeout
	}

	return &Fetcher{
		client:     &http.Client{Timeout: cfg.DownloadTimeout},
		browser:    cfg.Browser,
		splitter:   chunker.New(chunker.WithChunkSize(cfg.ChunkSize)),
		maxPDFSize: cfg.MaxPDFSize,
	}
}

// Fetch classifies the URL and acquires it via the PDF or HTML path.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) ([]domain.DocumentChunk, error) {
	if f.isPDF(ctx, rawURL) {
		logger.Debug("PDF detected: %s", rawURL)
		return f.fetchPDF(ctx, rawURL)
	}
	return f.fetchHTML(ctx, rawURL)
}

// isPDF classifies the URL: a .pdf path extension, otherwise a HEAD probe of
// the declared content type. If the probe fails (network error, method not
// supported) the extension check alone decides.
func (f *Fetcher) isPDF(ctx context.Context, rawURL string) bool {
	if hasPDFExtension(rawURL) {
		return true
	}

	probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(probeCtx, http.MethodHead, rawURL, http.NoBody)
	if err != nil {
		return false
	}

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Debug("HEAD probe failed for %s, falling back to extension check: %v", rawURL, err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return false
	}
	return strings.Contains(resp.Header.Get("Content-Type"), "application/pdf")
}

func hasPDFExtension(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return strings.HasSuffix(strings.ToLower(rawURL), ".pdf")
	}
	return strings.EqualFold(path.Ext(u.Path), ".pdf")
}

// fetchHTML renders the page in the shared browser session, extracts the
// main content, and chunks it.
func (f *Fetcher) fetchHTML(ctx context.Context, rawURL string) ([]domain.DocumentChunk, error) {
	html, err := f.browser.HTML(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	title, text := extractContent(html)
	if title == "" {
		title = rawURL
	}

	now := time.Now().UTC()
	pieces := f.splitter.Split(text)
	logger.Debug("Extracted %d chunks from %s", len(pieces), rawURL)

	chunks := make([]domain.DocumentChunk, 0, len(pieces))
	for _, piece := range pieces {
		chunks = append(chunks, domain.DocumentChunk{
			Text:      piece,
			URL:       rawURL,
			Title:     title,
			Timestamp: now,
		})
	}
	return chunks, nil
}
