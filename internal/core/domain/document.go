package domain

import (
	"fmt"
	"time"
)

// PayloadType is the discriminator tag stored with every indexed payload.
// Readers must reject payloads that do not carry it.
const PayloadType = "DocumentChunk"

// DocumentChunk is the unit of embedding and storage: a bounded slice of
// extracted document text plus its source metadata. For PDFs one chunk is
// produced per page; for HTML the chunker produces word-aligned slices.
type DocumentChunk struct {
	// Text is the chunk content.
	Text string

	// URL is the source the chunk was extracted from.
	URL string

	// Title is the document title (or the URL when none was found).
	Title string

	// Timestamp is when the chunk was created during ingestion.
	Timestamp time.Time

	// PageNumber is the 1-based page within the PDF. Zero for HTML chunks.
	PageNumber int

	// PageCount is the total page count of the PDF. Zero for HTML chunks.
	PageCount int

	// Author is the PDF author metadata, when present.
	Author string

	// IsPDF marks chunks produced by the PDF ingestion path.
	IsPDF bool
}

// SearchResult pairs a decoded chunk payload with its similarity score.
// Higher scores are more relevant.
type SearchResult struct {
	Chunk DocumentChunk
	Score float64
}

// IngestSummary reports the outcome of ingesting one URL.
type IngestSummary struct {
	URL        string
	ChunkCount int

	// PDF metadata, populated only when the source was a PDF.
	PDF       bool
	Title     string
	Author    string
	PageCount int
}

// String renders the summary as the user-visible ingestion report.
func (s IngestSummary) String() string {
	if s.PDF {
		return fmt.Sprintf(
			"Successfully added PDF from %s\nTitle: %s\nAuthor: %s\nPages: %d\nChunks: %d",
			s.URL, s.Title, s.Author, s.PageCount, s.ChunkCount)
	}
	return fmt.Sprintf("Successfully added documentation from %s (%d chunks processed)",
		s.URL, s.ChunkCount)
}

// EmbeddingReport describes a successfully validated embedding configuration.
type EmbeddingReport struct {
	Provider   AIProvider
	Model      string
	Dimensions int
}

// String renders the report as the user-visible confirmation.
func (r EmbeddingReport) String() string {
	return fmt.Sprintf(
		"Successfully configured %s embeddings (%s).\nVector size: %d\nCollection updated to match new vector size.",
		r.Provider, r.Model, r.Dimensions)
}
