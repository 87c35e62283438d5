package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/ragdocs/internal/core/domain"
	"github.com/custodia-labs/ragdocs/internal/logger"
)

// noResultsMessage is returned for an empty result set so the caller can
// tell "nothing matched" from an empty formatting failure.
const noResultsMessage = "No results found."

// resultSeparator joins formatted result blocks.
const resultSeparator = "\n---\n"

// Search embeds the query with the active provider, runs a nearest
// neighbour search, validates every returned payload, and formats the
// results by descending score. An invalid stored payload aborts the whole
// search rather than being silently skipped.
func (s *Service) Search(ctx context.Context, query string, limit int) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	logger.Section("Search")
	logger.Debug("Query: %q", query)

	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	if err := s.ensureCollection(ctx); err != nil {
		return "", err
	}

	vector, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return "", err
	}
	if len(vector) != s.embedder.Dimensions() {
		return "", fmt.Errorf("query embedding has %d dimensions, collection expects %d",
			len(vector), s.embedder.Dimensions())
	}

	hits, err := s.store.Search(ctx, s.collection, vector, limit)
	if err != nil {
		return "", err
	}
	logger.Debug("Store returned %d hits", len(hits))

	if len(hits) == 0 {
		return noResultsMessage, nil
	}

	blocks := make([]string, 0, len(hits))
	for _, hit := range hits {
		chunk, err := domain.DecodeChunkPayload(hit.Payload)
		if err != nil {
			return "", err
		}
		blocks = append(blocks, fmt.Sprintf("[%s](%s)\nScore: %s\nContent: %s\n",
			chunk.Title, chunk.URL, formatScore(hit.Score), chunk.Text))
	}

	return strings.Join(blocks, resultSeparator), nil
}

// formatScore renders the similarity score with minimal digits.
func formatScore(score float64) string {
	return strconv.FormatFloat(score, 'g', -1, 64)
}
