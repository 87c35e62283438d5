package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/ragdocs/internal/core/domain"
	"github.com/custodia-labs/ragdocs/internal/logger"
)

// noSourcesMessage is returned when the collection holds no valid chunks.
const noSourcesMessage = "No documentation sources found."

// ListSources scrolls the whole collection and returns one line per unique
// source, in first-seen order. Chunks with unreadable payloads are skipped
// rather than failing the listing, since a single bad record should not
// hide every other source from the caller.
func (s *Service) ListSources(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	logger.Section("List sources")

	if err := s.ensureCollection(ctx); err != nil {
		return "", err
	}

	payloads, err := s.store.Scroll(ctx, s.collection)
	if err != nil {
		return "", err
	}
	logger.Debug("Scrolled %d stored chunks", len(payloads))

	seen := make(map[string]struct{})
	var lines []string
	for _, payload := range payloads {
		chunk, err := domain.DecodeChunkPayload(payload)
		if err != nil {
			logger.Debug("Skipping chunk with invalid payload: %v", err)
			continue
		}
		line := fmt.Sprintf("%s (%s)", chunk.Title, chunk.URL)
		if _, ok := seen[line]; ok {
			continue
		}
		seen[line] = struct{}{}
		lines = append(lines, line)
	}

	if len(lines) == 0 {
		return noSourcesMessage, nil
	}
	return strings.Join(lines, "\n"), nil
}
