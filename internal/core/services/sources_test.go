package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/ragdocs/internal/core/ports/driven"
)

func TestListSources(t *testing.T) {
	t.Run("dedupes sources in first-seen order", func(t *testing.T) {
		store := newMockVectorStore()
		store.points = []driven.Point{
			{ID: "1", Payload: searchPayload("Install Guide", "https://docs.example.com/install", "a")},
			{ID: "2", Payload: searchPayload("Install Guide", "https://docs.example.com/install", "b")},
			{ID: "3", Payload: searchPayload("FAQ", "https://docs.example.com/faq", "c")},
			{ID: "4", Payload: searchPayload("Install Guide", "https://docs.example.com/install", "d")},
		}
		svc := NewService(store, &mockEmbedder{dims: 768}, &mockFetcher{}, nil)

		out, err := svc.ListSources(context.Background())
		require.NoError(t, err)

		want := "Install Guide (https://docs.example.com/install)\n" +
			"FAQ (https://docs.example.com/faq)"
		assert.Equal(t, want, out)
	})

	t.Run("same title under different urls stays distinct", func(t *testing.T) {
		store := newMockVectorStore()
		store.points = []driven.Point{
			{ID: "1", Payload: searchPayload("Reference", "https://docs.example.com/v1", "a")},
			{ID: "2", Payload: searchPayload("Reference", "https://docs.example.com/v2", "b")},
		}
		svc := NewService(store, &mockEmbedder{dims: 768}, &mockFetcher{}, nil)

		out, err := svc.ListSources(context.Background())
		require.NoError(t, err)
		assert.Contains(t, out, "Reference (https://docs.example.com/v1)")
		assert.Contains(t, out, "Reference (https://docs.example.com/v2)")
	})

	t.Run("invalid payloads are skipped, not fatal", func(t *testing.T) {
		store := newMockVectorStore()
		store.points = []driven.Point{
			{ID: "1", Payload: map[string]any{"_type": "Other"}},
			{ID: "2", Payload: searchPayload("FAQ", "https://docs.example.com/faq", "c")},
		}
		svc := NewService(store, &mockEmbedder{dims: 768}, &mockFetcher{}, nil)

		out, err := svc.ListSources(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "FAQ (https://docs.example.com/faq)", out)
	})

	t.Run("empty collection returns the sentinel message", func(t *testing.T) {
		store := newMockVectorStore()
		svc := NewService(store, &mockEmbedder{dims: 768}, &mockFetcher{}, nil)

		out, err := svc.ListSources(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "No documentation sources found.", out)
	})
}
