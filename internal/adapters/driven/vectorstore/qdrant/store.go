// Package qdrant provides a vector store adapter using the Qdrant REST API.
package qdrant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/custodia-labs/ragdocs/internal/core/domain"
	"github.com/custodia-labs/ragdocs/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.VectorStore = (*Store)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "http://127.0.0.1:6333"
	DefaultTimeout = 15 * time.Second

	// scrollPageSize is the page size used when scrolling full collections.
	scrollPageSize = 256
)

// Config holds configuration for the Qdrant store.
type Config struct {
	// BaseURL is the Qdrant REST endpoint (default: http://127.0.0.1:6333).
	BaseURL string

	// APIKey is the optional Qdrant API key.
	APIKey string

	// Timeout is the per-request timeout (default: 15s).
	Timeout time.Duration
}

// Store is a REST client for Qdrant. All collections it creates use cosine
// distance.
type Store struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// New creates a new Qdrant store.
func New(cfg Config) *Store {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Store{
		client:  &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
	}
}

// Ping verifies connectivity by listing collections.
// An unreachable store is reported as domain.ErrConnection.
func (s *Store) Ping(ctx context.Context) error {
	var resp collectionsResponse
	if err := s.doJSON(ctx, http.MethodGet, "/collections", nil, &resp); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrConnection, err)
	}
	return nil
}

// ListCollections returns the names of all collections.
func (s *Store) ListCollections(ctx context.Context) ([]string, error) {
	var resp collectionsResponse
	if err := s.doJSON(ctx, http.MethodGet, "/collections", nil, &resp); err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}

	names := make([]string, 0, len(resp.Result.Collections))
	for _, c := range resp.Result.Collections {
		names = append(names, c.Name)
	}
	return names, nil
}

// CreateCollection creates a collection with the given vector size and
// cosine distance.
func (s *Store) CreateCollection(ctx context.Context, name string, vectorSize int) error {
	body := map[string]any{
		"vectors": map[string]any{
			"size":     vectorSize,
			"distance": "Cosine",
		},
	}
	if err := s.doJSON(ctx, http.MethodPut, "/collections/"+name, body, nil); err != nil {
		return fmt.Errorf("create collection %s: %w", name, err)
	}
	return nil
}

// DeleteCollection removes a collection and all of its points.
func (s *Store) DeleteCollection(ctx context.Context, name string) error {
	if err := s.doJSON(ctx, http.MethodDelete, "/collections/"+name, nil, nil); err != nil {
		return fmt.Errorf("delete collection %s: %w", name, err)
	}
	return nil
}

// CollectionVectorSize reads back the declared vector size of a collection.
func (s *Store) CollectionVectorSize(ctx context.Context, name string) (int, error) {
	var resp collectionInfoResponse
	if err := s.doJSON(ctx, http.MethodGet, "/collections/"+name, nil, &resp); err != nil {
		return 0, fmt.Errorf("get collection %s: %w", name, err)
	}

	size := resp.Result.Config.Params.Vectors.Size
	if size <= 0 {
		return 0, fmt.Errorf("collection %s: vector size not reported", name)
	}
	return size, nil
}

// Upsert writes one point, waiting for the store to acknowledge durability.
func (s *Store) Upsert(ctx context.Context, collection string, point driven.Point) error {
	body := map[string]any{
		"points": []map[string]any{
			{
				"id":      point.ID,
				"vector":  point.Vector,
				"payload": point.Payload,
			},
		},
	}
	path := fmt.Sprintf("/collections/%s/points?wait=true", collection)
	if err := s.doJSON(ctx, http.MethodPut, path, body, nil); err != nil {
		return fmt.Errorf("upsert point %s: %w", point.ID, err)
	}
	return nil
}

// Search returns the top-limit points nearest to the query vector, ranked by
// descending score, with payloads.
func (s *Store) Search(ctx context.Context, collection string, vector []float32, limit int) ([]driven.ScoredPayload, error) {
	body := map[string]any{
		"vector":       vector,
		"limit":        limit,
		"with_payload": true,
	}

	var resp searchResponse
	path := fmt.Sprintf("/collections/%s/points/search", collection)
	if err := s.doJSON(ctx, http.MethodPost, path, body, &resp); err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	hits := make([]driven.ScoredPayload, 0, len(resp.Result))
	for _, r := range resp.Result {
		hits = append(hits, driven.ScoredPayload{Payload: r.Payload, Score: r.Score})
	}
	return hits, nil
}

// Scroll returns the payloads of every point in the collection, following
// the store's pagination cursor to the end.
func (s *Store) Scroll(ctx context.Context, collection string) ([]map[string]any, error) {
	path := fmt.Sprintf("/collections/%s/points/scroll", collection)

	var payloads []map[string]any
	var offset any

	for {
		body := map[string]any{
			"limit":        scrollPageSize,
			"with_payload": true,
		}
		if offset != nil {
			body["offset"] = offset
		}

		var resp scrollResponse
		if err := s.doJSON(ctx, http.MethodPost, path, body, &resp); err != nil {
			return nil, fmt.Errorf("scroll: %w", err)
		}

		for _, p := range resp.Result.Points {
			payloads = append(payloads, p.Payload)
		}

		if resp.Result.NextPageOffset == nil {
			return payloads, nil
		}
		offset = resp.Result.NextPageOffset
	}
}

// Qdrant REST response shapes.

type collectionsResponse struct {
	Result struct {
		Collections []struct {
			Name string `json:"name"`
		} `json:"collections"`
	} `json:"result"`
}

type collectionInfoResponse struct {
	Result struct {
		Config struct {
			Params struct {
				Vectors struct {
					Size int `json:"size"`
				} `json:"vectors"`
			} `json:"params"`
		} `json:"config"`
	} `json:"result"`
}

type searchResponse struct {
	Result []struct {
		Score   float64        `json:"score"`
		Payload map[string]any `json:"payload"`
	} `json:"result"`
}

type scrollResponse struct {
	Result struct {
		Points []struct {
			Payload map[string]any `json:"payload"`
		} `json:"points"`
		NextPageOffset any `json:"next_page_offset"`
	} `json:"result"`
}

// doJSON performs one JSON request against the Qdrant API and decodes the
// response into out when non-nil.
func (s *Store) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if s.apiKey != "" {
		req.Header.Set("api-key", s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("qdrant %s %s: %w", method, path, domain.ErrNotFound)
	}
	if resp.StatusCode >= http.StatusMultipleChoices {
		detail, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if err != nil {
			return fmt.Errorf("qdrant %s %s: %s", method, path, resp.Status)
		}
		return fmt.Errorf("qdrant %s %s: %s: %s", method, path, resp.Status, string(detail))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
