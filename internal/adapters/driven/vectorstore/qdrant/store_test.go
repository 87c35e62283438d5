package qdrant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/ragdocs/internal/core/domain"
	"github.com/custodia-labs/ragdocs/internal/core/ports/driven"
)

func TestPing(t *testing.T) {
	t.Run("reachable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/collections", r.URL.Path)
			w.Write([]byte(`{"result":{"collections":[]}}`))
		}))
		defer server.Close()

		store := New(Config{BaseURL: server.URL})
		assert.NoError(t, store.Ping(context.Background()))
	})

	t.Run("unreachable is a connection error", func(t *testing.T) {
		store := New(Config{BaseURL: "http://127.0.0.1:1"})
		err := store.Ping(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrConnection)
	})
}

func TestListCollections(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"result":{"collections":[{"name":"documentation"},{"name":"other"}]}}`))
	}))
	defer server.Close()

	store := New(Config{BaseURL: server.URL})
	names, err := store.ListCollections(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"documentation", "other"}, names)
}

func TestCreateCollection(t *testing.T) {
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/collections/documentation", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"result":true}`))
	}))
	defer server.Close()

	store := New(Config{BaseURL: server.URL})
	require.NoError(t, store.CreateCollection(context.Background(), "documentation", 768))

	vectors := gotBody["vectors"].(map[string]any)
	assert.Equal(t, float64(768), vectors["size"])
	assert.Equal(t, "Cosine", vectors["distance"])
}

func TestDeleteCollection(t *testing.T) {
	var gotMethod string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		w.Write([]byte(`{"result":true}`))
	}))
	defer server.Close()

	store := New(Config{BaseURL: server.URL})
	require.NoError(t, store.DeleteCollection(context.Background(), "documentation"))
	assert.Equal(t, http.MethodDelete, gotMethod)
}

func TestCollectionVectorSize(t *testing.T) {
	t.Run("reports size", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte(`{"result":{"config":{"params":{"vectors":{"size":1536}}}}}`))
		}))
		defer server.Close()

		store := New(Config{BaseURL: server.URL})
		size, err := store.CollectionVectorSize(context.Background(), "documentation")
		require.NoError(t, err)
		assert.Equal(t, 1536, size)
	})

	t.Run("missing size is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte(`{"result":{"config":{"params":{}}}}`))
		}))
		defer server.Close()

		store := New(Config{BaseURL: server.URL})
		_, err := store.CollectionVectorSize(context.Background(), "documentation")
		assert.Error(t, err)
	})

	t.Run("absent collection is a not-found error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		store := New(Config{BaseURL: server.URL})
		_, err := store.CollectionVectorSize(context.Background(), "documentation")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestUpsert(t *testing.T) {
	var gotPath, gotQuery string
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"result":{"status":"acknowledged"}}`))
	}))
	defer server.Close()

	store := New(Config{BaseURL: server.URL})
	point := driven.Point{
		ID:      "7f9c24e5-3011-41e0-ae36-98f6d67c8a21",
		Vector:  []float32{0.1, 0.2},
		Payload: map[string]any{"_type": "DocumentChunk", "text": "t"},
	}
	require.NoError(t, store.Upsert(context.Background(), "documentation", point))

	assert.Equal(t, "/collections/documentation/points", gotPath)
	assert.Equal(t, "wait=true", gotQuery, "upsert must wait for durability")

	points := gotBody["points"].([]any)
	require.Len(t, points, 1)
	p := points[0].(map[string]any)
	assert.Equal(t, point.ID, p["id"])
	assert.Equal(t, "DocumentChunk", p["payload"].(map[string]any)["_type"])
}

func TestSearch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/collections/documentation/points/search", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, true, body["with_payload"])
		assert.Equal(t, float64(5), body["limit"])

		w.Write([]byte(`{"result":[
			{"score":0.92,"payload":{"title":"A"}},
			{"score":0.85,"payload":{"title":"B"}}
		]}`))
	}))
	defer server.Close()

	store := New(Config{BaseURL: server.URL})
	hits, err := store.Search(context.Background(), "documentation", []float32{0.5}, 5)
	require.NoError(t, err)
	require.Len(t, hits, 2)
	assert.Equal(t, 0.92, hits[0].Score)
	assert.Equal(t, "A", hits[0].Payload["title"])
	assert.GreaterOrEqual(t, hits[0].Score, hits[1].Score)
}

func TestScroll_FollowsPagination(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/collections/documentation/points/scroll", r.URL.Path)
		calls++

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		if calls == 1 {
			assert.Nil(t, body["offset"])
			w.Write([]byte(`{"result":{"points":[{"payload":{"title":"A"}}],"next_page_offset":"cursor-1"}}`))
			return
		}

		assert.Equal(t, "cursor-1", body["offset"])
		w.Write([]byte(`{"result":{"points":[{"payload":{"title":"B"}}],"next_page_offset":null}}`))
	}))
	defer server.Close()

	store := New(Config{BaseURL: server.URL})
	payloads, err := store.Scroll(context.Background(), "documentation")
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	require.Len(t, payloads, 2)
	assert.Equal(t, "A", payloads[0]["title"])
	assert.Equal(t, "B", payloads[1]["title"])
}

func TestAPIKeyHeader(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "secret", r.Header.Get("api-key"))
		w.Write([]byte(`{"result":{"collections":[]}}`))
	}))
	defer server.Close()

	store := New(Config{BaseURL: server.URL, APIKey: "secret"})
	require.NoError(t, store.Ping(context.Background()))
}

func TestErrorStatusIncludesDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"status":{"error":"wrong vector size"}}`, http.StatusBadRequest)
	}))
	defer server.Close()

	store := New(Config{BaseURL: server.URL})
	err := store.Upsert(context.Background(), "documentation", driven.Point{ID: "id"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wrong vector size")
}
