package driven

import "context"

// Point is one stored (id, vector, payload) record.
type Point struct {
	// ID is the point identifier, a random 128-bit value rendered as a
	// UUID string. Generated fresh per chunk, never reused.
	ID string

	// Vector is the embedding. Its length must equal the collection's
	// declared vector size.
	Vector []float32

	// Payload is the stored metadata, tagged with the DocumentChunk
	// discriminator.
	Payload map[string]any
}

// ScoredPayload is one similarity search hit: the raw stored payload plus
// its similarity score (higher = more relevant).
type ScoredPayload struct {
	Payload map[string]any
	Score   float64
}

// VectorStore is the boundary to the external vector database. All
// collections use cosine distance; the metric is fixed at creation.
type VectorStore interface {
	// Ping verifies connectivity to the store.
	Ping(ctx context.Context) error

	// ListCollections returns the names of all collections.
	ListCollections(ctx context.Context) ([]string, error)

	// CreateCollection creates a collection with the given vector size and
	// cosine distance.
	CreateCollection(ctx context.Context, name string, vectorSize int) error

	// DeleteCollection removes a collection and all of its points.
	DeleteCollection(ctx context.Context, name string) error

	// CollectionVectorSize reads back the declared vector size of an
	// existing collection.
	CollectionVectorSize(ctx context.Context, name string) (int, error)

	// Upsert writes one point and waits for the store to acknowledge
	// durability before returning.
	Upsert(ctx context.Context, collection string, point Point) error

	// Search returns the top-limit points nearest to the query vector,
	// ranked by descending score, with payloads.
	Search(ctx context.Context, collection string, vector []float32, limit int) ([]ScoredPayload, error)

	// Scroll returns the payloads of every point in the collection.
	Scroll(ctx context.Context, collection string) ([]map[string]any, error)
}
