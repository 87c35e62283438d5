package driven

import "context"

// EmbeddingService generates vector embeddings from text.
//
// The vector length reported by Dimensions is fixed for the lifetime of the
// service and must match the vector store collection's declared size; the
// collection lifecycle guard exists to protect that invariant.
//
// Implementations:
//   - Ollama (nomic-embed-text, all-minilm)
//   - OpenAI (text-embedding-3-small, text-embedding-3-large)
type EmbeddingService interface {
	// Embed generates a vector embedding for the given text.
	Embed(ctx context.Context, text string) ([]float32, error)

	// Dimensions returns the embedding vector size (e.g., 768, 1536).
	Dimensions() int

	// ModelName returns the name of the embedding model being used.
	ModelName() string

	// Ping validates the service is reachable with a lightweight request.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}
