package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent pipeline failures. Each one surfaces to the user
// as a failed tool result, never as a process crash.
var (
	// ErrConnection indicates the vector store is unreachable.
	// Fatal for the request that observed it.
	ErrConnection = errors.New("vector store unreachable")

	// ErrConfig indicates an invalid embedding configuration: an unknown
	// provider name or a missing required API key. Raised at provider
	// construction, never deferred to the first call.
	ErrConfig = errors.New("invalid embedding configuration")

	// ErrFetch indicates the document URL could not be fetched: network
	// failure, timeout, or navigation failure.
	ErrFetch = errors.New("failed to fetch URL")

	// ErrSizeLimit indicates a downloaded document exceeded the size
	// ceiling. See SizeLimitError for the measured size.
	ErrSizeLimit = errors.New("document exceeds size limit")

	// ErrParse indicates a downloaded document could not be parsed.
	ErrParse = errors.New("failed to parse document")

	// ErrProviderCall indicates an embedding provider call failed. The
	// provider's raw error detail is preserved in the wrapped message.
	ErrProviderCall = errors.New("embedding provider call failed")

	// ErrSchemaValidation indicates a stored payload does not match the
	// expected DocumentChunk shape. Fatal for a search, skipped during a
	// catalog scan.
	ErrSchemaValidation = errors.New("invalid payload")

	// ErrNotFound indicates a collection does not exist. The lifecycle
	// guard treats it like a size mismatch and recreates.
	ErrNotFound = errors.New("not found")
)

// SizeLimitError reports an oversized download with the measured size.
type SizeLimitError struct {
	// Size is the measured size in bytes.
	Size int64

	// Limit is the configured ceiling in bytes.
	Limit int64
}

// Error renders the sizes in MB to match the user-visible report.
func (e *SizeLimitError) Error() string {
	return fmt.Sprintf("PDF too large (%.2fMB). Max allowed is %.0fMB",
		float64(e.Size)/1024/1024, float64(e.Limit)/1024/1024)
}

// Is makes errors.Is(err, ErrSizeLimit) match.
func (e *SizeLimitError) Is(target error) bool {
	return target == ErrSizeLimit
}
