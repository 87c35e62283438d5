// Package chunker provides word-aligned greedy text chunking.
package chunker

import "strings"

// DefaultChunkSize is the default target number of characters per chunk.
const DefaultChunkSize = 1000

// Splitter splits text into bounded-size chunks. Chunks are concatenations
// of whole words: a chunk may exceed the target by the length of the word
// that pushed it over, but never splits a word. Chunks do not overlap.
type Splitter struct {
	chunkSize int
}

// Option configures the splitter.
type Option func(*Splitter)

// WithChunkSize sets the target chunk size in characters.
func WithChunkSize(size int) Option {
	return func(s *Splitter) {
		if size > 0 {
			s.chunkSize = size
		}
	}
}

// New creates a new splitter with the given options.
func New(opts ...Option) *Splitter {
	s := &Splitter{chunkSize: DefaultChunkSize}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ChunkSize returns the target chunk size.
func (s *Splitter) ChunkSize() int {
	return s.chunkSize
}

// Split splits text on whitespace and greedily accumulates words until the
// joined length reaches the target, emitting a final partial chunk for any
// remainder. Whitespace runs inside the text collapse to single spaces.
func (s *Splitter) Split(text string) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var chunks []string
	var current []string
	length := 0

	for _, word := range words {
		current = append(current, word)
		length += len(word)
		if len(current) > 1 {
			length++ // joining space
		}

		if length >= s.chunkSize {
			chunks = append(chunks, strings.Join(current, " "))
			current = current[:0]
			length = 0
		}
	}

	if len(current) > 0 {
		chunks = append(chunks, strings.Join(current, " "))
	}

	return chunks
}
