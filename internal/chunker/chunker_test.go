package chunker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("default chunk size", func(t *testing.T) {
		s := New()
		assert.Equal(t, DefaultChunkSize, s.ChunkSize())
	})

	t.Run("custom chunk size", func(t *testing.T) {
		s := New(WithChunkSize(500))
		assert.Equal(t, 500, s.ChunkSize())
	})

	t.Run("non-positive size ignored", func(t *testing.T) {
		s := New(WithChunkSize(0))
		assert.Equal(t, DefaultChunkSize, s.ChunkSize())
	})
}

func TestSplit_Empty(t *testing.T) {
	s := New()
	assert.Nil(t, s.Split(""))
	assert.Nil(t, s.Split("   \n\t  "))
}

func TestSplit_ShortText(t *testing.T) {
	s := New()
	chunks := s.Split("a short sentence")
	require.Len(t, chunks, 1)
	assert.Equal(t, "a short sentence", chunks[0])
}

func TestSplit_ChunkBound(t *testing.T) {
	// 2500 characters of repeated words with target 1000 yields exactly
	// three chunks: two at or above the target and the remainder.
	word := "documentation"
	var b strings.Builder
	for b.Len() < 2500 {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(word)
	}
	text := b.String()[:2500]
	text = strings.TrimRight(text, " ") // avoid a trailing cut word fragment being empty

	s := New(WithChunkSize(1000))
	chunks := s.Split(text)

	require.Len(t, chunks, 3)
	assert.GreaterOrEqual(t, len(chunks[0]), 1000)
	assert.GreaterOrEqual(t, len(chunks[1]), 1000)
	assert.Less(t, len(chunks[2]), 1000)
}

func TestSplit_NeverSplitsWords(t *testing.T) {
	s := New(WithChunkSize(10))
	chunks := s.Split("alpha beta gamma delta epsilon zeta")

	original := []string{"alpha", "beta", "gamma", "delta", "epsilon", "zeta"}
	var rejoined []string
	for _, c := range chunks {
		for _, w := range strings.Fields(c) {
			rejoined = append(rejoined, w)
			assert.Contains(t, original, w, "chunking must not split a word")
		}
	}
	assert.Equal(t, original, rejoined, "concatenating chunks reconstructs the word sequence")
}

func TestSplit_OversizedSingleWord(t *testing.T) {
	// A word longer than the target becomes its own chunk.
	long := strings.Repeat("x", 50)
	s := New(WithChunkSize(10))
	chunks := s.Split(long + " tail")
	require.Len(t, chunks, 2)
	assert.Equal(t, long, chunks[0])
	assert.Equal(t, "tail", chunks[1])
}

func TestSplit_Reconstruction(t *testing.T) {
	text := strings.Repeat("the quick brown fox jumps over the lazy dog ", 60)
	s := New(WithChunkSize(250))
	chunks := s.Split(text)
	require.NotEmpty(t, chunks)

	assert.Equal(t, strings.Join(strings.Fields(text), " "), strings.Join(chunks, " "))

	for i, c := range chunks[:len(chunks)-1] {
		assert.GreaterOrEqual(t, len(c), 250, "chunk %d below target", i)
	}
}
