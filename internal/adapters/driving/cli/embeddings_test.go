package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/ragdocs/internal/core/domain"
)

func TestTestEmbeddingsCmd_Use(t *testing.T) {
	assert.Equal(t, "test-embeddings [text]", testEmbeddingsCmd.Use)
}

func TestTestEmbeddingsCmd_ProviderDefaultsToOllama(t *testing.T) {
	flag := testEmbeddingsCmd.Flags().Lookup("provider")
	require.NotNil(t, flag)
	assert.Equal(t, "ollama", flag.DefValue)
}

func TestTestEmbeddingsCmd_PrintsReport(t *testing.T) {
	stub := &stubDocsService{
		report: domain.EmbeddingReport{
			Provider:   domain.AIProviderOllama,
			Model:      "nomic-embed-text",
			Dimensions: 768,
		},
	}
	cleanup := setupTestServices(stub)
	defer cleanup()

	// Keep persistence inside the test sandbox.
	prevConfigDir := configDir
	configDir = t.TempDir()
	defer func() { configDir = prevConfigDir }()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"test-embeddings", "sample text"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Vector size: 768")
}
