package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/ragdocs/internal/adapters/driven/config/file"
	"github.com/custodia-labs/ragdocs/internal/core/domain"
	"github.com/custodia-labs/ragdocs/internal/logger"
)

var (
	embeddingsProvider string
	embeddingsModel    string
	embeddingsBaseURL  string
)

var testEmbeddingsCmd = &cobra.Command{
	Use:   "test-embeddings [text]",
	Short: "Test an embedding configuration",
	Long: `Generates an embedding for the sample text with the given provider and
model. On success the configuration becomes the active provider and the
Qdrant collection is realigned to its vector size, which drops previously
indexed chunks when the size changed.

The OpenAI API key is read from the OPENAI_API_KEY environment variable.`,
	Args: cobra.ExactArgs(1),
	RunE: runTestEmbeddings,
}

func init() {
	testEmbeddingsCmd.Flags().StringVar(&embeddingsProvider, "provider", "ollama", "embedding provider (ollama or openai)")
	testEmbeddingsCmd.Flags().StringVar(&embeddingsModel, "model", "", "embedding model")
	testEmbeddingsCmd.Flags().StringVar(&embeddingsBaseURL, "base-url", "", "provider endpoint override")
	rootCmd.AddCommand(testEmbeddingsCmd)
}

func runTestEmbeddings(cmd *cobra.Command, args []string) error {
	if docsService == nil {
		return errors.New("documentation service not configured")
	}

	settings := domain.EmbeddingSettings{
		Provider: domain.AIProvider(embeddingsProvider),
		Model:    embeddingsModel,
		BaseURL:  embeddingsBaseURL,
		APIKey:   os.Getenv(file.EnvOpenAIAPIKey),
	}

	report, err := docsService.TestEmbeddings(cmd.Context(), args[0], settings)
	if err != nil {
		return fmt.Errorf("testing embeddings: %w", err)
	}

	cmd.Println(report.String())

	// Persist the validated configuration so later runs start on it.
	if err := saveEmbeddingConfig(report, settings); err != nil {
		logger.Warn("Could not persist embedding configuration: %v", err)
	}
	return nil
}

func saveEmbeddingConfig(report domain.EmbeddingReport, settings domain.EmbeddingSettings) error {
	store, err := file.NewStore(configDir)
	if err != nil {
		return err
	}
	current, err := store.Load()
	if err != nil {
		return err
	}
	current.Embedding.Provider = string(report.Provider)
	current.Embedding.Model = report.Model
	current.Embedding.BaseURL = settings.BaseURL
	return store.Save(current)
}
