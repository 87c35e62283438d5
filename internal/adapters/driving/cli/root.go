// Package cli implements the ragdocs command line interface.
package cli

import (
	"context"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/ragdocs/internal/adapters/driven/ai"
	"github.com/custodia-labs/ragdocs/internal/adapters/driven/browser"
	"github.com/custodia-labs/ragdocs/internal/adapters/driven/config/file"
	"github.com/custodia-labs/ragdocs/internal/adapters/driven/fetch"
	"github.com/custodia-labs/ragdocs/internal/adapters/driven/vectorstore/qdrant"
	"github.com/custodia-labs/ragdocs/internal/core/ports/driving"
	"github.com/custodia-labs/ragdocs/internal/core/services"
	"github.com/custodia-labs/ragdocs/internal/logger"
)

// version is overridden at build time via -ldflags.
var version = "dev"

var (
	verbose   bool
	configDir string
)

// Wired services, populated by initServices before a command runs.
var (
	docsService    driving.DocumentationService
	docsCloser     interface{ Close() error }
	browserManager *browser.Manager
	initialized    bool
)

var rootCmd = &cobra.Command{
	Use:   "ragdocs",
	Short: "Documentation assistant with semantic search",
	Long: `ragdocs fetches documentation from URLs (HTML pages and PDFs), splits it
into chunks, embeds the chunks with Ollama or OpenAI, and indexes them in
Qdrant for semantic search.

The same functionality is exposed to AI assistants through an MCP server
(see "ragdocs mcp serve").`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		if initialized || !needsServices(cmd) {
			return nil
		}
		return initServices()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.ragdocs)")
}

// needsServices reports whether the command requires the wired service
// stack. Version, help, and completion run without any configuration.
func needsServices(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "version", "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
		return false
	}
	return true
}

// initServices wires the adapter stack: configuration, Qdrant, the
// embedding provider, and the headless-browser fetcher.
func initServices() error {
	// A .env alongside the working directory is optional.
	godotenv.Load() //nolint:errcheck

	store, err := file.NewStore(configDir)
	if err != nil {
		return err
	}
	settings, err := store.Load()
	if err != nil {
		return err
	}

	embedder, err := ai.CreateEmbeddingService(settings.Embedding.EmbeddingSettings())
	if err != nil {
		return err
	}

	vectorStore := qdrant.New(qdrant.Config{
		BaseURL: settings.Qdrant.URL,
		APIKey:  settings.Qdrant.APIKey,
	})

	browserManager = browser.NewManager(browser.Config{})
	fetcher := fetch.New(fetch.Config{Browser: browserManager})

	svc := services.NewService(vectorStore, embedder, fetcher, ai.CreateEmbeddingService)
	docsService = svc
	docsCloser = svc
	initialized = true
	return nil
}

// Execute runs the root command and tears down shared resources when it
// returns.
func Execute(ctx context.Context) error {
	defer shutdown()
	return rootCmd.ExecuteContext(ctx)
}

func shutdown() {
	if browserManager != nil {
		if err := browserManager.Close(); err != nil {
			logger.Warn("Closing browser: %v", err)
		}
	}
	if docsCloser != nil {
		if err := docsCloser.Close(); err != nil {
			logger.Warn("Closing documentation service: %v", err)
		}
	}
}
