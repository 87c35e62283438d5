// Package file provides TOML-backed configuration for ragdocs, stored in
// the user's config directory and overridable through environment
// variables.
package file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/ragdocs/internal/core/domain"
)

// Environment variables recognised alongside the config file. They always
// win over file values.
const (
	EnvEmbeddingProvider = "EMBEDDING_PROVIDER"
	EnvEmbeddingModel    = "EMBEDDING_MODEL"
	EnvOpenAIAPIKey      = "OPENAI_API_KEY"
	EnvOllamaURL         = "OLLAMA_URL"
	EnvQdrantURL         = "QDRANT_URL"
	EnvQdrantAPIKey      = "QDRANT_API_KEY"
)

// configFileName is the settings file within the config directory.
const configFileName = "config.toml"

// Settings is the persisted configuration shape.
type Settings struct {
	Embedding EmbeddingConfig `toml:"embedding"`
	Qdrant    QdrantConfig    `toml:"qdrant"`
}

// EmbeddingConfig configures the active embedding provider.
type EmbeddingConfig struct {
	Provider string `toml:"provider"`
	Model    string `toml:"model"`
	BaseURL  string `toml:"base_url"`
	APIKey   string `toml:"api_key"`
}

// QdrantConfig configures the vector store endpoint.
type QdrantConfig struct {
	URL    string `toml:"url"`
	APIKey string `toml:"api_key"`
}

// Store loads and saves settings from a TOML file.
type Store struct {
	filePath string
}

// NewStore creates a store rooted at configDir. If configDir is empty,
// defaults to ~/.ragdocs.
func NewStore(configDir string) (*Store, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".ragdocs")
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	return &Store{filePath: filepath.Join(configDir, configFileName)}, nil
}

// Load reads settings from disk and applies environment overrides. A
// missing file yields defaults (ollama against its standard local
// endpoint), still subject to overrides.
func (s *Store) Load() (Settings, error) {
	settings := Settings{
		Embedding: EmbeddingConfig{Provider: string(domain.AIProviderOllama)},
	}

	data, err := os.ReadFile(s.filePath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// Defaults apply.
	case err != nil:
		return Settings{}, fmt.Errorf("reading %s: %w", s.filePath, err)
	default:
		if err := toml.Unmarshal(data, &settings); err != nil {
			return Settings{}, fmt.Errorf("parsing %s: %w", s.filePath, err)
		}
	}

	applyEnv(&settings)
	return settings, nil
}

// Save writes settings to disk. Environment overrides are not persisted;
// callers pass the values they want stored.
func (s *Store) Save(settings Settings) error {
	data, err := toml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	if err := os.WriteFile(s.filePath, data, 0600); err != nil {
		return fmt.Errorf("writing %s: %w", s.filePath, err)
	}
	return nil
}

// EmbeddingSettings converts the stored shape to the domain shape.
func (c EmbeddingConfig) EmbeddingSettings() domain.EmbeddingSettings {
	return domain.EmbeddingSettings{
		Provider: domain.AIProvider(c.Provider),
		Model:    c.Model,
		BaseURL:  c.BaseURL,
		APIKey:   c.APIKey,
	}
}

func applyEnv(settings *Settings) {
	if v := os.Getenv(EnvEmbeddingProvider); v != "" {
		settings.Embedding.Provider = v
	}
	if v := os.Getenv(EnvEmbeddingModel); v != "" {
		settings.Embedding.Model = v
	}
	if v := os.Getenv(EnvOpenAIAPIKey); v != "" && settings.Embedding.Provider == string(domain.AIProviderOpenAI) {
		settings.Embedding.APIKey = v
	}
	if v := os.Getenv(EnvOllamaURL); v != "" && settings.Embedding.Provider == string(domain.AIProviderOllama) {
		settings.Embedding.BaseURL = v
	}
	if v := os.Getenv(EnvQdrantURL); v != "" {
		settings.Qdrant.URL = v
	}
	if v := os.Getenv(EnvQdrantAPIKey); v != "" {
		settings.Qdrant.APIKey = v
	}
}
