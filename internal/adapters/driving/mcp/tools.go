package mcp

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/ragdocs/internal/core/domain"
)

// AddDocumentationInput is the input schema for the add_documentation tool.
type AddDocumentationInput struct {
	URL string `json:"url" jsonschema:"URL of the documentation to fetch (HTML page or PDF)"`
}

// SearchInput is the input schema for the search_documentation tool.
type SearchInput struct {
	Query string `json:"query" jsonschema:"the text to search for in the documentation"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 5)"`
}

// ListSourcesInput is the input schema for the list_sources tool.
type ListSourcesInput struct{}

// TestEmbeddingsInput is the input schema for the test_embeddings tool.
type TestEmbeddingsInput struct {
	Text     string `json:"text" jsonschema:"sample text to generate an embedding for"`
	Provider string `json:"provider,omitempty" jsonschema:"embedding provider to test (ollama or openai, default ollama)"`
	Model    string `json:"model,omitempty" jsonschema:"embedding model to use"`
	APIKey   string `json:"apiKey,omitempty" jsonschema:"API key, required for openai"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "add_documentation",
		Description: "Add documentation from a URL to the RAG database",
	}, s.handleAddDocumentation)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_documentation",
		Description: "Search through stored documentation",
	}, s.handleSearchDocumentation)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_sources",
		Description: "List all documentation sources currently stored",
	}, s.handleListSources)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "test_embeddings",
		Description: "Test an embedding configuration and switch the active provider",
	}, s.handleTestEmbeddings)
}

// handleAddDocumentation handles the add_documentation tool invocation.
func (s *Server) handleAddDocumentation(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AddDocumentationInput,
) (*mcp.CallToolResult, any, error) {
	summary, err := s.ports.Docs.AddDocumentation(ctx, input.URL)
	if err != nil {
		return toolError(err)
	}
	return textResult(summary.String()), nil, nil
}

// handleSearchDocumentation handles the search_documentation tool invocation.
func (s *Server) handleSearchDocumentation(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, any, error) {
	out, err := s.ports.Docs.Search(ctx, input.Query, input.Limit)
	if err != nil {
		return toolError(err)
	}
	return textResult(out), nil, nil
}

// handleListSources handles the list_sources tool invocation.
func (s *Server) handleListSources(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ListSourcesInput,
) (*mcp.CallToolResult, any, error) {
	out, err := s.ports.Docs.ListSources(ctx)
	if err != nil {
		return toolError(err)
	}
	return textResult(out), nil, nil
}

// handleTestEmbeddings handles the test_embeddings tool invocation.
func (s *Server) handleTestEmbeddings(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input TestEmbeddingsInput,
) (*mcp.CallToolResult, any, error) {
	settings := domain.EmbeddingSettings{
		Provider: domain.AIProvider(input.Provider),
		Model:    input.Model,
		APIKey:   input.APIKey,
	}
	report, err := s.ports.Docs.TestEmbeddings(ctx, input.Text, settings)
	if err != nil {
		return toolError(err)
	}
	return textResult(report.String()), nil, nil
}

// textResult wraps plain text as a successful tool result.
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

// toolError converts service failures into tool results. Expected failures
// from the domain error taxonomy become in-band error results so the caller
// sees a useful message; anything else propagates as a protocol error.
func toolError(err error) (*mcp.CallToolResult, any, error) {
	if isExpected(err) {
		return &mcp.CallToolResult{
			IsError: true,
			Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
		}, nil, nil
	}
	return nil, nil, err
}

func isExpected(err error) bool {
	for _, sentinel := range []error{
		domain.ErrConnection,
		domain.ErrConfig,
		domain.ErrFetch,
		domain.ErrSizeLimit,
		domain.ErrParse,
		domain.ErrProviderCall,
		domain.ErrSchemaValidation,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
