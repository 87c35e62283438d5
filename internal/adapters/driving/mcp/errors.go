// Package mcp provides an MCP (Model Context Protocol) server adapter for
// ragdocs. It exposes documentation ingestion and retrieval as tools that AI
// assistants can call.
package mcp

import "errors"

// ErrMissingDocumentationService is returned when the documentation service
// is not provided.
var ErrMissingDocumentationService = errors.New("mcp: documentation service is required")
