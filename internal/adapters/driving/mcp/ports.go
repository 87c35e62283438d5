package mcp

import (
	"github.com/custodia-labs/ragdocs/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Docs provides documentation ingestion, search, and source listing.
	Docs driving.DocumentationService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Docs == nil {
		return ErrMissingDocumentationService
	}
	return nil
}
