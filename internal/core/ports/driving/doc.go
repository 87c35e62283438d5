// Package driving provides interfaces implemented by the core services
// (primary/inbound ports), consumed by the CLI and MCP adapters.
package driving
