// Package domain contains the core business entities for ragdocs:
// document chunks, their stored payload schema, search results, and
// embedding provider settings. It has no dependencies on adapters.
package domain
