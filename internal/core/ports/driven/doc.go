// Package driven provides interfaces for infrastructure adapters
// (secondary/outbound ports): embedding providers, the vector store,
// content acquisition, and the shared headless browser.
package driven
