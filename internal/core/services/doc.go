// Package services implements the application core: the ingestion
// orchestrator, collection lifecycle guard, retrieval formatting, and the
// source catalog. All requests are serialized through a single service
// mutex so collection recreation can never race with an upsert or search.
package services
