// Package mock provides test doubles for the ai package interfaces.
//
// MockEmbedder produces deterministic vectors from text hashes so pipeline
// and scoring tests run without an embedding service.
package mock
