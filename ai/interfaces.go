package ai

import "context"

// Embedder generates vector embeddings from canonical text for semantic
// similarity scoring. Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates embeddings for multiple texts in one call.
	// The returned slice matches the input order. Batch calls are preferred
	// over repeated EmbedText calls during corpus processing.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}
