package pipeline

import "errors"

var (
	// ErrInvalidMaxAttempts is returned when maxAttempts is <= 0
	ErrInvalidMaxAttempts = errors.New("maxAttempts must be greater than 0")

	// ErrCorpusRequired is returned when no corpus repository is provided.
	ErrCorpusRequired = errors.New("corpus repository is required")

	// ErrVectorsRequired is returned when no vector repository is provided.
	ErrVectorsRequired = errors.New("vector repository is required")

	// ErrRankingsRequired is returned when no ranking repository is provided.
	ErrRankingsRequired = errors.New("ranking repository is required")

	// ErrCheckpointsRequired is returned when no checkpoint store is provided.
	ErrCheckpointsRequired = errors.New("checkpoint store is required")

	// ErrEmbedderRequired is returned when no embedder is provided.
	ErrEmbedderRequired = errors.New("embedder is required")

	// ErrUnitsFailed is returned when one or more units of a stage failed.
	// Failed units keep no completion marker and are retried on the next run.
	ErrUnitsFailed = errors.New("stage units failed")
)
