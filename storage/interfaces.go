package storage

import (
	"context"

	"github.com/poiesic/matchpoint/core"
)

// Repository provides common operations shared across all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// CorpusRepository provides operations for job postings, candidate profiles
// and hiring records.
type CorpusRepository interface {
	Repository

	// AddJobs stores job postings, overwriting any existing record with the
	// same id. Validation failures abort the whole call.
	AddJobs(ctx context.Context, jobs ...*core.JobPosting) error

	// GetJob retrieves a job posting by id.
	// Returns ErrNotFound if the posting doesn't exist.
	GetJob(ctx context.Context, id core.RecordID) (*core.JobPosting, error)

	// JobIDs returns all job posting ids in ascending lexicographic order.
	JobIDs(ctx context.Context) ([]core.RecordID, error)

	// AddCandidates stores candidate profiles, overwriting any existing
	// record with the same id.
	AddCandidates(ctx context.Context, candidates ...*core.CandidateProfile) error

	// GetCandidate retrieves a candidate profile by id.
	// Returns ErrNotFound if the profile doesn't exist.
	GetCandidate(ctx context.Context, id core.RecordID) (*core.CandidateProfile, error)

	// CandidateIDs returns all candidate ids in ascending lexicographic order.
	CandidateIDs(ctx context.Context) ([]core.RecordID, error)

	// AddHirings stores hiring records keyed by job id.
	AddHirings(ctx context.Context, records ...*core.HiringRecord) error

	// GetHiring retrieves the hiring record for a job.
	// Returns ErrNotFound if the job has no recorded hires.
	GetHiring(ctx context.Context, jobID core.RecordID) (*core.HiringRecord, error)

	// Hirings returns all hiring records in ascending job id order.
	Hirings(ctx context.Context) ([]*core.HiringRecord, error)
}

// VectorRepository provides operations for embedding vectors keyed by
// (entity kind, record id).
//
// All stored vectors must share one dimensionality: the first vector written
// pins the dimension, and later writes with a different width fail with
// ErrDimensionMismatch.
type VectorRepository interface {
	Repository

	// PutVectors stores embedding vectors, overwriting existing entries.
	PutVectors(ctx context.Context, vectors ...*core.VectorRecord) error

	// GetVector retrieves the vector for one entity.
	// Returns ErrNotFound if no vector is stored.
	GetVector(ctx context.Context, kind core.EntityKind, id core.RecordID) (*core.VectorRecord, error)

	// IterVectors calls fn for every stored vector of the given kind, in
	// ascending record id order. Iteration stops on the first error.
	IterVectors(ctx context.Context, kind core.EntityKind, fn func(*core.VectorRecord) error) error

	// Dimension reports the pinned vector dimension. ok is false when no
	// vector has been stored yet.
	Dimension(ctx context.Context) (dim int, ok bool, err error)
}

// RankingRepository provides operations for per-job ranking results.
type RankingRepository interface {
	Repository

	// SaveRanking persists the ranked match list for one job.
	SaveRanking(ctx context.Context, ranking *core.JobRanking) error

	// GetRanking retrieves the ranked match list for a job.
	// Returns ErrNotFound if the job has not been ranked.
	GetRanking(ctx context.Context, jobID core.RecordID) (*core.JobRanking, error)

	// RankedJobIDs returns the ids of all jobs with stored rankings, in
	// ascending order.
	RankedJobIDs(ctx context.Context) ([]core.RecordID, error)
}

// CheckpointStore persists pipeline progress: one Checkpoint per stage plus
// a completion marker per processed unit within the stage.
//
// A corrupted or unreadable checkpoint is reported as absent, which resets
// the stage to not-started rather than failing the run.
type CheckpointStore interface {
	Repository

	// SaveCheckpoint persists the stage-level checkpoint.
	SaveCheckpoint(ctx context.Context, checkpoint *core.Checkpoint) error

	// LoadCheckpoint retrieves the checkpoint for a stage.
	// Returns nil, nil if no checkpoint exists or it cannot be decoded.
	LoadCheckpoint(ctx context.Context, stage string) (*core.Checkpoint, error)

	// MarkUnit records completion of one unit within a stage.
	MarkUnit(ctx context.Context, stage string, unit uint64) error

	// IsUnitDone reports whether a unit of a stage has completed.
	IsUnitDone(ctx context.Context, stage string, unit uint64) (bool, error)

	// ResetStage removes the checkpoint and all unit markers for a stage.
	ResetStage(ctx context.Context, stage string) error
}
