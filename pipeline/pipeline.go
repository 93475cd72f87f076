// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package pipeline

import (
	"io"
	"log/slog"
	"runtime"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/poiesic/matchpoint/ai"
	"github.com/poiesic/matchpoint/core"
	"github.com/poiesic/matchpoint/extract"
	"github.com/poiesic/matchpoint/score"
	"github.com/poiesic/matchpoint/shortlist"
	"github.com/poiesic/matchpoint/storage"
)

// Stage names, in execution order.
const (
	StageIngest  = "ingest"
	StageExtract = "extract"
	StageEmbed   = "embed"
	StageMatch   = "match"
)

// Default unit sizes. Extraction is cheap so it runs in large batches;
// embedding batches stay small to bound the payload sent per provider call.
const (
	DefaultIngestBatchSize  = 1000
	DefaultExtractBatchSize = 1000
	DefaultEmbedBatchSize   = 100
)

// Input is the raw corpus consumed by the ingest stage.
type Input struct {
	Jobs       []core.JobPosting
	Candidates []core.CandidateProfile
	Hirings    []core.HiringRecord
}

// Pipeline orchestrates the four processing stages: ingest, extract, embed
// and match. Each stage is checkpointed per unit so an interrupted run
// resumes at the first incomplete unit instead of restarting.
type Pipeline struct {
	corpus      storage.CorpusRepository
	vectors     storage.VectorRepository
	rankings    storage.RankingRepository
	checkpoints storage.CheckpointStore
	embedder    ai.Embedder
	extractor   *extract.Extractor
	retriever   shortlist.Retriever
	scorer      *score.Scorer
	matchPool   *ants.Pool

	ingestBatchSize  uint64
	extractBatchSize uint64
	embedBatchSize   uint64
	shortlistLimit   int
	maxRetries       int
	retryBaseDelay   time.Duration
	progressWriter   io.Writer
	logger           *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent per-job matching.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}
		if p.matchPool != nil {
			p.matchPool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.matchPool = pool
		return nil
	}
}

// WithLogger sets a custom logger. Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// WithExtractBatchSize sets the unit size for the extract stage.
func WithExtractBatchSize(size int) Option {
	return func(p *Pipeline) error {
		if size > 0 {
			p.extractBatchSize = uint64(size)
			p.ingestBatchSize = uint64(size)
		}
		return nil
	}
}

// WithEmbedBatchSize sets the unit size for the embed stage.
func WithEmbedBatchSize(size int) Option {
	return func(p *Pipeline) error {
		if size > 0 {
			p.embedBatchSize = uint64(size)
		}
		return nil
	}
}

// WithShortlistLimit sets how many candidates survive the shortlist per job.
func WithShortlistLimit(limit int) Option {
	return func(p *Pipeline) error {
		if limit > 0 {
			p.shortlistLimit = limit
		}
		return nil
	}
}

// WithRetry configures embedding call retries.
func WithRetry(maxAttempts int, baseDelay time.Duration) Option {
	return func(p *Pipeline) error {
		if maxAttempts > 0 {
			p.maxRetries = maxAttempts
		}
		if baseDelay > 0 {
			p.retryBaseDelay = baseDelay
		}
		return nil
	}
}

// WithProgressWriter directs progress reporting to the given writer.
// Default is no progress output.
func WithProgressWriter(w io.Writer) Option {
	return func(p *Pipeline) error {
		if w != nil {
			p.progressWriter = w
		}
		return nil
	}
}

// WithRetriever replaces the default exact-scan shortlist retriever.
func WithRetriever(r shortlist.Retriever) Option {
	return func(p *Pipeline) error {
		if r != nil {
			p.retriever = r
		}
		return nil
	}
}

// NewPipeline creates a pipeline over the given repositories and embedder.
func NewPipeline(
	corpus storage.CorpusRepository,
	vectors storage.VectorRepository,
	rankings storage.RankingRepository,
	checkpoints storage.CheckpointStore,
	embedder ai.Embedder,
	opts ...Option,
) (*Pipeline, error) {
	if corpus == nil {
		return nil, ErrCorpusRequired
	}
	if vectors == nil {
		return nil, ErrVectorsRequired
	}
	if rankings == nil {
		return nil, ErrRankingsRequired
	}
	if checkpoints == nil {
		return nil, ErrCheckpointsRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		corpus:      corpus,
		vectors:     vectors,
		rankings:    rankings,
		checkpoints: checkpoints,
		embedder:    embedder,
		extractor:   extract.NewExtractor(),
		scorer:      score.NewScorer(),
		matchPool:   pool,

		ingestBatchSize:  DefaultIngestBatchSize,
		extractBatchSize: DefaultExtractBatchSize,
		embedBatchSize:   DefaultEmbedBatchSize,
		shortlistLimit:   shortlist.DefaultLimit,
		maxRetries:       3,
		retryBaseDelay:   time.Second,
		progressWriter:   io.Discard,
		logger:           slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	if p.retriever == nil {
		p.retriever = shortlist.NewExactRetriever(p.vectors, shortlist.WithLogger(p.logger))
	}
	p.extractor = extract.NewExtractor(extract.WithLogger(p.logger))

	return p, nil
}

// Release releases the worker pool. The pipeline should not be used after
// calling Release.
func (p *Pipeline) Release() {
	if p.matchPool != nil {
		p.matchPool.Release()
	}
}
