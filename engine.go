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

package matchpoint

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/poiesic/matchpoint/ai"
	"github.com/poiesic/matchpoint/ai/openai"
	"github.com/poiesic/matchpoint/core"
	"github.com/poiesic/matchpoint/pipeline"
	"github.com/poiesic/matchpoint/score"
	"github.com/poiesic/matchpoint/storage"
	"github.com/poiesic/matchpoint/storage/badger"
)

// Engine bundles the storage repositories and the embedding provider behind
// one handle. It is the entry point for embedding-backed matching runs and
// for serving stored rankings.
type Engine struct {
	backend     *badger.Backend
	corpus      storage.CorpusRepository
	vectors     storage.VectorRepository
	rankings    storage.RankingRepository
	checkpoints storage.CheckpointStore
	embedder    ai.Embedder
	logger      *slog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*engineOptions)

type engineOptions struct {
	aiConfig *ai.Config
	embedder ai.Embedder
	inMemory bool
	logger   *slog.Logger
}

// WithAIConfig sets the embedding provider configuration.
func WithAIConfig(config *ai.Config) EngineOption {
	return func(o *engineOptions) {
		if config != nil {
			o.aiConfig = config
		}
	}
}

// WithEmbedder injects an embedder directly, bypassing provider setup.
// Intended for tests.
func WithEmbedder(embedder ai.Embedder) EngineOption {
	return func(o *engineOptions) {
		o.embedder = embedder
	}
}

// WithInMemory opens the storage backend in memory instead of on disk.
func WithInMemory() EngineOption {
	return func(o *engineOptions) {
		o.inMemory = true
	}
}

// WithEngineLogger sets a custom logger. Default is slog.Default().
func WithEngineLogger(logger *slog.Logger) EngineOption {
	return func(o *engineOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// NewEngine opens the storage backend at filePath and wires the
// repositories and embedding provider.
func NewEngine(filePath string, opts ...EngineOption) (*Engine, error) {
	options := &engineOptions{
		aiConfig: ai.DefaultConfig(),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	embedder := options.embedder
	if embedder == nil {
		embedder, err = openai.NewEmbedder(options.aiConfig)
		if err != nil {
			backend.Close()
			return nil, err
		}
	}

	return &Engine{
		backend:     backend,
		corpus:      badger.NewCorpusRepository(backend),
		vectors:     badger.NewVectorRepository(backend),
		rankings:    badger.NewRankingRepository(backend),
		checkpoints: badger.NewCheckpointStore(backend),
		embedder:    embedder,
		logger:      options.logger,
	}, nil
}

func (e *Engine) Close() error {
	if err := e.backend.Close(); err != nil {
		e.logger.Error("error closing storage backend", "err", err)
		return err
	}
	return nil
}

func (e *Engine) CorpusRepository() storage.CorpusRepository {
	return e.corpus
}

func (e *Engine) VectorRepository() storage.VectorRepository {
	return e.vectors
}

func (e *Engine) RankingRepository() storage.RankingRepository {
	return e.rankings
}

func (e *Engine) CheckpointStore() storage.CheckpointStore {
	return e.checkpoints
}

// NewPipeline creates a matching pipeline over the engine's repositories.
func (e *Engine) NewPipeline(opts ...pipeline.Option) (*pipeline.Pipeline, error) {
	defaults := []pipeline.Option{pipeline.WithLogger(e.logger)}
	return pipeline.NewPipeline(e.corpus, e.vectors, e.rankings, e.checkpoints, e.embedder,
		append(defaults, opts...)...)
}

// NewEvaluator creates a hit-rate evaluator over the stored rankings.
func (e *Engine) NewEvaluator() *score.Evaluator {
	return score.NewEvaluator(e.corpus, e.rankings, e.logger)
}

// RankedCandidates returns the top N stored matches for a job, joined with
// the candidate display fields and flagged when the candidate was actually
// hired for the job. topN <= 0 returns the full ranking.
func (e *Engine) RankedCandidates(ctx context.Context, jobID core.RecordID, topN int) ([]core.RankedCandidate, error) {
	ranking, err := e.rankings.GetRanking(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("loading ranking for job %s: %w", jobID, err)
	}

	hired := make(map[core.RecordID]struct{})
	hiring, err := e.corpus.GetHiring(ctx, jobID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}
	if hiring != nil {
		for _, id := range hiring.Candidates {
			hired[id] = struct{}{}
		}
	}

	matches := ranking.Matches
	if topN > 0 && topN < len(matches) {
		matches = matches[:topN]
	}

	ranked := make([]core.RankedCandidate, 0, len(matches))
	for _, match := range matches {
		candidate, err := e.corpus.GetCandidate(ctx, match.CandidateId)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				e.logger.Warn("ranked candidate missing from corpus",
					"job_id", jobID, "candidate_id", match.CandidateId)
				continue
			}
			return nil, err
		}

		_, wasHired := hired[match.CandidateId]
		ranked = append(ranked, core.RankedCandidate{
			CandidateId: match.CandidateId,
			Name:        candidate.Name,
			Email:       candidate.Email,
			Phone:       candidate.Phone,
			Resume:      candidate.Resume,
			Detail:      match,
			Hired:       wasHired,
		})
	}
	return ranked, nil
}
