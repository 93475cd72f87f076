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

package shortlist

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/poiesic/matchpoint/core"
	"github.com/poiesic/matchpoint/storage"
)

// DefaultLimit is the shortlist size used when none is configured.
const DefaultLimit = 1000

// Retriever narrows the candidate pool for one job to the entries most
// similar to the job's embedding. Implementations must be thread-safe.
type Retriever interface {
	// Shortlist returns up to limit candidates ordered by descending
	// similarity to the job vector. Equal scores are broken by ascending
	// candidate id so results are stable across runs.
	Shortlist(ctx context.Context, jobVector []float32, limit int) ([]core.ShortlistEntry, error)
}

// ExactRetriever implements Retriever with a full cosine scan over all
// stored candidate vectors. At corpus scale (tens of thousands of
// candidates) a scan completes in milliseconds; an ANN index can replace it
// behind the same interface if the pool grows beyond that.
type ExactRetriever struct {
	vectors storage.VectorRepository
	logger  *slog.Logger
}

var _ Retriever = (*ExactRetriever)(nil)

type RetrieverOption func(*ExactRetriever)

func WithLogger(logger *slog.Logger) RetrieverOption {
	return func(r *ExactRetriever) {
		r.logger = logger
	}
}

// NewExactRetriever creates a retriever scanning the given vector store.
func NewExactRetriever(vectors storage.VectorRepository, opts ...RetrieverOption) *ExactRetriever {
	r := &ExactRetriever{
		vectors: vectors,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Shortlist scans all candidate vectors and returns the top entries by
// cosine similarity.
func (r *ExactRetriever) Shortlist(ctx context.Context, jobVector []float32, limit int) ([]core.ShortlistEntry, error) {
	if len(jobVector) == 0 {
		return nil, fmt.Errorf("shortlist: empty job vector")
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	var entries []core.ShortlistEntry
	err := r.vectors.IterVectors(ctx, core.EntityCandidate, func(record *core.VectorRecord) error {
		entries = append(entries, core.ShortlistEntry{
			CandidateId: record.Id,
			Score:       CosineSimilarity(jobVector, record.Vector),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortFunc(entries, func(a, b core.ShortlistEntry) int {
		if a.Score > b.Score {
			return -1
		}
		if a.Score < b.Score {
			return 1
		}
		if a.CandidateId < b.CandidateId {
			return -1
		}
		if a.CandidateId > b.CandidateId {
			return 1
		}
		return 0
	})

	scanned := len(entries)
	if len(entries) > limit {
		entries = entries[:limit]
	}

	r.logger.Debug("shortlist computed", "scanned", scanned, "limit", limit)
	return entries, nil
}
