package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/poiesic/matchpoint/core"
	"github.com/poiesic/matchpoint/score"
	"github.com/poiesic/matchpoint/shortlist"
	"github.com/poiesic/matchpoint/storage"
)

// Run executes all stages in order. Completed stages are skipped; an
// in-progress stage resumes at its first incomplete unit. A unit failure is
// logged and left unmarked for the next run; it does not stop the other
// units of the stage, but a stage with failed units halts the run before
// the next stage starts.
func (p *Pipeline) Run(ctx context.Context, input Input) error {
	if err := p.runIngest(ctx, input); err != nil {
		return fmt.Errorf("ingest stage: %w", err)
	}
	if err := p.runExtract(ctx); err != nil {
		return fmt.Errorf("extract stage: %w", err)
	}
	if err := p.runEmbed(ctx); err != nil {
		return fmt.Errorf("embed stage: %w", err)
	}
	if err := p.runMatch(ctx); err != nil {
		return fmt.Errorf("match stage: %w", err)
	}
	return nil
}

// Reset clears all stage checkpoints, forcing the next run to start from
// scratch. Stored records, vectors and rankings are left in place; they are
// overwritten idempotently as stages re-run.
func (p *Pipeline) Reset(ctx context.Context) error {
	for _, stage := range []string{StageIngest, StageExtract, StageEmbed, StageMatch} {
		if err := p.checkpoints.ResetStage(ctx, stage); err != nil {
			return fmt.Errorf("resetting %s: %w", stage, err)
		}
	}
	return nil
}

// runIngest writes the raw corpus into storage. Units are fixed-size
// batches of jobs, then candidates, then one unit for the hiring records.
// Records are sorted by id first so unit boundaries are reproducible across
// runs.
func (p *Pipeline) runIngest(ctx context.Context, input Input) error {
	jobs := append([]core.JobPosting(nil), input.Jobs...)
	sort.Slice(jobs, func(i, j int) bool { return jobs[i].Id < jobs[j].Id })
	candidates := append([]core.CandidateProfile(nil), input.Candidates...)
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].Id < candidates[j].Id })
	hirings := append([]core.HiringRecord(nil), input.Hirings...)
	sort.Slice(hirings, func(i, j int) bool { return hirings[i].JobId < hirings[j].JobId })

	jobUnits := numBatches(len(jobs), p.ingestBatchSize)
	candidateUnits := numBatches(len(candidates), p.ingestBatchSize)
	totalUnits := jobUnits + candidateUnits + 1 // final unit: hirings

	return p.runStage(ctx, StageIngest, p.ingestBatchSize, totalUnits, false, func(ctx context.Context, unit uint64) error {
		switch {
		case unit < jobUnits:
			batch := batchOf(jobs, unit, p.ingestBatchSize)
			refs := make([]*core.JobPosting, len(batch))
			for i := range batch {
				refs[i] = &batch[i]
			}
			return p.corpus.AddJobs(ctx, refs...)
		case unit < jobUnits+candidateUnits:
			batch := batchOf(candidates, unit-jobUnits, p.ingestBatchSize)
			refs := make([]*core.CandidateProfile, len(batch))
			for i := range batch {
				refs[i] = &batch[i]
			}
			return p.corpus.AddCandidates(ctx, refs...)
		default:
			refs := make([]*core.HiringRecord, len(hirings))
			for i := range hirings {
				refs[i] = &hirings[i]
			}
			return p.corpus.AddHirings(ctx, refs...)
		}
	})
}

// runExtract derives features for every stored record and writes the
// records back. Units are fixed-size batches over the sorted job ids
// followed by batches over the sorted candidate ids.
func (p *Pipeline) runExtract(ctx context.Context) error {
	jobIDs, err := p.corpus.JobIDs(ctx)
	if err != nil {
		return err
	}
	candidateIDs, err := p.corpus.CandidateIDs(ctx)
	if err != nil {
		return err
	}

	jobUnits := numBatches(len(jobIDs), p.extractBatchSize)
	candidateUnits := numBatches(len(candidateIDs), p.extractBatchSize)

	return p.runStage(ctx, StageExtract, p.extractBatchSize, jobUnits+candidateUnits, false, func(ctx context.Context, unit uint64) error {
		if unit < jobUnits {
			batch := batchOf(jobIDs, unit, p.extractBatchSize)
			jobs := make([]*core.JobPosting, 0, len(batch))
			for _, id := range batch {
				job, err := p.corpus.GetJob(ctx, id)
				if err != nil {
					return err
				}
				job.Features = p.extractor.JobFeatures(job)
				jobs = append(jobs, job)
			}
			return p.corpus.AddJobs(ctx, jobs...)
		}

		batch := batchOf(candidateIDs, unit-jobUnits, p.extractBatchSize)
		candidates := make([]*core.CandidateProfile, 0, len(batch))
		for _, id := range batch {
			candidate, err := p.corpus.GetCandidate(ctx, id)
			if err != nil {
				return err
			}
			candidate.Features = p.extractor.CandidateFeatures(candidate)
			candidates = append(candidates, candidate)
		}
		return p.corpus.AddCandidates(ctx, candidates...)
	})
}

// runEmbed generates embedding vectors for every record's canonical text.
// Records whose stored vector already matches the current text hash are
// skipped, so re-runs only pay for changed records. Vectors are normalized
// to unit length before storage.
func (p *Pipeline) runEmbed(ctx context.Context) error {
	jobIDs, err := p.corpus.JobIDs(ctx)
	if err != nil {
		return err
	}
	candidateIDs, err := p.corpus.CandidateIDs(ctx)
	if err != nil {
		return err
	}

	jobUnits := numBatches(len(jobIDs), p.embedBatchSize)
	candidateUnits := numBatches(len(candidateIDs), p.embedBatchSize)

	return p.runStage(ctx, StageEmbed, p.embedBatchSize, jobUnits+candidateUnits, false, func(ctx context.Context, unit uint64) error {
		if unit < jobUnits {
			batch := batchOf(jobIDs, unit, p.embedBatchSize)
			items := make([]embedItem, 0, len(batch))
			for _, id := range batch {
				job, err := p.corpus.GetJob(ctx, id)
				if err != nil {
					return err
				}
				items = append(items, embedItem{kind: core.EntityJob, id: id, text: job.Features.CanonicalText})
			}
			return p.embedBatch(ctx, items)
		}

		batch := batchOf(candidateIDs, unit-jobUnits, p.embedBatchSize)
		items := make([]embedItem, 0, len(batch))
		for _, id := range batch {
			candidate, err := p.corpus.GetCandidate(ctx, id)
			if err != nil {
				return err
			}
			items = append(items, embedItem{kind: core.EntityCandidate, id: id, text: candidate.Features.CanonicalText})
		}
		return p.embedBatch(ctx, items)
	})
}

type embedItem struct {
	kind core.EntityKind
	id   core.RecordID
	text string
}

// embedBatch embeds the items whose text changed since the last run and
// stores the resulting vectors. The provider call covers the whole batch;
// it is retried as a unit and never partially applied.
func (p *Pipeline) embedBatch(ctx context.Context, items []embedItem) error {
	pending := make([]embedItem, 0, len(items))
	for _, item := range items {
		if item.text == "" {
			p.logger.Warn("record has empty canonical text, skipping embedding",
				"kind", item.kind, "id", item.id)
			continue
		}
		existing, err := p.vectors.GetVector(ctx, item.kind, item.id)
		if err == nil && existing.Hash == core.HashText(item.text) {
			continue
		}
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			return err
		}
		pending = append(pending, item)
	}
	if len(pending) == 0 {
		return nil
	}

	texts := make([]string, len(pending))
	for i, item := range pending {
		texts[i] = item.text
	}

	var embeddings [][]float32
	err := RetryWithBackoff(ctx, func() error {
		var embedErr error
		embeddings, embedErr = p.embedder.EmbedTexts(ctx, texts)
		return embedErr
	}, p.maxRetries, p.retryBaseDelay)
	if err != nil {
		return fmt.Errorf("embedding batch of %d after %d attempts: %w", len(pending), p.maxRetries, err)
	}
	if len(embeddings) != len(pending) {
		return fmt.Errorf("embedding count mismatch: expected %d, got %d", len(pending), len(embeddings))
	}

	records := make([]*core.VectorRecord, len(pending))
	for i, item := range pending {
		records[i] = &core.VectorRecord{
			Kind:   item.kind,
			Id:     item.id,
			Vector: shortlist.NormalizeVector(embeddings[i]),
			Hash:   core.HashText(item.text),
		}
	}
	return p.vectors.PutVectors(ctx, records...)
}

// runMatch shortlists and scores candidates for every job. Each job is one
// unit; jobs are scored independently against the read-only candidate
// vector set, so units run concurrently on the worker pool.
func (p *Pipeline) runMatch(ctx context.Context) error {
	jobIDs, err := p.corpus.JobIDs(ctx)
	if err != nil {
		return err
	}
	if err := p.warnUnembeddedCandidates(ctx); err != nil {
		return err
	}

	return p.runStage(ctx, StageMatch, 1, uint64(len(jobIDs)), true, func(ctx context.Context, unit uint64) error {
		return p.matchJob(ctx, jobIDs[unit])
	})
}

// warnUnembeddedCandidates reports candidates that will be excluded from
// every ranking because no embedding vector is stored for them. Logged once
// per run instead of once per job to keep the match stage quiet.
func (p *Pipeline) warnUnembeddedCandidates(ctx context.Context) error {
	candidateIDs, err := p.corpus.CandidateIDs(ctx)
	if err != nil {
		return err
	}

	embedded := make(map[core.RecordID]struct{}, len(candidateIDs))
	err = p.vectors.IterVectors(ctx, core.EntityCandidate, func(record *core.VectorRecord) error {
		embedded[record.Id] = struct{}{}
		return nil
	})
	if err != nil {
		return err
	}

	for _, id := range candidateIDs {
		if _, ok := embedded[id]; !ok {
			p.logger.Warn("candidate has no embedding vector, excluded from rankings",
				"candidate_id", id)
		}
	}
	return nil
}

// matchJob produces and stores the ranking for one job. A job without a
// vector is skipped with a warning; candidates missing from the corpus are
// excluded from the ranking the same way.
func (p *Pipeline) matchJob(ctx context.Context, jobID core.RecordID) error {
	jobVector, err := p.vectors.GetVector(ctx, core.EntityJob, jobID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			p.logger.Warn("job has no embedding vector, skipping ranking", "job_id", jobID)
			return nil
		}
		return err
	}

	job, err := p.corpus.GetJob(ctx, jobID)
	if err != nil {
		return err
	}

	entries, err := p.retriever.Shortlist(ctx, jobVector.Vector, p.shortlistLimit)
	if err != nil {
		return err
	}

	details := make([]core.MatchDetail, 0, len(entries))
	for _, entry := range entries {
		candidate, err := p.corpus.GetCandidate(ctx, entry.CandidateId)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				p.logger.Warn("shortlisted candidate missing from corpus",
					"job_id", jobID, "candidate_id", entry.CandidateId)
				continue
			}
			return err
		}
		details = append(details, p.scorer.Score(job, candidate, entry.Score))
	}

	score.RankCandidates(details)
	return p.rankings.SaveRanking(ctx, &core.JobRanking{JobId: jobID, Matches: details})
}

// runStage drives one checkpointed stage. The checkpoint pins the unit
// size: when the configured size differs, prior unit boundaries no longer
// line up, so the stage's progress is discarded and it restarts.
func (p *Pipeline) runStage(
	ctx context.Context,
	stage string,
	batchSize uint64,
	totalUnits uint64,
	parallel bool,
	runUnit func(ctx context.Context, unit uint64) error,
) error {
	checkpoint, err := p.checkpoints.LoadCheckpoint(ctx, stage)
	if err != nil {
		return err
	}

	if checkpoint != nil && checkpoint.BatchSize != int(batchSize) {
		p.logger.Warn("stage batch size changed, discarding progress",
			"stage", stage, "old", checkpoint.BatchSize, "new", batchSize)
		if err := p.checkpoints.ResetStage(ctx, stage); err != nil {
			return err
		}
		checkpoint = nil
	}

	if checkpoint != nil && checkpoint.Status == core.StageComplete {
		p.logger.Info("stage already complete, skipping", "stage", stage)
		return nil
	}

	if err := p.checkpoints.SaveCheckpoint(ctx, &core.Checkpoint{
		Stage:     stage,
		Status:    core.StageInProgress,
		BatchSize: int(batchSize),
	}); err != nil {
		return err
	}

	tracker := NewProgressTracker(p.progressWriter, stage, int(totalUnits), 1)
	tracker.Start()
	defer tracker.Finish()

	var failed atomic.Uint64
	process := func(ctx context.Context, unit uint64) {
		if err := runUnit(ctx, unit); err != nil {
			failed.Add(1)
			p.logger.Error("stage unit failed", "stage", stage, "unit", unit, "error", err)
			return
		}
		if err := p.checkpoints.MarkUnit(ctx, stage, unit); err != nil {
			failed.Add(1)
			p.logger.Error("marking unit complete failed", "stage", stage, "unit", unit, "error", err)
			return
		}
		tracker.Increment(1)
	}

	var wg sync.WaitGroup
	for unit := uint64(0); unit < totalUnits; unit++ {
		if err := ctx.Err(); err != nil {
			if parallel {
				wg.Wait()
			}
			return err
		}

		done, err := p.checkpoints.IsUnitDone(ctx, stage, unit)
		if err != nil {
			if parallel {
				wg.Wait()
			}
			return err
		}
		if done {
			tracker.Increment(1)
			continue
		}

		if !parallel {
			process(ctx, unit)
			continue
		}

		wg.Add(1)
		unit := unit
		if err := p.matchPool.Submit(func() {
			defer wg.Done()
			process(ctx, unit)
		}); err != nil {
			wg.Done()
			wg.Wait()
			return err
		}
	}
	if parallel {
		wg.Wait()
	}

	if n := failed.Load(); n > 0 {
		return fmt.Errorf("%w: %s: %d of %d units", ErrUnitsFailed, stage, n, totalUnits)
	}

	return p.checkpoints.SaveCheckpoint(ctx, &core.Checkpoint{
		Stage:     stage,
		Status:    core.StageComplete,
		BatchSize: int(batchSize),
	})
}

// numBatches returns how many fixed-size batches cover n items.
func numBatches(n int, size uint64) uint64 {
	if n == 0 {
		return 0
	}
	return (uint64(n) + size - 1) / size
}

// batchOf returns the unit-th fixed-size batch of items.
func batchOf[T any](items []T, unit, size uint64) []T {
	start := unit * size
	end := start + size
	if end > uint64(len(items)) {
		end = uint64(len(items))
	}
	return items[start:end]
}
