package score

import (
	"context"
	"errors"
	"log/slog"

	"github.com/poiesic/matchpoint/core"
	"github.com/poiesic/matchpoint/storage"
)

// Evaluation summarizes how well the rankings recover known hires.
type Evaluation struct {
	// Jobs is the number of jobs with both a ranking and recorded hires.
	Jobs int
	// Hires is the total number of hired candidates across those jobs.
	Hires int
	// Hits is how many hired candidates appeared in the top N of their
	// job's ranking.
	Hits int
	// TopN is the ranking depth evaluated.
	TopN int
}

// HitRate is Hits / Hires; 0 when no hires were evaluated.
func (e Evaluation) HitRate() float64 {
	if e.Hires == 0 {
		return 0
	}
	return float64(e.Hits) / float64(e.Hires)
}

// Evaluator measures ranking quality against recorded hiring outcomes.
type Evaluator struct {
	corpus   storage.CorpusRepository
	rankings storage.RankingRepository
	logger   *slog.Logger
}

func NewEvaluator(corpus storage.CorpusRepository, rankings storage.RankingRepository, logger *slog.Logger) *Evaluator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Evaluator{corpus: corpus, rankings: rankings, logger: logger}
}

// Evaluate computes the top-N hit rate over all jobs with recorded hires.
// Jobs without a stored ranking are skipped with a warning.
func (e *Evaluator) Evaluate(ctx context.Context, topN int) (Evaluation, error) {
	if topN <= 0 {
		topN = 10
	}
	eval := Evaluation{TopN: topN}

	hirings, err := e.corpus.Hirings(ctx)
	if err != nil {
		return eval, err
	}

	for _, hiring := range hirings {
		ranking, err := e.rankings.GetRanking(ctx, hiring.JobId)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				e.logger.Warn("no ranking for hired job", "job_id", hiring.JobId)
				continue
			}
			return eval, err
		}

		top := ranking.Matches
		if len(top) > topN {
			top = top[:topN]
		}
		inTop := make(map[core.RecordID]struct{}, len(top))
		for _, match := range top {
			inTop[match.CandidateId] = struct{}{}
		}

		eval.Jobs++
		for _, hired := range hiring.Candidates {
			eval.Hires++
			if _, ok := inTop[hired]; ok {
				eval.Hits++
			}
		}
	}

	return eval, nil
}
