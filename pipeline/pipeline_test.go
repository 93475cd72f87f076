package pipeline

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/matchpoint/ai/mock"
	"github.com/poiesic/matchpoint/core"
	"github.com/poiesic/matchpoint/storage/badger"
)

func sampleInput() Input {
	return Input{
		Jobs: []core.JobPosting{
			{
				Id:            "1001",
				Title:         "Desenvolvedor Java Sênior",
				Company:       "Decision",
				ContractType:  "CLT Full",
				City:          "São Paulo",
				State:         "São Paulo",
				Country:       "Brasil",
				SeniorityText: "Sênior",
				EducationText: "Ensino Superior Completo",
				EnglishText:   "Avançado",
				Competencies:  "Experiência com Java, Spring e SQL Server.",
			},
			{
				Id:           "1002",
				Title:        "Engenheiro de Dados",
				Company:      "Decision",
				Competencies: "Python, Spark e AWS.",
			},
		},
		Candidates: []core.CandidateProfile{
			{
				Id:     "2001",
				Name:   "Ana Souza",
				Email:  "ana@example.com",
				Title:  "Desenvolvedora Java",
				Skills: []string{"Java", "Spring"},
				Resume: "Desenvolvedora com Java, Spring e SQL. Residente em São Paulo - SP. Inglês: avançado.",
			},
			{
				Id:     "2002",
				Name:   "Bruno Lima",
				Title:  "Engenheiro de Dados",
				Resume: "Experiência com Python, Spark e AWS.",
			},
			{
				Id:     "2003",
				Name:   "Carla Dias",
				Title:  "Analista Administrativo",
				Resume: "Rotinas administrativas e atendimento.",
			},
		},
		Hirings: []core.HiringRecord{
			{JobId: "1001", Candidates: []core.RecordID{"2001"}},
		},
	}
}

func newTestPipeline(t *testing.T, stores *badger.MemoryStores, embedder *mock.MockEmbedder, opts ...Option) *Pipeline {
	t.Helper()

	p, err := NewPipeline(stores.Corpus, stores.Vectors, stores.Rankings, stores.Checkpoints, embedder, opts...)
	require.NoError(t, err)
	t.Cleanup(p.Release)
	return p
}

func newTestStores(t *testing.T) *badger.MemoryStores {
	t.Helper()

	stores, err := badger.NewMemoryStores()
	require.NoError(t, err)
	t.Cleanup(func() { stores.Close() })
	return stores
}

func requireStageStatus(t *testing.T, stores *badger.MemoryStores, stage string, status core.StageStatus) {
	t.Helper()

	checkpoint, err := stores.Checkpoints.LoadCheckpoint(context.Background(), stage)
	require.NoError(t, err)
	require.NotNil(t, checkpoint, "stage %s should have a checkpoint", stage)
	assert.Equal(t, status, checkpoint.Status, "stage %s status", stage)
}

func TestNewPipeline_RequiresDependencies(t *testing.T) {
	stores := newTestStores(t)
	embedder := mock.NewMockEmbedder()

	_, err := NewPipeline(nil, stores.Vectors, stores.Rankings, stores.Checkpoints, embedder)
	assert.ErrorIs(t, err, ErrCorpusRequired)

	_, err = NewPipeline(stores.Corpus, nil, stores.Rankings, stores.Checkpoints, embedder)
	assert.ErrorIs(t, err, ErrVectorsRequired)

	_, err = NewPipeline(stores.Corpus, stores.Vectors, nil, stores.Checkpoints, embedder)
	assert.ErrorIs(t, err, ErrRankingsRequired)

	_, err = NewPipeline(stores.Corpus, stores.Vectors, stores.Rankings, nil, embedder)
	assert.ErrorIs(t, err, ErrCheckpointsRequired)

	_, err = NewPipeline(stores.Corpus, stores.Vectors, stores.Rankings, stores.Checkpoints, nil)
	assert.ErrorIs(t, err, ErrEmbedderRequired)
}

func TestPipeline_Run_EndToEnd(t *testing.T) {
	ctx := context.Background()
	stores := newTestStores(t)
	embedder := mock.NewMockEmbedder()
	embedder.Dimensions = 8

	p := newTestPipeline(t, stores, embedder)
	require.NoError(t, p.Run(ctx, sampleInput()))

	for _, stage := range []string{StageIngest, StageExtract, StageEmbed, StageMatch} {
		requireStageStatus(t, stores, stage, core.StageComplete)
	}

	dim, ok, err := stores.Vectors.Dimension(ctx)
	require.NoError(t, err)
	require.True(t, ok, "vector dimension should be pinned")
	assert.Equal(t, 8, dim)

	job, err := stores.Corpus.GetJob(ctx, "1001")
	require.NoError(t, err)
	assert.Contains(t, job.Features.Skills, "Java", "extract stage should persist features")
	assert.NotEmpty(t, job.Features.CanonicalText)

	jobIDs, err := stores.Rankings.RankedJobIDs(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []core.RecordID{"1001", "1002"}, jobIDs)

	ranking, err := stores.Rankings.GetRanking(ctx, "1001")
	require.NoError(t, err)
	require.Len(t, ranking.Matches, 3, "all candidates should be ranked")

	for i := 1; i < len(ranking.Matches); i++ {
		prev, curr := ranking.Matches[i-1], ranking.Matches[i]
		assert.GreaterOrEqual(t, prev.FinalScore, curr.FinalScore, "matches must be ordered by score")
		if prev.FinalScore == curr.FinalScore {
			assert.Less(t, prev.CandidateId, curr.CandidateId, "ties break by candidate id")
		}
	}
	for _, match := range ranking.Matches {
		require.NoError(t, core.ValidateMatchDetail(&match))
		assert.Equal(t, core.RecordID("1001"), match.JobId)
	}
}

func TestPipeline_Run_SecondRunIsNoOp(t *testing.T) {
	ctx := context.Background()
	stores := newTestStores(t)
	embedder := mock.NewMockEmbedder()
	embedder.Dimensions = 8

	p := newTestPipeline(t, stores, embedder)
	require.NoError(t, p.Run(ctx, sampleInput()))
	calls := embedder.CallCount()

	require.NoError(t, p.Run(ctx, sampleInput()))
	assert.Equal(t, calls, embedder.CallCount(), "completed stages must not re-embed")

	ranking, err := stores.Rankings.GetRanking(ctx, "1001")
	require.NoError(t, err)
	assert.Len(t, ranking.Matches, 3)
}

func TestPipeline_Run_ResumesAfterEmbedFailure(t *testing.T) {
	ctx := context.Background()
	stores := newTestStores(t)
	embedder := mock.NewMockEmbedder()
	embedder.Dimensions = 8

	failing := errors.New("provider unavailable")
	defaultFn := func(ctx context.Context, texts []string) ([][]float32, error) {
		fresh := mock.NewMockEmbedder()
		fresh.Dimensions = 8
		return fresh.EmbedTexts(ctx, texts)
	}
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		for _, text := range texts {
			if strings.Contains(text, "engenheiro") {
				return nil, failing
			}
		}
		return defaultFn(ctx, texts)
	}

	p := newTestPipeline(t, stores, embedder,
		WithEmbedBatchSize(1),
		WithRetry(1, time.Millisecond),
	)

	err := p.Run(ctx, sampleInput())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnitsFailed)

	requireStageStatus(t, stores, StageIngest, core.StageComplete)
	requireStageStatus(t, stores, StageExtract, core.StageComplete)
	requireStageStatus(t, stores, StageEmbed, core.StageInProgress)

	matchCheckpoint, err := stores.Checkpoints.LoadCheckpoint(ctx, StageMatch)
	require.NoError(t, err)
	assert.Nil(t, matchCheckpoint, "match stage must not start after embed failure")

	// Job 1002 and candidate 2002 both mention "engenheiro", so exactly two
	// units failed. The resumed run re-embeds only those two.
	calls := embedder.CallCount()
	embedder.EmbedTextsFunc = defaultFn

	require.NoError(t, p.Run(ctx, sampleInput()))
	assert.Equal(t, calls+2, embedder.CallCount(), "resume must skip completed embed units")

	for _, stage := range []string{StageIngest, StageExtract, StageEmbed, StageMatch} {
		requireStageStatus(t, stores, stage, core.StageComplete)
	}

	ranking, err := stores.Rankings.GetRanking(ctx, "1002")
	require.NoError(t, err)
	assert.Len(t, ranking.Matches, 3)

	// An uninterrupted run over the same input must land on the same
	// rankings as the interrupted-and-resumed one.
	baselineStores := newTestStores(t)
	baselineEmbedder := mock.NewMockEmbedder()
	baselineEmbedder.Dimensions = 8
	baseline := newTestPipeline(t, baselineStores, baselineEmbedder)
	require.NoError(t, baseline.Run(ctx, sampleInput()))

	for _, jobID := range []core.RecordID{"1001", "1002"} {
		resumed, err := stores.Rankings.GetRanking(ctx, jobID)
		require.NoError(t, err)
		expected, err := baselineStores.Rankings.GetRanking(ctx, jobID)
		require.NoError(t, err)
		assert.Equal(t, expected.Matches, resumed.Matches,
			"resumed run must rank job %s exactly like an uninterrupted run", jobID)
	}
}

func TestPipeline_Match_ExcludesCandidatesWithoutVectors(t *testing.T) {
	ctx := context.Background()
	stores := newTestStores(t)
	embedder := mock.NewMockEmbedder()

	var logBuf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logBuf, nil))
	p := newTestPipeline(t, stores, embedder, WithLogger(logger))

	require.NoError(t, stores.Corpus.AddJobs(ctx, &core.JobPosting{
		Id:           "1001",
		Title:        "Desenvolvedor Java",
		Competencies: "Java e SQL.",
	}))
	require.NoError(t, stores.Corpus.AddCandidates(ctx,
		&core.CandidateProfile{Id: "2001", Name: "Ana Souza", Title: "Desenvolvedora", Resume: "Java."},
		&core.CandidateProfile{Id: "2002", Name: "Bruno Lima", Title: "Desenvolvedor", Resume: "SQL."},
	))
	require.NoError(t, stores.Vectors.PutVectors(ctx,
		&core.VectorRecord{Kind: core.EntityJob, Id: "1001", Vector: []float32{1, 0, 0, 0}, Hash: 1},
		&core.VectorRecord{Kind: core.EntityCandidate, Id: "2001", Vector: []float32{1, 0, 0, 0}, Hash: 2},
	))

	require.NoError(t, p.runMatch(ctx))

	ranking, err := stores.Rankings.GetRanking(ctx, "1001")
	require.NoError(t, err)
	require.Len(t, ranking.Matches, 1, "candidate without a vector must be excluded")
	assert.Equal(t, core.RecordID("2001"), ranking.Matches[0].CandidateId)

	output := logBuf.String()
	assert.Contains(t, output, "no embedding vector", "exclusion must be logged")
	assert.Contains(t, output, "2002")
}

func TestPipeline_Run_BatchSizeChangeRestartsStage(t *testing.T) {
	ctx := context.Background()
	stores := newTestStores(t)
	embedder := mock.NewMockEmbedder()
	embedder.Dimensions = 8

	p := newTestPipeline(t, stores, embedder)
	require.NoError(t, p.Run(ctx, sampleInput()))
	calls := embedder.CallCount()

	resized := newTestPipeline(t, stores, embedder, WithEmbedBatchSize(2))
	require.NoError(t, resized.Run(ctx, sampleInput()))

	checkpoint, err := stores.Checkpoints.LoadCheckpoint(ctx, StageEmbed)
	require.NoError(t, err)
	require.NotNil(t, checkpoint)
	assert.Equal(t, core.StageComplete, checkpoint.Status)
	assert.Equal(t, 2, checkpoint.BatchSize, "restarted stage records the new unit size")

	assert.Equal(t, calls, embedder.CallCount(), "unchanged texts are skipped by content hash")
}

func TestPipeline_Reset(t *testing.T) {
	ctx := context.Background()
	stores := newTestStores(t)
	embedder := mock.NewMockEmbedder()
	embedder.Dimensions = 8

	p := newTestPipeline(t, stores, embedder)
	require.NoError(t, p.Run(ctx, sampleInput()))

	require.NoError(t, p.Reset(ctx))
	for _, stage := range []string{StageIngest, StageExtract, StageEmbed, StageMatch} {
		checkpoint, err := stores.Checkpoints.LoadCheckpoint(ctx, stage)
		require.NoError(t, err)
		assert.Nil(t, checkpoint, "reset must clear the %s checkpoint", stage)
	}

	require.NoError(t, p.Run(ctx, sampleInput()))
	requireStageStatus(t, stores, StageMatch, core.StageComplete)
}

func TestPipeline_Run_ContextCanceled(t *testing.T) {
	stores := newTestStores(t)
	embedder := mock.NewMockEmbedder()
	embedder.Dimensions = 8

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := newTestPipeline(t, stores, embedder)
	err := p.Run(ctx, sampleInput())
	assert.ErrorIs(t, err, context.Canceled)
}
