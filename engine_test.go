package matchpoint

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/matchpoint/ai/mock"
	"github.com/poiesic/matchpoint/core"
	"github.com/poiesic/matchpoint/pipeline"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()

	embedder := mock.NewMockEmbedder()
	embedder.Dimensions = 16

	engine, err := NewEngine("", WithInMemory(), WithEmbedder(embedder))
	require.NoError(t, err)
	t.Cleanup(func() { engine.Close() })
	return engine
}

func TestNewEngine(t *testing.T) {
	t.Run("create on disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "matchpoint_db")
		engine, err := NewEngine(path, WithEmbedder(mock.NewMockEmbedder()))
		require.NoError(t, err)
		require.NotNil(t, engine)
		defer engine.Close()

		assert.NotNil(t, engine.CorpusRepository())
		assert.NotNil(t, engine.VectorRepository())
		assert.NotNil(t, engine.RankingRepository())
		assert.NotNil(t, engine.CheckpointStore())
	})

	t.Run("close", func(t *testing.T) {
		engine, err := NewEngine("", WithInMemory(), WithEmbedder(mock.NewMockEmbedder()))
		require.NoError(t, err)
		assert.NoError(t, engine.Close())
	})
}

func TestEngine_FactoryMethods(t *testing.T) {
	engine := newTestEngine(t)

	p, err := engine.NewPipeline()
	require.NoError(t, err)
	require.NotNil(t, p)
	p.Release()

	assert.NotNil(t, engine.NewEvaluator())
}

func TestEngine_RankedCandidates(t *testing.T) {
	ctx := context.Background()
	engine := newTestEngine(t)

	input := pipeline.Input{
		Jobs: []core.JobPosting{
			{
				Id:           "5185",
				Title:        "Desenvolvedor Java",
				Competencies: "Java, Spring e SQL.",
			},
		},
		Candidates: []core.CandidateProfile{
			{
				Id:     "31000",
				Name:   "Ana Souza",
				Email:  "ana@example.com",
				Phone:  "(11) 99999-0000",
				Title:  "Desenvolvedora Java",
				Resume: "Experiência com Java, Spring e SQL.",
			},
			{
				Id:     "31001",
				Name:   "Bruno Lima",
				Title:  "Analista Administrativo",
				Resume: "Rotinas administrativas.",
			},
		},
		Hirings: []core.HiringRecord{
			{JobId: "5185", Candidates: []core.RecordID{"31000"}},
		},
	}

	p, err := engine.NewPipeline()
	require.NoError(t, err)
	defer p.Release()
	require.NoError(t, p.Run(ctx, input))

	ranked, err := engine.RankedCandidates(ctx, "5185", 0)
	require.NoError(t, err)
	require.Len(t, ranked, 2)

	byID := make(map[core.RecordID]core.RankedCandidate)
	for _, candidate := range ranked {
		byID[candidate.CandidateId] = candidate
	}

	ana := byID["31000"]
	assert.Equal(t, "Ana Souza", ana.Name)
	assert.Equal(t, "ana@example.com", ana.Email)
	assert.True(t, ana.Hired, "hired candidate should be flagged")
	assert.Equal(t, core.RecordID("5185"), ana.Detail.JobId)

	assert.False(t, byID["31001"].Hired)

	t.Run("topN truncates", func(t *testing.T) {
		top, err := engine.RankedCandidates(ctx, "5185", 1)
		require.NoError(t, err)
		assert.Len(t, top, 1)
	})

	t.Run("unknown job", func(t *testing.T) {
		_, err := engine.RankedCandidates(ctx, "9999", 10)
		assert.Error(t, err)
	})
}
