package badger

import (
	"context"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/matchpoint/core"
	"github.com/poiesic/matchpoint/storage"
)

func TestCheckpointStore_SaveAndLoad(t *testing.T) {
	stores := newTestStores(t)
	ctx := context.Background()

	require.NoError(t, stores.Checkpoints.SaveCheckpoint(ctx, &core.Checkpoint{
		Stage:     "embed",
		Status:    core.StageInProgress,
		BatchSize: 100,
	}))

	cp, err := stores.Checkpoints.LoadCheckpoint(ctx, "embed")
	require.NoError(t, err)
	require.NotNil(t, cp)
	assert.Equal(t, core.StageInProgress, cp.Status)
	assert.Equal(t, 100, cp.BatchSize)
	assert.False(t, cp.UpdatedAt.IsZero())
}

func TestCheckpointStore_LoadMissing(t *testing.T) {
	stores := newTestStores(t)

	cp, err := stores.Checkpoints.LoadCheckpoint(context.Background(), "extract")
	require.NoError(t, err)
	assert.Nil(t, cp)
}

func TestCheckpointStore_CorruptCheckpointTreatedAsMissing(t *testing.T) {
	stores := newTestStores(t)
	ctx := context.Background()

	err := stores.Backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Set(makeCheckpointKey("match"), []byte{0xff}); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
	require.NoError(t, err)

	cp, err := stores.Checkpoints.LoadCheckpoint(ctx, "match")
	require.NoError(t, err)
	assert.Nil(t, cp)
}

func TestCheckpointStore_UnitMarkers(t *testing.T) {
	stores := newTestStores(t)
	ctx := context.Background()

	done, err := stores.Checkpoints.IsUnitDone(ctx, "extract", 0)
	require.NoError(t, err)
	assert.False(t, done)

	require.NoError(t, stores.Checkpoints.MarkUnit(ctx, "extract", 0))
	require.NoError(t, stores.Checkpoints.MarkUnit(ctx, "extract", 7))

	done, err = stores.Checkpoints.IsUnitDone(ctx, "extract", 0)
	require.NoError(t, err)
	assert.True(t, done)

	// Markers are scoped per stage.
	done, err = stores.Checkpoints.IsUnitDone(ctx, "embed", 0)
	require.NoError(t, err)
	assert.False(t, done)
}

func TestCheckpointStore_ResetStage(t *testing.T) {
	stores := newTestStores(t)
	ctx := context.Background()

	require.NoError(t, stores.Checkpoints.SaveCheckpoint(ctx, &core.Checkpoint{
		Stage:  "extract",
		Status: core.StageComplete,
	}))
	require.NoError(t, stores.Checkpoints.MarkUnit(ctx, "extract", 3))
	require.NoError(t, stores.Checkpoints.MarkUnit(ctx, "embed", 1))

	require.NoError(t, stores.Checkpoints.ResetStage(ctx, "extract"))

	cp, err := stores.Checkpoints.LoadCheckpoint(ctx, "extract")
	require.NoError(t, err)
	assert.Nil(t, cp)

	done, err := stores.Checkpoints.IsUnitDone(ctx, "extract", 3)
	require.NoError(t, err)
	assert.False(t, done)

	// Other stages are untouched.
	done, err = stores.Checkpoints.IsUnitDone(ctx, "embed", 1)
	require.NoError(t, err)
	assert.True(t, done)
}

func TestRankingRepository_SaveAndGet(t *testing.T) {
	stores := newTestStores(t)
	ctx := context.Background()

	ranking := &core.JobRanking{
		JobId: "5185",
		Matches: []core.MatchDetail{
			{JobId: "5185", CandidateId: "31000", Semantic: 0.9, FinalScore: 0.8},
			{JobId: "5185", CandidateId: "31001", Semantic: 0.7, FinalScore: 0.6},
		},
	}
	require.NoError(t, stores.Rankings.SaveRanking(ctx, ranking))

	got, err := stores.Rankings.GetRanking(ctx, "5185")
	require.NoError(t, err)
	require.Len(t, got.Matches, 2)
	assert.Equal(t, core.RecordID("31000"), got.Matches[0].CandidateId)
	assert.InDelta(t, 0.8, got.Matches[0].FinalScore, 1e-9)
	assert.False(t, got.UpdatedAt.IsZero())

	_, err = stores.Rankings.GetRanking(ctx, "5999")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	ids, err := stores.Rankings.RankedJobIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []core.RecordID{"5185"}, ids)
}
