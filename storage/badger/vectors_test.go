package badger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/matchpoint/core"
	"github.com/poiesic/matchpoint/storage"
)

func testVector(kind core.EntityKind, id string, values ...float32) *core.VectorRecord {
	return &core.VectorRecord{
		Kind:   kind,
		Id:     core.RecordID(id),
		Vector: values,
		Hash:   core.HashText(id),
	}
}

func TestVectorRepository_PutAndGet(t *testing.T) {
	stores := newTestStores(t)
	ctx := context.Background()

	vec := testVector(core.EntityJob, "5185", 0.1, 0.2, 0.3)
	require.NoError(t, stores.Vectors.PutVectors(ctx, vec))

	got, err := stores.Vectors.GetVector(ctx, core.EntityJob, "5185")
	require.NoError(t, err)
	assert.Equal(t, vec.Vector, got.Vector)
	assert.Equal(t, vec.Hash, got.Hash)

	_, err = stores.Vectors.GetVector(ctx, core.EntityCandidate, "5185")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestVectorRepository_DimensionPinning(t *testing.T) {
	stores := newTestStores(t)
	ctx := context.Background()

	_, pinned, err := stores.Vectors.Dimension(ctx)
	require.NoError(t, err)
	assert.False(t, pinned)

	require.NoError(t, stores.Vectors.PutVectors(ctx,
		testVector(core.EntityJob, "1", 0.1, 0.2, 0.3)))

	dim, pinned, err := stores.Vectors.Dimension(ctx)
	require.NoError(t, err)
	assert.True(t, pinned)
	assert.Equal(t, 3, dim)

	err = stores.Vectors.PutVectors(ctx,
		testVector(core.EntityCandidate, "2", 0.1, 0.2))
	assert.ErrorIs(t, err, storage.ErrDimensionMismatch)
}

func TestVectorRepository_RejectsEmptyVector(t *testing.T) {
	stores := newTestStores(t)

	err := stores.Vectors.PutVectors(context.Background(),
		&core.VectorRecord{Kind: core.EntityJob, Id: "1"})
	assert.ErrorIs(t, err, storage.ErrDimensionMismatch)
}

func TestVectorRepository_IterVectors(t *testing.T) {
	stores := newTestStores(t)
	ctx := context.Background()

	require.NoError(t, stores.Vectors.PutVectors(ctx,
		testVector(core.EntityCandidate, "31002", 0.3, 0.4),
		testVector(core.EntityCandidate, "31000", 0.1, 0.2),
		testVector(core.EntityJob, "5185", 0.5, 0.6),
	))

	var ids []core.RecordID
	err := stores.Vectors.IterVectors(ctx, core.EntityCandidate, func(v *core.VectorRecord) error {
		ids = append(ids, v.Id)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []core.RecordID{"31000", "31002"}, ids)
}

func TestVectorRepository_IterVectors_ContextCanceled(t *testing.T) {
	stores := newTestStores(t)
	ctx := context.Background()

	require.NoError(t, stores.Vectors.PutVectors(ctx,
		testVector(core.EntityCandidate, "31000", 0.1, 0.2)))

	canceled, cancel := context.WithCancel(ctx)
	cancel()

	err := stores.Vectors.IterVectors(canceled, core.EntityCandidate, func(*core.VectorRecord) error {
		t.Fatal("callback should not run after cancellation")
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
}
