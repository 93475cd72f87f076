package shortlist

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/matchpoint/core"
	"github.com/poiesic/matchpoint/storage/badger"
)

func newTestVectors(t *testing.T) *badger.MemoryStores {
	t.Helper()
	stores, err := badger.NewMemoryStores()
	require.NoError(t, err)
	t.Cleanup(func() { stores.Close() })
	return stores
}

func putCandidate(t *testing.T, stores *badger.MemoryStores, id string, vector ...float32) {
	t.Helper()
	require.NoError(t, stores.Vectors.PutVectors(context.Background(), &core.VectorRecord{
		Kind:   core.EntityCandidate,
		Id:     core.RecordID(id),
		Vector: vector,
	}))
}

func TestCosineSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, CosineSimilarity([]float32{1, 0}, []float32{2, 0}), 1e-9)
	assert.InDelta(t, 0.0, CosineSimilarity([]float32{1, 0}, []float32{0, 1}), 1e-9)
	assert.InDelta(t, -1.0, CosineSimilarity([]float32{1, 0}, []float32{-1, 0}), 1e-9)
	assert.Equal(t, 0.0, CosineSimilarity([]float32{0, 0}, []float32{1, 1}))
}

func TestNormalizeVector(t *testing.T) {
	v := NormalizeVector([]float32{3, 4})
	assert.InDelta(t, 0.6, float64(v[0]), 1e-6)
	assert.InDelta(t, 0.8, float64(v[1]), 1e-6)

	zero := NormalizeVector([]float32{0, 0})
	assert.Equal(t, []float32{0, 0}, zero)
}

func TestExactRetriever_OrdersBySimilarity(t *testing.T) {
	stores := newTestVectors(t)
	putCandidate(t, stores, "far", -1, 0)
	putCandidate(t, stores, "near", 1, 0)
	putCandidate(t, stores, "mid", 1, 1)

	r := NewExactRetriever(stores.Vectors)
	entries, err := r.Shortlist(context.Background(), []float32{1, 0}, 10)
	require.NoError(t, err)

	require.Len(t, entries, 3)
	assert.Equal(t, core.RecordID("near"), entries[0].CandidateId)
	assert.Equal(t, core.RecordID("mid"), entries[1].CandidateId)
	assert.Equal(t, core.RecordID("far"), entries[2].CandidateId)
}

func TestExactRetriever_TieBreaksByID(t *testing.T) {
	stores := newTestVectors(t)
	putCandidate(t, stores, "b", 1, 0)
	putCandidate(t, stores, "a", 1, 0)
	putCandidate(t, stores, "c", 1, 0)

	r := NewExactRetriever(stores.Vectors)
	entries, err := r.Shortlist(context.Background(), []float32{1, 0}, 10)
	require.NoError(t, err)

	require.Len(t, entries, 3)
	assert.Equal(t, core.RecordID("a"), entries[0].CandidateId)
	assert.Equal(t, core.RecordID("b"), entries[1].CandidateId)
	assert.Equal(t, core.RecordID("c"), entries[2].CandidateId)
}

func TestExactRetriever_Limit(t *testing.T) {
	stores := newTestVectors(t)
	for i := 0; i < 20; i++ {
		putCandidate(t, stores, fmt.Sprintf("c%02d", i), float32(i), 1)
	}

	r := NewExactRetriever(stores.Vectors)
	entries, err := r.Shortlist(context.Background(), []float32{1, 0}, 5)
	require.NoError(t, err)
	assert.Len(t, entries, 5)

	// Highest similarity to (1,0) is the largest first component.
	assert.Equal(t, core.RecordID("c19"), entries[0].CandidateId)
}

func TestExactRetriever_EmptyJobVector(t *testing.T) {
	stores := newTestVectors(t)
	r := NewExactRetriever(stores.Vectors)

	_, err := r.Shortlist(context.Background(), nil, 5)
	assert.Error(t, err)
}

func TestExactRetriever_EmptyPool(t *testing.T) {
	stores := newTestVectors(t)
	r := NewExactRetriever(stores.Vectors)

	entries, err := r.Shortlist(context.Background(), []float32{1, 0}, 5)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
