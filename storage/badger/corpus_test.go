package badger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/matchpoint/core"
	"github.com/poiesic/matchpoint/storage"
)

func newTestStores(t *testing.T) *MemoryStores {
	t.Helper()
	stores, err := NewMemoryStores()
	require.NoError(t, err)
	t.Cleanup(func() { stores.Close() })
	return stores
}

func testJob(id string) *core.JobPosting {
	return &core.JobPosting{
		Id:           core.RecordID(id),
		Title:        "Desenvolvedor Java",
		Competencies: "Java, Spring",
	}
}

func testCandidate(id string) *core.CandidateProfile {
	return &core.CandidateProfile{
		Id:     core.RecordID(id),
		Name:   "Candidate " + id,
		Resume: "Desenvolvedor Java",
	}
}

func TestCorpusRepository_Jobs(t *testing.T) {
	stores := newTestStores(t)
	ctx := context.Background()

	require.NoError(t, stores.Corpus.AddJobs(ctx, testJob("5185"), testJob("5100")))

	job, err := stores.Corpus.GetJob(ctx, "5185")
	require.NoError(t, err)
	assert.Equal(t, "Desenvolvedor Java", job.Title)

	ids, err := stores.Corpus.JobIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []core.RecordID{"5100", "5185"}, ids)
}

func TestCorpusRepository_GetJob_NotFound(t *testing.T) {
	stores := newTestStores(t)

	_, err := stores.Corpus.GetJob(context.Background(), "missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestCorpusRepository_AddJobs_Invalid(t *testing.T) {
	stores := newTestStores(t)

	err := stores.Corpus.AddJobs(context.Background(), &core.JobPosting{Id: "1"})
	assert.ErrorIs(t, err, core.ErrInvalidJobPosting)
}

func TestCorpusRepository_AddJobs_Overwrites(t *testing.T) {
	stores := newTestStores(t)
	ctx := context.Background()

	require.NoError(t, stores.Corpus.AddJobs(ctx, testJob("5185")))

	updated := testJob("5185")
	updated.Title = "Desenvolvedor Python"
	require.NoError(t, stores.Corpus.AddJobs(ctx, updated))

	job, err := stores.Corpus.GetJob(ctx, "5185")
	require.NoError(t, err)
	assert.Equal(t, "Desenvolvedor Python", job.Title)

	ids, err := stores.Corpus.JobIDs(ctx)
	require.NoError(t, err)
	assert.Len(t, ids, 1)
}

func TestCorpusRepository_Candidates(t *testing.T) {
	stores := newTestStores(t)
	ctx := context.Background()

	require.NoError(t, stores.Corpus.AddCandidates(ctx, testCandidate("31002"), testCandidate("31001")))

	candidate, err := stores.Corpus.GetCandidate(ctx, "31001")
	require.NoError(t, err)
	assert.Equal(t, "Candidate 31001", candidate.Name)

	ids, err := stores.Corpus.CandidateIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []core.RecordID{"31001", "31002"}, ids)

	_, err = stores.Corpus.GetCandidate(ctx, "31999")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestCorpusRepository_Hirings(t *testing.T) {
	stores := newTestStores(t)
	ctx := context.Background()

	require.NoError(t, stores.Corpus.AddHirings(ctx,
		&core.HiringRecord{JobId: "5186", Candidates: []core.RecordID{"31001"}},
		&core.HiringRecord{JobId: "5185", Candidates: []core.RecordID{"31000", "31002"}},
	))

	record, err := stores.Corpus.GetHiring(ctx, "5185")
	require.NoError(t, err)
	assert.Equal(t, []core.RecordID{"31000", "31002"}, record.Candidates)

	all, err := stores.Corpus.Hirings(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, core.RecordID("5185"), all[0].JobId)
	assert.Equal(t, core.RecordID("5186"), all[1].JobId)

	_, err = stores.Corpus.GetHiring(ctx, "5999")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestCorpusRepository_RoundTripPreservesFeatures(t *testing.T) {
	stores := newTestStores(t)
	ctx := context.Background()

	job := testJob("5185")
	job.Features = core.FeatureSet{
		Skills:        []string{"Java", "Spring"},
		Education:     core.EducationCompleteHigher,
		Seniority:     core.SenioritySenior,
		English:       core.LanguageAdvanced,
		Location:      core.Location{City: "São Paulo", State: "São Paulo", Country: "Brasil"},
		CanonicalText: "desenvolvedor java",
	}
	require.NoError(t, stores.Corpus.AddJobs(ctx, job))

	got, err := stores.Corpus.GetJob(ctx, "5185")
	require.NoError(t, err)
	assert.Equal(t, job.Features, got.Features)
}
