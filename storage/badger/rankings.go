package badger

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/poiesic/matchpoint/core"
	"github.com/poiesic/matchpoint/storage"
)

// RankingRepository implements storage.RankingRepository for BadgerDB.
type RankingRepository struct {
	backend *Backend
}

var _ storage.RankingRepository = (*RankingRepository)(nil)

// NewRankingRepository creates a new RankingRepository.
//
// Returns the storage.RankingRepository interface to enforce abstraction.
func NewRankingRepository(backend *Backend) storage.RankingRepository {
	return &RankingRepository{backend: backend}
}

// Close is a no-op; the underlying backend owns the database handle.
func (r *RankingRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *RankingRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// SaveRanking persists the ranked match list for one job.
func (r *RankingRepository) SaveRanking(ctx context.Context, ranking *core.JobRanking) error {
	if ranking.JobId == "" {
		return core.ErrEmptyRecordID
	}
	return r.backend.WithTx(func(tx *badger.Txn) error {
		ranking.UpdatedAt = time.Now().UTC()
		key := makeRankingKey(ranking.JobId)
		if err := tx.Set(key, storage.MarshalJobRanking(ranking)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// GetRanking retrieves the ranked match list for a job.
func (r *RankingRepository) GetRanking(ctx context.Context, jobID core.RecordID) (*core.JobRanking, error) {
	var ranking *core.JobRanking
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeRankingKey(jobID))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			var unmarshalErr error
			ranking, unmarshalErr = storage.UnmarshalJobRanking(val)
			return unmarshalErr
		})
	}, false)
	return ranking, err
}

// RankedJobIDs returns the ids of all jobs with stored rankings, in
// ascending order.
func (r *RankingRepository) RankedJobIDs(ctx context.Context) ([]core.RecordID, error) {
	keyPrefix := []byte(rankingRecordPrefix + ":")
	var ids []core.RecordID
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = keyPrefix
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			key := iter.Item().Key()
			ids = append(ids, core.RecordID(key[len(keyPrefix):]))
		}
		return nil
	}, false)
	return ids, err
}
