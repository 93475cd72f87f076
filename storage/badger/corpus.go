package badger

import (
	"context"

	"github.com/dgraph-io/badger/v4"

	"github.com/poiesic/matchpoint/core"
	"github.com/poiesic/matchpoint/storage"
)

// CorpusRepository implements storage.CorpusRepository for BadgerDB.
type CorpusRepository struct {
	backend *Backend
}

var _ storage.CorpusRepository = (*CorpusRepository)(nil)

// NewCorpusRepository creates a new CorpusRepository.
//
// Returns the storage.CorpusRepository interface to enforce abstraction.
func NewCorpusRepository(backend *Backend) storage.CorpusRepository {
	return &CorpusRepository{backend: backend}
}

// Close is a no-op; the underlying backend owns the database handle.
func (r *CorpusRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *CorpusRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddJobs stores job postings, overwriting existing records with the same id.
func (r *CorpusRepository) AddJobs(ctx context.Context, jobs ...*core.JobPosting) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, job := range jobs {
			if err := core.ValidateJobPosting(job); err != nil {
				return err
			}
			if err := tx.Set(makeJobKey(job.Id), storage.MarshalJobPosting(job)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetJob retrieves a job posting by id.
func (r *CorpusRepository) GetJob(ctx context.Context, id core.RecordID) (*core.JobPosting, error) {
	var job *core.JobPosting
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeJobKey(id))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			var unmarshalErr error
			job, unmarshalErr = storage.UnmarshalJobPosting(val)
			return unmarshalErr
		})
	}, false)
	return job, err
}

// JobIDs returns all job posting ids in ascending order.
func (r *CorpusRepository) JobIDs(ctx context.Context) ([]core.RecordID, error) {
	return r.scanIDs(jobRecordPrefix)
}

// AddCandidates stores candidate profiles, overwriting existing records with
// the same id.
func (r *CorpusRepository) AddCandidates(ctx context.Context, candidates ...*core.CandidateProfile) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, candidate := range candidates {
			if err := core.ValidateCandidateProfile(candidate); err != nil {
				return err
			}
			if err := tx.Set(makeCandidateKey(candidate.Id), storage.MarshalCandidateProfile(candidate)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetCandidate retrieves a candidate profile by id.
func (r *CorpusRepository) GetCandidate(ctx context.Context, id core.RecordID) (*core.CandidateProfile, error) {
	var candidate *core.CandidateProfile
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeCandidateKey(id))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			var unmarshalErr error
			candidate, unmarshalErr = storage.UnmarshalCandidateProfile(val)
			return unmarshalErr
		})
	}, false)
	return candidate, err
}

// CandidateIDs returns all candidate ids in ascending order.
func (r *CorpusRepository) CandidateIDs(ctx context.Context) ([]core.RecordID, error) {
	return r.scanIDs(candidateRecordPrefix)
}

// AddHirings stores hiring records keyed by job id.
func (r *CorpusRepository) AddHirings(ctx context.Context, records ...*core.HiringRecord) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, record := range records {
			if record.JobId == "" {
				return core.ErrEmptyRecordID
			}
			if err := tx.Set(makeHiringKey(record.JobId), storage.MarshalHiringRecord(record)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetHiring retrieves the hiring record for a job.
func (r *CorpusRepository) GetHiring(ctx context.Context, jobID core.RecordID) (*core.HiringRecord, error) {
	var record *core.HiringRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeHiringKey(jobID))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			var unmarshalErr error
			record, unmarshalErr = storage.UnmarshalHiringRecord(val)
			return unmarshalErr
		})
	}, false)
	return record, err
}

// Hirings returns all hiring records in ascending job id order.
func (r *CorpusRepository) Hirings(ctx context.Context) ([]*core.HiringRecord, error) {
	var records []*core.HiringRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(hiringRecordPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			err := iter.Item().Value(func(val []byte) error {
				record, unmarshalErr := storage.UnmarshalHiringRecord(val)
				if unmarshalErr != nil {
					return unmarshalErr
				}
				records = append(records, record)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	}, false)
	return records, err
}

// scanIDs iterates a record prefix and collects the id suffix of every key.
// Badger iterates keys in lexicographic order, so ids come back sorted.
func (r *CorpusRepository) scanIDs(prefix string) ([]core.RecordID, error) {
	keyPrefix := []byte(prefix + ":")
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
