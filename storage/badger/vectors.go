package badger

import (
	"context"
	"encoding/binary"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/poiesic/matchpoint/core"
	"github.com/poiesic/matchpoint/storage"
)

// VectorRepository implements storage.VectorRepository for BadgerDB.
//
// The first vector written pins the dimension for the whole store; later
// writes with a different width fail with storage.ErrDimensionMismatch.
type VectorRepository struct {
	backend *Backend
}

var _ storage.VectorRepository = (*VectorRepository)(nil)

// NewVectorRepository creates a new VectorRepository.
//
// Returns the storage.VectorRepository interface to enforce abstraction.
func NewVectorRepository(backend *Backend) storage.VectorRepository {
	return &VectorRepository{backend: backend}
}

// Close is a no-op; the underlying backend owns the database handle.
func (r *VectorRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *VectorRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// PutVectors stores embedding vectors, overwriting existing entries.
func (r *VectorRepository) PutVectors(ctx context.Context, vectors ...*core.VectorRecord) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		dim, pinned, err := readDimension(tx)
		if err != nil {
			return err
		}

		for _, vector := range vectors {
			if vector.Id == "" {
				return core.ErrEmptyRecordID
			}
			if err := core.ValidateEntityKind(vector.Kind); err != nil {
				return err
			}
			if len(vector.Vector) == 0 {
				return fmt.Errorf("%w: empty vector for %q", storage.ErrDimensionMismatch, vector.Id)
			}

			if !pinned {
				dim = len(vector.Vector)
				pinned = true
				var dimBuf [8]byte
				binary.BigEndian.PutUint64(dimBuf[:], uint64(dim))
				if err := tx.Set([]byte(vectorDimensionKey), dimBuf[:]); err != nil {
					return err
				}
			} else if len(vector.Vector) != dim {
				return fmt.Errorf("%w: got %d, store pinned to %d",
					storage.ErrDimensionMismatch, len(vector.Vector), dim)
			}

			key := makeVectorKey(vector.Kind, vector.Id)
			if err := tx.Set(key, storage.MarshalVectorRecord(vector)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetVector retrieves the vector for one entity.
func (r *VectorRepository) GetVector(ctx context.Context, kind core.EntityKind, id core.RecordID) (*core.VectorRecord, error) {
	var vector *core.VectorRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeVectorKey(kind, id))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			var unmarshalErr error
			vector, unmarshalErr = storage.UnmarshalVectorRecord(val)
			return unmarshalErr
		})
	}, false)
	return vector, err
}

// IterVectors calls fn for every stored vector of the given kind, in
// ascending record id order.
func (r *VectorRepository) IterVectors(ctx context.Context, kind core.EntityKind, fn func(*core.VectorRecord) error) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makeVectorKindPrefix(kind)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			var vector *core.VectorRecord
			err := iter.Item().Value(func(val []byte) error {
				var unmarshalErr error
				vector, unmarshalErr = storage.UnmarshalVectorRecord(val)
				return unmarshalErr
			})
			if err != nil {
				return err
			}
			if err := fn(vector); err != nil {
				return err
			}
		}
		return nil
	}, false)
}

// Dimension reports the pinned vector dimension.
func (r *VectorRepository) Dimension(ctx context.Context) (int, bool, error) {
	var dim int
	var pinned bool
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		dim, pinned, err = readDimension(tx)
		return err
	}, false)
	return dim, pinned, err
}

func readDimension(tx *badger.Txn) (int, bool, error) {
	item, err := tx.Get([]byte(vectorDimensionKey))
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return 0, false, nil
		}
		return 0, false, err
	}

	var dim int
	err = item.Value(func(val []byte) error {
		if len(val) != 8 {
			return storage.ErrSerializationFailed
		}
		dim = int(binary.BigEndian.Uint64(val))
		return nil
	})
	if err != nil {
		return 0, false, err
	}
	return dim, true, nil
}
