// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package badger

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/poiesic/matchpoint/core"
	"github.com/poiesic/matchpoint/storage"
)

// CheckpointStore implements storage.CheckpointStore for BadgerDB.
type CheckpointStore struct {
	backend *Backend
}

var _ storage.CheckpointStore = (*CheckpointStore)(nil)

// NewCheckpointStore creates a new CheckpointStore.
//
// Returns the storage.CheckpointStore interface to enforce abstraction.
func NewCheckpointStore(backend *Backend) storage.CheckpointStore {
	return &CheckpointStore{backend: backend}
}

// Close is a no-op; the underlying backend owns the database handle.
func (s *CheckpointStore) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (s *CheckpointStore) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return s.backend.WithTransaction(ctx, fn)
}

// SaveCheckpoint persists the stage-level checkpoint.
func (s *CheckpointStore) SaveCheckpoint(ctx context.Context, checkpoint *core.Checkpoint) error {
	return s.backend.WithTx(func(tx *badger.Txn) error {
		checkpoint.UpdatedAt = time.Now().UTC()
		key := makeCheckpointKey(checkpoint.Stage)
		if err := tx.Set(key, storage.MarshalCheckpoint(checkpoint)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// LoadCheckpoint retrieves the checkpoint for a stage.
//
// Returns nil, nil when no checkpoint exists or the stored bytes cannot be
// decoded: a corrupt checkpoint resets the stage rather than wedging the
// pipeline.
func (s *CheckpointStore) LoadCheckpoint(ctx context.Context, stage string) (*core.Checkpoint, error) {
	var checkpoint *core.Checkpoint
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeCheckpointKey(stage))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return nil
			}
			return err
		}

		return item.Value(func(val []byte) error {
			decoded, unmarshalErr := storage.UnmarshalCheckpoint(val)
			if unmarshalErr != nil {
				s.backend.logger.Warn("discarding undecodable checkpoint",
					"stage", stage, "error", unmarshalErr)
				return nil
			}
			checkpoint = decoded
			return nil
		})
	}, false)

	return checkpoint, err
}

// MarkUnit records completion of one unit within a stage.
func (s *CheckpointStore) MarkUnit(ctx context.Context, stage string, unit uint64) error {
	return s.backend.WithTx(func(tx *badger.Txn) error {
		marker := &core.UnitMarker{
			Stage:       stage,
			Unit:        unit,
			CompletedAt: time.Now().UTC(),
		}
		key := makeUnitMarkerKey(stage, unit)
		if err := tx.Set(key, storage.MarshalUnitMarker(marker)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// IsUnitDone reports whether a unit of a stage has completed.
func (s *CheckpointStore) IsUnitDone(ctx context.Context, stage string, unit uint64) (bool, error) {
	var done bool
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		_, err := tx.Get(makeUnitMarkerKey(stage, unit))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return nil
			}
			return err
		}
		done = true
		return nil
	}, false)
	return done, err
}

// ResetStage removes the checkpoint and all unit markers for a stage.
func (s *CheckpointStore) ResetStage(ctx context.Context, stage string) error {
	return s.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Delete(makeCheckpointKey(stage)); err != nil {
			return err
		}

		prefix := makeUnitMarkerPrefix(stage)
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)

		var keys [][]byte
		for iter.Rewind(); iter.Valid(); iter.Next() {
			keys = append(keys, iter.Item().KeyCopy(nil))
		}
		iter.Close()

		for _, key := range keys {
			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}
