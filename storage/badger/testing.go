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

import "github.com/poiesic/matchpoint/storage"

// MemoryStores aggregates all repositories over one in-memory backend.
type MemoryStores struct {
	Corpus      storage.CorpusRepository
	Vectors     storage.VectorRepository
	Rankings    storage.RankingRepository
	Checkpoints storage.CheckpointStore
	Backend     *Backend
}

// NewMemoryStores creates in-memory repositories for testing.
// Caller must close the backend when done.
func NewMemoryStores() (*MemoryStores, error) {
	backend, err := OpenBackend("", true)
	if err != nil {
		return nil, err
	}

	return &MemoryStores{
		Corpus:      NewCorpusRepository(backend),
		Vectors:     NewVectorRepository(backend),
		Rankings:    NewRankingRepository(backend),
		Checkpoints: NewCheckpointStore(backend),
		Backend:     backend,
	}, nil
}

// Close closes the shared backend.
func (m *MemoryStores) Close() error {
	return m.Backend.Close()
}
