package storage

import (
	"sync"
)

// MemoryStore is in-memory Store without persistence.
// Used in tests, and as fallback when no backing
// file is configured.
// Use #NewMemoryStore to create new instance.
type MemoryStore struct {
	snapshot Snapshot

	lock *sync.RWMutex
}

// NewMemoryStore creates a new
// instance of MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		snapshot: Snapshot{},

		lock: &sync.RWMutex{},
	}
}

// Save replaces the stored snapshot with a copy
// of provided snapshot.
func (s *MemoryStore) Save(snapshot Snapshot) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.snapshot = copySnapshot(snapshot)
	return nil
}

// Load provides a copy of the last-saved snapshot.
func (s *MemoryStore) Load() (Snapshot, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return copySnapshot(s.snapshot), nil
}

func copySnapshot(snapshot Snapshot) Snapshot {
	cp := make(Snapshot, len(snapshot))
	for key, record := range snapshot {
		txns := make([]TxnRecord, len(record.Txns))
		copy(txns, record.Txns)
		record.Txns = txns
		cp[key] = record
	}
	return cp
}
