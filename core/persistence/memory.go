package persistence

import (
	"context"
	"slices"
	"sync"
)

// MemoryStore is an in-process Adapter. Records keep their insertion order.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]Record
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]Record)}
}

func memoryKey(ownerID, collection string) string {
	return ownerID + "/" + collection
}

// Get returns a copy of the records of a collection.
func (m *MemoryStore) Get(ctx context.Context, ownerID, collection string) ([]Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.data[memoryKey(ownerID, collection)]), nil
}

// Put creates or replaces a record.
func (m *MemoryStore) Put(ctx context.Context, ownerID, collection string, record Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := memoryKey(ownerID, collection)
	records := m.data[key]
	record.Data = slices.Clone(record.Data)
	if idx := slices.IndexFunc(records, func(r Record) bool { return r.ID == record.ID }); idx >= 0 {
		records[idx] = record
		return nil
	}
	m.data[key] = append(records, record)
	return nil
}

// Delete removes a record if present.
func (m *MemoryStore) Delete(ctx context.Context, ownerID, collection, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := memoryKey(ownerID, collection)
	m.data[key] = slices.DeleteFunc(m.data[key], func(r Record) bool { return r.ID == id })
	return nil
}
