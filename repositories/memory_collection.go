package repositories

import (
	"context"
	"sync"

	"github.com/thyeshengleng/collection-form/models"
)

// MemoryCollection keeps the record set in process memory
type MemoryCollection struct {
	mu      sync.RWMutex
	records models.RecordSet
}

// NewMemoryCollection creates an in-memory collection seeded with records
func NewMemoryCollection(records ...models.Record) *MemoryCollection {
	return &MemoryCollection{records: models.RecordSet(records).Clone()}
}

// Load returns a copy of the stored records
func (mc *MemoryCollection) Load(ctx context.Context) (models.RecordSet, error) {
	mc.mu.RLock()
	defer mc.mu.RUnlock()

	return mc.records.Clone(), nil
}

// Save replaces the stored records
func (mc *MemoryCollection) Save(ctx context.Context, set models.RecordSet) error {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	mc.records = set.Clone()
	return nil
}
