package repositories

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/thyeshengleng/collection-form/logger"
	"github.com/thyeshengleng/collection-form/models"
)

// Collection stores the record set as a single document.
// Load on an empty store returns an empty set, not an error.
type Collection interface {
	Load(ctx context.Context) (models.RecordSet, error)
	Save(ctx context.Context, set models.RecordSet) error
}

// collectionRepository implements RecordRepository by rewriting a whole Collection
type collectionRepository struct {
	coll  Collection
	mu    sync.Mutex
	newID func() string
	now   func() time.Time
}

// NewCollectionRepository creates a record repository over the given collection
func NewCollectionRepository(coll Collection) RecordRepository {
	return &collectionRepository{
		coll:  coll,
		newID: uuid.NewString,
		now:   time.Now,
	}
}

// load fetches the set and assigns IDs to records stored without one.
// Callers must hold r.mu.
func (r *collectionRepository) load(ctx context.Context) (models.RecordSet, error) {
	set, err := r.coll.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load records: %w", err)
	}
	set = set.Clone()

	assigned := 0
	for i := range set {
		if set[i].ID == "" {
			set[i].ID = r.newID()
			assigned++
		}
	}
	if assigned > 0 {
		logger.Log.Info("assigned IDs to stored records", zap.Int("count", assigned))
		if err := r.save(ctx, set); err != nil {
			return nil, err
		}
	}

	return set, nil
}

func (r *collectionRepository) save(ctx context.Context, set models.RecordSet) error {
	if err := r.coll.Save(ctx, set.Clone()); err != nil {
		return fmt.Errorf("failed to save records: %w", err)
	}
	return nil
}

// Load retrieves the whole record set
func (r *collectionRepository) Load(ctx context.Context) (models.RecordSet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.load(ctx)
}

// Save overwrites the stored collection
func (r *collectionRepository) Save(ctx context.Context, set models.RecordSet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.save(ctx, set)
}

// Get retrieves a record by ID
func (r *collectionRepository) Get(ctx context.Context, id string) (*models.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	record, ok := set.Find(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrRecordNotFound, id)
	}
	return record, nil
}

// Create appends a new record and saves the set
func (r *collectionRepository) Create(ctx context.Context, fields models.Fields) (*models.Record, models.RecordSet, error) {
	record, err := models.NewRecord(fields)
	if err != nil {
		return nil, nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	set, err := r.load(ctx)
	if err != nil {
		return nil, nil, err
	}

	record.ID = r.newID()
	record.CreatedDate = models.FormatDateTime(r.now())
	set = append(set, record)

	if err := r.save(ctx, set); err != nil {
		return nil, nil, err
	}
	return &record, set, nil
}

// Update overwrites the given fields of one record and saves the set
func (r *collectionRepository) Update(ctx context.Context, id string, fields models.Fields) (models.RecordSet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	idx := set.IndexOf(id)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrRecordNotFound, id)
	}
	if err := set[idx].Apply(fields); err != nil {
		return nil, err
	}

	if err := r.save(ctx, set); err != nil {
		return nil, err
	}
	return set, nil
}

// Delete removes one record, keeping the rest in order, and saves the set
func (r *collectionRepository) Delete(ctx context.Context, id string) (models.RecordSet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	idx := set.IndexOf(id)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrRecordNotFound, id)
	}
	set = append(set[:idx], set[idx+1:]...)

	if err := r.save(ctx, set); err != nil {
		return nil, err
	}
	return set, nil
}
