// Package inmemory provides the reference storage driver for the tracking
// service. Repositories keep plain-value snapshots behind a mutex and
// rehydrate aggregates through the domain restore constructors, so callers
// never share mutable state with the store. The driver is non-transactional;
// it backs local development, tests and deployments without a database.
package inmemory

import (
	"context"
	"sort"
	"sync"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/unit"
)

// checkpointRecord is the stored snapshot of a checkpoint. Plain fields
// only, so records can be copied freely without touching domain state.
type checkpointRecord struct {
	id        kernel.UUID
	unitID    kernel.UUID
	status    unit.Status
	timestamp time.Time
	location  string
	notes     string
}

// MemoryCheckpointRepository is an in-memory CheckpointRepository.
// Safe for concurrent use.
type MemoryCheckpointRepository struct {
	mu      sync.RWMutex
	records map[string]checkpointRecord
}

// NewMemoryCheckpointRepository creates an empty checkpoint store.
func NewMemoryCheckpointRepository() *MemoryCheckpointRepository {
	return &MemoryCheckpointRepository{
		records: make(map[string]checkpointRecord),
	}
}

// Add stores a checkpoint snapshot, replacing any record with the same
// identifier. Re-adding the same checkpoint is a no-op in effect, which
// keeps retried registrations harmless.
func (r *MemoryCheckpointRepository) Add(_ context.Context, checkpoint *unit.Checkpoint) error {
	if err := checkpoint.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.records[checkpoint.ID().String()] = checkpointRecord{
		id:        checkpoint.ID(),
		unitID:    checkpoint.UnitID(),
		status:    checkpoint.Status(),
		timestamp: checkpoint.Timestamp(),
		location:  checkpoint.Location(),
		notes:     checkpoint.Notes(),
	}
	return nil
}

// GetAllByUnitID returns every checkpoint of the given unit sorted by
// timestamp ascending, regardless of insertion order. Equal timestamps are
// ordered by identifier so repeated reads yield the same history. The scan
// is linear over all records.
func (r *MemoryCheckpointRepository) GetAllByUnitID(
	_ context.Context, unitID kernel.UUID,
) ([]*unit.Checkpoint, error) {
	r.mu.RLock()
	matching := make([]checkpointRecord, 0)
	for _, record := range r.records {
		if record.unitID.IsEqual(unitID) {
			matching = append(matching, record)
		}
	}
	r.mu.RUnlock()

	sort.SliceStable(matching, func(i, j int) bool {
		if matching[i].timestamp.Equal(matching[j].timestamp) {
			return matching[i].id.String() < matching[j].id.String()
		}
		return matching[i].timestamp.Before(matching[j].timestamp)
	})

	checkpoints := make([]*unit.Checkpoint, 0, len(matching))
	for _, record := range matching {
		checkpoint, err := unit.RestoreCheckpoint(
			record.id, record.unitID, record.status, record.timestamp, record.location, record.notes)
		if err != nil {
			return nil, err
		}
		checkpoints = append(checkpoints, checkpoint)
	}
	return checkpoints, nil
}

// Exists reports whether a checkpoint with the given identifier is stored.
func (r *MemoryCheckpointRepository) Exists(_ context.Context, id kernel.UUID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.records[id.String()]
	return ok, nil
}
