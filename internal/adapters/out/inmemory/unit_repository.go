package inmemory

import (
	"context"
	"sort"
	"sync"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/unit"
	"tracking/internal/pkg/errs"
)

// unitRecord is the stored snapshot of a shipment unit. Checkpoint history
// lives in the checkpoint store and is joined in on read.
type unitRecord struct {
	id         kernel.UUID
	trackingID string
	status     unit.Status
	createdAt  time.Time
	updatedAt  time.Time
}

// MemoryShipmentUnitRepository is an in-memory ShipmentUnitRepository.
// Reads rehydrate aggregates with their full history from the checkpoint
// store. Safe for concurrent use, though lookups by tracking ID and status
// are linear scans.
type MemoryShipmentUnitRepository struct {
	mu          sync.RWMutex
	records     map[string]unitRecord
	checkpoints *MemoryCheckpointRepository
}

// NewMemoryShipmentUnitRepository creates an empty unit store backed by the
// given checkpoint store for history rehydration.
func NewMemoryShipmentUnitRepository(checkpoints *MemoryCheckpointRepository) *MemoryShipmentUnitRepository {
	return &MemoryShipmentUnitRepository{
		records:     make(map[string]unitRecord),
		checkpoints: checkpoints,
	}
}

// Add stores a snapshot of a new shipment unit aggregate.
func (r *MemoryShipmentUnitRepository) Add(_ context.Context, aggregate *unit.ShipmentUnit) error {
	return r.store(aggregate)
}

// Update replaces the stored snapshot of an existing aggregate.
// Like Add, it is an upsert on the unit identifier.
func (r *MemoryShipmentUnitRepository) Update(_ context.Context, aggregate *unit.ShipmentUnit) error {
	return r.store(aggregate)
}

func (r *MemoryShipmentUnitRepository) store(aggregate *unit.ShipmentUnit) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.records[aggregate.ID().String()] = unitRecord{
		id:         aggregate.ID(),
		trackingID: aggregate.TrackingID(),
		status:     aggregate.Status(),
		createdAt:  aggregate.CreatedAt(),
		updatedAt:  aggregate.UpdatedAt(),
	}
	return nil
}

// GetByID retrieves a unit aggregate by identifier, rehydrated with its
// complete checkpoint history. Returns errs.ObjectNotFoundError when no
// unit carries the identifier.
func (r *MemoryShipmentUnitRepository) GetByID(ctx context.Context, id kernel.UUID) (*unit.ShipmentUnit, error) {
	r.mu.RLock()
	record, ok := r.records[id.String()]
	r.mu.RUnlock()

	if !ok {
		return nil, errs.NewObjectNotFoundError("unitId", id)
	}
	return r.rehydrate(ctx, record)
}

// GetByTrackingID retrieves a unit aggregate by its tracking code.
// Returns errs.ObjectNotFoundError when no unit carries the code.
func (r *MemoryShipmentUnitRepository) GetByTrackingID(
	ctx context.Context, trackingID string,
) (*unit.ShipmentUnit, error) {
	r.mu.RLock()
	record, ok := r.findByTrackingID(trackingID)
	r.mu.RUnlock()

	if !ok {
		return nil, errs.NewObjectNotFoundError("trackingId", trackingID)
	}
	return r.rehydrate(ctx, record)
}

// GetAllByStatus retrieves all units currently in the given status, sorted
// by creation time ascending for stable pagination.
func (r *MemoryShipmentUnitRepository) GetAllByStatus(
	ctx context.Context, status unit.Status,
) ([]*unit.ShipmentUnit, error) {
	r.mu.RLock()
	matching := make([]unitRecord, 0)
	for _, record := range r.records {
		if record.status == status {
			matching = append(matching, record)
		}
	}
	r.mu.RUnlock()

	sort.Slice(matching, func(i, j int) bool {
		if matching[i].createdAt.Equal(matching[j].createdAt) {
			return matching[i].id.String() < matching[j].id.String()
		}
		return matching[i].createdAt.Before(matching[j].createdAt)
	})

	units := make([]*unit.ShipmentUnit, 0, len(matching))
	for _, record := range matching {
		aggregate, err := r.rehydrate(ctx, record)
		if err != nil {
			return nil, err
		}
		units = append(units, aggregate)
	}
	return units, nil
}

// Exists reports whether a unit with the given tracking code is stored.
func (r *MemoryShipmentUnitRepository) Exists(_ context.Context, trackingID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.findByTrackingID(trackingID)
	return ok, nil
}

// findByTrackingID must be called with at least a read lock held.
func (r *MemoryShipmentUnitRepository) findByTrackingID(trackingID string) (unitRecord, bool) {
	for _, record := range r.records {
		if record.trackingID == trackingID {
			return record, true
		}
	}
	return unitRecord{}, false
}

func (r *MemoryShipmentUnitRepository) rehydrate(ctx context.Context, record unitRecord) (*unit.ShipmentUnit, error) {
	history, err := r.checkpoints.GetAllByUnitID(ctx, record.id)
	if err != nil {
		return nil, err
	}

	return unit.RestoreShipmentUnit(
		record.id, record.trackingID, record.status, record.createdAt, record.updatedAt, history)
}
