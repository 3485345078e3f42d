package inmemory

import (
	"context"

	"tracking/internal/core/ports"
)

// MemoryUnitOfWork is the non-transactional unit of work of the in-memory
// driver. Begin, Commit and Rollback succeed without effect; each
// repository write is atomic on its own but the checkpoint and unit writes
// of one workflow are not jointly atomic.
type MemoryUnitOfWork struct {
	checkpointRepo *MemoryCheckpointRepository
	unitRepo       *MemoryShipmentUnitRepository
}

// Begin starts the logical transaction. No-op.
func (u *MemoryUnitOfWork) Begin(_ context.Context) error { return nil }

// Commit commits the logical transaction. No-op.
func (u *MemoryUnitOfWork) Commit(_ context.Context) error { return nil }

// Rollback rolls back the logical transaction. No-op; writes already
// applied are not undone.
func (u *MemoryUnitOfWork) Rollback(_ context.Context) error { return nil }

// CheckpointRepository returns the shared checkpoint store.
func (u *MemoryUnitOfWork) CheckpointRepository() ports.CheckpointRepository {
	return u.checkpointRepo
}

// ShipmentUnitRepository returns the shared unit store.
func (u *MemoryUnitOfWork) ShipmentUnitRepository() ports.ShipmentUnitRepository {
	return u.unitRepo
}

// MemoryUnitOfWorkFactory creates units of work that all share the same
// underlying stores, so data written through one is visible through the
// next.
type MemoryUnitOfWorkFactory struct {
	checkpointRepo *MemoryCheckpointRepository
	unitRepo       *MemoryShipmentUnitRepository
}

// NewMemoryUnitOfWorkFactory creates a factory over the given stores.
func NewMemoryUnitOfWorkFactory(
	checkpointRepo *MemoryCheckpointRepository,
	unitRepo *MemoryShipmentUnitRepository,
) *MemoryUnitOfWorkFactory {
	return &MemoryUnitOfWorkFactory{
		checkpointRepo: checkpointRepo,
		unitRepo:       unitRepo,
	}
}

// Create returns a new unit of work over the shared stores.
func (f *MemoryUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &MemoryUnitOfWork{
		checkpointRepo: f.checkpointRepo,
		unitRepo:       f.unitRepo,
	}
}
