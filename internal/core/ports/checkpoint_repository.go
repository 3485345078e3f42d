// Package ports defines repository interfaces for the tracking domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/unit"
)

// CheckpointRepository defines the persistence contract for checkpoint
// entities. Checkpoints are immutable, so the contract is append-and-read:
// there is no update operation.
type CheckpointRepository interface {
	// Add persists a checkpoint. The operation is an upsert keyed by the
	// checkpoint's identifier and is idempotent on that identifier.
	Add(ctx context.Context, checkpoint *unit.Checkpoint) error

	// GetAllByUnitID retrieves every checkpoint belonging to the given
	// shipment unit, sorted by timestamp ascending regardless of
	// insertion order.
	GetAllByUnitID(ctx context.Context, unitID kernel.UUID) ([]*unit.Checkpoint, error)

	// Exists reports whether a checkpoint with the given identifier is
	// stored.
	Exists(ctx context.Context, id kernel.UUID) (bool, error)
}
