package ports

import (
	"context"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/unit"
)

// ShipmentUnitRepository defines the persistence contract for shipment unit
// aggregates. Lookups by identifier are the primary access path; trackingID
// and status lookups are secondary and callers must not assume they are
// indexed.
//
// Get methods return errs.ObjectNotFoundError when no matching unit exists.
type ShipmentUnitRepository interface {
	// Add persists a new shipment unit aggregate.
	Add(ctx context.Context, aggregate *unit.ShipmentUnit) error

	// Update persists changes to an existing shipment unit aggregate.
	Update(ctx context.Context, aggregate *unit.ShipmentUnit) error

	// GetByID retrieves a unit aggregate by its unique identifier,
	// rehydrated with its complete checkpoint history.
	GetByID(ctx context.Context, id kernel.UUID) (*unit.ShipmentUnit, error)

	// GetByTrackingID retrieves a unit aggregate by its external-facing
	// tracking code.
	GetByTrackingID(ctx context.Context, trackingID string) (*unit.ShipmentUnit, error)

	// GetAllByStatus retrieves all units currently in the given status.
	GetAllByStatus(ctx context.Context, status unit.Status) ([]*unit.ShipmentUnit, error)

	// Exists reports whether a unit with the given tracking code is
	// stored.
	Exists(ctx context.Context, trackingID string) (bool, error)
}
