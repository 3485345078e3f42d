// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"

	"tracking/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. These abstractions ensure data consistency across aggregate
// boundaries.
type (
	// TxManager handles transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// CheckpointRepoFactory provides access to the checkpoint repository
	// within a transaction.
	CheckpointRepoFactory interface {
		CheckpointRepository() ports.CheckpointRepository
	}

	// UnitRepoFactory provides access to the shipment unit repository
	// within a transaction.
	UnitRepoFactory interface {
		ShipmentUnitRepository() ports.ShipmentUnitRepository
	}

	// UnitUoW manages transactions for unit-only operations.
	// Used when commands only modify shipment unit aggregates.
	UnitUoW interface {
		TxManager
		UnitRepoFactory
	}

	// UnitUoWFactory creates new unit-only unit of work instances.
	UnitUoWFactory interface {
		Create() UnitUoW
	}

	// TrackingUoW manages transactions spanning checkpoints and shipment
	// units. Used by the checkpoint-registration workflow, which writes
	// both stores.
	TrackingUoW interface {
		TxManager
		CheckpointRepoFactory
		UnitRepoFactory
	}

	// TrackingUoWFactory creates new cross-store unit of work instances.
	TrackingUoWFactory interface {
		Create() TrackingUoW
	}
)
