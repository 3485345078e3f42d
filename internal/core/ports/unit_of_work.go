package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and hands out repositories bound to the
// current transaction. Client code must explicitly manage the transaction
// lifecycle.
//
// The reference in-memory implementation is non-transactional: Begin, Commit
// and Rollback succeed without effect, and each repository write is atomic
// on its own but the pair is not jointly atomic. The postgres implementation
// provides real transactions.
type UnitOfWork interface {
	// Begin starts a new transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	Rollback(ctx context.Context) error

	// CheckpointRepository returns a CheckpointRepository bound to the
	// current transaction.
	CheckpointRepository() CheckpointRepository

	// ShipmentUnitRepository returns a ShipmentUnitRepository bound to
	// the current transaction.
	ShipmentUnitRepository() ShipmentUnitRepository
}
