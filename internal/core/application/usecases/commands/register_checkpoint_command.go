package commands

import (
	"errors"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/unit"
	"tracking/internal/pkg/guard"
)

var ErrRegisterCheckpointCommandIsNotConstructed = errors.New(
	"RegisterCheckpointCommand must be created via NewRegisterCheckpointCommand constructor",
)

// RegisterCheckpointCommand represents a request to record a tracking event
// against a shipment unit. Encapsulates the scan details reported by a
// carrier facility: the new status, when it happened and where.
//
// The timestamp is optional; a zero value means "now". The idempotency key
// is optional and carries whatever the client sent in the Idempotency-Key
// header.
//
// Example:
//
//	cmd, err := NewRegisterCheckpointCommand(unitID, unit.PickedUp,
//	    time.Time{}, "Warehouse A", "", "")
//	if err != nil {
//	    return fmt.Errorf("invalid checkpoint data: %w", err)
//	}
//
//	handler := NewRegisterCheckpointCommandHandler(uowFactory)
//	resp, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to register checkpoint: %w", err)
//	}
//	fmt.Printf("Unit %s is now %s", resp.Unit.TrackingID(), resp.Unit.Status())
type RegisterCheckpointCommand struct { //nolint:recvcheck //using for validation
	unitID         kernel.UUID
	status         unit.Status
	timestamp      time.Time
	location       string
	notes          string
	idempotencyKey string

	guard guard.ConstructorGuard
}

// NewRegisterCheckpointCommand creates a command to record a tracking event.
// Validates that the unit ID and status are valid. The timestamp, location,
// notes and idempotency key are passed through as-is; the domain layer
// enforces the timestamp constraints.
func NewRegisterCheckpointCommand(
	unitID kernel.UUID,
	status unit.Status,
	timestamp time.Time,
	location string,
	notes string,
	idempotencyKey string,
) (RegisterCheckpointCommand, error) {
	checkpointCommand := RegisterCheckpointCommand{
		timestamp:      timestamp,
		location:       location,
		notes:          notes,
		idempotencyKey: idempotencyKey,

		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		checkpointCommand.setUnitID(unitID),
		checkpointCommand.setStatus(status),
	); err != nil {
		return RegisterCheckpointCommand{}, err
	}

	return checkpointCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRegisterCheckpointCommandIsNotConstructed if validation fails.
func (c RegisterCheckpointCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCheckpointCommandIsNotConstructed)
}

// UnitID returns the identifier of the shipment unit being tracked.
func (c RegisterCheckpointCommand) UnitID() kernel.UUID {
	return c.unitID
}

// Status returns the shipment status reported by the tracking event.
func (c RegisterCheckpointCommand) Status() unit.Status {
	return c.status
}

// Timestamp returns when the tracking event occurred.
// A zero value means the event time was not supplied.
func (c RegisterCheckpointCommand) Timestamp() time.Time {
	return c.timestamp
}

// Location returns the free-form facility or place of the event.
func (c RegisterCheckpointCommand) Location() string {
	return c.location
}

// Notes returns the free-form annotation attached to the event.
func (c RegisterCheckpointCommand) Notes() string {
	return c.notes
}

// IdempotencyKey returns the client-supplied retry deduplication key.
// Empty when the client did not send one.
func (c RegisterCheckpointCommand) IdempotencyKey() string {
	return c.idempotencyKey
}

func (c *RegisterCheckpointCommand) setUnitID(unitID kernel.UUID) error {
	if err := unitID.Validate(); err != nil {
		return err
	}

	c.unitID = unitID
	return nil
}

func (c *RegisterCheckpointCommand) setStatus(status unit.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
