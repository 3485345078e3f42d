package unit

import (
	"errors"
	"fmt"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"
)

// ErrCheckpointIsNotConstructed is returned when a Checkpoint instance was
// not created through NewCheckpoint or RestoreCheckpoint. This ensures all
// checkpoints are properly validated.
var ErrCheckpointIsNotConstructed = errors.New(
	"Checkpoint must be created via NewCheckpoint or RestoreCheckpoint constructor",
)

// Checkpoint is an immutable record of one status observation for a shipment
// unit. Once constructed it is never mutated; the aggregate accumulates
// checkpoints, it does not edit them.
//
// Checkpoint maintains these invariants:
//   - Must have a valid unique identifier (generated, never empty)
//   - Must reference an owning shipment unit
//   - Status must be a member of the closed enumeration
//   - Timestamp must not be strictly after the moment of creation
//
// Location and notes are optional free text and may be empty.
type Checkpoint struct {
	// id is the unique identifier for the checkpoint
	id kernel.UUID

	// unitID references the owning shipment unit
	unitID kernel.UUID

	// status is the observed lifecycle state
	status Status

	// timestamp is when the observation happened, stored in UTC
	timestamp time.Time

	// location is optional free text describing where the observation
	// was made
	location string

	// notes is optional free text attached by the reporting carrier
	notes string

	// isConstructed ensures the checkpoint was created via a constructor
	isConstructed bool
}

// NewCheckpoint creates a new Checkpoint with a freshly generated identifier.
// This is the only way to mint a checkpoint for a new observation.
//
// A zero timestamp means "now". A non-zero timestamp must not lie in the
// future relative to the moment of construction; backdated observations are
// legitimate (carriers report with delay), future-dated ones are not.
//
// Parameters:
//   - unitID: Identifier of the owning shipment unit (must be valid)
//   - status: Observed status (must be a valid enumeration member)
//   - timestamp: Observation time, or zero for "now"
//   - location: Optional free text
//   - notes: Optional free text
//
// Returns the checkpoint, or a validation error if any parameter is invalid.
func NewCheckpoint(
	unitID kernel.UUID,
	status Status,
	timestamp time.Time,
	location string,
	notes string,
) (*Checkpoint, error) {
	now := time.Now().UTC()
	if timestamp.IsZero() {
		timestamp = now
	}

	checkpoint := &Checkpoint{
		id:            kernel.NewUUID(),
		location:      location,
		notes:         notes,
		isConstructed: true,
	}

	if err := errors.Join(
		checkpoint.setUnitID(unitID),
		checkpoint.setStatus(status),
		checkpoint.setTimestamp(timestamp, now),
	); err != nil {
		return nil, err
	}

	return checkpoint, nil
}

// RestoreCheckpoint reconstructs a Checkpoint from persistent storage.
// Unlike NewCheckpoint it accepts the stored identifier and does not apply
// the future-timestamp rule against the current clock, since the record was
// valid when it was written.
func RestoreCheckpoint(
	id kernel.UUID,
	unitID kernel.UUID,
	status Status,
	timestamp time.Time,
	location string,
	notes string,
) (*Checkpoint, error) {
	checkpoint := &Checkpoint{
		location:      location,
		notes:         notes,
		isConstructed: true,
	}

	if err := errors.Join(
		checkpoint.setID(id),
		checkpoint.setUnitID(unitID),
		checkpoint.setStatus(status),
	); err != nil {
		return nil, err
	}

	if timestamp.IsZero() {
		return nil, errs.NewValueIsRequiredError("timestamp")
	}
	checkpoint.timestamp = timestamp.UTC()

	return checkpoint, nil
}

// Validate ensures the Checkpoint instance was properly constructed.
// Returns ErrCheckpointIsNotConstructed for nil or zero-value instances.
func (c *Checkpoint) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCheckpointIsNotConstructed
	}

	return nil
}

// IsEqual compares two checkpoints by their unique identifiers.
func (c *Checkpoint) IsEqual(other *Checkpoint) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the checkpoint's unique identifier.
func (c *Checkpoint) ID() kernel.UUID {
	return c.id
}

// UnitID returns the identifier of the owning shipment unit.
func (c *Checkpoint) UnitID() kernel.UUID {
	return c.unitID
}

// Status returns the observed status.
func (c *Checkpoint) Status() Status {
	return c.status
}

// Timestamp returns the observation time in UTC.
func (c *Checkpoint) Timestamp() time.Time {
	return c.timestamp
}

// Location returns the optional location text. Empty when not provided.
func (c *Checkpoint) Location() string {
	return c.location
}

// Notes returns the optional notes text. Empty when not provided.
func (c *Checkpoint) Notes() string {
	return c.notes
}

func (c *Checkpoint) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Checkpoint) setUnitID(unitID kernel.UUID) error {
	if err := unitID.Validate(); err != nil {
		return err
	}
	c.unitID = unitID
	return nil
}

func (c *Checkpoint) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}

func (c *Checkpoint) setTimestamp(timestamp, now time.Time) error {
	if timestamp.After(now) {
		return errs.NewValueIsInvalidErrorWithCause(
			"timestamp",
			fmt.Errorf("checkpoint timestamp %s cannot be in the future", timestamp.Format(time.RFC3339)),
		)
	}
	c.timestamp = timestamp.UTC()
	return nil
}
