package unit

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"
)

// ErrShipmentUnitIsNotConstructed is returned when a ShipmentUnit instance
// was not created through NewShipmentUnit or RestoreShipmentUnit.
var ErrShipmentUnitIsNotConstructed = errors.New(
	"ShipmentUnit must be created via NewShipmentUnit or RestoreShipmentUnit constructor",
)

// ShipmentUnit is the aggregate root tracking one shipment's lifecycle.
// It exclusively owns its ordered checkpoint history: checkpoints are never
// shared between units, and the sequence order is the order of application.
//
// ShipmentUnit maintains these invariants:
//   - status always equals the status of the last applied checkpoint,
//     or Created when no checkpoint has been applied
//   - every checkpoint in the history references this unit's identifier
//   - updatedAt is never before createdAt and is refreshed on every
//     checkpoint application
//
// AddCheckpoint is the only mutator; everything else is read access.
type ShipmentUnit struct {
	// id is the unique identifier for the shipment unit
	id kernel.UUID

	// trackingID is the external-facing human tracking code, unique
	// across units
	trackingID string

	// status mirrors the most recently applied checkpoint
	status Status

	// createdAt is when the unit was registered
	createdAt time.Time

	// updatedAt is refreshed on every checkpoint application
	updatedAt time.Time

	// checkpoints is the ordered application history
	checkpoints []*Checkpoint

	// isConstructed ensures the unit was created via a constructor
	isConstructed bool
}

// NewShipmentUnit creates a new ShipmentUnit with a generated identifier,
// status Created, and an empty checkpoint history.
//
// Fails with a validation error if trackingID is empty or blank.
//
// Example:
//
//	u, err := unit.NewShipmentUnit("TRK-001")
//	if err != nil {
//	    // trackingID was blank
//	}
func NewShipmentUnit(trackingID string) (*ShipmentUnit, error) {
	now := time.Now().UTC()
	shipmentUnit := &ShipmentUnit{
		id:            kernel.NewUUID(),
		status:        Created,
		createdAt:     now,
		updatedAt:     now,
		checkpoints:   make([]*Checkpoint, 0),
		isConstructed: true,
	}

	if err := shipmentUnit.setTrackingID(trackingID); err != nil {
		return nil, err
	}

	return shipmentUnit, nil
}

// RestoreShipmentUnit reconstructs a ShipmentUnit from persistent storage.
// The checkpoint slice must already be in application order; every
// checkpoint must belong to the restored unit.
func RestoreShipmentUnit(
	id kernel.UUID,
	trackingID string,
	status Status,
	createdAt time.Time,
	updatedAt time.Time,
	checkpoints []*Checkpoint,
) (*ShipmentUnit, error) {
	shipmentUnit := &ShipmentUnit{
		isConstructed: true,
	}

	if err := errors.Join(
		shipmentUnit.setID(id),
		shipmentUnit.setTrackingID(trackingID),
		shipmentUnit.setStatus(status),
		shipmentUnit.setTimestamps(createdAt, updatedAt),
	); err != nil {
		return nil, err
	}

	shipmentUnit.checkpoints = make([]*Checkpoint, 0, len(checkpoints))
	for _, checkpoint := range checkpoints {
		if err := checkpoint.Validate(); err != nil {
			return nil, err
		}
		if !checkpoint.UnitID().IsEqual(id) {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"checkpoints",
				fmt.Errorf("checkpoint %s belongs to unit %s, not %s",
					checkpoint.ID(), checkpoint.UnitID(), id),
			)
		}
		shipmentUnit.checkpoints = append(shipmentUnit.checkpoints, checkpoint)
	}

	return shipmentUnit, nil
}

// Validate ensures the ShipmentUnit instance was properly constructed.
// Returns ErrShipmentUnitIsNotConstructed for nil or zero-value instances.
func (u *ShipmentUnit) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrShipmentUnitIsNotConstructed
	}

	return nil
}

// IsEqual compares two shipment units by their unique identifiers.
func (u *ShipmentUnit) IsEqual(other *ShipmentUnit) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// ID returns the unit's unique identifier.
func (u *ShipmentUnit) ID() kernel.UUID {
	return u.id
}

// TrackingID returns the external-facing tracking code.
func (u *ShipmentUnit) TrackingID() string {
	return u.trackingID
}

// Status returns the current status of the unit.
func (u *ShipmentUnit) Status() Status {
	return u.status
}

// CreatedAt returns when the unit was registered, in UTC.
func (u *ShipmentUnit) CreatedAt() time.Time {
	return u.createdAt
}

// UpdatedAt returns when the unit last changed, in UTC.
func (u *ShipmentUnit) UpdatedAt() time.Time {
	return u.updatedAt
}

// Checkpoints returns the checkpoint history in application order.
// The returned slice is a copy; mutating it does not affect the aggregate.
func (u *ShipmentUnit) Checkpoints() []*Checkpoint {
	history := make([]*Checkpoint, len(u.checkpoints))
	copy(history, u.checkpoints)
	return history
}

// LastCheckpoint returns the most recently applied checkpoint,
// or nil when the history is empty.
func (u *ShipmentUnit) LastCheckpoint() *Checkpoint {
	if len(u.checkpoints) == 0 {
		return nil
	}
	return u.checkpoints[len(u.checkpoints)-1]
}

// AddCheckpoint applies a checkpoint to the unit. This is the only mutator.
//
// The checkpoint must be properly constructed and must reference this unit's
// identifier; a mismatch fails with a validation error and leaves the unit
// untouched. On success the checkpoint is appended to the history, the
// unit's status mirrors the checkpoint's status, and updatedAt is refreshed.
//
// No transition graph is enforced: any status may follow any other,
// including observations after Delivered or Exception.
func (u *ShipmentUnit) AddCheckpoint(checkpoint *Checkpoint) error {
	if err := checkpoint.Validate(); err != nil {
		return err
	}

	if !checkpoint.UnitID().IsEqual(u.id) {
		return errs.NewValueIsInvalidErrorWithCause(
			"checkpoint",
			fmt.Errorf("checkpoint unit ID %s does not match shipment unit ID %s",
				checkpoint.UnitID(), u.id),
		)
	}

	u.checkpoints = append(u.checkpoints, checkpoint)
	u.status = checkpoint.Status()
	u.updatedAt = time.Now().UTC()
	return nil
}

// IsDelivered reports whether the unit's current status is Delivered.
func (u *ShipmentUnit) IsDelivered() bool {
	return u.status == Delivered
}

// HasException reports whether the unit's current status is Exception.
func (u *ShipmentUnit) HasException() bool {
	return u.status == Exception
}

// DeliveryTime returns the timestamp of the most recent Delivered
// checkpoint. The second return value is false when the unit has no
// Delivered checkpoint in its history.
func (u *ShipmentUnit) DeliveryTime() (time.Time, bool) {
	for i := len(u.checkpoints) - 1; i >= 0; i-- {
		if u.checkpoints[i].Status() == Delivered {
			return u.checkpoints[i].Timestamp(), true
		}
	}
	return time.Time{}, false
}

func (u *ShipmentUnit) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *ShipmentUnit) setTrackingID(trackingID string) error {
	if strings.TrimSpace(trackingID) == "" {
		return errs.NewValueIsRequiredError("trackingId")
	}
	u.trackingID = trackingID
	return nil
}

func (u *ShipmentUnit) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	u.status = status
	return nil
}

func (u *ShipmentUnit) setTimestamps(createdAt, updatedAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	if updatedAt.IsZero() {
		return errs.NewValueIsRequiredError("updatedAt")
	}
	if updatedAt.Before(createdAt) {
		return errs.NewValueIsInvalidErrorWithCause(
			"updatedAt",
			fmt.Errorf("updatedAt %s is before createdAt %s",
				updatedAt.Format(time.RFC3339), createdAt.Format(time.RFC3339)),
		)
	}
	u.createdAt = createdAt.UTC()
	u.updatedAt = updatedAt.UTC()
	return nil
}
