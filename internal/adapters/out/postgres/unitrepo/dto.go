// Package unitrepo provides data transfer objects and mapping functions for
// shipment unit persistence. Unit rows hold the aggregate snapshot; the
// checkpoint history lives in the checkpoints table and is joined in on
// read.
package unitrepo

import (
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/unit"

	"github.com/google/uuid"
)

// ShipmentUnitDTO represents the database structure for persisting shipment
// unit aggregates. The tracking_id column carries a unique index because it
// is the external-facing lookup key; status is indexed for listings.
type ShipmentUnitDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	TrackingID string    `gorm:"uniqueIndex"`
	Status     int       `gorm:"index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName specifies the database table name for shipment unit entities.
func (ShipmentUnitDTO) TableName() string {
	return "shipment_units"
}

// fromDomain converts a shipment unit aggregate to its database
// representation. Checkpoints are persisted separately.
func fromDomain(aggregate *unit.ShipmentUnit) ShipmentUnitDTO {
	return ShipmentUnitDTO{
		ID:         aggregate.ID().Bytes(),
		TrackingID: aggregate.TrackingID(),
		Status:     int(aggregate.Status()),
		CreatedAt:  aggregate.CreatedAt(),
		UpdatedAt:  aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO plus its checkpoint history to a
// shipment unit aggregate using RestoreShipmentUnit.
func toDomain(dto ShipmentUnitDTO, checkpoints []*unit.Checkpoint) (*unit.ShipmentUnit, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return unit.RestoreShipmentUnit(
		id, dto.TrackingID, unit.Status(dto.Status),
		dto.CreatedAt.UTC(), dto.UpdatedAt.UTC(), checkpoints)
}
