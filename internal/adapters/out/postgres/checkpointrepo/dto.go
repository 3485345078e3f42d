// Package checkpointrepo provides data transfer objects and mapping functions
// for checkpoint persistence. Checkpoints are immutable tracking events, so
// the repository is append-and-read: rows are never updated after insert.
package checkpointrepo

import (
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/unit"

	"github.com/google/uuid"
)

// CheckpointDTO represents the database structure for persisting checkpoints.
// The unit_id and timestamp columns are indexed because history reads always
// filter by unit and sort by event time.
type CheckpointDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UnitID    uuid.UUID `gorm:"type:uuid;index:idx_checkpoints_unit_time,priority:1"`
	Status    int
	Timestamp time.Time `gorm:"index:idx_checkpoints_unit_time,priority:2"`
	Location  string
	Notes     string
}

// TableName specifies the database table name for checkpoint entities.
func (CheckpointDTO) TableName() string {
	return "checkpoints"
}

// fromDomain converts a checkpoint entity to its database representation.
func fromDomain(checkpoint *unit.Checkpoint) CheckpointDTO {
	return CheckpointDTO{
		ID:        checkpoint.ID().Bytes(),
		UnitID:    checkpoint.UnitID().Bytes(),
		Status:    int(checkpoint.Status()),
		Timestamp: checkpoint.Timestamp(),
		Location:  checkpoint.Location(),
		Notes:     checkpoint.Notes(),
	}
}

// ToDomain converts a database DTO to a checkpoint entity using
// RestoreCheckpoint. Exported because the unit repository joins checkpoint
// rows in when rehydrating aggregates.
func ToDomain(dto CheckpointDTO) (*unit.Checkpoint, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	unitID, err := kernel.UUIDFromBytes(dto.UnitID[:])
	if err != nil {
		return nil, err
	}

	return unit.RestoreCheckpoint(
		id, unitID, unit.Status(dto.Status), dto.Timestamp.UTC(), dto.Location, dto.Notes)
}
