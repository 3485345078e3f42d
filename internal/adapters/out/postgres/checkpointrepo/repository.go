package checkpointrepo

import (
	"context"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/unit"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCheckpointRepository implements CheckpointRepository using GORM.
type GormCheckpointRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCheckpointRepository creates a new GORM checkpoint repository.
// The tracker may be nil when the repository is used outside a unit of work.
func NewGormCheckpointRepository(db *gorm.DB, tracker aggregateTracker) *GormCheckpointRepository {
	return &GormCheckpointRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a checkpoint to the database. A conflict on the primary key is
// ignored, which makes retried registrations of the same checkpoint
// harmless.
func (r *GormCheckpointRepository) Add(ctx context.Context, checkpoint *unit.Checkpoint) error {
	if err := checkpoint.Validate(); err != nil {
		return err
	}

	dto := fromDomain(checkpoint)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).
		Create(&dto).Error
	if err != nil {
		return err
	}

	if r.tracker != nil {
		r.tracker.TrackAggregate(checkpoint.ID(), checkpoint)
	}
	return nil
}

// GetAllByUnitID retrieves every checkpoint of the given unit sorted by
// timestamp ascending, with the identifier breaking ties.
func (r *GormCheckpointRepository) GetAllByUnitID(
	ctx context.Context, unitID kernel.UUID,
) ([]*unit.Checkpoint, error) {
	if err := unitID.Validate(); err != nil {
		return nil, err
	}

	var dtos []CheckpointDTO
	err := r.db.WithContext(ctx).
		Where("unit_id = ?", unitID.Bytes()).
		Order("timestamp ASC, id ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	checkpoints := make([]*unit.Checkpoint, 0, len(dtos))
	for _, dto := range dtos {
		checkpoint, convErr := ToDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		checkpoints = append(checkpoints, checkpoint)
	}

	return checkpoints, nil
}

// Exists reports whether a checkpoint with the given identifier is stored.
func (r *GormCheckpointRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&CheckpointDTO{}).
		Where("id = ?", id.Bytes()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
