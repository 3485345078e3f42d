package unitrepo

import (
	"context"
	"errors"

	"tracking/internal/adapters/out/postgres/checkpointrepo"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/unit"
	"tracking/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormShipmentUnitRepository implements ShipmentUnitRepository using GORM.
type GormShipmentUnitRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormShipmentUnitRepository creates a new GORM shipment unit repository.
// The tracker may be nil when the repository is used outside a unit of work.
func NewGormShipmentUnitRepository(db *gorm.DB, tracker aggregateTracker) *GormShipmentUnitRepository {
	return &GormShipmentUnitRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new shipment unit to the database.
func (r *GormShipmentUnitRepository) Add(ctx context.Context, aggregate *unit.ShipmentUnit) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.track(aggregate)
	return nil
}

// Update saves an existing shipment unit to the database.
func (r *GormShipmentUnitRepository) Update(ctx context.Context, aggregate *unit.ShipmentUnit) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ShipmentUnitDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.track(aggregate)
	return nil
}

// GetByID retrieves a shipment unit by ID, rehydrated with its complete
// checkpoint history.
func (r *GormShipmentUnitRepository) GetByID(ctx context.Context, id kernel.UUID) (*unit.ShipmentUnit, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ShipmentUnitDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("unitId", id.String())
		}
		return nil, err
	}

	return r.rehydrate(ctx, dto)
}

// GetByTrackingID retrieves a shipment unit by its tracking code.
func (r *GormShipmentUnitRepository) GetByTrackingID(
	ctx context.Context, trackingID string,
) (*unit.ShipmentUnit, error) {
	var dto ShipmentUnitDTO
	if err := r.db.WithContext(ctx).First(&dto, "tracking_id = ?", trackingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("trackingId", trackingID)
		}
		return nil, err
	}

	return r.rehydrate(ctx, dto)
}

// GetAllByStatus retrieves all units currently in the given status, sorted
// by creation time ascending for stable pagination.
func (r *GormShipmentUnitRepository) GetAllByStatus(
	ctx context.Context, status unit.Status,
) ([]*unit.ShipmentUnit, error) {
	var dtos []ShipmentUnitDTO
	err := r.db.WithContext(ctx).
		Where("status = ?", int(status)).
		Order("created_at ASC, id ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	units := make([]*unit.ShipmentUnit, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, rehydrateErr := r.rehydrate(ctx, dto)
		if rehydrateErr != nil {
			return nil, rehydrateErr
		}
		units = append(units, aggregate)
	}

	return units, nil
}

// Exists reports whether a unit with the given tracking code is stored.
func (r *GormShipmentUnitRepository) Exists(ctx context.Context, trackingID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&ShipmentUnitDTO{}).
		Where("tracking_id = ?", trackingID).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *GormShipmentUnitRepository) rehydrate(
	ctx context.Context, dto ShipmentUnitDTO,
) (*unit.ShipmentUnit, error) {
	var checkpointDTOs []checkpointrepo.CheckpointDTO
	err := r.db.WithContext(ctx).
		Where("unit_id = ?", dto.ID).
		Order("timestamp ASC, id ASC").
		Find(&checkpointDTOs).Error
	if err != nil {
		return nil, err
	}

	checkpoints := make([]*unit.Checkpoint, 0, len(checkpointDTOs))
	for _, checkpointDTO := range checkpointDTOs {
		checkpoint, convErr := checkpointrepo.ToDomain(checkpointDTO)
		if convErr != nil {
			return nil, convErr
		}
		checkpoints = append(checkpoints, checkpoint)
	}

	return toDomain(dto, checkpoints)
}

func (r *GormShipmentUnitRepository) track(aggregate *unit.ShipmentUnit) {
	if r.tracker != nil {
		r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	}
}
