package queries

import (
	"context"

	"tracking/internal/core/domain/model/unit"
	"tracking/internal/core/ports"
)

// GetTrackingHistoryResponse represents a unit's full tracking history.
// Checkpoints are sorted by timestamp ascending, oldest event first.
type GetTrackingHistoryResponse struct {
	Unit        *unit.ShipmentUnit
	Checkpoints []*unit.Checkpoint
	Total       int
}

// GetTrackingHistoryQueryHandler serves tracking history lookups.
// Resolves the unit by tracking code and loads its checkpoints through the
// repository ports.
//
// Example:
//
//	handler := NewGetTrackingHistoryQueryHandler(unitRepo, checkpointRepo)
//	query, _ := NewGetTrackingHistoryQuery("TRK-001")
//
//	history, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    log.Println("unknown tracking code")
//	}
type GetTrackingHistoryQueryHandler struct {
	unitRepo       ports.ShipmentUnitRepository
	checkpointRepo ports.CheckpointRepository
}

// NewGetTrackingHistoryQueryHandler creates a handler for tracking history
// queries.
func NewGetTrackingHistoryQueryHandler(
	unitRepo ports.ShipmentUnitRepository,
	checkpointRepo ports.CheckpointRepository,
) GetTrackingHistoryQueryHandler {
	return GetTrackingHistoryQueryHandler{
		unitRepo:       unitRepo,
		checkpointRepo: checkpointRepo,
	}
}

// Handle executes the tracking history query.
// Returns errs.ObjectNotFoundError when no unit carries the tracking code.
// A unit with no recorded events yields an empty checkpoint list, not an
// error.
func (h GetTrackingHistoryQueryHandler) Handle(
	ctx context.Context, query GetTrackingHistoryQuery,
) (GetTrackingHistoryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetTrackingHistoryResponse{}, err
	}

	aggregate, err := h.unitRepo.GetByTrackingID(ctx, query.TrackingID())
	if err != nil {
		return GetTrackingHistoryResponse{}, err
	}

	checkpoints, err := h.checkpointRepo.GetAllByUnitID(ctx, aggregate.ID())
	if err != nil {
		return GetTrackingHistoryResponse{}, err
	}

	return GetTrackingHistoryResponse{
		Unit:        aggregate,
		Checkpoints: checkpoints,
		Total:       len(checkpoints),
	}, nil
}
