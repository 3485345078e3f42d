package commands

import (
	"context"

	"tracking/internal/core/domain/model/unit"
	"tracking/internal/pkg/errs"
)

// RegisterCheckpointResponse carries the outcome of a checkpoint
// registration: the checkpoint that now represents the unit's latest state
// and the unit itself after the update. On an idempotent replay the
// checkpoint is the previously stored one, not a new record.
type RegisterCheckpointResponse struct {
	Checkpoint *unit.Checkpoint
	Unit       *unit.ShipmentUnit
}

// RegisterCheckpointCommandHandler handles the business logic for recording
// tracking events. Loads the shipment unit, applies the checkpoint to the
// aggregate and persists both within a single transaction.
//
// Example:
//
//	handler := NewRegisterCheckpointCommandHandler(uowFactory)
//	cmd, _ := NewRegisterCheckpointCommand(unitID, unit.Delivered,
//	    time.Time{}, "Front door", "Left with neighbor", key)
//
//	resp, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    log.Printf("unknown unit %s", unitID)
//	case err != nil:
//	    log.Printf("registration failed: %v", err)
//	default:
//	    log.Printf("unit %s is now %s", resp.Unit.TrackingID(), resp.Unit.Status())
//	}
type RegisterCheckpointCommandHandler struct {
	uowFactory TrackingUoWFactory
}

// NewRegisterCheckpointCommandHandler creates a handler for checkpoint
// registration operations. Requires a TrackingUoWFactory because the
// workflow writes both the checkpoint store and the unit store.
func NewRegisterCheckpointCommandHandler(uowFactory TrackingUoWFactory) RegisterCheckpointCommandHandler {
	return RegisterCheckpointCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the checkpoint registration command.
// Returns errs.ObjectNotFoundError when the unit does not exist.
//
// When the command carries an idempotency key and the unit's latest
// checkpoint already has the requested status, the call is treated as a
// retry: the stored checkpoint is returned and nothing is persisted. The
// key value itself does not participate in the comparison, so two distinct
// requests for the same status are collapsed into one event.
func (h RegisterCheckpointCommandHandler) Handle(
	ctx context.Context, cmd RegisterCheckpointCommand,
) (RegisterCheckpointResponse, error) {
	if err := cmd.Validate(); err != nil {
		return RegisterCheckpointResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return RegisterCheckpointResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	unitRepo := uow.ShipmentUnitRepository()
	checkpointRepo := uow.CheckpointRepository()

	aggregate, err := unitRepo.GetByID(ctx, cmd.UnitID())
	if err != nil {
		return RegisterCheckpointResponse{}, err
	}

	if cmd.IdempotencyKey() != "" {
		if last := aggregate.LastCheckpoint(); last != nil && last.Status() == cmd.Status() {
			return RegisterCheckpointResponse{Checkpoint: last, Unit: aggregate}, nil
		}
	}

	checkpoint, err := unit.NewCheckpoint(
		aggregate.ID(), cmd.Status(), cmd.Timestamp(), cmd.Location(), cmd.Notes())
	if err != nil {
		return RegisterCheckpointResponse{}, err
	}

	if err = aggregate.AddCheckpoint(checkpoint); err != nil {
		return RegisterCheckpointResponse{}, err
	}

	if err = checkpointRepo.Add(ctx, checkpoint); err != nil {
		return RegisterCheckpointResponse{}, errs.NewPersistenceFailedError("save checkpoint", err)
	}

	if err = unitRepo.Update(ctx, aggregate); err != nil {
		return RegisterCheckpointResponse{}, errs.NewPersistenceFailedError("save shipment unit", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return RegisterCheckpointResponse{}, errs.NewPersistenceFailedError("commit transaction", err)
	}

	return RegisterCheckpointResponse{Checkpoint: checkpoint, Unit: aggregate}, nil
}
