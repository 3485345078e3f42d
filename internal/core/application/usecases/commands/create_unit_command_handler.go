package commands

import (
	"context"

	"tracking/internal/core/domain/model/unit"
	"tracking/internal/pkg/errs"
)

// CreateUnitCommandHandler handles the business logic for registering new
// shipment units. Enforces tracking ID uniqueness before creating the
// aggregate in its initial status with an empty checkpoint history.
//
// Example:
//
//	handler := NewCreateUnitCommandHandler(uowFactory)
//	cmd, _ := NewCreateUnitCommand("TRK-001")
//
//	created, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrObjectAlreadyExists) {
//	    log.Println("tracking code already registered")
//	}
type CreateUnitCommandHandler struct {
	uowFactory UnitUoWFactory
}

// NewCreateUnitCommandHandler creates a handler for unit registration
// operations. Requires a UnitUoWFactory for transactional persistence.
func NewCreateUnitCommandHandler(uowFactory UnitUoWFactory) CreateUnitCommandHandler {
	return CreateUnitCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the unit registration command.
// Returns errs.ObjectAlreadyExistsError when the tracking ID is taken.
func (h CreateUnitCommandHandler) Handle(
	ctx context.Context, cmd CreateUnitCommand,
) (*unit.ShipmentUnit, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	unitRepo := uow.ShipmentUnitRepository()

	taken, err := unitRepo.Exists(ctx, cmd.TrackingID())
	if err != nil {
		return nil, errs.NewPersistenceFailedError("check tracking ID", err)
	}
	if taken {
		return nil, errs.NewObjectAlreadyExistsError("trackingId", cmd.TrackingID())
	}

	aggregate, err := unit.NewShipmentUnit(cmd.TrackingID())
	if err != nil {
		return nil, err
	}

	if err = unitRepo.Add(ctx, aggregate); err != nil {
		return nil, errs.NewPersistenceFailedError("save shipment unit", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, errs.NewPersistenceFailedError("commit transaction", err)
	}

	return aggregate, nil
}
