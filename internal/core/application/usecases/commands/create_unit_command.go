package commands

import (
	"errors"
	"strings"

	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

var ErrCreateUnitCommandIsNotConstructed = errors.New(
	"CreateUnitCommand must be created via NewCreateUnitCommand constructor",
)

// CreateUnitCommand represents a request to register a new shipment unit
// under an external-facing tracking code.
//
// Example:
//
//	cmd, err := NewCreateUnitCommand("TRK-001")
//	if err != nil {
//	    return fmt.Errorf("invalid unit data: %w", err)
//	}
//
//	handler := NewCreateUnitCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create unit: %w", err)
//	}
//	fmt.Printf("Unit %s registered", created.ID())
type CreateUnitCommand struct { //nolint:recvcheck //using for validation
	trackingID string

	guard guard.ConstructorGuard
}

// NewCreateUnitCommand creates a command to register a new shipment unit.
// Validates that the tracking ID is not blank.
func NewCreateUnitCommand(trackingID string) (CreateUnitCommand, error) {
	unitCommand := CreateUnitCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := unitCommand.setTrackingID(trackingID); err != nil {
		return CreateUnitCommand{}, err
	}

	return unitCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateUnitCommandIsNotConstructed if validation fails.
func (c CreateUnitCommand) Validate() error {
	return c.guard.Validate(ErrCreateUnitCommandIsNotConstructed)
}

// TrackingID returns the external-facing tracking code for the unit.
func (c CreateUnitCommand) TrackingID() string {
	return c.trackingID
}

func (c *CreateUnitCommand) setTrackingID(trackingID string) error {
	if strings.TrimSpace(trackingID) == "" {
		return errs.NewValueIsRequiredError("trackingId")
	}

	c.trackingID = trackingID
	return nil
}
