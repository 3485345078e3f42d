package unit

import (
	"fmt"

	"tracking/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment unit. It mirrors the
// status of the most recently applied checkpoint, or Created when no
// checkpoint has been applied yet.
//
// The enumeration is closed but deliberately transition-free: any status may
// follow any other, and neither Delivered nor Exception is terminal. Carriers
// routinely report observations out of order or re-scan a unit after a
// delivery exception, so tightening the sequence is left to a future policy
// in the application layer rather than the entity.
//
// Status is a value object that validates enumeration membership and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status of a shipment unit before any
	// checkpoint has been registered against it.
	Created

	// PickedUp indicates the unit has been collected from the shipper.
	PickedUp

	// InTransit indicates the unit is moving between facilities.
	InTransit

	// AtFacility indicates the unit is being processed at a sorting or
	// distribution facility.
	AtFacility

	// OutForDelivery indicates the unit is on a vehicle for final delivery.
	OutForDelivery

	// Delivered indicates the unit reached its recipient.
	Delivered

	// Exception indicates a delivery problem was observed (damage, failed
	// delivery attempt, customs hold). Units can recover from this status.
	Exception
)

// getStatusStrings returns a map of Status values to their string
// representations. All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "UNKNOWN",
		Created:        "CREATED",
		PickedUp:       "PICKED_UP",
		InTransit:      "IN_TRANSIT",
		AtFacility:     "AT_FACILITY",
		OutForDelivery: "OUT_FOR_DELIVERY",
		Delivered:      "DELIVERED",
		Exception:      "EXCEPTION",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:        "CREATED",
		PickedUp:       "PICKED_UP",
		InTransit:      "IN_TRANSIT",
		AtFacility:     "AT_FACILITY",
		OutForDelivery: "OUT_FOR_DELIVERY",
		Delivered:      "DELIVERED",
		Exception:      "EXCEPTION",
	}
}

// Validate checks if the Status value is a member of the closed enumeration.
// Unknown (0) and any other values are invalid.
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status ("CREATED", "PICKED_UP", ...).
// Returns "UNKNOWN" for invalid status values. Implements fmt.Stringer and
// is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// StatusFromString parses a wire name into a Status.
// Returns an error if the name does not match any valid status.
//
// Example:
//
//	status, err := unit.StatusFromString("IN_TRANSIT")
//	if err != nil {
//	    // not a member of the enumeration
//	}
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}
