// Package queries contains read-only operations for retrieving tracking
// state. Implements the Query side of the CQRS architecture: queries never
// modify aggregates and go through the repository ports, so they are served
// identically by the in-memory and postgres storage drivers.
package queries

import (
	"errors"
	"strings"

	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

var ErrGetTrackingHistoryQueryIsNotConstructed = errors.New(
	"GetTrackingHistoryQuery must be created via NewGetTrackingHistoryQuery constructor",
)

// GetTrackingHistoryQuery retrieves a shipment unit and its complete
// checkpoint history by the external-facing tracking code.
//
// Example:
//
//	query, err := NewGetTrackingHistoryQuery("TRK-001")
//	if err != nil {
//	    return err
//	}
//
//	history, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get history: %w", err)
//	}
//	fmt.Printf("%s: %d events, currently %s\n",
//	    history.Unit.TrackingID(), history.Total, history.Unit.Status())
type GetTrackingHistoryQuery struct { //nolint:recvcheck //using for validation
	trackingID string

	guard guard.ConstructorGuard
}

// NewGetTrackingHistoryQuery creates a query for a unit's tracking history.
// Validates that the tracking ID is not blank.
func NewGetTrackingHistoryQuery(trackingID string) (GetTrackingHistoryQuery, error) {
	historyQuery := GetTrackingHistoryQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := historyQuery.setTrackingID(trackingID); err != nil {
		return GetTrackingHistoryQuery{}, err
	}

	return historyQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetTrackingHistoryQueryIsNotConstructed if validation fails.
func (q GetTrackingHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetTrackingHistoryQueryIsNotConstructed)
}

// TrackingID returns the external-facing tracking code being queried.
func (q GetTrackingHistoryQuery) TrackingID() string {
	return q.trackingID
}

func (q *GetTrackingHistoryQuery) setTrackingID(trackingID string) error {
	if strings.TrimSpace(trackingID) == "" {
		return errs.NewValueIsRequiredError("trackingId")
	}

	q.trackingID = trackingID
	return nil
}
