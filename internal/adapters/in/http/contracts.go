// Package http implements the inbound HTTP adapter for the tracking
// service. Request and response contracts live here; handlers translate
// between the JSON surface and the application use cases.
package http

import (
	"time"

	"tracking/internal/core/domain/model/unit"
)

// CreateUnitRequest is the body of POST /api/v1/units.
type CreateUnitRequest struct {
	TrackingID string `json:"trackingId"`
}

// RegisterCheckpointRequest is the body of POST /api/v1/checkpoints.
// Timestamp is optional; when omitted the event time defaults to now.
type RegisterCheckpointRequest struct {
	UnitID    string `json:"unitId"`
	Status    string `json:"status"`
	Timestamp string `json:"timestamp,omitempty"`
	Location  string `json:"location,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

// CheckpointView is the JSON representation of a checkpoint.
// Timestamps are serialized as ISO-8601 (RFC 3339) strings.
type CheckpointView struct {
	ID        string `json:"id"`
	UnitID    string `json:"unitId"`
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Location  string `json:"location,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

// ShipmentUnitView is the JSON representation of a shipment unit snapshot,
// including the full checkpoint history the aggregate carries. Together with
// CheckpointView it preserves every field of the aggregate, so a view can be
// restored back into the entity it was built from.
type ShipmentUnitView struct {
	ID          string           `json:"id"`
	TrackingID  string           `json:"trackingId"`
	Status      string           `json:"status"`
	Checkpoints []CheckpointView `json:"checkpoints"`
	CreatedAt   string           `json:"createdAt"`
	UpdatedAt   string           `json:"updatedAt"`
}

// RegisterCheckpointView is the payload of a successful checkpoint
// registration.
type RegisterCheckpointView struct {
	Checkpoint CheckpointView   `json:"checkpoint"`
	Unit       ShipmentUnitView `json:"unit"`
}

// TrackingHistoryView is the payload of GET /api/v1/tracking/:trackingId.
type TrackingHistoryView struct {
	Unit        ShipmentUnitView `json:"unit"`
	Checkpoints []CheckpointView `json:"checkpoints"`
	Total       int              `json:"total"`
}

// UnitListView is the payload of GET /api/v1/shipments.
type UnitListView struct {
	Units   []ShipmentUnitView `json:"units"`
	Total   int                `json:"total"`
	Limit   int                `json:"limit"`
	Offset  int                `json:"offset"`
	HasMore bool               `json:"hasMore"`
}

// SuccessEnvelope wraps every successful response body.
type SuccessEnvelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// ErrorEnvelope wraps every error response body.
type ErrorEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

func newCheckpointView(checkpoint *unit.Checkpoint) CheckpointView {
	return CheckpointView{
		ID:        checkpoint.ID().String(),
		UnitID:    checkpoint.UnitID().String(),
		Status:    checkpoint.Status().String(),
		Timestamp: checkpoint.Timestamp().Format(time.RFC3339Nano),
		Location:  checkpoint.Location(),
		Notes:     checkpoint.Notes(),
	}
}

func newShipmentUnitView(aggregate *unit.ShipmentUnit) ShipmentUnitView {
	checkpoints := make([]CheckpointView, 0, len(aggregate.Checkpoints()))
	for _, checkpoint := range aggregate.Checkpoints() {
		checkpoints = append(checkpoints, newCheckpointView(checkpoint))
	}

	return ShipmentUnitView{
		ID:          aggregate.ID().String(),
		TrackingID:  aggregate.TrackingID(),
		Status:      aggregate.Status().String(),
		Checkpoints: checkpoints,
		CreatedAt:   aggregate.CreatedAt().Format(time.RFC3339Nano),
		UpdatedAt:   aggregate.UpdatedAt().Format(time.RFC3339Nano),
	}
}
