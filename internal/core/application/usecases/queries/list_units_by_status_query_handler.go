package queries

import (
	"context"

	"tracking/internal/core/domain/model/unit"
	"tracking/internal/core/ports"
)

// ListUnitsByStatusResponse represents one page of a status listing.
// Total counts every matching unit regardless of pagination; HasMore
// reports whether another page follows this one.
type ListUnitsByStatusResponse struct {
	Units   []*unit.ShipmentUnit
	Total   int
	Limit   int
	Offset  int
	HasMore bool
}

// ListUnitsByStatusQueryHandler serves paginated status listings through
// the shipment unit repository port.
//
// Example:
//
//	handler := NewListUnitsByStatusQueryHandler(unitRepo)
//	query, _ := NewListUnitsByStatusQuery(unit.Delivered, 20, 0)
//
//	page, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	for page.HasMore {
//	    // fetch next page with offset += limit
//	}
type ListUnitsByStatusQueryHandler struct {
	unitRepo ports.ShipmentUnitRepository
}

// NewListUnitsByStatusQueryHandler creates a handler for status listing
// queries.
func NewListUnitsByStatusQueryHandler(unitRepo ports.ShipmentUnitRepository) ListUnitsByStatusQueryHandler {
	return ListUnitsByStatusQueryHandler{unitRepo: unitRepo}
}

// Handle executes the status listing query.
// An offset past the end of the result set yields an empty page, not an
// error.
func (h ListUnitsByStatusQueryHandler) Handle(
	ctx context.Context, query ListUnitsByStatusQuery,
) (ListUnitsByStatusResponse, error) {
	if err := query.Validate(); err != nil {
		return ListUnitsByStatusResponse{}, err
	}

	matching, err := h.unitRepo.GetAllByStatus(ctx, query.Status())
	if err != nil {
		return ListUnitsByStatusResponse{}, err
	}

	total := len(matching)

	start := query.Offset()
	if start > total {
		start = total
	}
	end := start + query.Limit()
	if end > total {
		end = total
	}

	return ListUnitsByStatusResponse{
		Units:   matching[start:end],
		Total:   total,
		Limit:   query.Limit(),
		Offset:  query.Offset(),
		HasMore: end < total,
	}, nil
}
