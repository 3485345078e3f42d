package queries

import (
	"errors"

	"tracking/internal/core/domain/model/unit"
	"tracking/internal/pkg/guard"
)

var ErrListUnitsByStatusQueryIsNotConstructed = errors.New(
	"ListUnitsByStatusQuery must be created via NewListUnitsByStatusQuery constructor",
)

// Pagination bounds for status listings. Out-of-range client values are
// normalized rather than rejected.
const (
	DefaultPageLimit = 100
	MaxPageLimit     = 1000
)

// ListUnitsByStatusQuery retrieves a page of shipment units currently in a
// given status. Used by operational dashboards and the exception monitor.
//
// Example:
//
//	query, err := NewListUnitsByStatusQuery(unit.Exception, 50, 0)
//	if err != nil {
//	    return err
//	}
//
//	page, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list units: %w", err)
//	}
//	fmt.Printf("%d of %d units in exception\n", len(page.Units), page.Total)
type ListUnitsByStatusQuery struct { //nolint:recvcheck //using for validation
	status unit.Status
	limit  int
	offset int

	guard guard.ConstructorGuard
}

// NewListUnitsByStatusQuery creates a query for units in the given status.
// Validates the status; the limit is normalized to DefaultPageLimit when it
// is not positive or exceeds MaxPageLimit, and a negative offset is
// normalized to zero.
func NewListUnitsByStatusQuery(status unit.Status, limit, offset int) (ListUnitsByStatusQuery, error) {
	listQuery := ListUnitsByStatusQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := listQuery.setStatus(status); err != nil {
		return ListUnitsByStatusQuery{}, err
	}
	listQuery.setLimit(limit)
	listQuery.setOffset(offset)

	return listQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListUnitsByStatusQueryIsNotConstructed if validation fails.
func (q ListUnitsByStatusQuery) Validate() error {
	return q.guard.Validate(ErrListUnitsByStatusQueryIsNotConstructed)
}

// Status returns the shipment status being filtered on.
func (q ListUnitsByStatusQuery) Status() unit.Status {
	return q.status
}

// Limit returns the normalized page size.
func (q ListUnitsByStatusQuery) Limit() int {
	return q.limit
}

// Offset returns the normalized number of units to skip.
func (q ListUnitsByStatusQuery) Offset() int {
	return q.offset
}

func (q *ListUnitsByStatusQuery) setStatus(status unit.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	q.status = status
	return nil
}

func (q *ListUnitsByStatusQuery) setLimit(limit int) {
	if limit <= 0 || limit > MaxPageLimit {
		limit = DefaultPageLimit
	}

	q.limit = limit
}

func (q *ListUnitsByStatusQuery) setOffset(offset int) {
	if offset < 0 {
		offset = 0
	}

	q.offset = offset
}
