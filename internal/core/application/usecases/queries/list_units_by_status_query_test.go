package queries_test

import (
	"testing"

	"tracking/internal/core/application/usecases/queries"
	"tracking/internal/core/domain/model/unit"
	"tracking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListUnitsByStatusQuery_ValidInput(t *testing.T) {
	query, err := queries.NewListUnitsByStatusQuery(unit.Exception, 50, 10)
	require.NoError(t, err)
	assert.Equal(t, unit.Exception, query.Status())
	assert.Equal(t, 50, query.Limit())
	assert.Equal(t, 10, query.Offset())
}

func TestNewListUnitsByStatusQuery_InvalidStatus(t *testing.T) {
	_, err := queries.NewListUnitsByStatusQuery(unit.Status(99), 50, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = queries.NewListUnitsByStatusQuery(unit.Unknown, 50, 0)
	require.Error(t, err)
}

func TestNewListUnitsByStatusQuery_NormalizesLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"zero limit falls back to default", 0, queries.DefaultPageLimit},
		{"negative limit falls back to default", -5, queries.DefaultPageLimit},
		{"oversized limit falls back to default", queries.MaxPageLimit + 1, queries.DefaultPageLimit},
		{"max limit is kept", queries.MaxPageLimit, queries.MaxPageLimit},
		{"ordinary limit is kept", 25, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, err := queries.NewListUnitsByStatusQuery(unit.Created, tt.limit, 0)
			require.NoError(t, err)
			assert.Equal(t, tt.want, query.Limit())
		})
	}
}

func TestNewListUnitsByStatusQuery_NormalizesOffset(t *testing.T) {
	query, err := queries.NewListUnitsByStatusQuery(unit.Created, 10, -3)
	require.NoError(t, err)
	assert.Equal(t, 0, query.Offset())
}

func TestListUnitsByStatusQuery_Validate(t *testing.T) {
	var query queries.ListUnitsByStatusQuery
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrListUnitsByStatusQueryIsNotConstructed)
}
