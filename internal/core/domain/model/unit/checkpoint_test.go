package unit_test

import (
	"testing"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/unit"
	"tracking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCheckpoint(t *testing.T) {
	validUnitID := kernel.NewUUID()

	t.Run("should create valid checkpoint with all parameters", func(t *testing.T) {
		timestamp := time.Now().UTC().Add(-time.Hour)

		cp, err := unit.NewCheckpoint(validUnitID, unit.InTransit, timestamp, "Hub Bogota", "left facility")

		require.NoError(t, err)
		require.NoError(t, cp.Validate())
		require.NoError(t, cp.ID().Validate())
		assert.True(t, cp.UnitID().IsEqual(validUnitID))
		assert.Equal(t, unit.InTransit, cp.Status())
		assert.True(t, cp.Timestamp().Equal(timestamp))
		assert.Equal(t, "Hub Bogota", cp.Location())
		assert.Equal(t, "left facility", cp.Notes())
	})

	t.Run("should default zero timestamp to now", func(t *testing.T) {
		before := time.Now().UTC()

		cp, err := unit.NewCheckpoint(validUnitID, unit.PickedUp, time.Time{}, "", "")

		require.NoError(t, err)
		assert.False(t, cp.Timestamp().Before(before))
		assert.False(t, cp.Timestamp().After(time.Now().UTC()))
	})

	t.Run("should generate unique identifiers", func(t *testing.T) {
		cp1, err := unit.NewCheckpoint(validUnitID, unit.PickedUp, time.Time{}, "", "")
		require.NoError(t, err)
		cp2, err := unit.NewCheckpoint(validUnitID, unit.PickedUp, time.Time{}, "", "")
		require.NoError(t, err)

		assert.False(t, cp1.IsEqual(cp2))
	})

	t.Run("should fail with future timestamp", func(t *testing.T) {
		future := time.Now().UTC().Add(time.Hour)

		cp, err := unit.NewCheckpoint(validUnitID, unit.Delivered, future, "", "")

		require.Error(t, err)
		assert.Nil(t, cp)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "cannot be in the future")
	})

	t.Run("should fail with invalid unit ID", func(t *testing.T) {
		var invalidID kernel.UUID

		cp, err := unit.NewCheckpoint(invalidID, unit.PickedUp, time.Time{}, "", "")

		require.Error(t, err)
		assert.Nil(t, cp)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with status outside enumeration", func(t *testing.T) {
		cp, err := unit.NewCheckpoint(validUnitID, unit.Status(42), time.Time{}, "", "")

		require.Error(t, err)
		assert.Nil(t, cp)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail with unknown status", func(t *testing.T) {
		cp, err := unit.NewCheckpoint(validUnitID, unit.Unknown, time.Time{}, "", "")

		require.Error(t, err)
		assert.Nil(t, cp)
	})

	t.Run("should join multiple validation errors", func(t *testing.T) {
		var invalidID kernel.UUID

		cp, err := unit.NewCheckpoint(invalidID, unit.Unknown, time.Time{}, "", "")

		require.Error(t, err)
		assert.Nil(t, cp)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "status")
	})
}

func TestRestoreCheckpoint(t *testing.T) {
	id := kernel.NewUUID()
	unitID := kernel.NewUUID()

	t.Run("should restore checkpoint from stored fields", func(t *testing.T) {
		timestamp := time.Now().UTC().Add(-24 * time.Hour)

		cp, err := unit.RestoreCheckpoint(id, unitID, unit.AtFacility, timestamp, "Medellin", "")

		require.NoError(t, err)
		assert.True(t, cp.ID().IsEqual(id))
		assert.True(t, cp.UnitID().IsEqual(unitID))
		assert.Equal(t, unit.AtFacility, cp.Status())
		assert.True(t, cp.Timestamp().Equal(timestamp))
	})

	t.Run("should fail with zero timestamp", func(t *testing.T) {
		cp, err := unit.RestoreCheckpoint(id, unitID, unit.AtFacility, time.Time{}, "", "")

		require.Error(t, err)
		assert.Nil(t, cp)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with invalid id", func(t *testing.T) {
		var invalidID kernel.UUID

		cp, err := unit.RestoreCheckpoint(invalidID, unitID, unit.AtFacility, time.Now(), "", "")

		require.Error(t, err)
		assert.Nil(t, cp)
	})
}

func TestCheckpoint_Validate(t *testing.T) {
	t.Run("should fail validation for nil checkpoint", func(t *testing.T) {
		var cp *unit.Checkpoint

		err := cp.Validate()

		require.Error(t, err)
		assert.Equal(t, unit.ErrCheckpointIsNotConstructed, err)
	})

	t.Run("should fail validation for zero-value checkpoint", func(t *testing.T) {
		cp := &unit.Checkpoint{}

		err := cp.Validate()

		require.Error(t, err)
		assert.Equal(t, unit.ErrCheckpointIsNotConstructed, err)
	})
}
