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

func TestNewShipmentUnit(t *testing.T) {
	t.Run("should create unit in Created status with empty history", func(t *testing.T) {
		u, err := unit.NewShipmentUnit("TRK-001")

		require.NoError(t, err)
		require.NoError(t, u.Validate())
		require.NoError(t, u.ID().Validate())
		assert.Equal(t, "TRK-001", u.TrackingID())
		assert.Equal(t, unit.Created, u.Status())
		assert.Empty(t, u.Checkpoints())
		assert.Nil(t, u.LastCheckpoint())
		assert.True(t, u.CreatedAt().Equal(u.UpdatedAt()))
	})

	t.Run("should fail with empty tracking ID", func(t *testing.T) {
		u, err := unit.NewShipmentUnit("")

		require.Error(t, err)
		assert.Nil(t, u)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with blank tracking ID", func(t *testing.T) {
		u, err := unit.NewShipmentUnit("   \t ")

		require.Error(t, err)
		assert.Nil(t, u)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestShipmentUnit_AddCheckpoint(t *testing.T) {
	t.Run("should append, mirror status, and refresh updatedAt", func(t *testing.T) {
		u, err := unit.NewShipmentUnit("TRK-001")
		require.NoError(t, err)
		updatedBefore := u.UpdatedAt()

		cp, err := unit.NewCheckpoint(u.ID(), unit.PickedUp, time.Time{}, "Warehouse A", "")
		require.NoError(t, err)

		require.NoError(t, u.AddCheckpoint(cp))

		assert.Equal(t, unit.PickedUp, u.Status())
		require.Len(t, u.Checkpoints(), 1)
		assert.True(t, u.LastCheckpoint().IsEqual(cp))
		assert.False(t, u.UpdatedAt().Before(updatedBefore))
		assert.False(t, u.UpdatedAt().Before(u.CreatedAt()))
	})

	t.Run("should reject checkpoint owned by another unit", func(t *testing.T) {
		u, err := unit.NewShipmentUnit("TRK-001")
		require.NoError(t, err)

		foreign, err := unit.NewCheckpoint(kernel.NewUUID(), unit.PickedUp, time.Time{}, "", "")
		require.NoError(t, err)

		err = u.AddCheckpoint(foreign)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "does not match shipment unit ID")
		assert.Empty(t, u.Checkpoints())
		assert.Equal(t, unit.Created, u.Status())
	})

	t.Run("ownership check holds for every call, not just the first", func(t *testing.T) {
		u, err := unit.NewShipmentUnit("TRK-001")
		require.NoError(t, err)

		own, err := unit.NewCheckpoint(u.ID(), unit.PickedUp, time.Time{}, "", "")
		require.NoError(t, err)
		require.NoError(t, u.AddCheckpoint(own))

		foreign, err := unit.NewCheckpoint(kernel.NewUUID(), unit.InTransit, time.Time{}, "", "")
		require.NoError(t, err)

		require.Error(t, u.AddCheckpoint(foreign))
		assert.Len(t, u.Checkpoints(), 1)
		assert.Equal(t, unit.PickedUp, u.Status())
	})

	t.Run("should reject nil and zero-value checkpoints", func(t *testing.T) {
		u, err := unit.NewShipmentUnit("TRK-001")
		require.NoError(t, err)

		require.Error(t, u.AddCheckpoint(nil))
		require.Error(t, u.AddCheckpoint(&unit.Checkpoint{}))
	})

	t.Run("allows any status to follow any other", func(t *testing.T) {
		u, err := unit.NewShipmentUnit("TRK-001")
		require.NoError(t, err)

		sequence := []unit.Status{unit.Delivered, unit.Exception, unit.PickedUp, unit.Delivered}
		for _, s := range sequence {
			cp, cpErr := unit.NewCheckpoint(u.ID(), s, time.Time{}, "", "")
			require.NoError(t, cpErr)
			require.NoError(t, u.AddCheckpoint(cp))
			assert.Equal(t, s, u.Status())
		}

		assert.Len(t, u.Checkpoints(), len(sequence))
	})

	t.Run("history copy does not expose internal slice", func(t *testing.T) {
		u, err := unit.NewShipmentUnit("TRK-001")
		require.NoError(t, err)

		cp, err := unit.NewCheckpoint(u.ID(), unit.PickedUp, time.Time{}, "", "")
		require.NoError(t, err)
		require.NoError(t, u.AddCheckpoint(cp))

		history := u.Checkpoints()
		history[0] = nil

		require.NotNil(t, u.Checkpoints()[0])
	})
}

func TestShipmentUnit_StatusPredicates(t *testing.T) {
	u, err := unit.NewShipmentUnit("TRK-001")
	require.NoError(t, err)

	assert.False(t, u.IsDelivered())
	assert.False(t, u.HasException())
	_, found := u.DeliveryTime()
	assert.False(t, found)

	deliveredAt := time.Now().UTC().Add(-time.Minute)
	cp, err := unit.NewCheckpoint(u.ID(), unit.Delivered, deliveredAt, "", "")
	require.NoError(t, err)
	require.NoError(t, u.AddCheckpoint(cp))

	assert.True(t, u.IsDelivered())
	assert.False(t, u.HasException())

	got, found := u.DeliveryTime()
	require.True(t, found)
	assert.True(t, got.Equal(deliveredAt))
}

func TestRestoreShipmentUnit(t *testing.T) {
	t.Run("should restore unit with its history", func(t *testing.T) {
		id := kernel.NewUUID()
		createdAt := time.Now().UTC().Add(-48 * time.Hour)
		updatedAt := createdAt.Add(time.Hour)

		cp, err := unit.RestoreCheckpoint(kernel.NewUUID(), id, unit.PickedUp, updatedAt, "", "")
		require.NoError(t, err)

		u, err := unit.RestoreShipmentUnit(id, "TRK-002", unit.PickedUp, createdAt, updatedAt, []*unit.Checkpoint{cp})

		require.NoError(t, err)
		assert.True(t, u.ID().IsEqual(id))
		assert.Equal(t, "TRK-002", u.TrackingID())
		assert.Equal(t, unit.PickedUp, u.Status())
		require.Len(t, u.Checkpoints(), 1)
		assert.True(t, u.LastCheckpoint().IsEqual(cp))
	})

	t.Run("should reject history containing foreign checkpoints", func(t *testing.T) {
		id := kernel.NewUUID()
		now := time.Now().UTC()

		foreign, err := unit.RestoreCheckpoint(kernel.NewUUID(), kernel.NewUUID(), unit.PickedUp, now, "", "")
		require.NoError(t, err)

		u, err := unit.RestoreShipmentUnit(id, "TRK-003", unit.PickedUp, now, now, []*unit.Checkpoint{foreign})

		require.Error(t, err)
		assert.Nil(t, u)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject updatedAt before createdAt", func(t *testing.T) {
		now := time.Now().UTC()

		u, err := unit.RestoreShipmentUnit(kernel.NewUUID(), "TRK-004", unit.Created, now, now.Add(-time.Hour), nil)

		require.Error(t, err)
		assert.Nil(t, u)
	})
}

func TestShipmentUnit_Validate(t *testing.T) {
	t.Run("should fail validation for nil unit", func(t *testing.T) {
		var u *unit.ShipmentUnit

		err := u.Validate()

		require.Error(t, err)
		assert.Equal(t, unit.ErrShipmentUnitIsNotConstructed, err)
	})

	t.Run("should fail validation for zero-value unit", func(t *testing.T) {
		u := &unit.ShipmentUnit{}

		err := u.Validate()

		require.Error(t, err)
		assert.Equal(t, unit.ErrShipmentUnitIsNotConstructed, err)
	})
}
