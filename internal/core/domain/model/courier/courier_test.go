package courier_test

import (
	"testing"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPoint(t *testing.T) kernel.GeoPoint {
	t.Helper()
	point, err := kernel.NewGeoPoint(12.93, 77.61)
	require.NoError(t, err)
	return point
}

func TestNewCourier(t *testing.T) {
	t.Run("creates active courier", func(t *testing.T) {
		// Given
		id := kernel.NewUUID()
		location := testPoint(t)

		// When
		c, err := courier.NewCourier(id, "Asha", "asha@example.com", "+91900000001", location)

		// Then
		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.True(t, c.ID().IsEqual(id))
		assert.Equal(t, "Asha", c.Name())
		assert.Equal(t, "asha@example.com", c.Email())
		assert.Equal(t, "+91900000001", c.Mobile())
		assert.True(t, c.IsActive())
	})

	t.Run("rejects missing name", func(t *testing.T) {
		_, err := courier.NewCourier(kernel.NewUUID(), "", "a@example.com", "", testPoint(t))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects missing email", func(t *testing.T) {
		_, err := courier.NewCourier(kernel.NewUUID(), "Asha", "", "", testPoint(t))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects zero value location", func(t *testing.T) {
		var location kernel.GeoPoint

		_, err := courier.NewCourier(kernel.NewUUID(), "Asha", "a@example.com", "", location)

		require.Error(t, err)
	})

	t.Run("rejects zero value id", func(t *testing.T) {
		var id kernel.UUID

		_, err := courier.NewCourier(id, "Asha", "a@example.com", "", testPoint(t))

		require.Error(t, err)
	})
}

func TestRestoreCourier(t *testing.T) {
	t.Run("restores deactivated courier", func(t *testing.T) {
		c, err := courier.RestoreCourier(
			kernel.NewUUID(), "Ravi", "ravi@example.com", "+91900000002", testPoint(t), false)

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.False(t, c.IsActive())
	})
}

func TestCourier_MoveTo(t *testing.T) {
	t.Run("updates reported location", func(t *testing.T) {
		// Given
		c, err := courier.NewCourier(kernel.NewUUID(), "Asha", "a@example.com", "", testPoint(t))
		require.NoError(t, err)
		next, err := kernel.NewGeoPoint(12.95, 77.64)
		require.NoError(t, err)

		// When
		require.NoError(t, c.MoveTo(next))

		// Then
		equal, err := c.Location().IsEqual(next)
		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("deactivated courier cannot report", func(t *testing.T) {
		// Given
		c, err := courier.NewCourier(kernel.NewUUID(), "Asha", "a@example.com", "", testPoint(t))
		require.NoError(t, err)
		c.Deactivate()

		// When
		err = c.MoveTo(testPoint(t))

		// Then
		require.Error(t, err)
		assert.Equal(t, courier.ErrCourierIsDeactivated, err)
	})

	t.Run("rejects zero value location", func(t *testing.T) {
		c, err := courier.NewCourier(kernel.NewUUID(), "Asha", "a@example.com", "", testPoint(t))
		require.NoError(t, err)

		var invalid kernel.GeoPoint
		require.Error(t, c.MoveTo(invalid))
	})
}

func TestCourier_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var c courier.Courier

		err := c.Validate()

		require.Error(t, err)
		assert.Equal(t, courier.ErrCourierIsNotConstructed, err)
	})

	t.Run("nil pointer fails validation", func(t *testing.T) {
		var c *courier.Courier

		require.Error(t, c.Validate())
	})
}

func TestCourier_IsEqual(t *testing.T) {
	id := kernel.NewUUID()
	a, _ := courier.NewCourier(id, "Asha", "a@example.com", "", testPoint(t))
	b, _ := courier.RestoreCourier(id, "Different Name", "b@example.com", "", testPoint(t), false)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(nil))
}
