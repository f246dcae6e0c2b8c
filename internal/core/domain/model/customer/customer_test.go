package customer_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/customer"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCustomer(t *testing.T) *customer.Customer {
	t.Helper()
	c, err := customer.NewCustomer(kernel.NewUUID(), "Meera", "meera@example.com", "+91900000010")
	require.NoError(t, err)
	return c
}

func TestNewCustomer(t *testing.T) {
	t.Run("creates customer without delivery code", func(t *testing.T) {
		// Given
		id := kernel.NewUUID()

		// When
		c, err := customer.NewCustomer(id, "Meera", "meera@example.com", "+91900000010")

		// Then
		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.True(t, c.ID().IsEqual(id))
		assert.Equal(t, "Meera", c.Name())
		assert.Equal(t, "meera@example.com", c.Email())
		assert.Nil(t, c.DeliveryCode())
	})

	t.Run("rejects missing name", func(t *testing.T) {
		_, err := customer.NewCustomer(kernel.NewUUID(), "", "m@example.com", "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects missing email", func(t *testing.T) {
		_, err := customer.NewCustomer(kernel.NewUUID(), "Meera", "", "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects zero value id", func(t *testing.T) {
		var id kernel.UUID

		_, err := customer.NewCustomer(id, "Meera", "m@example.com", "")

		require.Error(t, err)
	})
}

func TestRestoreCustomer(t *testing.T) {
	t.Run("restores outstanding delivery code", func(t *testing.T) {
		// Given
		code, err := customer.NewDeliveryCode("1234", time.Now().Add(10*time.Minute))
		require.NoError(t, err)

		// When
		c, err := customer.RestoreCustomer(kernel.NewUUID(), "Meera", "m@example.com", "", &code)

		// Then
		require.NoError(t, err)
		require.NotNil(t, c.DeliveryCode())
		assert.Equal(t, "1234", c.DeliveryCode().Code())
	})

	t.Run("rejects zero value delivery code", func(t *testing.T) {
		var code customer.DeliveryCode

		_, err := customer.RestoreCustomer(kernel.NewUUID(), "Meera", "m@example.com", "", &code)

		require.Error(t, err)
		assert.Equal(t, customer.ErrDeliveryCodeIsNotConstructed, err)
	})
}

func TestCustomer_VerifyDeliveryCode(t *testing.T) {
	issuedAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("matching code within window verifies", func(t *testing.T) {
		// Given
		c := newCustomer(t)
		require.NoError(t, c.IssueDeliveryCode("4821", issuedAt.Add(10*time.Minute)))

		// When
		err := c.VerifyDeliveryCode("4821", issuedAt.Add(5*time.Minute))

		// Then
		require.NoError(t, err)
	})

	t.Run("wrong code is rejected and not consumed", func(t *testing.T) {
		// Given
		c := newCustomer(t)
		require.NoError(t, c.IssueDeliveryCode("4821", issuedAt.Add(10*time.Minute)))

		// When
		err := c.VerifyDeliveryCode("9999", issuedAt.Add(time.Minute))

		// Then
		require.ErrorIs(t, err, customer.ErrInvalidCode)
		require.NotNil(t, c.DeliveryCode())
		assert.NoError(t, c.VerifyDeliveryCode("4821", issuedAt.Add(2*time.Minute)))
	})

	t.Run("correct code submitted after 11 minutes has expired", func(t *testing.T) {
		// Given
		c := newCustomer(t)
		require.NoError(t, c.IssueDeliveryCode("4821", issuedAt.Add(10*time.Minute)))

		// When
		err := c.VerifyDeliveryCode("4821", issuedAt.Add(11*time.Minute))

		// Then
		require.ErrorIs(t, err, customer.ErrCodeExpired)
		assert.NotNil(t, c.DeliveryCode())
	})

	t.Run("no outstanding code is rejected as invalid", func(t *testing.T) {
		c := newCustomer(t)

		err := c.VerifyDeliveryCode("4821", issuedAt)

		require.ErrorIs(t, err, customer.ErrInvalidCode)
	})

	t.Run("re-issuing replaces the previous code", func(t *testing.T) {
		// Given
		c := newCustomer(t)
		require.NoError(t, c.IssueDeliveryCode("1111", issuedAt.Add(10*time.Minute)))

		// When
		require.NoError(t, c.IssueDeliveryCode("2222", issuedAt.Add(20*time.Minute)))

		// Then
		require.ErrorIs(t, c.VerifyDeliveryCode("1111", issuedAt.Add(time.Minute)), customer.ErrInvalidCode)
		require.NoError(t, c.VerifyDeliveryCode("2222", issuedAt.Add(15*time.Minute)))
	})
}

func TestCustomer_ClearDeliveryCode(t *testing.T) {
	t.Run("clearing is idempotent", func(t *testing.T) {
		c := newCustomer(t)
		require.NoError(t, c.IssueDeliveryCode("4821", time.Now().Add(10*time.Minute)))

		c.ClearDeliveryCode()
		c.ClearDeliveryCode()

		assert.Nil(t, c.DeliveryCode())
	})
}

func TestNewDeliveryCode(t *testing.T) {
	t.Run("rejects empty code", func(t *testing.T) {
		_, err := customer.NewDeliveryCode("", time.Now().Add(time.Minute))

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects zero expiry", func(t *testing.T) {
		_, err := customer.NewDeliveryCode("4821", time.Time{})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
