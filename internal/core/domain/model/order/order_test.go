package order_test

import (
	"testing"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItems(t *testing.T) []order.Item {
	t.Helper()
	dosa, err := order.NewItem("Masala Dosa", 120, 2, "", order.FoodTypeVeg)
	require.NoError(t, err)
	biryani, err := order.NewItem("Chicken Biryani", 260, 1, "https://cdn.example.com/biryani.jpg", order.FoodTypeNonVeg)
	require.NoError(t, err)
	return []order.Item{dosa, biryani}
}

func testShopOrder(t *testing.T) *order.ShopOrder {
	t.Helper()
	so, err := order.NewShopOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), testItems(t))
	require.NoError(t, err)
	return so
}

func testDestination(t *testing.T) kernel.GeoPoint {
	t.Helper()
	point, err := kernel.NewGeoPoint(12.97, 77.59)
	require.NoError(t, err)
	return point
}

func testOrder(t *testing.T, shopOrders ...*order.ShopOrder) *order.Order {
	t.Helper()
	if len(shopOrders) == 0 {
		shopOrders = []*order.ShopOrder{testShopOrder(t)}
	}
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(),
		"21 MG Road, Bengaluru", testDestination(t),
		order.PaymentCashOnDelivery, shopOrders)
	require.NoError(t, err)
	return o
}

func TestNewItem(t *testing.T) {
	t.Run("computes line total", func(t *testing.T) {
		item, err := order.NewItem("Masala Dosa", 120, 2, "", order.FoodTypeVeg)

		require.NoError(t, err)
		assert.InDelta(t, 240, item.Total(), 0.001)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := order.NewItem("", 120, 1, "", order.FoodTypeVeg)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects negative price", func(t *testing.T) {
		_, err := order.NewItem("Masala Dosa", -1, 1, "", order.FoodTypeVeg)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects zero quantity", func(t *testing.T) {
		_, err := order.NewItem("Masala Dosa", 120, 0, "", order.FoodTypeVeg)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects unknown food type", func(t *testing.T) {
		_, err := order.NewItem("Masala Dosa", 120, 1, "", order.FoodType("vegan"))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewShopOrder(t *testing.T) {
	t.Run("starts pending with computed subtotal", func(t *testing.T) {
		// Given
		items := testItems(t)

		// When
		so, err := order.NewShopOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), items)

		// Then
		require.NoError(t, err)
		require.NoError(t, so.Validate())
		assert.Equal(t, order.StagePending, so.Stage())
		assert.InDelta(t, 500, so.Subtotal(), 0.001)
		assert.Nil(t, so.AssignmentID())
		assert.Nil(t, so.CourierID())
	})

	t.Run("rejects empty items", func(t *testing.T) {
		_, err := order.NewShopOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects zero value id", func(t *testing.T) {
		var id kernel.UUID

		_, err := order.NewShopOrder(id, kernel.NewUUID(), kernel.NewUUID(), testItems(t))

		require.Error(t, err)
	})
}

func TestShopOrder_AttachAssignment(t *testing.T) {
	outForDelivery := func(t *testing.T) *order.ShopOrder {
		t.Helper()
		so := testShopOrder(t)
		require.NoError(t, so.ChangeStage(order.StagePreparing))
		require.NoError(t, so.ChangeStage(order.StageOutForDelivery))
		return so
	}

	t.Run("attaches once out for delivery", func(t *testing.T) {
		// Given
		so := outForDelivery(t)
		assignmentID := kernel.NewUUID()

		// When
		err := so.AttachAssignment(assignmentID)

		// Then
		require.NoError(t, err)
		require.NotNil(t, so.AssignmentID())
		assert.True(t, so.AssignmentID().IsEqual(assignmentID))
	})

	t.Run("rejects attach before out for delivery", func(t *testing.T) {
		// Given
		so := testShopOrder(t)

		// When
		err := so.AttachAssignment(kernel.NewUUID())

		// Then
		require.ErrorIs(t, err, order.ErrNotOutForDelivery)
		assert.Nil(t, so.AssignmentID())
	})

	t.Run("second attach fails", func(t *testing.T) {
		// Given
		so := outForDelivery(t)
		first := kernel.NewUUID()
		require.NoError(t, so.AttachAssignment(first))

		// When
		err := so.AttachAssignment(kernel.NewUUID())

		// Then
		require.ErrorIs(t, err, order.ErrAlreadyDispatched)
		assert.True(t, so.AssignmentID().IsEqual(first))
	})
}

func TestShopOrder_MarkDelivered(t *testing.T) {
	t.Run("delivers from out for delivery and clears courier", func(t *testing.T) {
		// Given
		so := testShopOrder(t)
		require.NoError(t, so.ChangeStage(order.StagePreparing))
		require.NoError(t, so.ChangeStage(order.StageOutForDelivery))
		require.NoError(t, so.SetCourier(kernel.NewUUID()))

		// When
		err := so.MarkDelivered()

		// Then
		require.NoError(t, err)
		assert.Equal(t, order.StageDelivered, so.Stage())
		assert.Nil(t, so.CourierID())
	})

	t.Run("cannot deliver from pending", func(t *testing.T) {
		so := testShopOrder(t)

		err := so.MarkDelivered()

		require.ErrorIs(t, err, order.ErrInvalidStageTransition)
	})
}

func TestNewOrder(t *testing.T) {
	t.Run("computes total across shop orders", func(t *testing.T) {
		// Given
		first := testShopOrder(t)
		second := testShopOrder(t)

		// When
		o := testOrder(t, first, second)

		// Then
		require.NoError(t, o.Validate())
		assert.InDelta(t, first.Subtotal()+second.Subtotal(), o.TotalAmount(), 0.001)
		assert.Len(t, o.ShopOrders(), 2)
	})

	t.Run("rejects empty shop orders", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(),
			"21 MG Road, Bengaluru", testDestination(t),
			order.PaymentOnline, nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects missing address", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(),
			"", testDestination(t),
			order.PaymentOnline, []*order.ShopOrder{testShopOrder(t)})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects unknown payment method", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(),
			"21 MG Road, Bengaluru", testDestination(t),
			order.PaymentMethod("cheque"), []*order.ShopOrder{testShopOrder(t)})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_ShopOrderByID(t *testing.T) {
	t.Run("finds embedded shop order", func(t *testing.T) {
		// Given
		so := testShopOrder(t)
		o := testOrder(t, so)

		// When
		found, err := o.ShopOrderByID(so.ID())

		// Then
		require.NoError(t, err)
		assert.True(t, found.ID().IsEqual(so.ID()))
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		o := testOrder(t)

		_, err := o.ShopOrderByID(kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestOrder_ChangeStage(t *testing.T) {
	t.Run("walks the happy path through the root", func(t *testing.T) {
		// Given
		so := testShopOrder(t)
		o := testOrder(t, so)

		// When / Then
		require.NoError(t, o.ChangeStage(so.ID(), order.StagePreparing))
		require.NoError(t, o.ChangeStage(so.ID(), order.StageOutForDelivery))
		require.NoError(t, o.MarkDelivered(so.ID()))
		assert.Equal(t, order.StageDelivered, so.Stage())
	})

	t.Run("cancel after delivery is rejected", func(t *testing.T) {
		// Given
		so := testShopOrder(t)
		o := testOrder(t, so)
		require.NoError(t, o.ChangeStage(so.ID(), order.StagePreparing))
		require.NoError(t, o.ChangeStage(so.ID(), order.StageOutForDelivery))
		require.NoError(t, o.MarkDelivered(so.ID()))

		// When
		err := o.ChangeStage(so.ID(), order.StageCancelled)

		// Then
		require.ErrorIs(t, err, order.ErrInvalidStageTransition)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("preserves stored total", func(t *testing.T) {
		// Given
		so := testShopOrder(t)

		// When
		o, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(),
			"21 MG Road, Bengaluru", testDestination(t),
			order.PaymentOnline, 999.5, []*order.ShopOrder{so})

		// Then
		require.NoError(t, err)
		assert.InDelta(t, 999.5, o.TotalAmount(), 0.001)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var o order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("nil pointer fails validation", func(t *testing.T) {
		var o *order.Order

		require.Error(t, o.Validate())
	})
}
