package commands_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/customer"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func testGeoPoint(t *testing.T) kernel.GeoPoint {
	t.Helper()
	point, err := kernel.NewGeoPoint(12.93, 77.61)
	require.NoError(t, err)
	return point
}

func testItem(t *testing.T) order.Item {
	t.Helper()
	item, err := order.NewItem("Masala Dosa", 120, 1, "", order.FoodTypeVeg)
	require.NoError(t, err)
	return item
}

// testOrder builds an order with a single pending shop order and returns both.
func testOrder(t *testing.T, customerID kernel.UUID) (*order.Order, *order.ShopOrder) {
	t.Helper()

	shopOrder, err := order.NewShopOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		[]order.Item{testItem(t)})
	require.NoError(t, err)

	orderEntity, err := order.NewOrder(
		kernel.NewUUID(), customerID,
		"21 MG Road, Bengaluru", testGeoPoint(t),
		order.PaymentCashOnDelivery,
		[]*order.ShopOrder{shopOrder})
	require.NoError(t, err)

	return orderEntity, shopOrder
}

// testOrderReadyForDispatch walks the shop order to OutForDelivery without
// attaching an assignment, the state in which a dispatch may start.
func testOrderReadyForDispatch(t *testing.T, customerID kernel.UUID) (*order.Order, *order.ShopOrder) {
	t.Helper()

	orderEntity, shopOrder := testOrder(t, customerID)
	require.NoError(t, shopOrder.ChangeStage(order.StagePreparing))
	require.NoError(t, shopOrder.ChangeStage(order.StageOutForDelivery))

	return orderEntity, shopOrder
}

// testOrderOutForDelivery walks the shop order to OutForDelivery with an
// attached assignment, mirroring the state right after a dispatch.
func testOrderOutForDelivery(
	t *testing.T, customerID, courierID kernel.UUID,
) (*order.Order, *order.ShopOrder, *assignment.Assignment) {
	t.Helper()

	orderEntity, shopOrder := testOrderReadyForDispatch(t, customerID)

	assignmentEntity, err := assignment.NewAssignment(
		kernel.NewUUID(), orderEntity.ID(), shopOrder.ID(), shopOrder.ShopID(),
		[]kernel.UUID{courierID}, time.Now().UTC())
	require.NoError(t, err)
	require.NoError(t, shopOrder.AttachAssignment(assignmentEntity.ID()))
	require.NoError(t, assignmentEntity.Accept(courierID, time.Now().UTC()))
	require.NoError(t, shopOrder.SetCourier(courierID))

	return orderEntity, shopOrder, assignmentEntity
}

func testCustomer(t *testing.T, id kernel.UUID) *customer.Customer {
	t.Helper()
	c, err := customer.NewCustomer(id, "Meera", "meera@example.com", "+91900000010")
	require.NoError(t, err)
	return c
}
