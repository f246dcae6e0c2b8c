package order

import (
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when using an improperly initialized Order.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	// ErrShopOrdersAreRequired is returned when creating an order with no shop orders.
	ErrShopOrdersAreRequired = errs.NewValueIsRequiredError("shopOrders")
	// ErrAddressIsRequired is returned when creating an order without a delivery address.
	ErrAddressIsRequired = errs.NewValueIsRequiredError("address")
)

// PaymentMethod identifies how the customer settles the order.
type PaymentMethod string

const (
	PaymentCashOnDelivery PaymentMethod = "cod"
	PaymentOnline         PaymentMethod = "online"
)

// Validate checks that the payment method is one of the known values.
func (p PaymentMethod) Validate() error {
	if p != PaymentCashOnDelivery && p != PaymentOnline {
		return errs.NewValueIsInvalidErrorWithCause(
			"paymentMethod is invalid",
			fmt.Errorf("%q is not a valid payment method", string(p)),
		)
	}
	return nil
}

// Order is the aggregate root for a customer purchase. It is split into one
// ShopOrder per shop; each slice moves through fulfillment on its own while
// the root holds the shared delivery destination and payment facts.
//
// The root is immutable after creation except for the embedded shop orders.
// All shop order mutations go through the root so the aggregate boundary
// stays the consistency boundary.
type Order struct {
	id            kernel.UUID
	customerID    kernel.UUID
	address       string
	destination   kernel.GeoPoint
	paymentMethod PaymentMethod
	totalAmount   float64
	shopOrders    []*ShopOrder

	isConstructed bool
}

// NewOrder creates an Order, computing the total from the shop order subtotals.
func NewOrder(
	id, customerID kernel.UUID,
	address string,
	destination kernel.GeoPoint,
	paymentMethod PaymentMethod,
	shopOrders []*ShopOrder,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setAddress(address),
		o.setDestination(destination),
		o.setPaymentMethod(paymentMethod),
		o.setShopOrders(shopOrders),
	); err != nil {
		return nil, err
	}

	for _, so := range o.shopOrders {
		o.totalAmount += so.Subtotal()
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistent storage.
func RestoreOrder(
	id, customerID kernel.UUID,
	address string,
	destination kernel.GeoPoint,
	paymentMethod PaymentMethod,
	totalAmount float64,
	shopOrders []*ShopOrder,
) (*Order, error) {
	o, err := NewOrder(id, customerID, address, destination, paymentMethod, shopOrders)
	if err != nil {
		return nil, err
	}

	o.totalAmount = totalAmount
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the customer who placed the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Address returns the free-text delivery address.
func (o *Order) Address() string {
	return o.address
}

// Destination returns the geocoded delivery point.
func (o *Order) Destination() kernel.GeoPoint {
	return o.destination
}

// PaymentMethod returns how the order is settled.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// TotalAmount returns the sum of all shop order subtotals.
func (o *Order) TotalAmount() float64 {
	return o.totalAmount
}

// ShopOrders returns the per-shop slices of the order.
func (o *Order) ShopOrders() []*ShopOrder {
	return o.shopOrders
}

// ShopOrderByID finds an embedded shop order by its identifier.
func (o *Order) ShopOrderByID(shopOrderID kernel.UUID) (*ShopOrder, error) {
	for _, so := range o.shopOrders {
		if so.ID().IsEqual(shopOrderID) {
			return so, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("shopOrderId", shopOrderID)
}

// ChangeStage transitions one shop order's fulfillment stage.
func (o *Order) ChangeStage(shopOrderID kernel.UUID, next Stage) error {
	so, err := o.ShopOrderByID(shopOrderID)
	if err != nil {
		return err
	}
	return so.ChangeStage(next)
}

// AttachAssignment records a dispatch cycle on one shop order.
// Fails with ErrAlreadyDispatched when an assignment is already attached.
func (o *Order) AttachAssignment(shopOrderID, assignmentID kernel.UUID) error {
	so, err := o.ShopOrderByID(shopOrderID)
	if err != nil {
		return err
	}
	return so.AttachAssignment(assignmentID)
}

// SetCourier caches the accepted courier on one shop order.
func (o *Order) SetCourier(shopOrderID, courierID kernel.UUID) error {
	so, err := o.ShopOrderByID(shopOrderID)
	if err != nil {
		return err
	}
	return so.SetCourier(courierID)
}

// ClearCourier drops the courier cache on one shop order.
func (o *Order) ClearCourier(shopOrderID kernel.UUID) error {
	so, err := o.ShopOrderByID(shopOrderID)
	if err != nil {
		return err
	}
	so.ClearCourier()
	return nil
}

// MarkDelivered completes one shop order's fulfillment.
func (o *Order) MarkDelivered(shopOrderID kernel.UUID) error {
	so, err := o.ShopOrderByID(shopOrderID)
	if err != nil {
		return err
	}
	return so.MarkDelivered()
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}
	o.address = address
	return nil
}

func (o *Order) setDestination(destination kernel.GeoPoint) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	o.destination = destination
	return nil
}

func (o *Order) setPaymentMethod(paymentMethod PaymentMethod) error {
	if err := paymentMethod.Validate(); err != nil {
		return err
	}
	o.paymentMethod = paymentMethod
	return nil
}

func (o *Order) setShopOrders(shopOrders []*ShopOrder) error {
	if len(shopOrders) == 0 {
		return ErrShopOrdersAreRequired
	}
	for _, so := range shopOrders {
		if err := so.Validate(); err != nil {
			return err
		}
	}
	o.shopOrders = shopOrders
	return nil
}
