package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrCartIsEmpty       = errors.New("cart must contain at least one item")
	ErrAddressIsRequired = errors.New("address is required")
)

// CartItem is one line of the customer's cart as submitted at checkout.
// Items from different shops may be mixed in a single cart; the handler
// splits them into per-shop orders.
type CartItem struct {
	ShopID   kernel.UUID
	Name     string
	Price    float64
	Quantity int
	ImageURL string
	FoodType order.FoodType
}

// PlaceOrderCommand represents a customer checkout request.
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	customerID    kernel.UUID
	address       string
	destination   kernel.GeoPoint
	paymentMethod order.PaymentMethod
	items         []CartItem

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a checkout command.
// Automatically generates a unique ID for the order.
func NewPlaceOrderCommand(
	customerID kernel.UUID,
	address string,
	destination kernel.GeoPoint,
	paymentMethod order.PaymentMethod,
	items []CartItem,
) (PlaceOrderCommand, error) {
	command := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(kernel.NewUUID()),
		command.setCustomerID(customerID),
		command.setAddress(address),
		command.setDestination(destination),
		command.setPaymentMethod(paymentMethod),
		command.setItems(items),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the generated order ID.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the ordering customer's ID.
func (c PlaceOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Address returns the free-text delivery address.
func (c PlaceOrderCommand) Address() string {
	return c.address
}

// Destination returns the geocoded delivery point.
func (c PlaceOrderCommand) Destination() kernel.GeoPoint {
	return c.destination
}

// PaymentMethod returns how the order will be settled.
func (c PlaceOrderCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

// Items returns the cart lines.
func (c PlaceOrderCommand) Items() []CartItem {
	return c.items
}

func (c *PlaceOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderID = id
	return nil
}

func (c *PlaceOrderCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.customerID = id
	return nil
}

func (c *PlaceOrderCommand) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}

	c.address = address
	return nil
}

func (c *PlaceOrderCommand) setDestination(destination kernel.GeoPoint) error {
	if err := destination.Validate(); err != nil {
		return err
	}

	c.destination = destination
	return nil
}

func (c *PlaceOrderCommand) setPaymentMethod(paymentMethod order.PaymentMethod) error {
	if err := paymentMethod.Validate(); err != nil {
		return err
	}

	c.paymentMethod = paymentMethod
	return nil
}

func (c *PlaceOrderCommand) setItems(items []CartItem) error {
	if len(items) == 0 {
		return ErrCartIsEmpty
	}

	for _, item := range items {
		if err := item.ShopID.Validate(); err != nil {
			return err
		}
	}

	c.items = items
	return nil
}
