package order

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

var (
	// ErrShopOrderIsNotConstructed is returned when using an improperly initialized ShopOrder.
	ErrShopOrderIsNotConstructed = errors.New("ShopOrder must be created via NewShopOrder constructor")
	// ErrAlreadyDispatched is returned when attaching an assignment to a shop
	// order that already carries one. A fulfillment cycle dispatches at most once.
	ErrAlreadyDispatched = errors.New("shop order already has an assignment")
	// ErrNotOutForDelivery is returned when attaching an assignment to a shop
	// order that has not reached the out-for-delivery stage yet.
	ErrNotOutForDelivery = errors.New("shop order is not out for delivery")
	// ErrItemsAreRequired is returned when creating a shop order with no line items.
	ErrItemsAreRequired = errs.NewValueIsRequiredError("items")
)

// ShopOrder is the per-shop slice of an Order: the line items one merchant
// fulfills, moving through the Stage machine independently of its siblings.
//
// ShopOrder is an entity embedded in the Order aggregate and shares its
// lifetime. The courierID field is a denormalized convenience cache of the
// assignment winner; the Assignment aggregate stays authoritative for who
// holds the job.
type ShopOrder struct {
	id         kernel.UUID
	shopID     kernel.UUID
	merchantID kernel.UUID
	subtotal   float64
	items      []Item
	stage      Stage

	// assignmentID references the dispatch cycle, nil before out-for-delivery
	assignmentID *kernel.UUID

	// courierID caches the accepted courier, nil when nobody holds the job
	courierID *kernel.UUID

	isConstructed bool
}

// NewShopOrder creates a pending shop order, computing the subtotal from the
// line items.
func NewShopOrder(id, shopID, merchantID kernel.UUID, items []Item) (*ShopOrder, error) {
	if len(items) == 0 {
		return nil, ErrItemsAreRequired
	}

	so := &ShopOrder{
		stage:         StagePending,
		isConstructed: true,
	}

	if err := errors.Join(
		so.setID(id),
		so.setShopID(shopID),
		so.setMerchantID(merchantID),
		so.setItems(items),
	); err != nil {
		return nil, err
	}

	for _, item := range so.items {
		so.subtotal += item.Total()
	}

	return so, nil
}

// RestoreShopOrder reconstructs a ShopOrder from persistent storage.
func RestoreShopOrder(
	id, shopID, merchantID kernel.UUID,
	subtotal float64,
	items []Item,
	stage Stage,
	assignmentID, courierID *kernel.UUID,
) (*ShopOrder, error) {
	so, err := NewShopOrder(id, shopID, merchantID, items)
	if err != nil {
		return nil, err
	}

	if err := stage.Validate(); err != nil {
		return nil, err
	}

	so.subtotal = subtotal
	so.stage = stage
	so.assignmentID = assignmentID
	so.courierID = courierID
	return so, nil
}

// Validate ensures the ShopOrder instance was properly constructed.
func (so *ShopOrder) Validate() error {
	if so == nil || !so.isConstructed {
		return ErrShopOrderIsNotConstructed
	}
	return nil
}

// ID returns the shop order's unique identifier.
func (so *ShopOrder) ID() kernel.UUID {
	return so.id
}

// ShopID returns the shop this slice of the order belongs to.
func (so *ShopOrder) ShopID() kernel.UUID {
	return so.shopID
}

// MerchantID returns the merchant operating the shop.
func (so *ShopOrder) MerchantID() kernel.UUID {
	return so.merchantID
}

// Subtotal returns the sum of the line item totals.
func (so *ShopOrder) Subtotal() float64 {
	return so.subtotal
}

// Items returns the line items.
func (so *ShopOrder) Items() []Item {
	return so.items
}

// Stage returns the current fulfillment stage.
func (so *ShopOrder) Stage() Stage {
	return so.stage
}

// AssignmentID returns the attached dispatch cycle reference, nil before dispatch.
func (so *ShopOrder) AssignmentID() *kernel.UUID {
	return so.assignmentID
}

// CourierID returns the cached accepted courier, nil when nobody holds the job.
func (so *ShopOrder) CourierID() *kernel.UUID {
	return so.courierID
}

// ChangeStage transitions the fulfillment stage along an allowed edge.
func (so *ShopOrder) ChangeStage(next Stage) error {
	newStage, err := so.stage.TransitionTo(next)
	if err != nil {
		return err
	}

	so.stage = newStage
	return nil
}

// AttachAssignment records the dispatch cycle reference. The out-for-delivery
// stage transition is what opens a shop order for dispatch, so attaching at
// any earlier stage fails with ErrNotOutForDelivery; a second attach fails
// with ErrAlreadyDispatched.
func (so *ShopOrder) AttachAssignment(assignmentID kernel.UUID) error {
	if err := assignmentID.Validate(); err != nil {
		return err
	}
	if so.assignmentID != nil {
		return ErrAlreadyDispatched
	}
	if so.stage != StageOutForDelivery {
		return ErrNotOutForDelivery
	}

	so.assignmentID = &assignmentID
	return nil
}

// SetCourier caches the accepted courier.
func (so *ShopOrder) SetCourier(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	so.courierID = &courierID
	return nil
}

// ClearCourier drops the courier cache. Idempotent.
func (so *ShopOrder) ClearCourier() {
	so.courierID = nil
}

// MarkDelivered performs the terminal OutForDelivery -> Delivered transition
// and releases the courier cache.
func (so *ShopOrder) MarkDelivered() error {
	newStage, err := so.stage.TransitionTo(StageDelivered)
	if err != nil {
		return err
	}

	so.stage = newStage
	so.courierID = nil
	return nil
}

func (so *ShopOrder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	so.id = id
	return nil
}

func (so *ShopOrder) setShopID(shopID kernel.UUID) error {
	if err := shopID.Validate(); err != nil {
		return err
	}
	so.shopID = shopID
	return nil
}

func (so *ShopOrder) setMerchantID(merchantID kernel.UUID) error {
	if err := merchantID.Validate(); err != nil {
		return err
	}
	so.merchantID = merchantID
	return nil
}

func (so *ShopOrder) setItems(items []Item) error {
	for _, item := range items {
		if item == (Item{}) {
			return errs.NewValueIsRequiredError("items")
		}
	}
	so.items = items
	return nil
}
