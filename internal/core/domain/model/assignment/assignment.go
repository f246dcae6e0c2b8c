package assignment

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
)

var (
	// ErrAssignmentIsNotConstructed is returned when using an improperly initialized Assignment.
	ErrAssignmentIsNotConstructed = errors.New("Assignment must be created via NewAssignment constructor")

	// ErrInvalidState is returned when an operation is not allowed from the
	// assignment's current status.
	ErrInvalidState = errors.New("assignment status does not allow this operation")

	// ErrAlreadyAssigned is returned when a courier who was offered the job
	// accepts after another courier already won it.
	ErrAlreadyAssigned = errors.New("assignment was already accepted by another courier")

	// ErrNotEligible is returned when a courier who was never offered the job
	// tries to accept it.
	ErrNotEligible = errors.New("courier was not offered this assignment")
)

// Assignment is the dispatch cycle for one shop order: a broadcast offer to a
// frozen set of candidate couriers, of which at most one ever wins.
//
// The candidate list is frozen at creation. Accepting clears the live list so
// the offer disappears from every other courier's view; an immutable audit
// copy is kept so a late accept can still be told apart as "lost the race"
// (was offered) versus "never offered".
//
// The aggregate enforces single-acceptor semantics in memory; concurrent
// writers are additionally serialized by the storage layer's conditional
// update, which is the only accept path repositories expose.
type Assignment struct {
	id          kernel.UUID
	orderID     kernel.UUID
	shopOrderID kernel.UUID
	shopID      kernel.UUID

	// broadcastedTo is the live offer list, cleared when the race ends
	broadcastedTo []kernel.UUID

	// broadcastAudit is the frozen creation-time copy of the offer list
	broadcastAudit []kernel.UUID

	status Status

	// acceptedBy is the current holder, nil before accept and after completion
	acceptedBy *kernel.UUID

	// lastAcceptedBy retains the historical holder after completion frees acceptedBy
	lastAcceptedBy *kernel.UUID

	broadcastAt time.Time
	acceptedAt  *time.Time
	completedAt *time.Time

	isConstructed bool
}

// NewAssignment creates a Broadcasted assignment offering the job to the
// given candidates. An empty candidate list is allowed: the cycle exists,
// nobody can win it until it is cancelled and re-dispatched.
func NewAssignment(
	id, orderID, shopOrderID, shopID kernel.UUID,
	candidates []kernel.UUID,
	now time.Time,
) (*Assignment, error) {
	a := &Assignment{
		status:        StatusBroadcasted,
		broadcastAt:   now,
		isConstructed: true,
	}

	if err := errors.Join(
		a.setID(id),
		a.setOrderID(orderID),
		a.setShopOrderID(shopOrderID),
		a.setShopID(shopID),
		a.setCandidates(candidates),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAssignment reconstructs an Assignment from persistent storage.
func RestoreAssignment(
	id, orderID, shopOrderID, shopID kernel.UUID,
	broadcastedTo, broadcastAudit []kernel.UUID,
	status Status,
	acceptedBy, lastAcceptedBy *kernel.UUID,
	broadcastAt time.Time,
	acceptedAt, completedAt *time.Time,
) (*Assignment, error) {
	a, err := NewAssignment(id, orderID, shopOrderID, shopID, broadcastedTo, broadcastAt)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}

	a.broadcastAudit = broadcastAudit
	a.status = status
	a.acceptedBy = acceptedBy
	a.lastAcceptedBy = lastAcceptedBy
	a.acceptedAt = acceptedAt
	a.completedAt = completedAt
	return a, nil
}

// Validate ensures the Assignment instance was properly constructed.
func (a *Assignment) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAssignmentIsNotConstructed
	}
	return nil
}

// ID returns the assignment's unique identifier.
func (a *Assignment) ID() kernel.UUID {
	return a.id
}

// OrderID returns the order this dispatch cycle serves.
func (a *Assignment) OrderID() kernel.UUID {
	return a.orderID
}

// ShopOrderID returns the shop order this dispatch cycle serves.
func (a *Assignment) ShopOrderID() kernel.UUID {
	return a.shopOrderID
}

// ShopID returns the shop the pickup happens at.
func (a *Assignment) ShopID() kernel.UUID {
	return a.shopID
}

// BroadcastedTo returns the live offer list, empty once the race ended.
func (a *Assignment) BroadcastedTo() []kernel.UUID {
	return a.broadcastedTo
}

// BroadcastAudit returns the frozen creation-time offer list.
func (a *Assignment) BroadcastAudit() []kernel.UUID {
	return a.broadcastAudit
}

// Status returns the current lifecycle status.
func (a *Assignment) Status() Status {
	return a.status
}

// AcceptedBy returns the current holder, nil before accept and after completion.
func (a *Assignment) AcceptedBy() *kernel.UUID {
	return a.acceptedBy
}

// LastAcceptedBy returns the historical holder, surviving completion.
func (a *Assignment) LastAcceptedBy() *kernel.UUID {
	return a.lastAcceptedBy
}

// BroadcastAt returns when the offer was opened.
func (a *Assignment) BroadcastAt() time.Time {
	return a.broadcastAt
}

// AcceptedAt returns when the job was accepted, nil before accept.
func (a *Assignment) AcceptedAt() *time.Time {
	return a.acceptedAt
}

// CompletedAt returns when the delivery was verified, nil before completion.
func (a *Assignment) CompletedAt() *time.Time {
	return a.completedAt
}

// WasOffered reports whether the courier was part of the original broadcast.
func (a *Assignment) WasOffered(courierID kernel.UUID) bool {
	for _, id := range a.broadcastAudit {
		if id.IsEqual(courierID) {
			return true
		}
	}
	return false
}

// Accept makes the courier the sole holder of the job.
//
// Errors:
//   - ErrNotEligible when the courier was never part of the broadcast
//   - ErrAlreadyAssigned when another courier already holds the job
//   - ErrInvalidState when the cycle is completed or cancelled
//
// On success the live offer list is cleared so the race is over for everyone
// else.
func (a *Assignment) Accept(courierID kernel.UUID, now time.Time) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	if !a.WasOffered(courierID) {
		return ErrNotEligible
	}
	if a.status == StatusAssigned {
		return ErrAlreadyAssigned
	}

	newStatus, err := a.status.Accept()
	if err != nil {
		return err
	}

	a.status = newStatus
	a.acceptedBy = &courierID
	a.lastAcceptedBy = &courierID
	a.acceptedAt = &now
	a.broadcastedTo = nil
	return nil
}

// Complete closes the cycle after delivery verification and frees the
// courier. The historical holder survives in LastAcceptedBy.
func (a *Assignment) Complete(now time.Time) error {
	newStatus, err := a.status.Complete()
	if err != nil {
		return err
	}

	a.status = newStatus
	a.acceptedBy = nil
	a.completedAt = &now
	return nil
}

// Cancel abandons the cycle. Candidates can no longer accept.
func (a *Assignment) Cancel() error {
	newStatus, err := a.status.Cancel()
	if err != nil {
		return err
	}

	a.status = newStatus
	a.acceptedBy = nil
	a.broadcastedTo = nil
	return nil
}

func (a *Assignment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Assignment) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	a.orderID = orderID
	return nil
}

func (a *Assignment) setShopOrderID(shopOrderID kernel.UUID) error {
	if err := shopOrderID.Validate(); err != nil {
		return err
	}
	a.shopOrderID = shopOrderID
	return nil
}

func (a *Assignment) setShopID(shopID kernel.UUID) error {
	if err := shopID.Validate(); err != nil {
		return err
	}
	a.shopID = shopID
	return nil
}

func (a *Assignment) setCandidates(candidates []kernel.UUID) error {
	for _, id := range candidates {
		if err := id.Validate(); err != nil {
			return err
		}
	}
	a.broadcastedTo = candidates
	a.broadcastAudit = append([]kernel.UUID(nil), candidates...)
	return nil
}
