package ports

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
)

// AssignmentRepository defines the persistence contract for assignment
// aggregates.
//
// Accept and Complete are deliberately the only mutation paths for the race
// outcome: each is a single conditional storage update, so two transactions
// racing on the same offer resolve to exactly one winner. There is no
// load-modify-save path that could lose that guarantee.
type AssignmentRepository interface {
	// Add persists a new assignment aggregate to storage.
	Add(ctx context.Context, aggregate *assignment.Assignment) error

	// Get retrieves an assignment aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*assignment.Assignment, error)

	// Accept atomically makes courierID the sole holder of the assignment.
	// The update applies only while the assignment is still Broadcasted and
	// the courier is on the live offer list; it clears the offer list so the
	// race ends for everyone else.
	//
	// Returns the updated aggregate, or one of the aggregate's errors
	// (ErrNotEligible, ErrAlreadyAssigned, ErrInvalidState) classified from
	// the stored state when the conditional update matched no row.
	Accept(ctx context.Context, id, courierID kernel.UUID, at time.Time) (*assignment.Assignment, error)

	// Complete atomically closes an Assigned assignment and frees the holder.
	// Returns the updated aggregate or ErrInvalidState when the assignment is
	// not currently Assigned.
	Complete(ctx context.Context, id kernel.UUID, at time.Time) (*assignment.Assignment, error)

	// Cancel abandons a Broadcasted or Assigned assignment.
	Cancel(ctx context.Context, id kernel.UUID) error

	// GetActiveByCourier retrieves the courier's assignment in one of the
	// given statuses. At most one exists at a time.
	GetActiveByCourier(ctx context.Context, courierID kernel.UUID, statuses []assignment.Status) (*assignment.Assignment, error)

	// GetBroadcastedTo retrieves the open offers whose live candidate list
	// contains the courier.
	GetBroadcastedTo(ctx context.Context, courierID kernel.UUID) ([]*assignment.Assignment, error)

	// GetBusyCourierIDs returns the couriers holding an assignment in one of
	// the given statuses.
	GetBusyCourierIDs(ctx context.Context, statuses []assignment.Status) ([]kernel.UUID, error)
}
