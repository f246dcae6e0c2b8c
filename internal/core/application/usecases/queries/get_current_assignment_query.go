// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetCurrentAssignmentQueryIsNotConstructed = errors.New(
	"GetCurrentAssignmentQuery must be created via NewGetCurrentAssignmentQuery constructor",
)

// GetCurrentAssignmentQuery retrieves the job a courier currently holds,
// joined with the delivery facts the courier needs on the road.
type GetCurrentAssignmentQuery struct {
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCurrentAssignmentQuery creates a query for the courier's active job.
func NewGetCurrentAssignmentQuery(courierID kernel.UUID) (GetCurrentAssignmentQuery, error) {
	if err := courierID.Validate(); err != nil {
		return GetCurrentAssignmentQuery{}, err
	}

	return GetCurrentAssignmentQuery{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCurrentAssignmentQuery) Validate() error {
	return q.guard.Validate(ErrGetCurrentAssignmentQueryIsNotConstructed)
}

// CourierID returns the courier whose active job is requested.
func (q GetCurrentAssignmentQuery) CourierID() kernel.UUID {
	return q.courierID
}

// GetCurrentAssignmentQueryResponse is the courier-facing view of the active
// job: where to deliver and who receives it.
type GetCurrentAssignmentQueryResponse struct {
	AssignmentID   kernel.UUID
	ShopOrderID    kernel.UUID
	AcceptedAt     time.Time
	Address        string
	Destination    kernel.GeoPoint
	CustomerName   string
	CustomerMobile string
}
