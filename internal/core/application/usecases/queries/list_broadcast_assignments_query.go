package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrListBroadcastAssignmentsQueryIsNotConstructed = errors.New(
	"ListBroadcastAssignmentsQuery must be created via NewListBroadcastAssignmentsQuery constructor",
)

// ListBroadcastAssignmentsQuery retrieves the open offers a courier can
// currently accept.
type ListBroadcastAssignmentsQuery struct {
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewListBroadcastAssignmentsQuery creates a query for a courier's open offers.
func NewListBroadcastAssignmentsQuery(courierID kernel.UUID) (ListBroadcastAssignmentsQuery, error) {
	if err := courierID.Validate(); err != nil {
		return ListBroadcastAssignmentsQuery{}, err
	}

	return ListBroadcastAssignmentsQuery{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListBroadcastAssignmentsQuery) Validate() error {
	return q.guard.Validate(ErrListBroadcastAssignmentsQueryIsNotConstructed)
}

// CourierID returns the courier whose offers are requested.
func (q ListBroadcastAssignmentsQuery) CourierID() kernel.UUID {
	return q.courierID
}

// ListBroadcastAssignmentsQueryResponse is one open offer as shown to a
// courier deciding whether to take it.
type ListBroadcastAssignmentsQueryResponse struct {
	AssignmentID kernel.UUID
	ShopOrderID  kernel.UUID
	BroadcastAt  time.Time
	Address      string
	Destination  kernel.GeoPoint
	TotalAmount  float64
}
