package ports

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/customer"
	"dispatch/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer aggregates,
// including the outstanding proof-of-delivery code.
type CustomerRepository interface {
	// Add persists a new customer aggregate to storage.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Update persists changes to an existing customer aggregate.
	Update(ctx context.Context, aggregate *customer.Customer) error

	// Get retrieves a customer aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// ClearExpiredDeliveryCodes removes delivery codes whose validity window
	// ended before the given instant. Returns how many codes were cleared.
	ClearExpiredDeliveryCodes(ctx context.Context, before time.Time) (int64, error)
}
