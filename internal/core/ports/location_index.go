package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
)

// LocationIndex is the geospatial index of courier positions used for
// candidate discovery. It is a live cache fed by location reports, separate
// from the courier aggregate's persisted location.
type LocationIndex interface {
	// Upsert records the courier's current position.
	Upsert(ctx context.Context, courierID kernel.UUID, point kernel.GeoPoint) error

	// Remove drops the courier from the index, e.g. on deactivation.
	Remove(ctx context.Context, courierID kernel.UUID) error

	// Search returns couriers within radiusMeters of center, nearest first.
	Search(ctx context.Context, center kernel.GeoPoint, radiusMeters float64) ([]kernel.UUID, error)
}
