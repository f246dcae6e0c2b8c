// Package redisgeo implements the courier location index on Redis GEO
// commands. The index is a live cache fed by location reports; losing it
// degrades candidate discovery but loses no business state, which is why it
// lives in Redis rather than in the transactional store.
package redisgeo

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// locationsKey is the sorted set holding all courier positions.
const locationsKey = "dispatch:courier:locations"

// RedisLocationIndex implements ports.LocationIndex using a single Redis
// geospatial set keyed by courier ID.
type RedisLocationIndex struct {
	client *redis.Client
}

// NewRedisLocationIndex creates a location index backed by the given client.
func NewRedisLocationIndex(client *redis.Client) *RedisLocationIndex {
	return &RedisLocationIndex{client: client}
}

// Upsert records the courier's current position, replacing any previous one.
func (i *RedisLocationIndex) Upsert(ctx context.Context, courierID kernel.UUID, point kernel.GeoPoint) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	if err := point.Validate(); err != nil {
		return err
	}

	err := i.client.GeoAdd(ctx, locationsKey, &redis.GeoLocation{
		Name:      courierID.String(),
		Latitude:  point.Latitude(),
		Longitude: point.Longitude(),
	}).Err()
	if err != nil {
		return errs.NewUnavailableError("location index upsert", err)
	}

	return nil
}

// Remove drops the courier from the index. Removing an absent courier is not
// an error.
func (i *RedisLocationIndex) Remove(ctx context.Context, courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	if err := i.client.ZRem(ctx, locationsKey, courierID.String()).Err(); err != nil {
		return errs.NewUnavailableError("location index remove", err)
	}

	return nil
}

// Search returns couriers within radiusMeters of center, nearest first.
func (i *RedisLocationIndex) Search(
	ctx context.Context,
	center kernel.GeoPoint,
	radiusMeters float64,
) ([]kernel.UUID, error) {
	if err := center.Validate(); err != nil {
		return nil, err
	}

	locations, err := i.client.GeoRadius(ctx, locationsKey,
		center.Longitude(), center.Latitude(), &redis.GeoRadiusQuery{
			Radius: radiusMeters,
			Unit:   "m",
			Sort:   "ASC",
		}).Result()
	if err != nil {
		return nil, errs.NewUnavailableError("location index search", err)
	}

	ids := make([]kernel.UUID, 0, len(locations))
	for _, location := range locations {
		id, idErr := kernel.UUIDFromString(location.Name)
		if idErr != nil {
			return nil, idErr
		}
		ids = append(ids, id)
	}

	return ids, nil
}
