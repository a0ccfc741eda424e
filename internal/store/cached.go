package store

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/vangoframework/wayfarer/internal/domain"
)

// Cached puts a Redis read-through cache in front of ListTrips.
// Redis failures are logged and the inner store answers instead.
type Cached struct {
	TripStore
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewCached wraps inner with a trip list cache that expires after ttl.
func NewCached(inner TripStore, client *redis.Client, ttl time.Duration, logger *slog.Logger) *Cached {
	return &Cached{
		TripStore: inner,
		client:    client,
		ttl:       ttl,
		logger:    logger,
	}
}

// ListTrips implements TripStore.
func (c *Cached) ListTrips(ctx context.Context, travelerID uuid.UUID) ([]domain.Trip, error) {
	key := tripsKey(travelerID)

	data, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var trips []domain.Trip
		if err := json.Unmarshal(data, &trips); err == nil {
			return trips, nil
		}
		c.logger.Warn("discarding undecodable trips cache entry", "key", key)
	case !errors.Is(err, redis.Nil):
		c.logger.Warn("trips cache read failed", "key", key, "error", err)
	}

	trips, err := c.TripStore.ListTrips(ctx, travelerID)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(trips)
	if err != nil {
		return trips, nil
	}
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.logger.Warn("trips cache write failed", "key", key, "error", err)
	}
	return trips, nil
}

// Invalidate drops the cached trip list of a traveler.
func (c *Cached) Invalidate(ctx context.Context, travelerID uuid.UUID) error {
	return c.client.Del(ctx, tripsKey(travelerID)).Err()
}

func tripsKey(travelerID uuid.UUID) string {
	return "trips:" + travelerID.String()
}
