package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"stayfinder-backend/models"
)

const hotelListKey = "hotels:list"

// HotelCache keeps the hotel-list payload in Redis for a short TTL and is
// invalidated whenever inventory changes. A nil *HotelCache is a no-op, so
// callers never have to branch on whether Redis is configured. Cache
// failures fall through to the database and are only logged.
type HotelCache struct {
	client *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

// NewHotelCache returns nil when addr is empty (caching disabled).
func NewHotelCache(addr string, ttl time.Duration, logger zerolog.Logger) *HotelCache {
	if addr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	return &HotelCache{client: client, ttl: ttl, logger: logger}
}

func (c *HotelCache) Get(ctx context.Context) ([]models.Hotel, bool) {
	if c == nil {
		return nil, false
	}
	payload, err := c.client.Get(ctx, hotelListKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn().Err(err).Msg("hotel cache read failed")
		}
		return nil, false
	}

	var hotels []models.Hotel
	if err := json.Unmarshal(payload, &hotels); err != nil {
		c.logger.Warn().Err(err).Msg("hotel cache payload corrupt")
		return nil, false
	}
	return hotels, true
}

func (c *HotelCache) Set(ctx context.Context, hotels []models.Hotel) {
	if c == nil {
		return
	}
	payload, err := json.Marshal(hotels)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, hotelListKey, payload, c.ttl).Err(); err != nil {
		c.logger.Warn().Err(err).Msg("hotel cache write failed")
	}
}

func (c *HotelCache) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}
	if err := c.client.Del(ctx, hotelListKey).Err(); err != nil {
		c.logger.Warn().Err(err).Msg("hotel cache invalidation failed")
	}
}

// Close releases the Redis connection.
func (c *HotelCache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}
