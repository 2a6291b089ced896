package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ijalalfrz/airline-booking-simulator/internal/app/dto"
)

// ListingCache keeps generated search results so repeating a search, or
// booking from it, returns the same flights.
type ListingCache struct {
	redis RedisClient
}

func NewListingCache(redis RedisClient) *ListingCache {
	return &ListingCache{
		redis: redis,
	}
}

func (c *ListingCache) GetLockKey(req dto.SearchCriteria) string {
	return fmt.Sprintf("flight:lock:%s:%s:%s:%s:%s:%d",
		req.DepartureDate, req.ReturnDate, req.Origin, req.Destination, req.CabinClass, req.Passengers)
}

func (c *ListingCache) GetCacheKey(req dto.SearchCriteria) string {
	return fmt.Sprintf("flight:cache:%s:%s:%s:%s:%s:%d",
		req.DepartureDate, req.ReturnDate, req.Origin, req.Destination, req.CabinClass, req.Passengers)
}

func (c *ListingCache) AcquireLock(ctx context.Context, key string, timeout time.Duration) (bool, error) {
	return c.redis.SetNX(ctx, key, "1", timeout).Result()
}

func (c *ListingCache) ReleaseLock(ctx context.Context, key string) error {
	return c.redis.Del(ctx, key).Err()
}

func (c *ListingCache) SetListing(ctx context.Context,
	key string,
	listing dto.Listing,
	expiration time.Duration,
) error {
	data, err := json.Marshal(listing)
	if err != nil {
		return fmt.Errorf("failed to marshal listing: %w", err)
	}

	err = c.redis.Set(ctx, key, data, expiration).Err()
	if err != nil {
		return fmt.Errorf("failed to set listing: %w", err)
	}

	return nil
}

func (c *ListingCache) GetListing(ctx context.Context, key string) (dto.Listing, error) {
	data, err := c.redis.Get(ctx, key).Bytes()
	if err != nil {
		return dto.Listing{}, err
	}

	var listing dto.Listing
	if err := json.Unmarshal(data, &listing); err != nil {
		return dto.Listing{}, err
	}

	return listing, nil
}
