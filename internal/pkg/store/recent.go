package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ijalalfrz/airline-booking-simulator/internal/app/dto"
	"github.com/redis/go-redis/v9"
)

// DefaultRecentSearches is how many searches a client keeps.
const DefaultRecentSearches = 5

// RecentSearchStore remembers each client's latest flight status lookups.
type RecentSearchStore struct {
	redis    RedisClient
	capacity int
	ttl      time.Duration
}

func NewRecentSearchStore(redis RedisClient, capacity int, ttl time.Duration) *RecentSearchStore {
	if capacity <= 0 {
		capacity = DefaultRecentSearches
	}

	return &RecentSearchStore{
		redis:    redis,
		capacity: capacity,
		ttl:      ttl,
	}
}

func (s *RecentSearchStore) GetCacheKey(clientID string) string {
	return fmt.Sprintf("status:recent:%s", clientID)
}

// List returns the client's searches, newest first.
func (s *RecentSearchStore) List(ctx context.Context, clientID string) ([]dto.RecentSearch, error) {
	data, err := s.redis.Get(ctx, s.GetCacheKey(clientID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []dto.RecentSearch{}, nil
		}
		return nil, fmt.Errorf("failed to get recent searches: %w", err)
	}

	var searches []dto.RecentSearch
	if err := json.Unmarshal(data, &searches); err != nil {
		return nil, fmt.Errorf("failed to unmarshal recent searches: %w", err)
	}

	return searches, nil
}

// Add puts search first, dropping an older entry with the same key and
// anything beyond capacity. Concurrent adds for one client are last writer wins.
func (s *RecentSearchStore) Add(ctx context.Context, clientID string, search dto.RecentSearch) ([]dto.RecentSearch, error) {
	current, err := s.List(ctx, clientID)
	if err != nil {
		return nil, err
	}

	searches := Prepend(current, search, s.capacity)

	data, err := json.Marshal(searches)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal recent searches: %w", err)
	}

	if err := s.redis.Set(ctx, s.GetCacheKey(clientID), data, s.ttl).Err(); err != nil {
		return nil, fmt.Errorf("failed to set recent searches: %w", err)
	}

	return searches, nil
}

// Prepend returns a new list with search first, deduplicated by key and capped.
func Prepend(searches []dto.RecentSearch, search dto.RecentSearch, capacity int) []dto.RecentSearch {
	result := make([]dto.RecentSearch, 0, capacity)
	result = append(result, search)

	for _, existing := range searches {
		if len(result) == capacity {
			break
		}
		if existing.Key() == search.Key() {
			continue
		}
		result = append(result, existing)
	}

	return result
}
