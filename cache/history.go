// Package cache holds the listening-history store: a per-user list of
// the most recently played track IDs, capped at HistoryCap entries with
// FIFO eviction.
package cache

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/go-redis/redis/v8"
)

// HistoryCap is the maximum number of entries kept per user.
const HistoryCap = 5

// ErrEmptyHistory is returned by LastPlayed when the user has no
// recorded plays.
var ErrEmptyHistory = errors.New("listening history is empty")

// HistoryStore records and reads a user's recent plays.
type HistoryStore interface {
	// RecordPlay appends trackID to the user's history, evicting the
	// oldest entry when the list is full, and returns the resulting
	// sequence oldest first.
	RecordPlay(ctx context.Context, userID int64, trackID string) ([]string, error)
	// History returns the user's history oldest first. A user with no
	// plays yields an empty slice, not an error.
	History(ctx context.Context, userID int64) ([]string, error)
	// LastPlayed returns the most recently played track ID.
	LastPlayed(ctx context.Context, userID int64) (string, error)
}

// historyKey builds the Redis key for a user's listening history.
func historyKey(userID int64) string {
	return fmt.Sprintf("history:%d", userID)
}

// RedisHistory implements HistoryStore on a Redis list. Append and
// eviction run in one transactional pipeline, so concurrent plays for
// the same user cannot lose an update.
type RedisHistory struct {
	client *redis.Client
}

// NewRedisHistory creates a Redis-backed history store.
func NewRedisHistory(client *redis.Client) *RedisHistory {
	return &RedisHistory{client: client}
}

// RecordPlay pushes trackID and trims the list to the last HistoryCap
// entries in a single pipeline.
func (s *RedisHistory) RecordPlay(ctx context.Context, userID int64, trackID string) ([]string, error) {
	key := historyKey(userID)

	pipe := s.client.TxPipeline()
	pipe.RPush(ctx, key, trackID)
	pipe.LTrim(ctx, key, -HistoryCap, -1)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to record play for user %d: %w", userID, err)
	}

	return s.History(ctx, userID)
}

// History returns the full capped list, oldest first.
func (s *RedisHistory) History(ctx context.Context, userID int64) ([]string, error) {
	items, err := s.client.LRange(ctx, historyKey(userID), 0, -1).Result()
	if err != nil {
		if err == redis.Nil {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to read history for user %d: %w", userID, err)
	}
	return items, nil
}

// LastPlayed returns the newest entry.
func (s *RedisHistory) LastPlayed(ctx context.Context, userID int64) (string, error) {
	last, err := s.client.LIndex(ctx, historyKey(userID), -1).Result()
	if err != nil {
		if err == redis.Nil {
			return "", ErrEmptyHistory
		}
		return "", fmt.Errorf("failed to read last play for user %d: %w", userID, err)
	}
	return last, nil
}

// MemoryHistory implements HistoryStore in process memory with the same
// capping semantics as RedisHistory. Used in tests.
type MemoryHistory struct {
	mu      sync.Mutex
	entries map[int64][]string
}

// NewMemoryHistory creates an empty in-memory history store.
func NewMemoryHistory() *MemoryHistory {
	return &MemoryHistory{entries: make(map[int64][]string)}
}

func (s *MemoryHistory) RecordPlay(_ context.Context, userID int64, trackID string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := append(s.entries[userID], trackID)
	if len(list) > HistoryCap {
		list = list[len(list)-HistoryCap:]
	}
	s.entries[userID] = list

	out := make([]string, len(list))
	copy(out, list)
	return out, nil
}

func (s *MemoryHistory) History(_ context.Context, userID int64) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.entries[userID]
	out := make([]string, len(list))
	copy(out, list)
	return out, nil
}

func (s *MemoryHistory) LastPlayed(_ context.Context, userID int64) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.entries[userID]
	if len(list) == 0 {
		return "", ErrEmptyHistory
	}
	return list[len(list)-1], nil
}
