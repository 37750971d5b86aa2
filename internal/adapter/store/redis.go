// Package store provides the agent profile store implementations: a Redis
// store for production and an in-memory store for tests and local runs.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hanvietair/flight-fare-service/internal/domain"
)

// historyLimit caps an agent's stored search history.
const historyLimit = 50

// RedisConfig holds the Redis connection settings.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// DefaultRedisConfig returns settings for a local Redis.
func DefaultRedisConfig() RedisConfig {
	return RedisConfig{
		Host: "localhost",
		Port: "6379",
	}
}

// RedisStore implements domain.ProfileStore on Redis. Profiles live under
// profile:{agentID} as JSON values, search history under
// search_history:{agentID} as a capped list, newest first.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(cfg RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Host + ":" + cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &RedisStore{client: client}, nil
}

func profileKey(agentID string) string {
	return "profile:" + agentID
}

func historyKey(agentID string) string {
	return "search_history:" + agentID
}

// GetProfile implements domain.ProfileStore.
func (s *RedisStore) GetProfile(ctx context.Context, agentID string) (*domain.AgentProfile, error) {
	data, err := s.client.Get(ctx, profileKey(agentID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	var profile domain.AgentProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("decode profile %s: %w", agentID, err)
	}
	return &profile, nil
}

// SaveProfile stores the full profile.
func (s *RedisStore) SaveProfile(ctx context.Context, profile *domain.AgentProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	return s.client.Set(ctx, profileKey(profile.ID), data, 0).Err()
}

// SaveBanner implements domain.ProfileStore. The profile must already exist;
// only its banner is replaced.
func (s *RedisStore) SaveBanner(ctx context.Context, agentID, banner string) error {
	profile, err := s.GetProfile(ctx, agentID)
	if err != nil {
		return err
	}
	profile.Banner = banner
	return s.SaveProfile(ctx, profile)
}

// RecordSearch implements domain.ProfileStore.
func (s *RedisStore) RecordSearch(ctx context.Context, rec domain.SearchRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode search record: %w", err)
	}

	key := historyKey(rec.AgentID)
	pipe := s.client.TxPipeline()
	pipe.LPush(ctx, key, data)
	pipe.LTrim(ctx, key, 0, historyLimit-1)
	_, err = pipe.Exec(ctx)
	return err
}

// RecentSearches implements domain.ProfileStore, newest first.
func (s *RedisStore) RecentSearches(ctx context.Context, agentID string, limit int) ([]domain.SearchRecord, error) {
	if limit <= 0 || limit > historyLimit {
		limit = historyLimit
	}

	entries, err := s.client.LRange(ctx, historyKey(agentID), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("get search history: %w", err)
	}

	records := make([]domain.SearchRecord, 0, len(entries))
	for _, entry := range entries {
		var rec domain.SearchRecord
		if err := json.Unmarshal([]byte(entry), &rec); err != nil {
			// A corrupt entry should not hide the rest of the history.
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

// Close closes the underlying Redis client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// Ensure RedisStore implements ProfileStore at compile time.
var _ domain.ProfileStore = (*RedisStore)(nil)
