package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nickofolas/wdle/internal/game"
)

const keyPrefix = "wdle"

// roundKey returns the Redis key for a round snapshot.
func roundKey(id string) string {
	return fmt.Sprintf("%s:round:%s", keyPrefix, id)
}

// RedisConfig holds Redis connection and expiry settings.
type RedisConfig struct {
	// URL is the Redis connection URL (e.g. redis://localhost:6379/0).
	URL string

	PoolSize     int
	MinIdleConns int

	// RoundTTL bounds how long an untouched round is kept.
	RoundTTL time.Duration
}

// DefaultRedisConfig returns defaults for local development.
func DefaultRedisConfig() RedisConfig {
	return RedisConfig{
		URL:          "redis://localhost:6379",
		PoolSize:     10,
		MinIdleConns: 2,
		RoundTTL:     24 * time.Hour,
	}
}

// Redis is a Redis-backed Store.
type Redis struct {
	client *redis.Client
	cfg    RedisConfig
}

var _ Store = (*Redis)(nil)

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(ctx context.Context, cfg RedisConfig) (*Redis, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("store: parse redis url: %w", err)
	}
	if cfg.PoolSize > 0 {
		opts.PoolSize = cfg.PoolSize
	}
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("store: ping redis: %w", err)
	}
	return &Redis{client: client, cfg: cfg}, nil
}

// NewRedisWithClient wraps an existing client (used by tests).
func NewRedisWithClient(client *redis.Client, cfg RedisConfig) *Redis {
	return &Redis{client: client, cfg: cfg}
}

// Close closes the Redis connection.
func (s *Redis) Close() error {
	return s.client.Close()
}

func (s *Redis) Save(ctx context.Context, snap game.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("store: encode round %s: %w", snap.ID, err)
	}
	if err := s.client.Set(ctx, roundKey(snap.ID), data, s.cfg.RoundTTL).Err(); err != nil {
		return fmt.Errorf("store: save round %s: %w", snap.ID, err)
	}
	return nil
}

func (s *Redis) Get(ctx context.Context, id string) (game.Snapshot, error) {
	data, err := s.client.Get(ctx, roundKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return game.Snapshot{}, ErrNotFound
	}
	if err != nil {
		return game.Snapshot{}, fmt.Errorf("store: get round %s: %w", id, err)
	}
	var snap game.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return game.Snapshot{}, fmt.Errorf("store: decode round %s: %w", id, err)
	}
	return snap, nil
}

func (s *Redis) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, roundKey(id)).Err(); err != nil {
		return fmt.Errorf("store: delete round %s: %w", id, err)
	}
	return nil
}
