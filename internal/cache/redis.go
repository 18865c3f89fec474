package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"agrivision/internal/models"

	"github.com/redis/go-redis/v9"
)

const leaderboardKey = "leaderboard:top"

type RedisClient struct {
	client *redis.Client
	ctx    context.Context
}

func NewRedisClient() (*RedisClient, error) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	_, err = client.Ping(ctx).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisClient{
		client: client,
		ctx:    ctx,
	}, nil
}

func (r *RedisClient) Close() error {
	return r.client.Close()
}

// StoreLeaderboard replaces the cached snapshot with expiration.
func (r *RedisClient) StoreLeaderboard(entries []models.LeaderboardEntry, ttl time.Duration) error {
	jsonData, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to marshal leaderboard: %w", err)
	}

	err = r.client.Set(r.ctx, leaderboardKey, jsonData, ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to store leaderboard in Redis: %w", err)
	}

	return nil
}

// GetLeaderboard returns the cached snapshot, with found=false on a miss.
func (r *RedisClient) GetLeaderboard() ([]models.LeaderboardEntry, bool, error) {
	data, err := r.client.Get(r.ctx, leaderboardKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get leaderboard from Redis: %w", err)
	}

	var entries []models.LeaderboardEntry
	if err := json.Unmarshal([]byte(data), &entries); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal leaderboard: %w", err)
	}

	return entries, true, nil
}

// GetStatus reports connection pool health for the debug surface.
func (r *RedisClient) GetStatus() (map[string]interface{}, error) {
	if err := r.client.Ping(r.ctx).Err(); err != nil {
		return nil, err
	}

	stats := r.client.PoolStats()

	return map[string]interface{}{
		"connected":    true,
		"hits":         stats.Hits,
		"misses":       stats.Misses,
		"active_conns": stats.TotalConns,
	}, nil
}
