package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Anuragkundu/WorkFlowHQ/pkg/logger"
)

const statsTTL = 5 * time.Minute

type Service struct {
	client *redis.Client
}

// NewService connects to Redis and verifies the connection. Returns nil on
// failure so callers can run without the cache.
func NewService(addr, password string, db int) *Service {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		logger.Log.Error().Err(err).Str("addr", addr).Msg("failed to connect to Redis")
		return nil
	}

	logger.Log.Info().Str("addr", addr).Msg("connected to Redis")
	return &Service{client: client}
}

func statsKey(ownerID string) string {
	return fmt.Sprintf("stats:%s", ownerID)
}

// GetStats returns the owner's cached dashboard stats, or nil on a miss.
func (s *Service) GetStats(ctx context.Context, ownerID string, dest interface{}) (bool, error) {
	data, err := s.client.Get(ctx, statsKey(ownerID)).Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal([]byte(data), dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetStats caches the owner's dashboard stats with a short TTL; activity
// events invalidate it sooner.
func (s *Service) SetStats(ctx context.Context, ownerID string, stats interface{}) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, statsKey(ownerID), data, statsTTL).Err()
}

// InvalidateStats drops the owner's cached stats.
func (s *Service) InvalidateStats(ctx context.Context, ownerID string) error {
	return s.client.Del(ctx, statsKey(ownerID)).Err()
}

func (s *Service) Close() error {
	return s.client.Close()
}
