package kafka

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	"github.com/Anuragkundu/WorkFlowHQ/internal/events"
	"github.com/Anuragkundu/WorkFlowHQ/internal/redis"
	"github.com/Anuragkundu/WorkFlowHQ/pkg/logger"
)

// Consumer drains the activity topic and keeps the Redis stats cache
// honest: any mutation for an owner drops that owner's cached dashboard
// aggregates so the next read recomputes them.
type Consumer struct {
	reader *kafka.Reader
	cache  *redis.Service
}

func NewConsumer(brokers []string, groupID string, cache *redis.Service) *Consumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: brokers,
		GroupID: groupID,
		Topic:   events.ActivityTopic,
	})
	return &Consumer{reader: reader, cache: cache}
}

// Start consumes until ctx is cancelled.
func (c *Consumer) Start(ctx context.Context) {
	for {
		message, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logger.Log.Error().Err(err).Msg("activity consumer read failed")
			continue
		}

		var event events.ActivityEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			logger.Log.Error().Err(err).Msg("failed to unmarshal activity event")
			continue
		}

		if err := c.cache.InvalidateStats(ctx, event.OwnerID); err != nil {
			logger.Log.Error().Err(err).
				Str("ownerId", event.OwnerID).
				Msg("failed to invalidate stats cache")
			continue
		}

		logger.Log.Info().
			Str("eventType", event.EventType).
			Str("collection", event.Collection).
			Str("ownerId", event.OwnerID).
			Msg("processed activity event")
	}
}

func (c *Consumer) Close() error {
	return c.reader.Close()
}
