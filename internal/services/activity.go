package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/Anuragkundu/WorkFlowHQ/internal/events"
	"github.com/Anuragkundu/WorkFlowHQ/internal/kafka"
	"github.com/Anuragkundu/WorkFlowHQ/internal/redis"
	"github.com/Anuragkundu/WorkFlowHQ/pkg/logger"
)

// activityHooks fans a completed mutation out to the activity topic and
// drops the owner's cached dashboard stats. Both effects are best effort:
// a failure is logged, never surfaced, and never unwinds the mutation.
type activityHooks struct {
	producer *kafka.Producer
	cache    *redis.Service
}

func (h activityHooks) record(ctx context.Context, eventType, collection string, recordID, ownerID uuid.UUID) {
	if h.producer != nil {
		event := events.NewActivityEvent(eventType, collection, recordID, ownerID)
		if err := h.producer.PublishActivityEvent(ctx, event); err != nil {
			logger.Log.Error().Err(err).
				Str("eventType", eventType).
				Str("collection", collection).
				Msg("failed to publish activity event")
		}
	}
	if h.cache != nil {
		if err := h.cache.InvalidateStats(ctx, ownerID.String()); err != nil {
			logger.Log.Error().Err(err).
				Str("ownerId", ownerID.String()).
				Msg("failed to invalidate stats cache")
		}
	}
}
