package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/Anuragkundu/WorkFlowHQ/internal/events"
	"github.com/Anuragkundu/WorkFlowHQ/pkg/logger"
)

type Producer struct {
	activityWriter *kafka.Writer
}

// NewProducer creates a producer for the workspace activity topic.
func NewProducer(brokers []string) *Producer {
	// Hash balancing routes each owner's events to one partition, which
	// is what keeps them ordered for a consumer.
	activityWriter := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        events.ActivityTopic,
		Balancer:     &kafka.Hash{},
		WriteTimeout: 10 * time.Second,
		ReadTimeout:  10 * time.Second,
	}

	return &Producer{activityWriter: activityWriter}
}

// PublishActivityEvent publishes a mutation event keyed by owner. Failures
// are logged by the caller; publishing is best effort and never blocks a
// completed mutation from succeeding.
func (p *Producer) PublishActivityEvent(ctx context.Context, event *events.ActivityEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}

	message := kafka.Message{
		Key:   []byte(event.OwnerID),
		Value: value,
		Time:  event.Timestamp,
	}

	if err := p.activityWriter.WriteMessages(ctx, message); err != nil {
		return err
	}

	logger.Log.Debug().
		Str("eventType", event.EventType).
		Str("collection", event.Collection).
		Str("recordId", event.RecordID).
		Msg("published activity event")
	return nil
}

func (p *Producer) Close() error {
	if p.activityWriter != nil {
		return p.activityWriter.Close()
	}
	return nil
}
