package kafka

import (
	"testing"

	"github.com/segmentio/kafka-go"

	"github.com/Anuragkundu/WorkFlowHQ/internal/events"
)

// The writer must balance by message key, otherwise events published for
// one owner scatter across partitions and lose their order.
func TestNewProducerBalancesByKey(t *testing.T) {
	p := NewProducer([]string{"localhost:9092"})
	defer p.Close()

	if _, ok := p.activityWriter.Balancer.(*kafka.Hash); !ok {
		t.Errorf("Balancer = %T, want *kafka.Hash", p.activityWriter.Balancer)
	}
	if p.activityWriter.Topic != events.ActivityTopic {
		t.Errorf("Topic = %q, want %q", p.activityWriter.Topic, events.ActivityTopic)
	}
}
