package messaging

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/finwallet/installment-service/internal/domain/event"
	"github.com/finwallet/installment-service/pkg/kafka"
)

// envelope is the wire format for published domain events. The concrete
// event struct is embedded as the payload.
type envelope struct {
	EventID       string      `json:"event_id"`
	EventType     string      `json:"event_type"`
	AggregateID   string      `json:"aggregate_id"`
	AggregateType string      `json:"aggregate_type"`
	OccurredAt    string      `json:"occurred_at"`
	Payload       interface{} `json:"payload"`
}

// KafkaPublisher implements port.EventPublisher on the shared Kafka producer.
// The event type doubles as the topic name.
type KafkaPublisher struct {
	producer *kafka.Producer
}

// NewKafkaPublisher wires the producer.
func NewKafkaPublisher(producer *kafka.Producer) *KafkaPublisher {
	return &KafkaPublisher{producer: producer}
}

// Publish serialises each event into its envelope and sends it to the topic
// named after the event type, keyed by aggregate ID for per-plan ordering.
func (p *KafkaPublisher) Publish(ctx context.Context, events ...event.DomainEvent) error {
	for _, evt := range events {
		env := envelope{
			EventID:       evt.EventID().String(),
			EventType:     evt.EventType(),
			AggregateID:   evt.AggregateID(),
			AggregateType: evt.AggregateType(),
			OccurredAt:    evt.OccurredAt().UTC().Format("2006-01-02T15:04:05.000Z07:00"),
			Payload:       evt,
		}

		value, err := json.Marshal(env)
		if err != nil {
			return fmt.Errorf("marshal event %s: %w", evt.EventType(), err)
		}

		msg := kafka.Message{
			Key:   []byte(evt.AggregateID()),
			Value: value,
			Headers: map[string]string{
				"event_type": evt.EventType(),
			},
		}

		if err := p.producer.Publish(ctx, evt.EventType(), msg); err != nil {
			return fmt.Errorf("publish event %s: %w", evt.EventType(), err)
		}
	}
	return nil
}
