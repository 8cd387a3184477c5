// Package kafka publishes committed delivery status changes.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"dispatch/internal/core/domain/model/delivery"

	"github.com/IBM/sarama"
)

// DefaultTopic receives one message per timeline entry written by a transition.
const DefaultTopic = "delivery.status-changed"

// StatusChangedMessage is the JSON payload of a status change.
type StatusChangedMessage struct {
	DeliveryID string    `json:"delivery_id"`
	Reference  string    `json:"reference"`
	From       string    `json:"from"`
	To         string    `json:"to"`
	Label      string    `json:"label"`
	Note       string    `json:"note"`
	Actor      string    `json:"actor"`
	OccurredAt time.Time `json:"occurred_at"`
}

func newStatusChangedMessage(c delivery.StatusChanged) StatusChangedMessage {
	return StatusChangedMessage{
		DeliveryID: c.DeliveryID.String(),
		Reference:  c.Reference.String(),
		From:       c.From.String(),
		To:         c.To.String(),
		Label:      c.Label.String(),
		Note:       c.Note,
		Actor:      c.Actor,
		OccurredAt: c.OccurredAt.UTC(),
	}
}

// Publisher sends status changes keyed by delivery id so one delivery's
// changes stay ordered within a partition. Send failures are logged only.
type Publisher struct {
	producer sarama.SyncProducer
	topic    string
	logger   *slog.Logger
}

// NewProducer builds a synchronous producer that waits for all in-sync replicas.
func NewProducer(brokers []string) (sarama.SyncProducer, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Return.Successes = true
	config.Producer.Idempotent = true
	config.Net.MaxOpenRequests = 1

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}
	return producer, nil
}

func NewPublisher(producer sarama.SyncProducer, topic string, logger *slog.Logger) *Publisher {
	if topic == "" {
		topic = DefaultTopic
	}
	return &Publisher{
		producer: producer,
		topic:    topic,
		logger:   logger.With("component", "kafka-publisher"),
	}
}

func (p *Publisher) Publish(ctx context.Context, changes ...delivery.StatusChanged) {
	if len(changes) == 0 {
		return
	}

	messages := make([]*sarama.ProducerMessage, 0, len(changes))
	for _, c := range changes {
		payload, err := json.Marshal(newStatusChangedMessage(c))
		if err != nil {
			p.logger.ErrorContext(ctx, "failed to marshal status change",
				"delivery_id", c.DeliveryID.String(),
				"error", err)
			continue
		}
		messages = append(messages, &sarama.ProducerMessage{
			Topic:     p.topic,
			Key:       sarama.StringEncoder(c.DeliveryID.String()),
			Value:     sarama.ByteEncoder(payload),
			Timestamp: c.OccurredAt,
		})
	}

	for _, msg := range messages {
		partition, offset, err := p.producer.SendMessage(msg)
		if err != nil {
			p.logger.ErrorContext(ctx, "failed to send status change",
				"topic", p.topic,
				"key", msg.Key,
				"error", err)
			continue
		}
		p.logger.DebugContext(ctx, "status change sent",
			"topic", p.topic,
			"partition", partition,
			"offset", offset)
	}
}

func (p *Publisher) Close() error {
	if err := p.producer.Close(); err != nil {
		return fmt.Errorf("failed to close kafka producer: %w", err)
	}
	return nil
}

// NoopPublisher drops every change. It is used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, ...delivery.StatusChanged) {}

func (NoopPublisher) Close() error { return nil }
