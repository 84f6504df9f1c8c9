// Package kafka consumes the delivery events published by the order, hub
// delivery and last mile services and feeds them to the flow coordinator.
package kafka

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
)

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Consumer reads delivery events from the configured topics within a
// consumer group.
type Consumer struct {
	r messageReader
}

// NewConsumer creates a consumer subscribed to the given topics.
func NewConsumer(brokers []string, groupID string, topics []string) *Consumer {
	return &Consumer{
		r: kafka.NewReader(kafka.ReaderConfig{
			Brokers:           brokers,
			GroupID:           groupID,
			GroupTopics:       topics,
			HeartbeatInterval: 3 * time.Second,
			SessionTimeout:    30 * time.Second,
		}),
	}
}

func newConsumerWithReader(r messageReader) *Consumer {
	return &Consumer{r: r}
}

func (c *Consumer) Close() error {
	return c.r.Close()
}

// Consume fetches messages and hands them to the handler until the context
// is cancelled or an error occurs. Offsets are committed only after the
// handler succeeds so a failed message is redelivered.
func (c *Consumer) Consume(ctx context.Context, handler func(ctx context.Context, topic string, value []byte) error) error {
	for {
		msg, err := c.r.FetchMessage(ctx)
		if err != nil {
			return errors.Wrap(err, "fetch message")
		}
		if err := handler(ctx, msg.Topic, msg.Value); err != nil {
			return err
		}
		if err := c.r.CommitMessages(ctx, msg); err != nil {
			return errors.Wrap(err, "commit message")
		}
	}
}
