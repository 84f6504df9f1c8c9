package kafka

import (
	"context"
	"encoding/json"
	"log/slog"

	"track/internal/core/application/orchestration"
)

// Topics names the five inbound event topics. Each field maps one upstream
// signal to its coordinator handler.
type Topics struct {
	TrackingStartRequested string
	HubSegmentDeparted     string
	HubSegmentArrived      string
	LastMileDeparted       string
	LastMileCompleted      string
}

// All returns the topic names for consumer group subscription.
func (t Topics) All() []string {
	return []string{
		t.TrackingStartRequested,
		t.HubSegmentDeparted,
		t.HubSegmentArrived,
		t.LastMileDeparted,
		t.LastMileCompleted,
	}
}

// flowCoordinator is the part of the orchestration coordinator the listener
// dispatches to.
type flowCoordinator interface {
	HandleTrackingStartRequested(ctx context.Context, event orchestration.TrackingStartRequested) error
	HandleHubSegmentDeparted(ctx context.Context, event orchestration.HubSegmentDeparted) error
	HandleHubSegmentArrived(ctx context.Context, event orchestration.HubSegmentArrived) error
	HandleLastMileDeparted(ctx context.Context, event orchestration.LastMileDeparted) error
	HandleLastMileCompleted(ctx context.Context, event orchestration.LastMileCompleted) error
}

// Listener decodes inbound event payloads and dispatches them to the
// delivery flow coordinator.
type Listener struct {
	coordinator flowCoordinator
	topics      Topics
	logger      *slog.Logger
}

// NewListener creates the event listener.
func NewListener(coordinator flowCoordinator, topics Topics, logger *slog.Logger) *Listener {
	return &Listener{
		coordinator: coordinator,
		topics:      topics,
		logger:      logger.With("component", "kafka-listener"),
	}
}

// Handle dispatches one message to the coordinator handler for its topic.
// Malformed payloads are logged and skipped so a poison message cannot block
// the partition. Handler errors propagate so the offset is not committed.
func (l *Listener) Handle(ctx context.Context, topic string, value []byte) error {
	switch topic {
	case l.topics.TrackingStartRequested:
		var event orchestration.TrackingStartRequested
		if !l.decode(ctx, topic, value, &event) {
			return nil
		}
		return l.coordinator.HandleTrackingStartRequested(ctx, event)

	case l.topics.HubSegmentDeparted:
		var event orchestration.HubSegmentDeparted
		if !l.decode(ctx, topic, value, &event) {
			return nil
		}
		return l.coordinator.HandleHubSegmentDeparted(ctx, event)

	case l.topics.HubSegmentArrived:
		var event orchestration.HubSegmentArrived
		if !l.decode(ctx, topic, value, &event) {
			return nil
		}
		return l.coordinator.HandleHubSegmentArrived(ctx, event)

	case l.topics.LastMileDeparted:
		var event orchestration.LastMileDeparted
		if !l.decode(ctx, topic, value, &event) {
			return nil
		}
		return l.coordinator.HandleLastMileDeparted(ctx, event)

	case l.topics.LastMileCompleted:
		var event orchestration.LastMileCompleted
		if !l.decode(ctx, topic, value, &event) {
			return nil
		}
		return l.coordinator.HandleLastMileCompleted(ctx, event)

	default:
		l.logger.WarnContext(ctx, "message from unexpected topic", "topic", topic)
		return nil
	}
}

func (l *Listener) decode(ctx context.Context, topic string, value []byte, target any) bool {
	if err := json.Unmarshal(value, target); err != nil {
		l.logger.ErrorContext(ctx, "failed to decode event payload",
			"topic", topic, "error", err)
		return false
	}
	return true
}
