package commands

import (
	"context"

	"track/internal/core/domain/model/track"
)

// RecordHubDelaysCommandHandler scans hub transits that passed their
// estimated delivery time and records a delay event for the current segment.
// A segment gets at most one delay event per track.
type RecordHubDelaysCommandHandler struct {
	uowFactory TrackUoWFactory
}

// NewRecordHubDelaysCommandHandler creates the handler.
func NewRecordHubDelaysCommandHandler(uowFactory TrackUoWFactory) RecordHubDelaysCommandHandler {
	return RecordHubDelaysCommandHandler{uowFactory: uowFactory}
}

// Handle records delay events for all overdue hub transits. It returns the
// number of delay events recorded.
func (h RecordHubDelaysCommandHandler) Handle(ctx context.Context, cmd RecordHubDelaysCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	overdue, err := uow.TrackRepository().GetAllHubInProgressPastEstimate(ctx, cmd.Now())
	if err != nil {
		return 0, err
	}

	recorded := 0
	for _, aggregate := range overdue {
		segmentIndex := aggregate.CurrentSegmentIndex()

		exists, err := uow.TrackEventRepository().ExistsSegmentDelay(ctx, aggregate.ID(), segmentIndex)
		if err != nil {
			return 0, err
		}
		if exists {
			continue
		}

		event := track.NewHubSegmentDelayedEvent(aggregate.ID(), aggregate.DestinationHubID(), segmentIndex, ActorSystem)
		if err := uow.TrackEventRepository().Add(ctx, &event); err != nil {
			return 0, err
		}
		recorded++
	}

	if err := uow.Commit(ctx); err != nil {
		return 0, err
	}

	return recorded, nil
}
