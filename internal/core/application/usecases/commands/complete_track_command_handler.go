package commands

import (
	"context"

	"track/internal/core/domain/model/track"
)

// CompleteTrackCommandHandler closes the track after the receiver got the
// shipment. It records both the delivery and the tracking completion events.
type CompleteTrackCommandHandler struct {
	uowFactory TrackUoWFactory
}

// NewCompleteTrackCommandHandler creates the handler.
func NewCompleteTrackCommandHandler(uowFactory TrackUoWFactory) CompleteTrackCommandHandler {
	return CompleteTrackCommandHandler{uowFactory: uowFactory}
}

// Handle completes the track and records the closing events.
func (h CompleteTrackCommandHandler) Handle(ctx context.Context, cmd CompleteTrackCommand) (*track.Track, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	trackRepo := uow.TrackRepository()

	aggregate, err := trackRepo.Get(ctx, cmd.TrackID())
	if err != nil {
		return nil, err
	}

	if err := aggregate.Complete(); err != nil {
		return nil, err
	}
	aggregate.Touch(cmd.UpdatedBy())

	if err := trackRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	delivered := track.NewDeliveredEvent(aggregate.ID(), cmd.UpdatedBy())
	if err := uow.TrackEventRepository().Add(ctx, &delivered); err != nil {
		return nil, err
	}

	completed := track.NewTrackingCompletedEvent(aggregate.ID(), cmd.UpdatedBy())
	if err := uow.TrackEventRepository().Add(ctx, &completed); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
