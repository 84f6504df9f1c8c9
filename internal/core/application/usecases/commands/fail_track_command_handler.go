package commands

import (
	"context"

	"track/internal/core/domain/model/track"
)

// FailTrackCommandHandler marks a track as failed. Failure is always
// recorded, even for tracks that already reached a terminal status, so a
// late failure signal is never lost.
type FailTrackCommandHandler struct {
	uowFactory TrackUoWFactory
}

// NewFailTrackCommandHandler creates the handler.
func NewFailTrackCommandHandler(uowFactory TrackUoWFactory) FailTrackCommandHandler {
	return FailTrackCommandHandler{uowFactory: uowFactory}
}

// Handle fails the track and records the failure event with its reason.
func (h FailTrackCommandHandler) Handle(ctx context.Context, cmd FailTrackCommand) (*track.Track, error) {
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

	aggregate.Fail()
	aggregate.Touch(cmd.UpdatedBy())

	if err := trackRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	event := track.NewTrackingFailedEvent(aggregate.ID(), cmd.Reason(), cmd.UpdatedBy())
	if err := uow.TrackEventRepository().Add(ctx, &event); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
