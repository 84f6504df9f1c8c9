package commands

import (
	"context"

	"track/internal/core/domain/model/track"
)

// ArriveHubSegmentCommandHandler applies a hub segment arrival to the track
// and records the matching history event in the same transaction.
type ArriveHubSegmentCommandHandler struct {
	uowFactory TrackUoWFactory
}

// NewArriveHubSegmentCommandHandler creates a handler for hub segment arrivals.
func NewArriveHubSegmentCommandHandler(uowFactory TrackUoWFactory) ArriveHubSegmentCommandHandler {
	return ArriveHubSegmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the arrival command and returns the updated track.
// The caller inspects the returned track to decide whether the hub leg
// finished and the last mile leg should start.
func (h *ArriveHubSegmentCommandHandler) Handle(ctx context.Context, cmd ArriveHubSegmentCommand) (*track.Track, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	trackRepo := uow.TrackRepository()

	aggregate, err := trackRepo.Get(ctx, cmd.TrackID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.ArriveHubSegment(cmd.SegmentIndex()); err != nil {
		return nil, err
	}
	aggregate.Touch(cmd.UpdatedBy())

	if err = trackRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	event := track.NewHubSegmentArrivedEvent(aggregate.ID(), cmd.HubID(), cmd.SegmentIndex(), cmd.UpdatedBy())
	if err = uow.TrackEventRepository().Add(ctx, &event); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
