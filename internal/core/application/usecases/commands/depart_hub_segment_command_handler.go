package commands

import (
	"context"

	"track/internal/core/domain/model/track"
)

// DepartHubSegmentCommandHandler applies a hub segment departure to the track
// and records the matching history event in the same transaction.
type DepartHubSegmentCommandHandler struct {
	uowFactory TrackUoWFactory
}

// NewDepartHubSegmentCommandHandler creates a handler for hub segment departures.
func NewDepartHubSegmentCommandHandler(uowFactory TrackUoWFactory) DepartHubSegmentCommandHandler {
	return DepartHubSegmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the departure command and returns the updated track.
func (h *DepartHubSegmentCommandHandler) Handle(ctx context.Context, cmd DepartHubSegmentCommand) (*track.Track, error) {
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

	if err = aggregate.DepartHubSegment(cmd.SegmentIndex(), cmd.FromHubID(), cmd.ToHubID()); err != nil {
		return nil, err
	}
	aggregate.Touch(cmd.UpdatedBy())

	if err = trackRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	event := track.NewHubSegmentDepartedEvent(aggregate.ID(), cmd.FromHubID(), cmd.SegmentIndex(), cmd.UpdatedBy())
	if err = uow.TrackEventRepository().Add(ctx, &event); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
