package commands

import (
	"context"

	"track/internal/core/domain/model/track"
)

// PickUpLastMileCommandHandler records that the last mile driver picked up
// the shipment. The track must have all hub segments completed.
type PickUpLastMileCommandHandler struct {
	uowFactory TrackUoWFactory
}

// NewPickUpLastMileCommandHandler creates the handler.
func NewPickUpLastMileCommandHandler(uowFactory TrackUoWFactory) PickUpLastMileCommandHandler {
	return PickUpLastMileCommandHandler{uowFactory: uowFactory}
}

// Handle marks the track as picked up for last mile delivery and records
// the pickup event.
func (h PickUpLastMileCommandHandler) Handle(ctx context.Context, cmd PickUpLastMileCommand) (*track.Track, error) {
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

	if err := aggregate.PickUpLastMile(); err != nil {
		return nil, err
	}
	aggregate.Touch(cmd.UpdatedBy())

	if err := trackRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	event := track.NewLastMilePickedUpEvent(aggregate.ID(), cmd.HubID(), cmd.UpdatedBy())
	if err := uow.TrackEventRepository().Add(ctx, &event); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
