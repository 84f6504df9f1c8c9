package commands

import (
	"context"

	"track/internal/core/domain/model/track"
)

// DepartLastMileCommandHandler records that the last mile driver left the
// destination hub towards the receiver.
type DepartLastMileCommandHandler struct {
	uowFactory TrackUoWFactory
}

// NewDepartLastMileCommandHandler creates the handler.
func NewDepartLastMileCommandHandler(uowFactory TrackUoWFactory) DepartLastMileCommandHandler {
	return DepartLastMileCommandHandler{uowFactory: uowFactory}
}

// Handle moves the track into the last mile transit phase and records the
// departure event.
func (h DepartLastMileCommandHandler) Handle(ctx context.Context, cmd DepartLastMileCommand) (*track.Track, error) {
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

	if err := aggregate.DepartLastMile(); err != nil {
		return nil, err
	}
	aggregate.Touch(cmd.UpdatedBy())

	if err := trackRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	event := track.NewLastMileDepartedEvent(aggregate.ID(), cmd.UpdatedBy())
	if err := uow.TrackEventRepository().Add(ctx, &event); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
