package commands

import (
	"context"
	"errors"
	"fmt"

	"track/internal/core/domain/model/track"
)

// ErrTrackAlreadyExists is returned when a live track already exists for the
// order a creation was requested for.
var ErrTrackAlreadyExists = errors.New("track already exists for order")

// CreateTrackCommandHandler handles the business logic for track creation.
// Rejects duplicates per order, builds the aggregate for the hub or last mile
// only route and records the tracking started event in the same transaction.
//
// Example:
//
//	handler := NewCreateTrackCommandHandler(uowFactory)
//	cmd, _ := NewCreateTrackCommand(...)
//	created, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrTrackAlreadyExists) {
//	    // the order is already tracked
//	}
type CreateTrackCommandHandler struct {
	uowFactory TrackUoWFactory
}

// NewCreateTrackCommandHandler creates a handler for track creation operations.
// Requires a TrackUoWFactory for transactional persistence.
func NewCreateTrackCommandHandler(uowFactory TrackUoWFactory) CreateTrackCommandHandler {
	return CreateTrackCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the track creation command and returns the stored track.
func (h *CreateTrackCommandHandler) Handle(ctx context.Context, cmd CreateTrackCommand) (*track.Track, error) {
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

	exists, err := trackRepo.ExistsByOrderID(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: %s", ErrTrackAlreadyExists, cmd.OrderID())
	}

	var aggregate *track.Track
	if cmd.RequiresHubDelivery() {
		aggregate, err = track.NewTrackWithHubDelivery(
			cmd.OrderID(),
			cmd.OrderNumber(),
			cmd.OriginHubID(),
			cmd.DestinationHubID(),
			cmd.HubDeliveryID(),
			cmd.HubSegmentDeliveryIDs(),
			cmd.LastMileDeliveryID(),
			cmd.EstimatedDeliveryTime(),
			cmd.CreatedBy(),
		)
	} else {
		aggregate, err = track.NewTrackWithLastMileOnly(
			cmd.OrderID(),
			cmd.OrderNumber(),
			cmd.OriginHubID(),
			cmd.LastMileDeliveryID(),
			cmd.EstimatedDeliveryTime(),
			cmd.CreatedBy(),
		)
	}
	if err != nil {
		return nil, err
	}

	if err = trackRepo.Add(ctx, aggregate); err != nil {
		return nil, err
	}

	event := track.NewTrackingStartedEvent(aggregate.ID(), cmd.CreatedBy())
	if err = uow.TrackEventRepository().Add(ctx, &event); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
