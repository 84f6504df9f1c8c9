package queries

import (
	"context"

	"track/internal/core/ports"
)

// GetTrackByOrderIDQueryHandler loads a track and its events through the
// domain repositories.
type GetTrackByOrderIDQueryHandler struct {
	trackRepo ports.TrackRepository
	eventRepo ports.TrackEventRepository
}

// NewGetTrackByOrderIDQueryHandler creates the handler.
func NewGetTrackByOrderIDQueryHandler(
	trackRepo ports.TrackRepository,
	eventRepo ports.TrackEventRepository,
) GetTrackByOrderIDQueryHandler {
	return GetTrackByOrderIDQueryHandler{trackRepo: trackRepo, eventRepo: eventRepo}
}

// Handle returns the track of the order together with its event history.
// Returns errs.ErrObjectNotFound when the order has no live track.
func (h GetTrackByOrderIDQueryHandler) Handle(
	ctx context.Context,
	query GetTrackByOrderIDQuery,
) (TrackDetailResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackDetailResponse{}, err
	}

	aggregate, err := h.trackRepo.GetByOrderID(ctx, query.OrderID())
	if err != nil {
		return TrackDetailResponse{}, err
	}

	events, err := h.eventRepo.GetAllByTrackID(ctx, aggregate.ID())
	if err != nil {
		return TrackDetailResponse{}, err
	}

	return NewTrackDetailResponse(aggregate, events), nil
}
