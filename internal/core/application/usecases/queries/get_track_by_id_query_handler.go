package queries

import (
	"context"

	"track/internal/core/ports"
)

// GetTrackByIDQueryHandler loads a track and its events through the
// domain repositories.
type GetTrackByIDQueryHandler struct {
	trackRepo ports.TrackRepository
	eventRepo ports.TrackEventRepository
}

// NewGetTrackByIDQueryHandler creates the handler.
func NewGetTrackByIDQueryHandler(
	trackRepo ports.TrackRepository,
	eventRepo ports.TrackEventRepository,
) GetTrackByIDQueryHandler {
	return GetTrackByIDQueryHandler{trackRepo: trackRepo, eventRepo: eventRepo}
}

// Handle returns the track together with its event history.
// Returns errs.ErrObjectNotFound when no live track has the identifier.
func (h GetTrackByIDQueryHandler) Handle(
	ctx context.Context,
	query GetTrackByIDQuery,
) (TrackDetailResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackDetailResponse{}, err
	}

	aggregate, err := h.trackRepo.Get(ctx, query.TrackID())
	if err != nil {
		return TrackDetailResponse{}, err
	}

	events, err := h.eventRepo.GetAllByTrackID(ctx, aggregate.ID())
	if err != nil {
		return TrackDetailResponse{}, err
	}

	return NewTrackDetailResponse(aggregate, events), nil
}
