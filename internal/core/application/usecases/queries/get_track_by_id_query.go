package queries

import (
	"errors"

	"track/internal/core/domain/model/kernel"
	"track/internal/pkg/guard"
)

var ErrGetTrackByIDQueryIsNotConstructed = errors.New(
	"GetTrackByIDQuery must be created via NewGetTrackByIDQuery constructor",
)

// GetTrackByIDQuery retrieves a track by its identifier with its full
// event history.
type GetTrackByIDQuery struct {
	trackID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetTrackByIDQuery creates a query for the given track.
func NewGetTrackByIDQuery(trackID kernel.UUID) (GetTrackByIDQuery, error) {
	if err := trackID.Validate(); err != nil {
		return GetTrackByIDQuery{}, err
	}

	return GetTrackByIDQuery{
		trackID: trackID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTrackByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetTrackByIDQueryIsNotConstructed)
}

// TrackID returns the requested track identifier.
func (q GetTrackByIDQuery) TrackID() kernel.UUID {
	return q.trackID
}
