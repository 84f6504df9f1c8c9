package queries

import (
	"errors"

	"track/internal/core/domain/model/track"
	"track/internal/pkg/errs"
	"track/internal/pkg/guard"
)

var ErrGetTracksByHubQueryIsNotConstructed = errors.New(
	"GetTracksByHubQuery must be created via NewGetTracksByHubQuery constructor",
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// GetTracksByHubQuery retrieves tracks passing through a hub, as origin or
// destination, optionally filtered by status. Results are paged.
type GetTracksByHubQuery struct {
	hubID    string
	status   track.Status
	page     int
	pageSize int

	guard guard.ConstructorGuard
}

// NewGetTracksByHubQuery creates a query for the tracks of a hub.
// Pass track.StatusUnknown to skip the status filter. Pages start at 0,
// a non-positive page size falls back to the default.
func NewGetTracksByHubQuery(hubID string, status track.Status, page, pageSize int) (GetTracksByHubQuery, error) {
	if hubID == "" {
		return GetTracksByHubQuery{}, errs.NewValueIsRequiredError("hubId")
	}
	if status != track.StatusUnknown {
		if err := status.Validate(); err != nil {
			return GetTracksByHubQuery{}, err
		}
	}
	if page < 0 {
		return GetTracksByHubQuery{}, errs.NewValueIsInvalidError("page")
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	return GetTracksByHubQuery{
		hubID:    hubID,
		status:   status,
		page:     page,
		pageSize: pageSize,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTracksByHubQuery) Validate() error {
	return q.guard.Validate(ErrGetTracksByHubQueryIsNotConstructed)
}

// HubID returns the hub whose tracks are requested.
func (q GetTracksByHubQuery) HubID() string {
	return q.hubID
}

// Status returns the status filter, StatusUnknown means no filter.
func (q GetTracksByHubQuery) Status() track.Status {
	return q.status
}

// Page returns the zero based page index.
func (q GetTracksByHubQuery) Page() int {
	return q.page
}

// PageSize returns the number of tracks per page.
func (q GetTracksByHubQuery) PageSize() int {
	return q.pageSize
}
