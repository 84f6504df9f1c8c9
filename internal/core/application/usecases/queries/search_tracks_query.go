package queries

import (
	"errors"

	"track/internal/core/domain/model/track"
	"track/internal/pkg/errs"
	"track/internal/pkg/guard"
)

var ErrSearchTracksQueryIsNotConstructed = errors.New(
	"SearchTracksQuery must be created via NewSearchTracksQuery constructor",
)

// SearchTracksQuery retrieves tracks across all hubs, optionally filtered
// by status. Results are paged.
type SearchTracksQuery struct {
	status   track.Status
	page     int
	pageSize int

	guard guard.ConstructorGuard
}

// NewSearchTracksQuery creates a track search query.
// Pass track.StatusUnknown to skip the status filter. Pages start at 0,
// a non-positive page size falls back to the default.
func NewSearchTracksQuery(status track.Status, page, pageSize int) (SearchTracksQuery, error) {
	if status != track.StatusUnknown {
		if err := status.Validate(); err != nil {
			return SearchTracksQuery{}, err
		}
	}
	if page < 0 {
		return SearchTracksQuery{}, errs.NewValueIsInvalidError("page")
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	return SearchTracksQuery{
		status:   status,
		page:     page,
		pageSize: pageSize,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q SearchTracksQuery) Validate() error {
	return q.guard.Validate(ErrSearchTracksQueryIsNotConstructed)
}

// Status returns the status filter, StatusUnknown means no filter.
func (q SearchTracksQuery) Status() track.Status {
	return q.status
}

// Page returns the zero based page index.
func (q SearchTracksQuery) Page() int {
	return q.page
}

// PageSize returns the number of tracks per page.
func (q SearchTracksQuery) PageSize() int {
	return q.pageSize
}
