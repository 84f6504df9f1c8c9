package queries

import (
	"context"

	"track/internal/core/domain/model/track"

	"gorm.io/gorm"
)

// SearchTracksQueryHandler searches tracks across all hubs in the database.
type SearchTracksQueryHandler struct {
	db *gorm.DB
}

// NewSearchTracksQueryHandler creates a handler for track searches.
func NewSearchTracksQueryHandler(db *gorm.DB) SearchTracksQueryHandler {
	return SearchTracksQueryHandler{db: db}
}

// Handle returns the requested page of tracks. Newest tracks come first.
func (h SearchTracksQueryHandler) Handle(
	ctx context.Context,
	query SearchTracksQuery,
) ([]TrackResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery := `
		SELECT
			id,
			order_id,
			order_number,
			origin_hub_id,
			destination_hub_id,
			status,
			current_phase,
			requires_hub_delivery,
			total_segments,
			completed_segments,
			current_segment_index,
			estimated_delivery_time,
			actual_delivery_time,
			started_at,
			completed_at,
			created_at
		FROM tracks
		WHERE is_deleted = false
	`
	args := make([]any, 0, 3)

	if query.Status() != track.StatusUnknown {
		sqlQuery += " AND status = ?"
		args = append(args, query.Status().String())
	}

	sqlQuery += " ORDER BY created_at DESC LIMIT ? OFFSET ?"
	args = append(args, query.PageSize(), query.Page()*query.PageSize())

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTrackResponses(rows)
}
