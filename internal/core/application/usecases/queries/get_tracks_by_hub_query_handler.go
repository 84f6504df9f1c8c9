package queries

import (
	"context"
	"database/sql"
	"time"

	"track/internal/core/domain/model/kernel"
	"track/internal/core/domain/model/track"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetTracksByHubQueryHandler retrieves the tracks of a hub from the database.
// Reads directly through GORM, bypassing the repositories, so list pages do
// not pay the cost of full aggregate rehydration.
type GetTracksByHubQueryHandler struct {
	db *gorm.DB
}

// NewGetTracksByHubQueryHandler creates a handler for hub track listings.
func NewGetTracksByHubQueryHandler(db *gorm.DB) GetTracksByHubQueryHandler {
	return GetTracksByHubQueryHandler{db: db}
}

// Handle returns the requested page of tracks passing through the hub.
// Newest tracks come first.
func (h GetTracksByHubQueryHandler) Handle(
	ctx context.Context,
	query GetTracksByHubQuery,
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
		  AND (origin_hub_id = ? OR destination_hub_id = ?)
	`
	args := []any{query.HubID(), query.HubID()}

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

// scanTrackResponses reads track summary rows into query responses.
// Shared by every list query selecting the same column set.
func scanTrackResponses(rows *sql.Rows) ([]TrackResponse, error) {
	tracks := make([]TrackResponse, 0)

	for rows.Next() {
		var (
			id                 uuid.UUID
			statusValue        string
			phaseValue         string
			resp               TrackResponse
			estimated, actual  sql.NullTime
			started, completed sql.NullTime
			createdAt          time.Time
		)

		err := rows.Scan(
			&id,
			&resp.OrderID,
			&resp.OrderNumber,
			&resp.OriginHubID,
			&resp.DestinationHubID,
			&statusValue,
			&phaseValue,
			&resp.RequiresHubDelivery,
			&resp.TotalHubSegments,
			&resp.CompletedHubSegments,
			&resp.CurrentSegmentIndex,
			&estimated,
			&actual,
			&started,
			&completed,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		trackID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.TrackID = trackID

		status, statusErr := track.StatusFromString(statusValue)
		if statusErr != nil {
			return nil, statusErr
		}
		resp.Status = status

		phase, phaseErr := track.PhaseFromString(phaseValue)
		if phaseErr != nil {
			return nil, phaseErr
		}
		resp.CurrentPhase = phase

		resp.EstimatedDeliveryTime = nullableTime(estimated)
		resp.ActualDeliveryTime = nullableTime(actual)
		resp.StartedAt = nullableTime(started)
		resp.CompletedAt = nullableTime(completed)
		resp.CreatedAt = createdAt
		resp.ProgressPercent = CalculateProgress(status, resp.TotalHubSegments, resp.CompletedHubSegments)
		resp.IsDelayed = delayedAt(resp.EstimatedDeliveryTime, resp.ActualDeliveryTime, time.Now().UTC())

		tracks = append(tracks, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tracks, nil
}

func nullableTime(value sql.NullTime) *time.Time {
	if !value.Valid {
		return nil
	}
	t := value.Time
	return &t
}
