package trackeventrepo

import (
	"context"

	"track/internal/core/domain/model/kernel"
	"track/internal/core/domain/model/track"

	"gorm.io/gorm"
)

// GormTrackEventRepository implements TrackEventRepository using GORM.
type GormTrackEventRepository struct {
	db *gorm.DB
}

// NewGormTrackEventRepository creates a new GORM track event repository.
func NewGormTrackEventRepository(db *gorm.DB) *GormTrackEventRepository {
	return &GormTrackEventRepository{db: db}
}

// Add appends a new event to the audit trail. Events created through the
// domain factories have no identifier yet, so one is assigned before insert.
func (r *GormTrackEventRepository) Add(ctx context.Context, event *track.TrackEvent) error {
	if err := event.Validate(); err != nil {
		return err
	}

	if event.ID().Validate() != nil {
		if err := event.AssignID(kernel.NewUUID()); err != nil {
			return err
		}
	}

	dto := fromDomain(event)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetAllByTrackID retrieves the full audit trail of a track in the order the
// events occurred.
func (r *GormTrackEventRepository) GetAllByTrackID(
	ctx context.Context, trackID kernel.UUID,
) ([]*track.TrackEvent, error) {
	if err := trackID.Validate(); err != nil {
		return nil, err
	}

	var dtos []TrackEventDTO
	err := r.db.WithContext(ctx).
		Where("track_id = ?", trackID.Bytes()).
		Order("occurred_at ASC, created_at ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	events := make([]*track.TrackEvent, 0, len(dtos))
	for _, dto := range dtos {
		event, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	return events, nil
}

// ExistsSegmentDelay reports whether a delay event was already recorded for
// the given segment of a track. Used to keep the delay monitor idempotent.
func (r *GormTrackEventRepository) ExistsSegmentDelay(
	ctx context.Context, trackID kernel.UUID, segmentIndex int,
) (bool, error) {
	if err := trackID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&TrackEventDTO{}).
		Where("track_id = ? AND event_type = ? AND segment_index = ?",
			trackID.Bytes(), track.EventTypeHubSegmentDelayed.String(), segmentIndex).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
