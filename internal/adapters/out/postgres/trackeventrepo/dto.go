// Package trackeventrepo provides data transfer objects and mapping functions
// for the track audit trail. Events are append-only; the repository never
// updates or deletes rows.
package trackeventrepo

import (
	"time"

	"track/internal/core/domain/model/kernel"
	"track/internal/core/domain/model/track"

	"github.com/google/uuid"
)

// TrackEventDTO represents the database structure for persisting track events.
type TrackEventDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	TrackID      uuid.UUID `gorm:"type:uuid;index"`
	EventType    string    `gorm:"index"`
	OccurredAt   time.Time
	HubID        string
	SegmentIndex *int
	Description  string
	Source       string
	CreatedAt    time.Time `gorm:"autoCreateTime:false"`
	CreatedBy    string
}

// TableName specifies the database table name for track event entities.
func (TrackEventDTO) TableName() string {
	return "track_events"
}

func fromDomain(event *track.TrackEvent) TrackEventDTO {
	return TrackEventDTO{
		ID:           event.ID().Bytes(),
		TrackID:      event.TrackID().Bytes(),
		EventType:    event.Type().String(),
		OccurredAt:   event.OccurredAt(),
		HubID:        event.HubID(),
		SegmentIndex: event.SegmentIndex(),
		Description:  event.Description(),
		Source:       event.Source(),
		CreatedAt:    event.CreatedAt(),
		CreatedBy:    event.CreatedBy(),
	}
}

func toDomain(dto TrackEventDTO) (*track.TrackEvent, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	trackID, err := kernel.UUIDFromBytes(dto.TrackID[:])
	if err != nil {
		return nil, err
	}

	eventType, err := track.EventTypeFromString(dto.EventType)
	if err != nil {
		return nil, err
	}

	event, err := track.RestoreTrackEvent(
		id,
		trackID,
		eventType,
		dto.OccurredAt,
		dto.HubID,
		dto.SegmentIndex,
		dto.Description,
		dto.Source,
		dto.CreatedAt,
		dto.CreatedBy,
	)
	if err != nil {
		return nil, err
	}

	return &event, nil
}
