// Package trackrepo provides data transfer objects and mapping functions for track persistence.
// This package implements the repository pattern for the track domain aggregate, handling
// the conversion between domain entities and database representations.
package trackrepo

import (
	"encoding/json"
	"time"

	"track/internal/core/domain/model/kernel"
	"track/internal/core/domain/model/track"

	"github.com/google/uuid"
)

// TrackDTO represents the database structure for persisting track aggregates.
// Maps track domain entities to relational database tables with indexes for
// lookups by order and by hub.
type TrackDTO struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey"`
	HubDeliveryID         string
	OrderID               string `gorm:"index"`
	OrderNumber           string
	OriginHubID           string `gorm:"index"`
	DestinationHubID      string `gorm:"index"`
	HubSegmentDeliveryIDs string `gorm:"column:hub_segment_delivery_ids;type:text"`
	LastMileDeliveryID    string
	RequiresHubDelivery   bool
	Status                string `gorm:"index"`
	CurrentPhase          string
	TotalSegments         int
	CompletedSegments     int
	CurrentSegmentIndex   int
	CurrentFromHubID      string
	CurrentToHubID        string
	SegmentDepartedAt     *time.Time
	SegmentArrivedAt      *time.Time
	EstimatedDeliveryTime *time.Time
	ActualDeliveryTime    *time.Time
	StartedAt             *time.Time
	CompletedAt           *time.Time
	CreatedAt             time.Time `gorm:"autoCreateTime:false"`
	CreatedBy             string
	UpdatedAt             *time.Time `gorm:"autoUpdateTime:false"`
	UpdatedBy             string
	DeletedAt             *time.Time
	DeletedBy             string
	IsDeleted             bool `gorm:"index"`
}

// TableName specifies the database table name for track entities.
// Overrides GORM's default naming convention to use "tracks".
func (TrackDTO) TableName() string {
	return "tracks"
}

// fromDomain converts a track domain aggregate to its database representation.
// Hub segment delivery identifiers are stored as a JSON array since their
// count varies per route.
func fromDomain(aggregate *track.Track) (TrackDTO, error) {
	segmentIDs, err := json.Marshal(aggregate.DeliveryIDs().HubSegmentDeliveryIDs())
	if err != nil {
		return TrackDTO{}, err
	}

	segments := aggregate.HubSegments()
	return TrackDTO{
		ID:                    aggregate.ID().Bytes(),
		HubDeliveryID:         aggregate.HubDeliveryID(),
		OrderID:               aggregate.OrderID(),
		OrderNumber:           aggregate.OrderNumber(),
		OriginHubID:           aggregate.OriginHubID(),
		DestinationHubID:      aggregate.DestinationHubID(),
		HubSegmentDeliveryIDs: string(segmentIDs),
		LastMileDeliveryID:    aggregate.LastMileDeliveryID(),
		RequiresHubDelivery:   aggregate.RequiresHubDelivery(),
		Status:                aggregate.Status().String(),
		CurrentPhase:          aggregate.CurrentPhase().String(),
		TotalSegments:         segments.TotalSegments(),
		CompletedSegments:     segments.CompletedSegments(),
		CurrentSegmentIndex:   segments.CurrentSegmentIndex(),
		CurrentFromHubID:      segments.CurrentFromHubID(),
		CurrentToHubID:        segments.CurrentToHubID(),
		SegmentDepartedAt:     segments.CurrentDepartedAt(),
		SegmentArrivedAt:      segments.CurrentArrivedAt(),
		EstimatedDeliveryTime: aggregate.EstimatedDeliveryTime(),
		ActualDeliveryTime:    aggregate.ActualDeliveryTime(),
		StartedAt:             aggregate.StartedAt(),
		CompletedAt:           aggregate.CompletedAt(),
		CreatedAt:             aggregate.CreatedAt(),
		CreatedBy:             aggregate.CreatedBy(),
		UpdatedAt:             aggregate.UpdatedAt(),
		UpdatedBy:             aggregate.UpdatedBy(),
		DeletedAt:             aggregate.DeletedAt(),
		DeletedBy:             aggregate.DeletedBy(),
		IsDeleted:             aggregate.IsDeleted(),
	}, nil
}

// toDomain converts a database DTO to a track domain aggregate.
// Reconstructs the complete aggregate including segment progress using RestoreTrack.
func toDomain(dto TrackDTO) (*track.Track, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := track.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	phase, err := track.PhaseFromString(dto.CurrentPhase)
	if err != nil {
		return nil, err
	}

	var segmentIDs []string
	if dto.HubSegmentDeliveryIDs != "" {
		if err := json.Unmarshal([]byte(dto.HubSegmentDeliveryIDs), &segmentIDs); err != nil {
			return nil, err
		}
	}

	segments := track.RestoreHubSegmentInfo(
		dto.TotalSegments,
		dto.CurrentSegmentIndex,
		dto.CompletedSegments,
		dto.CurrentFromHubID,
		dto.CurrentToHubID,
		dto.SegmentDepartedAt,
		dto.SegmentArrivedAt,
	)

	return track.RestoreTrack(
		id,
		dto.HubDeliveryID,
		dto.OrderID,
		dto.OrderNumber,
		dto.OriginHubID,
		dto.DestinationHubID,
		track.NewDeliveryIDs(segmentIDs, dto.LastMileDeliveryID),
		segments,
		dto.RequiresHubDelivery,
		status,
		phase,
		dto.EstimatedDeliveryTime,
		dto.ActualDeliveryTime,
		dto.StartedAt,
		dto.CompletedAt,
		dto.CreatedAt,
		dto.CreatedBy,
		dto.UpdatedAt,
		dto.UpdatedBy,
		dto.DeletedAt,
		dto.DeletedBy,
		dto.IsDeleted,
	)
}
