package queries

import (
	"time"

	"track/internal/core/domain/model/kernel"
	"track/internal/core/domain/model/track"
)

// TrackResponse represents a single track in query results.
type TrackResponse struct {
	TrackID               kernel.UUID
	OrderID               string
	OrderNumber           string
	OriginHubID           string
	DestinationHubID      string
	Status                track.Status
	CurrentPhase          track.Phase
	RequiresHubDelivery   bool
	TotalHubSegments      int
	CompletedHubSegments  int
	CurrentSegmentIndex   int
	ProgressPercent       int
	IsDelayed             bool
	EstimatedDeliveryTime *time.Time
	ActualDeliveryTime    *time.Time
	StartedAt             *time.Time
	CompletedAt           *time.Time
	CreatedAt             time.Time
}

// NewTrackResponse maps a track aggregate into a query response.
func NewTrackResponse(aggregate *track.Track) TrackResponse {
	return TrackResponse{
		TrackID:               aggregate.ID(),
		OrderID:               aggregate.OrderID(),
		OrderNumber:           aggregate.OrderNumber(),
		OriginHubID:           aggregate.OriginHubID(),
		DestinationHubID:      aggregate.DestinationHubID(),
		Status:                aggregate.Status(),
		CurrentPhase:          aggregate.CurrentPhase(),
		RequiresHubDelivery:   aggregate.RequiresHubDelivery(),
		TotalHubSegments:      aggregate.TotalHubSegments(),
		CompletedHubSegments:  aggregate.CompletedHubSegments(),
		CurrentSegmentIndex:   aggregate.CurrentSegmentIndex(),
		ProgressPercent:       CalculateProgress(aggregate.Status(), aggregate.TotalHubSegments(), aggregate.CompletedHubSegments()),
		IsDelayed:             aggregate.IsDelayed(time.Now().UTC()),
		EstimatedDeliveryTime: aggregate.EstimatedDeliveryTime(),
		ActualDeliveryTime:    aggregate.ActualDeliveryTime(),
		StartedAt:             aggregate.StartedAt(),
		CompletedAt:           aggregate.CompletedAt(),
		CreatedAt:             aggregate.CreatedAt(),
	}
}

// delayedAt mirrors the aggregate delay check for rows read outside the
// repositories. A missing estimate never counts as delayed.
func delayedAt(estimated, actual *time.Time, now time.Time) bool {
	if estimated == nil {
		return false
	}
	if actual != nil {
		return actual.After(*estimated)
	}
	return now.After(*estimated)
}

// TrackEventResponse represents one history entry of a track.
type TrackEventResponse struct {
	EventID      kernel.UUID
	EventType    track.EventType
	OccurredAt   time.Time
	HubID        string
	SegmentIndex *int
	Description  string
	Source       string
}

// NewTrackEventResponse maps a track event into a query response.
func NewTrackEventResponse(event *track.TrackEvent) TrackEventResponse {
	return TrackEventResponse{
		EventID:      event.ID(),
		EventType:    event.Type(),
		OccurredAt:   event.OccurredAt(),
		HubID:        event.HubID(),
		SegmentIndex: event.SegmentIndex(),
		Description:  event.Description(),
		Source:       event.Source(),
	}
}

// TrackDetailResponse bundles a track with its full event history.
type TrackDetailResponse struct {
	Track  TrackResponse
	Events []TrackEventResponse
}

// NewTrackDetailResponse maps an aggregate and its events into a detail response.
func NewTrackDetailResponse(aggregate *track.Track, events []*track.TrackEvent) TrackDetailResponse {
	eventResponses := make([]TrackEventResponse, 0, len(events))
	for _, event := range events {
		eventResponses = append(eventResponses, NewTrackEventResponse(event))
	}
	return TrackDetailResponse{
		Track:  NewTrackResponse(aggregate),
		Events: eventResponses,
	}
}

// CalculateProgress estimates delivery progress as a percentage.
// Each hub segment counts as one step and the last mile leg as one more.
// A track in the last mile leg counts every hub step as done regardless of
// the recorded segment completions.
func CalculateProgress(status track.Status, totalHubSegments, completedHubSegments int) int {
	switch status {
	case track.StatusCompleted:
		return 100
	case track.StatusCreated, track.StatusFailed:
		return 0
	}

	totalSteps := totalHubSegments + 1
	completedSteps := completedHubSegments

	if status == track.StatusLastMileInProgress {
		completedSteps = totalHubSegments
	}

	return int(float64(completedSteps) / float64(totalSteps) * 100)
}
