package http

import (
	"time"

	"track/internal/core/application/usecases/queries"
)

// Error is the JSON body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// TrackView is the JSON shape of a track in read responses.
type TrackView struct {
	TrackID               string     `json:"trackId"`
	OrderID               string     `json:"orderId"`
	OrderNumber           string     `json:"orderNumber"`
	OriginHubID           string     `json:"originHubId"`
	DestinationHubID      string     `json:"destinationHubId"`
	Status                string     `json:"status"`
	CurrentPhase          string     `json:"currentPhase"`
	RequiresHubDelivery   bool       `json:"requiresHubDelivery"`
	TotalHubSegments      int        `json:"totalHubSegments"`
	CompletedHubSegments  int        `json:"completedHubSegments"`
	CurrentSegmentIndex   int        `json:"currentSegmentIndex"`
	ProgressPercent       int        `json:"progressPercent"`
	IsDelayed             bool       `json:"isDelayed"`
	EstimatedDeliveryTime *time.Time `json:"estimatedDeliveryTime,omitempty"`
	ActualDeliveryTime    *time.Time `json:"actualDeliveryTime,omitempty"`
	StartedAt             *time.Time `json:"startedAt,omitempty"`
	CompletedAt           *time.Time `json:"completedAt,omitempty"`
	CreatedAt             time.Time  `json:"createdAt"`
}

// TrackEventView is the JSON shape of one history entry.
type TrackEventView struct {
	EventID      string    `json:"eventId"`
	EventType    string    `json:"eventType"`
	OccurredAt   time.Time `json:"occurredAt"`
	HubID        string    `json:"hubId,omitempty"`
	SegmentIndex *int      `json:"segmentIndex,omitempty"`
	Description  string    `json:"description,omitempty"`
	Source       string    `json:"source"`
}

// TrackDetailView bundles a track with its event history.
type TrackDetailView struct {
	Track  TrackView        `json:"track"`
	Events []TrackEventView `json:"events"`
}

func newTrackView(response queries.TrackResponse) TrackView {
	return TrackView{
		TrackID:               response.TrackID.String(),
		OrderID:               response.OrderID,
		OrderNumber:           response.OrderNumber,
		OriginHubID:           response.OriginHubID,
		DestinationHubID:      response.DestinationHubID,
		Status:                response.Status.String(),
		CurrentPhase:          response.CurrentPhase.String(),
		RequiresHubDelivery:   response.RequiresHubDelivery,
		TotalHubSegments:      response.TotalHubSegments,
		CompletedHubSegments:  response.CompletedHubSegments,
		CurrentSegmentIndex:   response.CurrentSegmentIndex,
		ProgressPercent:       response.ProgressPercent,
		IsDelayed:             response.IsDelayed,
		EstimatedDeliveryTime: response.EstimatedDeliveryTime,
		ActualDeliveryTime:    response.ActualDeliveryTime,
		StartedAt:             response.StartedAt,
		CompletedAt:           response.CompletedAt,
		CreatedAt:             response.CreatedAt,
	}
}

func newTrackEventView(response queries.TrackEventResponse) TrackEventView {
	return TrackEventView{
		EventID:      response.EventID.String(),
		EventType:    response.EventType.String(),
		OccurredAt:   response.OccurredAt,
		HubID:        response.HubID,
		SegmentIndex: response.SegmentIndex,
		Description:  response.Description,
		Source:       response.Source,
	}
}

func newTrackDetailView(response queries.TrackDetailResponse) TrackDetailView {
	events := make([]TrackEventView, 0, len(response.Events))
	for _, event := range response.Events {
		events = append(events, newTrackEventView(event))
	}
	return TrackDetailView{
		Track:  newTrackView(response.Track),
		Events: events,
	}
}

func newTrackViews(responses []queries.TrackResponse) []TrackView {
	views := make([]TrackView, 0, len(responses))
	for _, response := range responses {
		views = append(views, newTrackView(response))
	}
	return views
}
