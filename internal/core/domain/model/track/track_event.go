package track

import (
	"fmt"
	"time"

	"track/internal/core/domain/model/kernel"
	"track/internal/pkg/errs"
)

// Event sources recorded in the audit trail. They name the service whose
// signal produced the entry.
const (
	SourceTrackService      = "TRACK_SERVICE"
	SourceHubSegmentService = "HUB_SEGMENT_SERVICE"
	SourceLastMileService   = "LAST_MILE_SERVICE"
)

// EventType classifies the entries of a track's audit trail.
type EventType int

const (
	// EventTypeUnknown represents an invalid or undefined event type.
	EventTypeUnknown EventType = iota

	EventTypeTrackingStarted
	EventTypeTrackingCompleted
	EventTypeTrackingFailed

	EventTypeHubSegmentDeparted
	EventTypeHubSegmentArrived
	EventTypeHubSegmentDelayed

	EventTypeLastMilePickedUp
	EventTypeLastMileDeparted
	EventTypeLastMileDelivered
	EventTypeLastMileFailed
)

func getEventTypeStrings() map[EventType]string {
	return map[EventType]string{
		EventTypeUnknown:            "UNKNOWN",
		EventTypeTrackingStarted:    "TRACKING_STARTED",
		EventTypeTrackingCompleted:  "TRACKING_COMPLETED",
		EventTypeTrackingFailed:     "TRACKING_FAILED",
		EventTypeHubSegmentDeparted: "HUB_SEGMENT_DEPARTED",
		EventTypeHubSegmentArrived:  "HUB_SEGMENT_ARRIVED",
		EventTypeHubSegmentDelayed:  "HUB_SEGMENT_DELAYED",
		EventTypeLastMilePickedUp:   "LAST_MILE_PICKED_UP",
		EventTypeLastMileDeparted:   "LAST_MILE_DEPARTED",
		EventTypeLastMileDelivered:  "LAST_MILE_DELIVERED",
		EventTypeLastMileFailed:     "LAST_MILE_FAILED",
	}
}

// EventTypeFromString parses the persisted string representation of an event type.
func EventTypeFromString(value string) (EventType, error) {
	for eventType, str := range getEventTypeStrings() {
		if eventType != EventTypeUnknown && str == value {
			return eventType, nil
		}
	}
	return EventTypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"eventType is invalid",
		fmt.Errorf("%q is not a valid event type", value),
	)
}

// Validate checks if the EventType value is valid.
func (e EventType) Validate() error {
	if e == EventTypeUnknown {
		return errs.NewValueIsInvalidError("eventType")
	}
	if _, ok := getEventTypeStrings()[e]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("eventType is invalid", fmt.Errorf("%d is not a valid event type", e))
	}
	return nil
}

// String returns the persisted name of the event type.
// This method implements the fmt.Stringer interface.
func (e EventType) String() string {
	if str, ok := getEventTypeStrings()[e]; ok {
		return str
	}
	return "UNKNOWN"
}

// TrackEvent is an append-only audit trail entry for a track.
// Events are created through factory functions, never mutated, and get their
// identifier assigned by the persistence layer on first save.
type TrackEvent struct {
	id           kernel.UUID
	trackID      kernel.UUID
	eventType    EventType
	occurredAt   time.Time
	hubID        string
	segmentIndex *int
	description  string
	source       string

	createdAt time.Time
	createdBy string

	isConstructed bool
}

func newTrackEvent(trackID kernel.UUID, eventType EventType, description, source, createdBy string) TrackEvent {
	now := time.Now().UTC()
	return TrackEvent{
		trackID:       trackID,
		eventType:     eventType,
		occurredAt:    now,
		description:   description,
		source:        source,
		createdAt:     now,
		createdBy:     createdBy,
		isConstructed: true,
	}
}

// NewTrackingStartedEvent records that tracking began for a track.
func NewTrackingStartedEvent(trackID kernel.UUID, createdBy string) TrackEvent {
	return newTrackEvent(trackID, EventTypeTrackingStarted,
		"tracking started", SourceTrackService, createdBy)
}

// NewHubSegmentDepartedEvent records a hub segment departure.
// Segment indexes start at 0; descriptions number segments from 1.
func NewHubSegmentDepartedEvent(trackID kernel.UUID, hubID string, segmentIndex int, createdBy string) TrackEvent {
	event := newTrackEvent(trackID, EventTypeHubSegmentDeparted,
		fmt.Sprintf("hub segment %d departed", segmentIndex+1), SourceHubSegmentService, createdBy)
	event.hubID = hubID
	event.segmentIndex = &segmentIndex
	return event
}

// NewHubSegmentArrivedEvent records a hub segment arrival.
func NewHubSegmentArrivedEvent(trackID kernel.UUID, hubID string, segmentIndex int, createdBy string) TrackEvent {
	event := newTrackEvent(trackID, EventTypeHubSegmentArrived,
		fmt.Sprintf("hub segment %d arrived", segmentIndex+1), SourceHubSegmentService, createdBy)
	event.hubID = hubID
	event.segmentIndex = &segmentIndex
	return event
}

// NewHubSegmentDelayedEvent records that a hub segment runs late relative
// to the track's estimated delivery time.
func NewHubSegmentDelayedEvent(trackID kernel.UUID, hubID string, segmentIndex int, createdBy string) TrackEvent {
	event := newTrackEvent(trackID, EventTypeHubSegmentDelayed,
		fmt.Sprintf("hub segment %d delayed", segmentIndex+1), SourceTrackService, createdBy)
	event.hubID = hubID
	event.segmentIndex = &segmentIndex
	return event
}

// NewLastMilePickedUpEvent records last mile pickup at the destination hub.
func NewLastMilePickedUpEvent(trackID kernel.UUID, hubID string, createdBy string) TrackEvent {
	event := newTrackEvent(trackID, EventTypeLastMilePickedUp,
		"last mile pickup completed", SourceLastMileService, createdBy)
	event.hubID = hubID
	return event
}

// NewLastMileDepartedEvent records the last mile driver leaving for the receiver.
func NewLastMileDepartedEvent(trackID kernel.UUID, createdBy string) TrackEvent {
	return newTrackEvent(trackID, EventTypeLastMileDeparted,
		"last mile departed", SourceLastMileService, createdBy)
}

// NewDeliveredEvent records the successful delivery to the receiver.
func NewDeliveredEvent(trackID kernel.UUID, createdBy string) TrackEvent {
	return newTrackEvent(trackID, EventTypeLastMileDelivered,
		"delivery completed", SourceLastMileService, createdBy)
}

// NewTrackingCompletedEvent records that tracking finished for a track.
func NewTrackingCompletedEvent(trackID kernel.UUID, createdBy string) TrackEvent {
	return newTrackEvent(trackID, EventTypeTrackingCompleted,
		"tracking completed", SourceTrackService, createdBy)
}

// NewTrackingFailedEvent records that tracking failed, with the reason.
func NewTrackingFailedEvent(trackID kernel.UUID, reason string, createdBy string) TrackEvent {
	return newTrackEvent(trackID, EventTypeTrackingFailed,
		"tracking failed: "+reason, SourceTrackService, createdBy)
}

// RestoreTrackEvent rebuilds an event from persisted state.
func RestoreTrackEvent(
	id kernel.UUID,
	trackID kernel.UUID,
	eventType EventType,
	occurredAt time.Time,
	hubID string,
	segmentIndex *int,
	description string,
	source string,
	createdAt time.Time,
	createdBy string,
) (TrackEvent, error) {
	if err := id.Validate(); err != nil {
		return TrackEvent{}, err
	}
	if err := eventType.Validate(); err != nil {
		return TrackEvent{}, err
	}

	return TrackEvent{
		id:            id,
		trackID:       trackID,
		eventType:     eventType,
		occurredAt:    occurredAt,
		hubID:         hubID,
		segmentIndex:  segmentIndex,
		description:   description,
		source:        source,
		createdAt:     createdAt,
		createdBy:     createdBy,
		isConstructed: true,
	}, nil
}

// Validate ensures the TrackEvent was created through a factory method.
func (e *TrackEvent) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrTrackEventIsNotConstructed
	}
	return nil
}

// AssignID assigns the persistence generated identifier.
// Returns ErrIDAlreadyAssigned when the event already has one.
func (e *TrackEvent) AssignID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if e.id.Validate() == nil {
		return ErrIDAlreadyAssigned
	}
	e.id = id
	return nil
}

// ID returns the event's unique identifier. Zero until first persisted.
func (e *TrackEvent) ID() kernel.UUID {
	return e.id
}

// TrackID returns the identifier of the track the event belongs to.
func (e *TrackEvent) TrackID() kernel.UUID {
	return e.trackID
}

// Type returns the event classification.
func (e *TrackEvent) Type() EventType {
	return e.eventType
}

// OccurredAt returns when the recorded fact happened.
func (e *TrackEvent) OccurredAt() time.Time {
	return e.occurredAt
}

// HubID returns the hub involved, empty when not applicable.
func (e *TrackEvent) HubID() string {
	return e.hubID
}

// SegmentIndex returns the hub segment involved, nil when not applicable.
func (e *TrackEvent) SegmentIndex() *int {
	return e.segmentIndex
}

// Description returns the human readable summary of the event.
func (e *TrackEvent) Description() string {
	return e.description
}

// Source returns which service's signal produced the event.
func (e *TrackEvent) Source() string {
	return e.source
}

// CreatedAt returns the creation time.
func (e *TrackEvent) CreatedAt() time.Time {
	return e.createdAt
}

// CreatedBy returns the creating actor.
func (e *TrackEvent) CreatedBy() string {
	return e.createdBy
}
