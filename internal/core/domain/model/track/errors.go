package track

import (
	"errors"
	"fmt"
)

var (
	// ErrTrackIsNotConstructed is returned when a Track instance was not created
	// through one of the factory methods. This ensures all tracks are properly validated.
	ErrTrackIsNotConstructed = errors.New("Track must be created via NewTrackWithHubDelivery, NewTrackWithLastMileOnly or RestoreTrack")

	// ErrTrackEventIsNotConstructed is returned when a TrackEvent instance was not
	// created through one of the factory methods.
	ErrTrackEventIsNotConstructed = errors.New("TrackEvent must be created via one of its factory methods")

	// ErrTrackAlreadyCompleted is returned when a lifecycle mutation is attempted
	// on a completed track.
	ErrTrackAlreadyCompleted = errors.New("track is already completed")

	// ErrTrackAlreadyFailed is returned when a lifecycle mutation is attempted
	// on a failed track.
	ErrTrackAlreadyFailed = errors.New("track is already failed")

	// ErrHubDeliveryNotRequired is returned when a hub segment operation is
	// attempted on a last mile only track.
	ErrHubDeliveryNotRequired = errors.New("hub delivery is not required for this track")

	// ErrLastMileNotReady is returned when last mile pickup is attempted before
	// every hub segment has been completed.
	ErrLastMileNotReady = errors.New("all hub segments must be completed before last mile pickup")

	// ErrInvalidStatusTransition is the sentinel for status transition violations.
	// Use errors.Is against it; the concrete InvalidStatusTransitionError carries
	// the expected and actual statuses.
	ErrInvalidStatusTransition = errors.New("invalid status transition")

	// ErrIDAlreadyAssigned is returned when AssignID is called on an entity
	// that already has an identifier.
	ErrIDAlreadyAssigned = errors.New("identifier is already assigned")
)

// InvalidStatusTransitionError describes a rejected status transition,
// carrying the status the operation requires and the status the track is in.
type InvalidStatusTransitionError struct {
	Expected Status
	Actual   Status
}

// NewInvalidStatusTransitionError creates an InvalidStatusTransitionError
// for an operation that requires expected but found actual.
func NewInvalidStatusTransitionError(expected, actual Status) *InvalidStatusTransitionError {
	return &InvalidStatusTransitionError{
		Expected: expected,
		Actual:   actual,
	}
}

func (e *InvalidStatusTransitionError) Error() string {
	return fmt.Sprintf("%s: requires %s, current status is %s",
		ErrInvalidStatusTransition, e.Expected, e.Actual)
}

func (e *InvalidStatusTransitionError) Unwrap() error {
	return ErrInvalidStatusTransition
}
