package track

import (
	"fmt"

	"track/internal/pkg/errs"
)

// Status represents the coarse lifecycle state of a track.
// It implements a state machine with defined transitions to ensure
// tracks follow the correct delivery workflow.
//
// State transitions:
//
//	Created ──┬──> HubInProgress ──> LastMileInProgress ──> Completed
//	          │                              ^
//	          └──────────────────────────────┘
//	     (last mile only orders skip the hub leg)
//
//	any state ──> Failed (failure is always recordable)
//
// Completed and Failed are terminal. No transition other than failure
// recording is allowed out of a terminal state.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusCreated is the initial status when a track is first created.
	// Tracks in this status are waiting for the delivery to start.
	StatusCreated

	// StatusHubInProgress indicates the shipment is moving between hubs.
	StatusHubInProgress

	// StatusLastMileInProgress indicates the final leg from the
	// destination hub to the receiver is underway.
	StatusLastMileInProgress

	// StatusCompleted indicates the delivery finished successfully.
	// This is a terminal state.
	StatusCompleted

	// StatusFailed indicates the delivery failed.
	// This is a terminal state.
	StatusFailed
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:            "UNKNOWN",
		StatusCreated:            "CREATED",
		StatusHubInProgress:      "HUB_IN_PROGRESS",
		StatusLastMileInProgress: "LAST_MILE_IN_PROGRESS",
		StatusCompleted:          "COMPLETED",
		StatusFailed:             "FAILED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusCreated:            "CREATED",
		StatusHubInProgress:      "HUB_IN_PROGRESS",
		StatusLastMileInProgress: "LAST_MILE_IN_PROGRESS",
		StatusCompleted:          "COMPLETED",
		StatusFailed:             "FAILED",
	}
}

// StatusFromString parses the persisted string representation of a status.
// Returns an error for unknown values. It is used when restoring tracks
// from the database or when filtering by status in queries.
func StatusFromString(value string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == value {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", value),
	)
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Created, HubInProgress, LastMileInProgress, Completed, Failed.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted name of the status.
// Returns "UNKNOWN" for invalid status values.
// This method implements the fmt.Stringer interface.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status is a final state.
// Completed and Failed tracks accept no further lifecycle transitions,
// with the single exception of failure recording.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// IsInProgress reports whether the delivery is actively underway.
func (s Status) IsInProgress() bool {
	return s == StatusHubInProgress || s == StatusLastMileInProgress
}

// CanStartHubDelivery reports whether the hub leg may start from this status.
func (s Status) CanStartHubDelivery() bool {
	return s == StatusCreated
}

// CanStartLastMile reports whether the last mile leg may start from this status.
func (s Status) CanStartLastMile() bool {
	return s == StatusCreated || s == StatusHubInProgress
}
