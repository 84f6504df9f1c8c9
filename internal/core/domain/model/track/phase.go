package track

import (
	"fmt"

	"track/internal/pkg/errs"
)

// Phase represents the fine-grained progress step of a track within its
// current status. While Status answers "which leg of the delivery is this",
// Phase answers "what exactly is happening right now".
type Phase int

const (
	// PhaseUnknown represents an invalid or undefined phase.
	PhaseUnknown Phase = iota

	// PhaseWaitingHubDeparture means the shipment waits at a hub for the
	// next segment to depart.
	PhaseWaitingHubDeparture

	// PhaseHubInTransit means a hub segment is currently on the road.
	PhaseHubInTransit

	// PhaseHubArrived means the current hub segment reached its hub.
	PhaseHubArrived

	// PhaseHubDeliveryCompleted means every hub segment has been completed.
	PhaseHubDeliveryCompleted

	// PhaseWaitingLastMile means the shipment waits at the destination hub
	// for last mile pickup.
	PhaseWaitingLastMile

	// PhaseLastMilePickedUp means the last mile driver picked the shipment up.
	PhaseLastMilePickedUp

	// PhaseLastMileInTransit means the last mile leg is on the road.
	PhaseLastMileInTransit

	// PhaseDelivered means the shipment reached the receiver.
	PhaseDelivered

	// PhaseFailed means the delivery failed.
	PhaseFailed
)

func getPhaseStrings() map[Phase]string {
	return map[Phase]string{
		PhaseUnknown:              "UNKNOWN",
		PhaseWaitingHubDeparture:  "WAITING_HUB_DEPARTURE",
		PhaseHubInTransit:         "HUB_IN_TRANSIT",
		PhaseHubArrived:           "HUB_ARRIVED",
		PhaseHubDeliveryCompleted: "HUB_DELIVERY_COMPLETED",
		PhaseWaitingLastMile:      "WAITING_LAST_MILE",
		PhaseLastMilePickedUp:     "LAST_MILE_PICKED_UP",
		PhaseLastMileInTransit:    "LAST_MILE_IN_TRANSIT",
		PhaseDelivered:            "DELIVERED",
		PhaseFailed:               "FAILED",
	}
}

func getValidPhaseStrings() map[Phase]string {
	//nolint:exhaustive // PhaseUnknown is intentionally excluded as it's invalid
	return map[Phase]string{
		PhaseWaitingHubDeparture:  "WAITING_HUB_DEPARTURE",
		PhaseHubInTransit:         "HUB_IN_TRANSIT",
		PhaseHubArrived:           "HUB_ARRIVED",
		PhaseHubDeliveryCompleted: "HUB_DELIVERY_COMPLETED",
		PhaseWaitingLastMile:      "WAITING_LAST_MILE",
		PhaseLastMilePickedUp:     "LAST_MILE_PICKED_UP",
		PhaseLastMileInTransit:    "LAST_MILE_IN_TRANSIT",
		PhaseDelivered:            "DELIVERED",
		PhaseFailed:               "FAILED",
	}
}

// PhaseFromString parses the persisted string representation of a phase.
// Returns an error for unknown values.
func PhaseFromString(value string) (Phase, error) {
	for phase, str := range getValidPhaseStrings() {
		if str == value {
			return phase, nil
		}
	}
	return PhaseUnknown, errs.NewValueIsInvalidErrorWithCause(
		"phase is invalid",
		fmt.Errorf("%q is not a valid phase", value),
	)
}

// Validate checks if the Phase value is valid.
func (p Phase) Validate() error {
	if _, ok := getValidPhaseStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("phase is invalid", fmt.Errorf("%d is not a valid phase", p))
	}
	return nil
}

// String returns the persisted name of the phase.
// This method implements the fmt.Stringer interface.
func (p Phase) String() string {
	if str, ok := getPhaseStrings()[p]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsHubPhase reports whether the phase belongs to the hub leg.
func (p Phase) IsHubPhase() bool {
	return p == PhaseWaitingHubDeparture ||
		p == PhaseHubInTransit ||
		p == PhaseHubArrived ||
		p == PhaseHubDeliveryCompleted
}

// IsLastMilePhase reports whether the phase belongs to the last mile leg.
func (p Phase) IsLastMilePhase() bool {
	return p == PhaseWaitingLastMile ||
		p == PhaseLastMilePickedUp ||
		p == PhaseLastMileInTransit
}
