package commands

import (
	"errors"

	"track/internal/core/domain/model/kernel"
	"track/internal/pkg/errs"
	"track/internal/pkg/guard"
)

var ErrArriveHubSegmentCommandIsNotConstructed = errors.New(
	"ArriveHubSegmentCommand must be created via NewArriveHubSegmentCommand constructor",
)

// ArriveHubSegmentCommand represents a hub segment arrival signal.
// Segment indexes start at 0.
type ArriveHubSegmentCommand struct { //nolint:recvcheck //using for validation
	trackID      kernel.UUID
	segmentIndex int
	hubID        string
	updatedBy    string

	guard guard.ConstructorGuard
}

// NewArriveHubSegmentCommand creates a command recording that the given hub
// segment arrived at hubID.
func NewArriveHubSegmentCommand(
	trackID kernel.UUID,
	segmentIndex int,
	hubID string,
	updatedBy string,
) (ArriveHubSegmentCommand, error) {
	command := ArriveHubSegmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setTrackID(trackID),
		command.setSegmentIndex(segmentIndex),
		command.setHubID(hubID),
		command.setUpdatedBy(updatedBy),
	); err != nil {
		return ArriveHubSegmentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ArriveHubSegmentCommand) Validate() error {
	return c.guard.Validate(ErrArriveHubSegmentCommandIsNotConstructed)
}

// TrackID returns the identifier of the track to update.
func (c ArriveHubSegmentCommand) TrackID() kernel.UUID {
	return c.trackID
}

// SegmentIndex returns the arriving segment's index.
func (c ArriveHubSegmentCommand) SegmentIndex() int {
	return c.segmentIndex
}

// HubID returns the hub the segment arrived at.
func (c ArriveHubSegmentCommand) HubID() string {
	return c.hubID
}

// UpdatedBy returns the actor recorded in the audit fields.
func (c ArriveHubSegmentCommand) UpdatedBy() string {
	return c.updatedBy
}

func (c *ArriveHubSegmentCommand) setTrackID(trackID kernel.UUID) error {
	if err := trackID.Validate(); err != nil {
		return err
	}
	c.trackID = trackID
	return nil
}

func (c *ArriveHubSegmentCommand) setSegmentIndex(segmentIndex int) error {
	if segmentIndex < 0 {
		return errs.NewValueIsInvalidError("segmentIndex")
	}
	c.segmentIndex = segmentIndex
	return nil
}

func (c *ArriveHubSegmentCommand) setHubID(hubID string) error {
	if hubID == "" {
		return errs.NewValueIsRequiredError("hubId")
	}
	c.hubID = hubID
	return nil
}

func (c *ArriveHubSegmentCommand) setUpdatedBy(updatedBy string) error {
	if updatedBy == "" {
		return errs.NewValueIsRequiredError("updatedBy")
	}
	c.updatedBy = updatedBy
	return nil
}
