package commands

import (
	"errors"

	"track/internal/core/domain/model/kernel"
	"track/internal/pkg/errs"
	"track/internal/pkg/guard"
)

var ErrDepartHubSegmentCommandIsNotConstructed = errors.New(
	"DepartHubSegmentCommand must be created via NewDepartHubSegmentCommand constructor",
)

// DepartHubSegmentCommand represents a hub segment departure signal.
// Segment indexes start at 0.
type DepartHubSegmentCommand struct { //nolint:recvcheck //using for validation
	trackID      kernel.UUID
	segmentIndex int
	fromHubID    string
	toHubID      string
	updatedBy    string

	guard guard.ConstructorGuard
}

// NewDepartHubSegmentCommand creates a command recording that the given hub
// segment departed from fromHubID towards toHubID.
func NewDepartHubSegmentCommand(
	trackID kernel.UUID,
	segmentIndex int,
	fromHubID string,
	toHubID string,
	updatedBy string,
) (DepartHubSegmentCommand, error) {
	command := DepartHubSegmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setTrackID(trackID),
		command.setSegmentIndex(segmentIndex),
		command.setFromHubID(fromHubID),
		command.setToHubID(toHubID),
		command.setUpdatedBy(updatedBy),
	); err != nil {
		return DepartHubSegmentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DepartHubSegmentCommand) Validate() error {
	return c.guard.Validate(ErrDepartHubSegmentCommandIsNotConstructed)
}

// TrackID returns the identifier of the track to update.
func (c DepartHubSegmentCommand) TrackID() kernel.UUID {
	return c.trackID
}

// SegmentIndex returns the departing segment's index.
func (c DepartHubSegmentCommand) SegmentIndex() int {
	return c.segmentIndex
}

// FromHubID returns the departure hub.
func (c DepartHubSegmentCommand) FromHubID() string {
	return c.fromHubID
}

// ToHubID returns the arrival hub.
func (c DepartHubSegmentCommand) ToHubID() string {
	return c.toHubID
}

// UpdatedBy returns the actor recorded in the audit fields.
func (c DepartHubSegmentCommand) UpdatedBy() string {
	return c.updatedBy
}

func (c *DepartHubSegmentCommand) setTrackID(trackID kernel.UUID) error {
	if err := trackID.Validate(); err != nil {
		return err
	}
	c.trackID = trackID
	return nil
}

func (c *DepartHubSegmentCommand) setSegmentIndex(segmentIndex int) error {
	if segmentIndex < 0 {
		return errs.NewValueIsInvalidError("segmentIndex")
	}
	c.segmentIndex = segmentIndex
	return nil
}

func (c *DepartHubSegmentCommand) setFromHubID(fromHubID string) error {
	if fromHubID == "" {
		return errs.NewValueIsRequiredError("fromHubId")
	}
	c.fromHubID = fromHubID
	return nil
}

func (c *DepartHubSegmentCommand) setToHubID(toHubID string) error {
	if toHubID == "" {
		return errs.NewValueIsRequiredError("toHubId")
	}
	c.toHubID = toHubID
	return nil
}

func (c *DepartHubSegmentCommand) setUpdatedBy(updatedBy string) error {
	if updatedBy == "" {
		return errs.NewValueIsRequiredError("updatedBy")
	}
	c.updatedBy = updatedBy
	return nil
}
