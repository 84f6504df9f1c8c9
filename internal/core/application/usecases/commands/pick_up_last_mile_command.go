package commands

import (
	"errors"

	"track/internal/core/domain/model/kernel"
	"track/internal/pkg/errs"
	"track/internal/pkg/guard"
)

var ErrPickUpLastMileCommandIsNotConstructed = errors.New(
	"PickUpLastMileCommand must be created via NewPickUpLastMileCommand constructor",
)

// PickUpLastMileCommand represents a last mile pickup signal.
type PickUpLastMileCommand struct { //nolint:recvcheck //using for validation
	trackID   kernel.UUID
	hubID     string
	updatedBy string

	guard guard.ConstructorGuard
}

// NewPickUpLastMileCommand creates a command recording last mile pickup at hubID.
func NewPickUpLastMileCommand(trackID kernel.UUID, hubID string, updatedBy string) (PickUpLastMileCommand, error) {
	command := PickUpLastMileCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setTrackID(trackID),
		command.setHubID(hubID),
		command.setUpdatedBy(updatedBy),
	); err != nil {
		return PickUpLastMileCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c PickUpLastMileCommand) Validate() error {
	return c.guard.Validate(ErrPickUpLastMileCommandIsNotConstructed)
}

// TrackID returns the identifier of the track to update.
func (c PickUpLastMileCommand) TrackID() kernel.UUID {
	return c.trackID
}

// HubID returns the hub the shipment was picked up at.
func (c PickUpLastMileCommand) HubID() string {
	return c.hubID
}

// UpdatedBy returns the actor recorded in the audit fields.
func (c PickUpLastMileCommand) UpdatedBy() string {
	return c.updatedBy
}

func (c *PickUpLastMileCommand) setTrackID(trackID kernel.UUID) error {
	if err := trackID.Validate(); err != nil {
		return err
	}
	c.trackID = trackID
	return nil
}

func (c *PickUpLastMileCommand) setHubID(hubID string) error {
	if hubID == "" {
		return errs.NewValueIsRequiredError("hubId")
	}
	c.hubID = hubID
	return nil
}

func (c *PickUpLastMileCommand) setUpdatedBy(updatedBy string) error {
	if updatedBy == "" {
		return errs.NewValueIsRequiredError("updatedBy")
	}
	c.updatedBy = updatedBy
	return nil
}
