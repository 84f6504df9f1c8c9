package commands

import (
	"errors"

	"track/internal/core/domain/model/kernel"
	"track/internal/pkg/errs"
	"track/internal/pkg/guard"
)

var ErrCompleteTrackCommandIsNotConstructed = errors.New(
	"CompleteTrackCommand must be created via NewCompleteTrackCommand constructor",
)

// CompleteTrackCommand represents a final delivery confirmation.
type CompleteTrackCommand struct { //nolint:recvcheck //using for validation
	trackID   kernel.UUID
	updatedBy string

	guard guard.ConstructorGuard
}

// NewCompleteTrackCommand creates a command finishing the track lifecycle.
func NewCompleteTrackCommand(trackID kernel.UUID, updatedBy string) (CompleteTrackCommand, error) {
	command := CompleteTrackCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setTrackID(trackID),
		command.setUpdatedBy(updatedBy),
	); err != nil {
		return CompleteTrackCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteTrackCommand) Validate() error {
	return c.guard.Validate(ErrCompleteTrackCommandIsNotConstructed)
}

// TrackID returns the identifier of the track to complete.
func (c CompleteTrackCommand) TrackID() kernel.UUID {
	return c.trackID
}

// UpdatedBy returns the actor recorded in the audit fields.
func (c CompleteTrackCommand) UpdatedBy() string {
	return c.updatedBy
}

func (c *CompleteTrackCommand) setTrackID(trackID kernel.UUID) error {
	if err := trackID.Validate(); err != nil {
		return err
	}
	c.trackID = trackID
	return nil
}

func (c *CompleteTrackCommand) setUpdatedBy(updatedBy string) error {
	if updatedBy == "" {
		return errs.NewValueIsRequiredError("updatedBy")
	}
	c.updatedBy = updatedBy
	return nil
}
