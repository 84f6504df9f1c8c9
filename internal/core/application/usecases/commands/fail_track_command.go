package commands

import (
	"errors"

	"track/internal/core/domain/model/kernel"
	"track/internal/pkg/errs"
	"track/internal/pkg/guard"
)

var ErrFailTrackCommandIsNotConstructed = errors.New(
	"FailTrackCommand must be created via NewFailTrackCommand constructor",
)

// FailTrackCommand represents an unrecoverable delivery failure.
type FailTrackCommand struct { //nolint:recvcheck //using for validation
	trackID   kernel.UUID
	reason    string
	updatedBy string

	guard guard.ConstructorGuard
}

// NewFailTrackCommand creates a command marking the track as failed.
func NewFailTrackCommand(trackID kernel.UUID, reason string, updatedBy string) (FailTrackCommand, error) {
	command := FailTrackCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setTrackID(trackID),
		command.setReason(reason),
		command.setUpdatedBy(updatedBy),
	); err != nil {
		return FailTrackCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c FailTrackCommand) Validate() error {
	return c.guard.Validate(ErrFailTrackCommandIsNotConstructed)
}

// TrackID returns the identifier of the track to fail.
func (c FailTrackCommand) TrackID() kernel.UUID {
	return c.trackID
}

// Reason returns the human readable failure cause.
func (c FailTrackCommand) Reason() string {
	return c.reason
}

// UpdatedBy returns the actor recorded in the audit fields.
func (c FailTrackCommand) UpdatedBy() string {
	return c.updatedBy
}

func (c *FailTrackCommand) setTrackID(trackID kernel.UUID) error {
	if err := trackID.Validate(); err != nil {
		return err
	}
	c.trackID = trackID
	return nil
}

func (c *FailTrackCommand) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	c.reason = reason
	return nil
}

func (c *FailTrackCommand) setUpdatedBy(updatedBy string) error {
	if updatedBy == "" {
		return errs.NewValueIsRequiredError("updatedBy")
	}
	c.updatedBy = updatedBy
	return nil
}
