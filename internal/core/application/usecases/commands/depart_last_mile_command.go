package commands

import (
	"errors"

	"track/internal/core/domain/model/kernel"
	"track/internal/pkg/errs"
	"track/internal/pkg/guard"
)

var ErrDepartLastMileCommandIsNotConstructed = errors.New(
	"DepartLastMileCommand must be created via NewDepartLastMileCommand constructor",
)

// DepartLastMileCommand represents a last mile departure signal.
type DepartLastMileCommand struct { //nolint:recvcheck //using for validation
	trackID   kernel.UUID
	updatedBy string

	guard guard.ConstructorGuard
}

// NewDepartLastMileCommand creates a command recording last mile departure.
func NewDepartLastMileCommand(trackID kernel.UUID, updatedBy string) (DepartLastMileCommand, error) {
	command := DepartLastMileCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setTrackID(trackID),
		command.setUpdatedBy(updatedBy),
	); err != nil {
		return DepartLastMileCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DepartLastMileCommand) Validate() error {
	return c.guard.Validate(ErrDepartLastMileCommandIsNotConstructed)
}

// TrackID returns the identifier of the track to update.
func (c DepartLastMileCommand) TrackID() kernel.UUID {
	return c.trackID
}

// UpdatedBy returns the actor recorded in the audit fields.
func (c DepartLastMileCommand) UpdatedBy() string {
	return c.updatedBy
}

func (c *DepartLastMileCommand) setTrackID(trackID kernel.UUID) error {
	if err := trackID.Validate(); err != nil {
		return err
	}
	c.trackID = trackID
	return nil
}

func (c *DepartLastMileCommand) setUpdatedBy(updatedBy string) error {
	if updatedBy == "" {
		return errs.NewValueIsRequiredError("updatedBy")
	}
	c.updatedBy = updatedBy
	return nil
}
