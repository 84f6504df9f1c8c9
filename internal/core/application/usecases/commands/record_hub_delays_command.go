package commands

import (
	"errors"
	"time"

	"track/internal/pkg/errs"
	"track/internal/pkg/guard"
)

var ErrRecordHubDelaysCommandIsNotConstructed = errors.New(
	"RecordHubDelaysCommand must be created via NewRecordHubDelaysCommand constructor",
)

// RecordHubDelaysCommand represents a scheduled scan for overdue hub transits.
type RecordHubDelaysCommand struct { //nolint:recvcheck //using for validation
	now time.Time

	guard guard.ConstructorGuard
}

// NewRecordHubDelaysCommand creates a command scanning for tracks whose
// estimated delivery time passed before now.
func NewRecordHubDelaysCommand(now time.Time) (RecordHubDelaysCommand, error) {
	if now.IsZero() {
		return RecordHubDelaysCommand{}, errs.NewValueIsRequiredError("now")
	}

	return RecordHubDelaysCommand{
		now:   now,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordHubDelaysCommand) Validate() error {
	return c.guard.Validate(ErrRecordHubDelaysCommandIsNotConstructed)
}

// Now returns the reference time used for the delay check.
func (c RecordHubDelaysCommand) Now() time.Time {
	return c.now
}
