package kernel

import (
	"fmt"

	"track/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed is returned when validating a zero-value UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID is the identifier value object for tracks and their audit events.
// It wraps github.com/google/uuid so the domain model never handles raw
// identifier bytes or strings directly.
//
// The zero value is invalid. Construct through NewUUID, UUIDFromString or
// UUIDFromBytes; a zero value fails Validate, which is how entities detect
// identifiers that were never assigned.
//
// Example:
//
//	trackID := kernel.NewUUID()
//	if err := trackID.Validate(); err != nil {
//	    return err
//	}
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a new random identifier (UUID version 4).
// Repositories call this when persisting an aggregate or event for the
// first time.
func NewUUID() UUID {
	return UUID{
		id: uuid.New(),
	}
}

// UUIDFromString parses an identifier from its text form. Used on the API
// boundary where track identifiers arrive as path parameters.
// Returns an error for anything that is not a well formed UUID.
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUID{id: id}, nil
}

// UUIDFromBytes reconstructs an identifier from its 16 byte binary form,
// as read back from the uuid columns of the tracks and track_events tables.
// The nil UUID is rejected, a stored row can never yield an unassigned
// identifier.
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	newID := UUID{id: id}
	if err = newID.Validate(); err != nil {
		return UUID{}, err
	}

	return newID, nil
}

// String returns the canonical "xxxxxxxx-xxxx-..." text form.
// The zero value renders as the nil UUID string.
func (u UUID) String() string {
	return u.id.String()
}

// Bytes exposes the underlying uuid.UUID for persistence DTOs that store
// identifiers in native uuid columns. Domain code should not need it.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// IsEqual reports whether two identifiers name the same object.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate rejects the zero value. Entities use this to tell an assigned
// identifier from one still waiting for the persistence layer.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
