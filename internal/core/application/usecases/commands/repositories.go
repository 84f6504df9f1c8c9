// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"track/internal/core/ports"
)

// Actor identifiers recorded in audit fields when a command originates from
// an automated flow rather than a person.
const (
	ActorSystem             = "SYSTEM"
	ActorHubDeliveryService = "HUB_DELIVERY_SERVICE"
	ActorLastMileService    = "LAST_MILE_SERVICE"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// TrackRepoFactory provides access to the track repository within a transaction.
	TrackRepoFactory interface {
		TrackRepository() ports.TrackRepository
	}

	// TrackEventRepoFactory provides access to the track event repository within a transaction.
	TrackEventRepoFactory interface {
		TrackEventRepository() ports.TrackEventRepository
	}

	// TrackUoW manages transactions spanning the track aggregate and its
	// event history. Every command writes both in one transaction, so the
	// aggregate state and its audit trail never diverge.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   trackRepo := uow.TrackRepository()
	//   eventRepo := uow.TrackEventRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	TrackUoW interface {
		TxManager
		TrackRepoFactory
		TrackEventRepoFactory
	}

	// TrackUoWFactory creates new track unit of work instances.
	TrackUoWFactory interface {
		Create() TrackUoW
	}
)
