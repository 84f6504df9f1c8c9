package ports

import (
	"context"
	"time"

	"track/internal/core/domain/model/kernel"
	"track/internal/core/domain/model/track"
)

// TrackRepository defines the persistence contract for track aggregates.
// Soft deleted tracks are invisible to every read method.
type TrackRepository interface {
	// Add persists a new track aggregate to storage and assigns its identifier.
	Add(ctx context.Context, aggregate *track.Track) error

	// Update persists changes to an existing track aggregate.
	Update(ctx context.Context, aggregate *track.Track) error

	// Get retrieves a track aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*track.Track, error)

	// GetByOrderID retrieves the track for the given order.
	// There is at most one live track per order.
	GetByOrderID(ctx context.Context, orderID string) (*track.Track, error)

	// ExistsByOrderID reports whether a live track exists for the given order.
	// Used to reject duplicate track creation.
	ExistsByOrderID(ctx context.Context, orderID string) (bool, error)

	// GetAllHubInProgressPastEstimate retrieves hub leg tracks whose estimated
	// delivery time lies before the given instant. Used by delay monitoring.
	GetAllHubInProgressPastEstimate(ctx context.Context, before time.Time) ([]*track.Track, error)
}

// TrackEventRepository defines the persistence contract for the append-only
// track event history.
type TrackEventRepository interface {
	// Add persists a new event and assigns its identifier.
	Add(ctx context.Context, event *track.TrackEvent) error

	// GetAllByTrackID retrieves every event of a track ordered by occurrence time.
	GetAllByTrackID(ctx context.Context, trackID kernel.UUID) ([]*track.TrackEvent, error)

	// ExistsSegmentDelay reports whether a delay event was already recorded
	// for the given segment of a track. Keeps delay monitoring idempotent.
	ExistsSegmentDelay(ctx context.Context, trackID kernel.UUID, segmentIndex int) (bool, error)
}
