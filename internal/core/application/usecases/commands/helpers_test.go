package commands_test

import (
	"testing"

	"track/internal/core/domain/model/kernel"
	"track/internal/core/domain/model/track"

	"github.com/stretchr/testify/require"
)

// storedHubTrack builds a persisted hub leg track with two segments.
func storedHubTrack(t *testing.T) *track.Track {
	t.Helper()
	aggregate, err := track.NewTrackWithHubDelivery(
		"order-1", "ORD-001", "hub-origin", "hub-dest",
		"hd-1", []string{"hd-1-segment-0", "hd-1-segment-1"}, "lm-1",
		nil, "SYSTEM")
	require.NoError(t, err)
	require.NoError(t, aggregate.AssignID(kernel.NewUUID()))
	return aggregate
}

// storedLastMileTrack builds a persisted track without a hub leg.
func storedLastMileTrack(t *testing.T) *track.Track {
	t.Helper()
	aggregate, err := track.NewTrackWithLastMileOnly(
		"order-2", "ORD-002", "hub-1", "lm-2", nil, "SYSTEM")
	require.NoError(t, err)
	require.NoError(t, aggregate.AssignID(kernel.NewUUID()))
	return aggregate
}

// storedTrackReadyForPickup builds a hub leg track with all segments completed.
func storedTrackReadyForPickup(t *testing.T) *track.Track {
	t.Helper()
	aggregate := storedHubTrack(t)
	require.NoError(t, aggregate.DepartHubSegment(0, "hub-origin", "hub-mid"))
	require.NoError(t, aggregate.ArriveHubSegment(0))
	require.NoError(t, aggregate.DepartHubSegment(1, "hub-mid", "hub-dest"))
	require.NoError(t, aggregate.ArriveHubSegment(1))
	return aggregate
}

// storedTrackInLastMile builds a track whose last mile leg already started.
func storedTrackInLastMile(t *testing.T) *track.Track {
	t.Helper()
	aggregate := storedTrackReadyForPickup(t)
	require.NoError(t, aggregate.PickUpLastMile())
	return aggregate
}
