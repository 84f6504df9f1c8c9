package track_test

import (
	"errors"
	"testing"
	"time"

	"track/internal/core/domain/model/kernel"
	"track/internal/core/domain/model/track"
	"track/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHubTrack(t *testing.T, segmentIDs []string) *track.Track {
	t.Helper()
	tr, err := track.NewTrackWithHubDelivery(
		"order-1", "ORD-001", "hub-origin", "hub-dest",
		"hd-1", segmentIDs, "lm-1", nil, "tester")
	require.NoError(t, err)
	return tr
}

func newLastMileTrack(t *testing.T) *track.Track {
	t.Helper()
	tr, err := track.NewTrackWithLastMileOnly(
		"order-1", "ORD-001", "hub-1", "lm-1", nil, "tester")
	require.NoError(t, err)
	return tr
}

func TestNewTrackWithHubDelivery(t *testing.T) {
	t.Run("should create valid track with all valid parameters", func(t *testing.T) {
		est := time.Now().UTC().Add(24 * time.Hour)
		tr, err := track.NewTrackWithHubDelivery(
			"order-1", "ORD-001", "hub-origin", "hub-dest",
			"hd-1", []string{"seg-0", "seg-1"}, "lm-1", &est, "tester")

		require.NoError(t, err)
		require.NoError(t, tr.Validate())
		assert.Equal(t, track.StatusCreated, tr.Status())
		assert.Equal(t, track.PhaseWaitingHubDeparture, tr.CurrentPhase())
		assert.True(t, tr.RequiresHubDelivery())
		assert.Equal(t, "order-1", tr.OrderID())
		assert.Equal(t, "ORD-001", tr.OrderNumber())
		assert.Equal(t, "hub-origin", tr.OriginHubID())
		assert.Equal(t, "hub-dest", tr.DestinationHubID())
		assert.Equal(t, "hd-1", tr.HubDeliveryID())
		assert.Equal(t, 2, tr.TotalHubSegments())
		assert.Equal(t, 0, tr.CompletedHubSegments())
		assert.Equal(t, "lm-1", tr.LastMileDeliveryID())
		assert.Equal(t, "tester", tr.CreatedBy())
		assert.Nil(t, tr.StartedAt())
		assert.Nil(t, tr.CompletedAt())
		require.Error(t, tr.ID().Validate()) // assigned by persistence
	})

	t.Run("should fail with missing order ID", func(t *testing.T) {
		_, err := track.NewTrackWithHubDelivery(
			"", "ORD-001", "hub-origin", "hub-dest",
			"hd-1", []string{"seg-0"}, "lm-1", nil, "tester")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "orderId")
	})

	t.Run("should fail with empty segment list", func(t *testing.T) {
		_, err := track.NewTrackWithHubDelivery(
			"order-1", "ORD-001", "hub-origin", "hub-dest",
			"hd-1", nil, "lm-1", nil, "tester")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "hubSegmentDeliveryIds")
	})

	t.Run("should join multiple validation errors", func(t *testing.T) {
		_, err := track.NewTrackWithHubDelivery(
			"", "", "hub-origin", "hub-dest",
			"hd-1", []string{"seg-0"}, "", nil, "tester")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "orderId")
		assert.Contains(t, err.Error(), "orderNumber")
		assert.Contains(t, err.Error(), "lastMileDeliveryId")
	})
}

func TestNewTrackWithLastMileOnly(t *testing.T) {
	t.Run("should create track without hub leg", func(t *testing.T) {
		tr := newLastMileTrack(t)

		assert.Equal(t, track.StatusCreated, tr.Status())
		assert.Equal(t, track.PhaseWaitingLastMile, tr.CurrentPhase())
		assert.False(t, tr.RequiresHubDelivery())
		assert.Equal(t, "hub-1", tr.OriginHubID())
		assert.Equal(t, "hub-1", tr.DestinationHubID())
		assert.Empty(t, tr.HubDeliveryID())
		assert.Equal(t, 0, tr.TotalHubSegments())
		assert.Empty(t, tr.CurrentHubSegmentDeliveryID())
	})

	t.Run("should fail with missing last mile delivery ID", func(t *testing.T) {
		_, err := track.NewTrackWithLastMileOnly(
			"order-1", "ORD-001", "hub-1", "", nil, "tester")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "lastMileDeliveryId")
	})
}

func TestTrack_Validate(t *testing.T) {
	t.Run("should fail validation for nil track", func(t *testing.T) {
		var tr *track.Track

		assert.Equal(t, track.ErrTrackIsNotConstructed, tr.Validate())
	})

	t.Run("should fail validation for zero value track", func(t *testing.T) {
		var tr track.Track

		assert.Equal(t, track.ErrTrackIsNotConstructed, tr.Validate())
	})
}

func TestTrack_AssignID(t *testing.T) {
	t.Run("should assign identifier once", func(t *testing.T) {
		tr := newHubTrack(t, []string{"seg-0"})
		id := kernel.NewUUID()

		require.NoError(t, tr.AssignID(id))
		assert.True(t, tr.ID().IsEqual(id))
	})

	t.Run("should reject second assignment", func(t *testing.T) {
		tr := newHubTrack(t, []string{"seg-0"})
		require.NoError(t, tr.AssignID(kernel.NewUUID()))

		err := tr.AssignID(kernel.NewUUID())

		require.ErrorIs(t, err, track.ErrIDAlreadyAssigned)
	})

	t.Run("should reject invalid identifier", func(t *testing.T) {
		tr := newHubTrack(t, []string{"seg-0"})
		var zero kernel.UUID

		require.Error(t, tr.AssignID(zero))
	})
}

func TestTrack_HubSegmentFlow(t *testing.T) {
	t.Run("depart moves track into hub leg and stamps start time", func(t *testing.T) {
		tr := newHubTrack(t, []string{"seg-0", "seg-1"})

		require.NoError(t, tr.DepartHubSegment(0, "hub-origin", "hub-mid"))

		assert.Equal(t, track.StatusHubInProgress, tr.Status())
		assert.Equal(t, track.PhaseHubInTransit, tr.CurrentPhase())
		assert.NotNil(t, tr.StartedAt())
		assert.Equal(t, "seg-0", tr.CurrentHubSegmentDeliveryID())
	})

	t.Run("arrive on intermediate segment keeps hub arrived phase", func(t *testing.T) {
		tr := newHubTrack(t, []string{"seg-0", "seg-1"})
		require.NoError(t, tr.DepartHubSegment(0, "hub-origin", "hub-mid"))

		require.NoError(t, tr.ArriveHubSegment(0))

		assert.Equal(t, track.PhaseHubArrived, tr.CurrentPhase())
		assert.Equal(t, 1, tr.CompletedHubSegments())
	})

	t.Run("arrive on final segment completes the hub leg", func(t *testing.T) {
		tr := newHubTrack(t, []string{"seg-0", "seg-1"})
		require.NoError(t, tr.DepartHubSegment(0, "hub-origin", "hub-mid"))
		require.NoError(t, tr.ArriveHubSegment(0))
		require.NoError(t, tr.DepartHubSegment(1, "hub-mid", "hub-dest"))

		require.NoError(t, tr.ArriveHubSegment(1))

		assert.Equal(t, track.PhaseHubDeliveryCompleted, tr.CurrentPhase())
		assert.Equal(t, 2, tr.CompletedHubSegments())
		assert.True(t, tr.HubSegments().AllSegmentsCompleted())
	})

	t.Run("should reject segment operations on last mile only track", func(t *testing.T) {
		tr := newLastMileTrack(t)

		err := tr.DepartHubSegment(0, "hub-1", "hub-2")

		require.ErrorIs(t, err, track.ErrHubDeliveryNotRequired)
	})

	t.Run("should reject out of range segment index", func(t *testing.T) {
		tr := newHubTrack(t, []string{"seg-0", "seg-1"})

		err := tr.DepartHubSegment(2, "hub-a", "hub-b")

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		err = tr.ArriveHubSegment(-1)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("start hub delivery requires created status", func(t *testing.T) {
		tr := newHubTrack(t, []string{"seg-0"})
		require.NoError(t, tr.StartHubDelivery())
		assert.Equal(t, track.StatusHubInProgress, tr.Status())

		err := tr.StartHubDelivery()

		var transitionErr *track.InvalidStatusTransitionError
		require.ErrorAs(t, err, &transitionErr)
		assert.Equal(t, track.StatusCreated, transitionErr.Expected)
		assert.Equal(t, track.StatusHubInProgress, transitionErr.Actual)
	})
}

func TestTrack_LastMileFlow(t *testing.T) {
	completeHubLeg := func(t *testing.T, tr *track.Track) {
		t.Helper()
		require.NoError(t, tr.DepartHubSegment(0, "hub-origin", "hub-dest"))
		require.NoError(t, tr.ArriveHubSegment(0))
	}

	t.Run("pickup requires all hub segments completed", func(t *testing.T) {
		tr := newHubTrack(t, []string{"seg-0", "seg-1"})
		require.NoError(t, tr.DepartHubSegment(0, "hub-origin", "hub-mid"))
		require.NoError(t, tr.ArriveHubSegment(0))

		err := tr.PickUpLastMile()

		require.ErrorIs(t, err, track.ErrLastMileNotReady)
		assert.Contains(t, err.Error(), "completed 1 of 2")
		assert.Equal(t, track.StatusHubInProgress, tr.Status())
	})

	t.Run("pickup after hub leg completes", func(t *testing.T) {
		tr := newHubTrack(t, []string{"seg-0"})
		completeHubLeg(t, tr)

		require.NoError(t, tr.PickUpLastMile())

		assert.Equal(t, track.StatusLastMileInProgress, tr.Status())
		assert.Equal(t, track.PhaseLastMilePickedUp, tr.CurrentPhase())
	})

	t.Run("last mile only track picks up immediately", func(t *testing.T) {
		tr := newLastMileTrack(t)

		require.NoError(t, tr.PickUpLastMile())

		assert.Equal(t, track.StatusLastMileInProgress, tr.Status())
		assert.NotNil(t, tr.StartedAt())
	})

	t.Run("depart last mile requires last mile in progress", func(t *testing.T) {
		tr := newLastMileTrack(t)

		err := tr.DepartLastMile()

		var transitionErr *track.InvalidStatusTransitionError
		require.ErrorAs(t, err, &transitionErr)
		assert.Equal(t, track.StatusLastMileInProgress, transitionErr.Expected)
		assert.Equal(t, track.StatusCreated, transitionErr.Actual)

		require.NoError(t, tr.PickUpLastMile())
		require.NoError(t, tr.DepartLastMile())
		assert.Equal(t, track.PhaseLastMileInTransit, tr.CurrentPhase())
	})
}

func TestTrack_Complete(t *testing.T) {
	t.Run("should complete an in progress track", func(t *testing.T) {
		tr := newLastMileTrack(t)
		require.NoError(t, tr.PickUpLastMile())
		require.NoError(t, tr.DepartLastMile())

		require.NoError(t, tr.Complete())

		assert.Equal(t, track.StatusCompleted, tr.Status())
		assert.Equal(t, track.PhaseDelivered, tr.CurrentPhase())
		assert.NotNil(t, tr.CompletedAt())
		assert.NotNil(t, tr.ActualDeliveryTime())
		assert.NotNil(t, tr.DurationMinutes())
	})

	t.Run("should reject completing a completed track", func(t *testing.T) {
		tr := newLastMileTrack(t)
		require.NoError(t, tr.Complete())

		err := tr.Complete()

		require.ErrorIs(t, err, track.ErrTrackAlreadyCompleted)
	})

	t.Run("should reject mutations on a failed track", func(t *testing.T) {
		tr := newHubTrack(t, []string{"seg-0"})
		tr.Fail()

		assert.ErrorIs(t, tr.DepartHubSegment(0, "a", "b"), track.ErrTrackAlreadyFailed)
		assert.ErrorIs(t, tr.ArriveHubSegment(0), track.ErrTrackAlreadyFailed)
		assert.ErrorIs(t, tr.PickUpLastMile(), track.ErrTrackAlreadyFailed)
		assert.ErrorIs(t, tr.DepartLastMile(), track.ErrTrackAlreadyFailed)
		assert.ErrorIs(t, tr.Complete(), track.ErrTrackAlreadyFailed)
	})
}

func TestTrack_Fail(t *testing.T) {
	t.Run("failure is recordable from any state", func(t *testing.T) {
		tr := newLastMileTrack(t)
		require.NoError(t, tr.Complete())

		// A late failure signal still lands, even after completion.
		tr.Fail()

		assert.Equal(t, track.StatusFailed, tr.Status())
		assert.Equal(t, track.PhaseFailed, tr.CurrentPhase())
		assert.NotNil(t, tr.CompletedAt())
	})
}

func TestTrack_SoftDelete(t *testing.T) {
	t.Run("delete and restore", func(t *testing.T) {
		tr := newLastMileTrack(t)

		tr.Delete("admin")

		assert.True(t, tr.IsDeleted())
		assert.NotNil(t, tr.DeletedAt())
		assert.Equal(t, "admin", tr.DeletedBy())

		tr.Restore()

		assert.False(t, tr.IsDeleted())
		assert.Nil(t, tr.DeletedAt())
		assert.Empty(t, tr.DeletedBy())
	})
}

func TestTrack_IsDelayed(t *testing.T) {
	now := time.Now().UTC()

	t.Run("no estimate means never delayed", func(t *testing.T) {
		tr := newLastMileTrack(t)

		assert.False(t, tr.IsDelayed(now.Add(1000*time.Hour)))
	})

	t.Run("in progress track past the estimate is delayed", func(t *testing.T) {
		est := now.Add(-time.Hour)
		tr, err := track.NewTrackWithLastMileOnly(
			"order-1", "ORD-001", "hub-1", "lm-1", &est, "tester")
		require.NoError(t, err)

		assert.True(t, tr.IsDelayed(now))
		assert.False(t, tr.IsDelayed(now.Add(-2*time.Hour)))
	})

	t.Run("completed track compares actual delivery to estimate", func(t *testing.T) {
		est := now.Add(time.Hour)
		tr, err := track.NewTrackWithLastMileOnly(
			"order-1", "ORD-001", "hub-1", "lm-1", &est, "tester")
		require.NoError(t, err)
		require.NoError(t, tr.Complete())

		// actual delivery happened before the estimate
		assert.False(t, tr.IsDelayed(now.Add(48*time.Hour)))
	})
}

func TestRestoreTrack(t *testing.T) {
	t.Run("should restore persisted state", func(t *testing.T) {
		id := kernel.NewUUID()
		started := time.Now().UTC().Add(-time.Hour)
		segments := track.RestoreHubSegmentInfo(2, 1, 1, "hub-mid", "hub-dest", &started, nil)

		tr, err := track.RestoreTrack(
			id, "hd-1", "order-1", "ORD-001", "hub-origin", "hub-dest",
			track.NewDeliveryIDs([]string{"seg-0", "seg-1"}, "lm-1"),
			segments, true,
			track.StatusHubInProgress, track.PhaseHubInTransit,
			nil, nil, &started, nil,
			started, "tester", nil, "", nil, "", false)

		require.NoError(t, err)
		require.NoError(t, tr.Validate())
		assert.True(t, tr.ID().IsEqual(id))
		assert.Equal(t, track.StatusHubInProgress, tr.Status())
		assert.Equal(t, 1, tr.CompletedHubSegments())
		assert.Equal(t, "seg-1", tr.CurrentHubSegmentDeliveryID())
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		_, err := track.RestoreTrack(
			kernel.NewUUID(), "", "order-1", "ORD-001", "hub-1", "hub-1",
			track.NewLastMileOnlyDeliveryIDs("lm-1"),
			track.EmptyHubSegmentInfo(), false,
			track.StatusUnknown, track.PhaseWaitingLastMile,
			nil, nil, nil, nil,
			time.Now().UTC(), "tester", nil, "", nil, "", false)

		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrValueIsInvalid))
	})
}

func TestTrackEvent(t *testing.T) {
	trackID := kernel.NewUUID()

	t.Run("factories stamp type, source and description", func(t *testing.T) {
		started := track.NewTrackingStartedEvent(trackID, "tester")
		assert.Equal(t, track.EventTypeTrackingStarted, started.Type())
		assert.Equal(t, track.SourceTrackService, started.Source())
		assert.True(t, started.TrackID().IsEqual(trackID))
		require.NoError(t, started.Validate())
		require.Error(t, started.ID().Validate()) // assigned by persistence

		departed := track.NewHubSegmentDepartedEvent(trackID, "hub-1", 0, "tester")
		assert.Equal(t, track.EventTypeHubSegmentDeparted, departed.Type())
		assert.Equal(t, track.SourceHubSegmentService, departed.Source())
		assert.Equal(t, "hub-1", departed.HubID())
		require.NotNil(t, departed.SegmentIndex())
		assert.Equal(t, 0, *departed.SegmentIndex())
		assert.Contains(t, departed.Description(), "segment 1")

		failed := track.NewTrackingFailedEvent(trackID, "driver unreachable", "tester")
		assert.Contains(t, failed.Description(), "driver unreachable")
	})

	t.Run("assign ID only once", func(t *testing.T) {
		event := track.NewTrackingStartedEvent(trackID, "tester")

		require.NoError(t, event.AssignID(kernel.NewUUID()))
		require.ErrorIs(t, event.AssignID(kernel.NewUUID()), track.ErrIDAlreadyAssigned)
	})

	t.Run("zero value event fails validation", func(t *testing.T) {
		var event track.TrackEvent

		assert.Equal(t, track.ErrTrackEventIsNotConstructed, event.Validate())
	})

	t.Run("event type round trip", func(t *testing.T) {
		for _, eventType := range []track.EventType{
			track.EventTypeTrackingStarted,
			track.EventTypeTrackingCompleted,
			track.EventTypeTrackingFailed,
			track.EventTypeHubSegmentDeparted,
			track.EventTypeHubSegmentArrived,
			track.EventTypeHubSegmentDelayed,
			track.EventTypeLastMilePickedUp,
			track.EventTypeLastMileDeparted,
			track.EventTypeLastMileDelivered,
			track.EventTypeLastMileFailed,
		} {
			parsed, err := track.EventTypeFromString(eventType.String())
			require.NoError(t, err)
			assert.Equal(t, eventType, parsed)
		}

		_, err := track.EventTypeFromString("SOMETHING_ELSE")
		require.Error(t, err)
	})
}
