package track

import (
	"time"

	"track/internal/pkg/errs"
)

// HubSegmentInfo is an immutable value object describing hub segment progress
// inside a Track. Segment indexes start at 0. Mutating operations return a new
// copy so previously handed out values never change.
type HubSegmentInfo struct {
	totalSegments       int
	currentSegmentIndex int
	completedSegments   int
	currentFromHubID    string
	currentToHubID      string
	currentDepartedAt   *time.Time
	currentArrivedAt    *time.Time
}

// EmptyHubSegmentInfo creates segment info for a track without a hub leg.
func EmptyHubSegmentInfo() HubSegmentInfo {
	return HubSegmentInfo{}
}

// NewHubSegmentInfo creates initial segment info for the given number of hub segments.
func NewHubSegmentInfo(totalSegments int) (HubSegmentInfo, error) {
	if totalSegments < 0 {
		return HubSegmentInfo{}, errs.NewValueIsInvalidError("totalSegments")
	}
	return HubSegmentInfo{totalSegments: totalSegments}, nil
}

// RestoreHubSegmentInfo rebuilds segment info from persisted state.
func RestoreHubSegmentInfo(
	totalSegments int,
	currentSegmentIndex int,
	completedSegments int,
	currentFromHubID string,
	currentToHubID string,
	currentDepartedAt *time.Time,
	currentArrivedAt *time.Time,
) HubSegmentInfo {
	return HubSegmentInfo{
		totalSegments:       totalSegments,
		currentSegmentIndex: currentSegmentIndex,
		completedSegments:   completedSegments,
		currentFromHubID:    currentFromHubID,
		currentToHubID:      currentToHubID,
		currentDepartedAt:   currentDepartedAt,
		currentArrivedAt:    currentArrivedAt,
	}
}

// Depart returns a copy with the given segment marked as departed.
// The arrival time of the previous segment is cleared.
func (i HubSegmentInfo) Depart(segmentIndex int, fromHubID, toHubID string) HubSegmentInfo {
	now := time.Now().UTC()
	return HubSegmentInfo{
		totalSegments:       i.totalSegments,
		currentSegmentIndex: segmentIndex,
		completedSegments:   i.completedSegments,
		currentFromHubID:    fromHubID,
		currentToHubID:      toHubID,
		currentDepartedAt:   &now,
	}
}

// Arrive returns a copy with the given segment marked as arrived and the
// completed segment count incremented.
func (i HubSegmentInfo) Arrive(segmentIndex int) HubSegmentInfo {
	now := time.Now().UTC()
	return HubSegmentInfo{
		totalSegments:       i.totalSegments,
		currentSegmentIndex: segmentIndex,
		completedSegments:   i.completedSegments + 1,
		currentFromHubID:    i.currentFromHubID,
		currentToHubID:      i.currentToHubID,
		currentDepartedAt:   i.currentDepartedAt,
		currentArrivedAt:    &now,
	}
}

// TotalSegments returns the total number of hub segments.
func (i HubSegmentInfo) TotalSegments() int {
	return i.totalSegments
}

// CurrentSegmentIndex returns the index of the segment currently in progress.
func (i HubSegmentInfo) CurrentSegmentIndex() int {
	return i.currentSegmentIndex
}

// CompletedSegments returns the number of completed hub segments.
func (i HubSegmentInfo) CompletedSegments() int {
	return i.completedSegments
}

// CurrentFromHubID returns the departure hub of the current segment.
func (i HubSegmentInfo) CurrentFromHubID() string {
	return i.currentFromHubID
}

// CurrentToHubID returns the arrival hub of the current segment.
func (i HubSegmentInfo) CurrentToHubID() string {
	return i.currentToHubID
}

// CurrentDepartedAt returns when the current segment departed, or nil.
func (i HubSegmentInfo) CurrentDepartedAt() *time.Time {
	return i.currentDepartedAt
}

// CurrentArrivedAt returns when the current segment arrived, or nil.
func (i HubSegmentInfo) CurrentArrivedAt() *time.Time {
	return i.currentArrivedAt
}

// AllSegmentsCompleted reports whether every hub segment has been completed.
// A track without hub segments never reports completion here.
func (i HubSegmentInfo) AllSegmentsCompleted() bool {
	return i.totalSegments > 0 && i.completedSegments >= i.totalSegments
}

// IsLastSegment reports whether the current segment is the final one.
func (i HubSegmentInfo) IsLastSegment() bool {
	return i.totalSegments > 0 && i.currentSegmentIndex >= i.totalSegments-1
}

// HasHubDelivery reports whether the track has a hub leg at all.
func (i HubSegmentInfo) HasHubDelivery() bool {
	return i.totalSegments > 0
}

// HasNextSegment reports whether more segments follow the current one.
func (i HubSegmentInfo) HasNextSegment() bool {
	return i.currentSegmentIndex < i.totalSegments-1
}
