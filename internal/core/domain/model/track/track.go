package track

import (
	"errors"
	"fmt"
	"time"

	"track/internal/core/domain/model/kernel"
	"track/internal/pkg/errs"
)

// Track represents the delivery tracking record for a single order.
// It is the aggregate root that mirrors the delivery's progress across the
// hub leg and the last mile leg executed by external services.
//
// Track follows these invariants:
//   - Status and phase only change through the aggregate's methods
//   - Completed and Failed are terminal; only failure recording is allowed afterwards
//   - Hub segment operations require a hub leg
//   - Last mile pickup requires every hub segment to be completed
//   - Segment indexes must lie within [0, totalSegments)
//
// The identifier stays unassigned until the persistence layer first stores
// the aggregate and calls AssignID.
type Track struct {
	// id is the unique identifier for the track, zero until first persisted
	id kernel.UUID

	// hubDeliveryID identifies the hub delivery in the hub delivery service,
	// used when requesting driver assignment for a segment
	hubDeliveryID string

	// orderID identifies the tracked order
	orderID string

	// orderNumber is the human readable order number
	orderNumber string

	// originHubID is the hub where the shipment starts
	originHubID string

	// destinationHubID is the final hub before the last mile leg
	destinationHubID string

	// deliveryIDs bundles the external delivery identifiers
	deliveryIDs DeliveryIDs

	// hubSegments tracks hub segment progress
	hubSegments HubSegmentInfo

	// requiresHubDelivery marks tracks with a hub leg
	requiresHubDelivery bool

	// status is the coarse lifecycle state
	status Status

	// currentPhase is the fine-grained progress step
	currentPhase Phase

	estimatedDeliveryTime *time.Time
	actualDeliveryTime    *time.Time
	startedAt             *time.Time
	completedAt           *time.Time

	createdAt time.Time
	createdBy string
	updatedAt *time.Time
	updatedBy string
	deletedAt *time.Time
	deletedBy string
	isDeleted bool

	// isConstructed ensures the track was created via a factory method
	isConstructed bool
}

// NewTrackWithHubDelivery creates a track for an order whose shipment first
// moves between hubs before the last mile leg.
//
// Parameters:
//   - orderID: identifier of the tracked order
//   - orderNumber: human readable order number
//   - originHubID: hub where the shipment starts
//   - destinationHubID: final hub before the last mile leg
//   - hubDeliveryID: hub delivery identifier used for driver assignment requests
//   - hubSegmentDeliveryIDs: per-segment delivery identifiers, in route order
//   - lastMileDeliveryID: last mile delivery identifier
//   - estimatedDeliveryTime: expected completion time, may be nil
//   - createdBy: actor recorded in the audit fields
//
// The created track starts in Created status and WaitingHubDeparture phase.
func NewTrackWithHubDelivery(
	orderID string,
	orderNumber string,
	originHubID string,
	destinationHubID string,
	hubDeliveryID string,
	hubSegmentDeliveryIDs []string,
	lastMileDeliveryID string,
	estimatedDeliveryTime *time.Time,
	createdBy string,
) (*Track, error) {
	t := &Track{
		requiresHubDelivery:   true,
		status:                StatusCreated,
		currentPhase:          PhaseWaitingHubDeparture,
		estimatedDeliveryTime: estimatedDeliveryTime,
		createdAt:             time.Now().UTC(),
		isConstructed:         true,
	}

	if err := errors.Join(
		t.setOrderID(orderID),
		t.setOrderNumber(orderNumber),
		t.setOriginHubID(originHubID),
		t.setDestinationHubID(destinationHubID),
		t.setHubDeliveryID(hubDeliveryID),
		t.setHubDeliveryIDs(hubSegmentDeliveryIDs, lastMileDeliveryID),
		t.setCreatedBy(createdBy),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// NewTrackWithLastMileOnly creates a track for an order that skips the hub
// leg entirely. The origin and destination hub are the same.
//
// The created track starts in Created status and WaitingLastMile phase.
func NewTrackWithLastMileOnly(
	orderID string,
	orderNumber string,
	hubID string,
	lastMileDeliveryID string,
	estimatedDeliveryTime *time.Time,
	createdBy string,
) (*Track, error) {
	t := &Track{
		requiresHubDelivery:   false,
		status:                StatusCreated,
		currentPhase:          PhaseWaitingLastMile,
		hubSegments:           EmptyHubSegmentInfo(),
		estimatedDeliveryTime: estimatedDeliveryTime,
		createdAt:             time.Now().UTC(),
		isConstructed:         true,
	}

	if err := errors.Join(
		t.setOrderID(orderID),
		t.setOrderNumber(orderNumber),
		t.setOriginHubID(hubID),
		t.setDestinationHubID(hubID),
		t.setLastMileOnlyDeliveryIDs(lastMileDeliveryID),
		t.setCreatedBy(createdBy),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// RestoreTrack rebuilds a track from persisted state. It bypasses the
// creation rules but still validates the identifier, status and phase.
func RestoreTrack(
	id kernel.UUID,
	hubDeliveryID string,
	orderID string,
	orderNumber string,
	originHubID string,
	destinationHubID string,
	deliveryIDs DeliveryIDs,
	hubSegments HubSegmentInfo,
	requiresHubDelivery bool,
	status Status,
	currentPhase Phase,
	estimatedDeliveryTime *time.Time,
	actualDeliveryTime *time.Time,
	startedAt *time.Time,
	completedAt *time.Time,
	createdAt time.Time,
	createdBy string,
	updatedAt *time.Time,
	updatedBy string,
	deletedAt *time.Time,
	deletedBy string,
	isDeleted bool,
) (*Track, error) {
	if err := errors.Join(
		id.Validate(),
		status.Validate(),
		currentPhase.Validate(),
	); err != nil {
		return nil, err
	}

	return &Track{
		id:                    id,
		hubDeliveryID:         hubDeliveryID,
		orderID:               orderID,
		orderNumber:           orderNumber,
		originHubID:           originHubID,
		destinationHubID:      destinationHubID,
		deliveryIDs:           deliveryIDs,
		hubSegments:           hubSegments,
		requiresHubDelivery:   requiresHubDelivery,
		status:                status,
		currentPhase:          currentPhase,
		estimatedDeliveryTime: estimatedDeliveryTime,
		actualDeliveryTime:    actualDeliveryTime,
		startedAt:             startedAt,
		completedAt:           completedAt,
		createdAt:             createdAt,
		createdBy:             createdBy,
		updatedAt:             updatedAt,
		updatedBy:             updatedBy,
		deletedAt:             deletedAt,
		deletedBy:             deletedBy,
		isDeleted:             isDeleted,
		isConstructed:         true,
	}, nil
}

// Validate ensures the Track instance was properly constructed through a
// factory method. This prevents bypassing validation by directly
// instantiating the struct.
func (t *Track) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTrackIsNotConstructed
	}
	return nil
}

// IsEqual compares two tracks by their unique identifiers.
func (t *Track) IsEqual(other *Track) bool {
	return other != nil && t.id.IsEqual(other.id)
}

// AssignID assigns the persistence generated identifier.
// Returns ErrIDAlreadyAssigned when the track already has one.
func (t *Track) AssignID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if t.id.Validate() == nil {
		return ErrIDAlreadyAssigned
	}
	t.id = id
	return nil
}

// StartHubDelivery moves the track from Created into the hub leg.
//
// Business rules:
//   - The track must not be in a terminal state
//   - The track must have a hub leg
//   - Only Created tracks can start the hub leg
func (t *Track) StartHubDelivery() error {
	if err := t.validateNotTerminal(); err != nil {
		return err
	}
	if !t.requiresHubDelivery {
		return ErrHubDeliveryNotRequired
	}
	if !t.status.CanStartHubDelivery() {
		return NewInvalidStatusTransitionError(StatusCreated, t.status)
	}

	t.status = StatusHubInProgress
	t.currentPhase = PhaseWaitingHubDeparture
	now := time.Now().UTC()
	t.startedAt = &now
	return nil
}

// DepartHubSegment records the departure of a hub segment.
// Segment indexes start at 0. Departure also moves a Created track into
// the hub leg and stamps the tracking start time on first movement.
func (t *Track) DepartHubSegment(segmentIndex int, fromHubID, toHubID string) error {
	if err := t.validateNotTerminal(); err != nil {
		return err
	}
	if err := t.validateHubDeliveryRequired(); err != nil {
		return err
	}
	if err := t.validateSegmentIndex(segmentIndex); err != nil {
		return err
	}

	t.status = StatusHubInProgress
	t.currentPhase = PhaseHubInTransit
	t.hubSegments = t.hubSegments.Depart(segmentIndex, fromHubID, toHubID)

	if t.startedAt == nil {
		now := time.Now().UTC()
		t.startedAt = &now
	}
	return nil
}

// ArriveHubSegment records the arrival of a hub segment.
// When the final segment arrives the phase advances to HubDeliveryCompleted.
func (t *Track) ArriveHubSegment(segmentIndex int) error {
	if err := t.validateNotTerminal(); err != nil {
		return err
	}
	if err := t.validateHubDeliveryRequired(); err != nil {
		return err
	}
	if err := t.validateSegmentIndex(segmentIndex); err != nil {
		return err
	}

	t.hubSegments = t.hubSegments.Arrive(segmentIndex)
	t.currentPhase = PhaseHubArrived

	if t.hubSegments.AllSegmentsCompleted() {
		t.currentPhase = PhaseHubDeliveryCompleted
	}
	return nil
}

// PickUpLastMile records last mile pickup and starts the last mile leg.
//
// Business rules:
//   - The track must not be in a terminal state
//   - When a hub leg exists, every hub segment must be completed first
func (t *Track) PickUpLastMile() error {
	if err := t.validateNotTerminal(); err != nil {
		return err
	}
	if err := t.validateCanStartLastMile(); err != nil {
		return err
	}

	t.status = StatusLastMileInProgress
	t.currentPhase = PhaseLastMilePickedUp

	if t.startedAt == nil {
		now := time.Now().UTC()
		t.startedAt = &now
	}
	return nil
}

// DepartLastMile records the last mile driver leaving for the receiver.
// Only allowed while the last mile leg is in progress.
func (t *Track) DepartLastMile() error {
	if err := t.validateNotTerminal(); err != nil {
		return err
	}
	if t.status != StatusLastMileInProgress {
		return NewInvalidStatusTransitionError(StatusLastMileInProgress, t.status)
	}

	t.currentPhase = PhaseLastMileInTransit
	return nil
}

// Complete marks the delivery as finished. The completion time and the
// actual delivery time are both stamped.
func (t *Track) Complete() error {
	if err := t.validateNotTerminal(); err != nil {
		return err
	}

	now := time.Now().UTC()
	t.status = StatusCompleted
	t.currentPhase = PhaseDelivered
	t.completedAt = &now
	t.actualDeliveryTime = &now
	return nil
}

// Fail marks the delivery as failed. Failure is always recordable, even on
// a track that already reached a terminal state, so late failure signals
// never get lost.
func (t *Track) Fail() {
	now := time.Now().UTC()
	t.status = StatusFailed
	t.currentPhase = PhaseFailed
	t.completedAt = &now
}

// Delete soft deletes the track.
func (t *Track) Delete(deletedBy string) {
	now := time.Now().UTC()
	t.isDeleted = true
	t.deletedAt = &now
	t.deletedBy = deletedBy
}

// Restore reverts a soft delete.
func (t *Track) Restore() {
	t.isDeleted = false
	t.deletedAt = nil
	t.deletedBy = ""
}

// Touch updates the audit fields after a mutation.
func (t *Track) Touch(updatedBy string) {
	now := time.Now().UTC()
	t.updatedAt = &now
	t.updatedBy = updatedBy
}

func (t *Track) validateNotTerminal() error {
	if !t.status.IsTerminal() {
		return nil
	}
	if t.status == StatusCompleted {
		return ErrTrackAlreadyCompleted
	}
	return ErrTrackAlreadyFailed
}

func (t *Track) validateHubDeliveryRequired() error {
	if !t.requiresHubDelivery {
		return ErrHubDeliveryNotRequired
	}
	return nil
}

func (t *Track) validateSegmentIndex(segmentIndex int) error {
	total := t.hubSegments.TotalSegments()
	if segmentIndex < 0 || segmentIndex >= total {
		return errs.NewValueIsOutOfRangeError("segmentIndex", segmentIndex, 0, total-1)
	}
	return nil
}

func (t *Track) validateCanStartLastMile() error {
	if t.requiresHubDelivery && !t.hubSegments.AllSegmentsCompleted() {
		return fmt.Errorf("%w: completed %d of %d",
			ErrLastMileNotReady,
			t.hubSegments.CompletedSegments(),
			t.hubSegments.TotalSegments())
	}
	return nil
}

func (t *Track) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("orderId")
	}
	t.orderID = orderID
	return nil
}

func (t *Track) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	t.orderNumber = orderNumber
	return nil
}

func (t *Track) setOriginHubID(originHubID string) error {
	if originHubID == "" {
		return errs.NewValueIsRequiredError("originHubId")
	}
	t.originHubID = originHubID
	return nil
}

func (t *Track) setDestinationHubID(destinationHubID string) error {
	if destinationHubID == "" {
		return errs.NewValueIsRequiredError("destinationHubId")
	}
	t.destinationHubID = destinationHubID
	return nil
}

func (t *Track) setHubDeliveryID(hubDeliveryID string) error {
	if hubDeliveryID == "" {
		return errs.NewValueIsRequiredError("hubDeliveryId")
	}
	t.hubDeliveryID = hubDeliveryID
	return nil
}

func (t *Track) setHubDeliveryIDs(hubSegmentDeliveryIDs []string, lastMileDeliveryID string) error {
	if len(hubSegmentDeliveryIDs) == 0 {
		return errs.NewValueIsRequiredError("hubSegmentDeliveryIds")
	}
	if lastMileDeliveryID == "" {
		return errs.NewValueIsRequiredError("lastMileDeliveryId")
	}
	t.deliveryIDs = NewDeliveryIDs(hubSegmentDeliveryIDs, lastMileDeliveryID)
	segments, err := NewHubSegmentInfo(len(hubSegmentDeliveryIDs))
	if err != nil {
		return err
	}
	t.hubSegments = segments
	return nil
}

func (t *Track) setLastMileOnlyDeliveryIDs(lastMileDeliveryID string) error {
	if lastMileDeliveryID == "" {
		return errs.NewValueIsRequiredError("lastMileDeliveryId")
	}
	t.deliveryIDs = NewLastMileOnlyDeliveryIDs(lastMileDeliveryID)
	return nil
}

func (t *Track) setCreatedBy(createdBy string) error {
	if createdBy == "" {
		return errs.NewValueIsRequiredError("createdBy")
	}
	t.createdBy = createdBy
	return nil
}

// ID returns the track's unique identifier. Zero until first persisted.
func (t *Track) ID() kernel.UUID {
	return t.id
}

// HubDeliveryID returns the hub delivery identifier, empty for last mile
// only tracks.
func (t *Track) HubDeliveryID() string {
	return t.hubDeliveryID
}

// OrderID returns the tracked order's identifier.
func (t *Track) OrderID() string {
	return t.orderID
}

// OrderNumber returns the human readable order number.
func (t *Track) OrderNumber() string {
	return t.orderNumber
}

// OriginHubID returns the hub where the shipment starts.
func (t *Track) OriginHubID() string {
	return t.originHubID
}

// DestinationHubID returns the final hub before the last mile leg.
func (t *Track) DestinationHubID() string {
	return t.destinationHubID
}

// DeliveryIDs returns the external delivery identifiers.
func (t *Track) DeliveryIDs() DeliveryIDs {
	return t.deliveryIDs
}

// HubSegments returns the hub segment progress.
func (t *Track) HubSegments() HubSegmentInfo {
	return t.hubSegments
}

// RequiresHubDelivery reports whether the track has a hub leg.
func (t *Track) RequiresHubDelivery() bool {
	return t.requiresHubDelivery
}

// Status returns the current lifecycle status.
func (t *Track) Status() Status {
	return t.status
}

// CurrentPhase returns the current fine-grained progress step.
func (t *Track) CurrentPhase() Phase {
	return t.currentPhase
}

// EstimatedDeliveryTime returns the expected completion time, or nil.
func (t *Track) EstimatedDeliveryTime() *time.Time {
	return t.estimatedDeliveryTime
}

// ActualDeliveryTime returns when the delivery actually completed, or nil.
func (t *Track) ActualDeliveryTime() *time.Time {
	return t.actualDeliveryTime
}

// StartedAt returns when tracking started moving, or nil.
func (t *Track) StartedAt() *time.Time {
	return t.startedAt
}

// CompletedAt returns when the track reached a terminal state, or nil.
func (t *Track) CompletedAt() *time.Time {
	return t.completedAt
}

// CreatedAt returns the creation time.
func (t *Track) CreatedAt() time.Time {
	return t.createdAt
}

// CreatedBy returns the creating actor.
func (t *Track) CreatedBy() string {
	return t.createdBy
}

// UpdatedAt returns the last update time, or nil.
func (t *Track) UpdatedAt() *time.Time {
	return t.updatedAt
}

// UpdatedBy returns the last updating actor.
func (t *Track) UpdatedBy() string {
	return t.updatedBy
}

// DeletedAt returns the soft delete time, or nil.
func (t *Track) DeletedAt() *time.Time {
	return t.deletedAt
}

// DeletedBy returns the deleting actor.
func (t *Track) DeletedBy() string {
	return t.deletedBy
}

// IsDeleted reports whether the track is soft deleted.
func (t *Track) IsDeleted() bool {
	return t.isDeleted
}

// IsCompleted reports whether the delivery completed successfully.
func (t *Track) IsCompleted() bool {
	return t.status == StatusCompleted
}

// IsFailed reports whether the delivery failed.
func (t *Track) IsFailed() bool {
	return t.status == StatusFailed
}

// IsInProgress reports whether the delivery is actively underway.
func (t *Track) IsInProgress() bool {
	return t.status.IsInProgress()
}

// IsHubInProgress reports whether the hub leg is underway.
func (t *Track) IsHubInProgress() bool {
	return t.status == StatusHubInProgress
}

// IsLastMileInProgress reports whether the last mile leg is underway.
func (t *Track) IsLastMileInProgress() bool {
	return t.status == StatusLastMileInProgress
}

// HubSegmentDeliveryID returns the delivery identifier of the given segment,
// empty when out of range.
func (t *Track) HubSegmentDeliveryID(segmentIndex int) string {
	return t.deliveryIDs.HubSegmentDeliveryID(segmentIndex)
}

// CurrentHubSegmentDeliveryID returns the delivery identifier of the segment
// currently in progress, empty for last mile only tracks.
func (t *Track) CurrentHubSegmentDeliveryID() string {
	if !t.requiresHubDelivery {
		return ""
	}
	return t.deliveryIDs.HubSegmentDeliveryID(t.hubSegments.CurrentSegmentIndex())
}

// LastMileDeliveryID returns the last mile delivery identifier.
func (t *Track) LastMileDeliveryID() string {
	return t.deliveryIDs.LastMileDeliveryID()
}

// TotalHubSegments returns the total number of hub segments.
func (t *Track) TotalHubSegments() int {
	return t.hubSegments.TotalSegments()
}

// CompletedHubSegments returns the number of completed hub segments.
func (t *Track) CompletedHubSegments() int {
	return t.hubSegments.CompletedSegments()
}

// CurrentSegmentIndex returns the index of the segment currently in progress.
func (t *Track) CurrentSegmentIndex() int {
	return t.hubSegments.CurrentSegmentIndex()
}

// DurationMinutes returns how long the delivery took in minutes,
// or nil while the track has not both started and finished.
func (t *Track) DurationMinutes() *int64 {
	if t.startedAt == nil || t.completedAt == nil {
		return nil
	}
	minutes := int64(t.completedAt.Sub(*t.startedAt).Minutes())
	return &minutes
}

// IsDelayed reports whether the delivery runs late relative to the estimate
// at the given instant. Tracks without an estimate are never delayed.
// Completed tracks compare the actual delivery time against the estimate.
func (t *Track) IsDelayed(now time.Time) bool {
	if t.estimatedDeliveryTime == nil {
		return false
	}
	if t.actualDeliveryTime != nil {
		return t.actualDeliveryTime.After(*t.estimatedDeliveryTime)
	}
	return now.After(*t.estimatedDeliveryTime)
}
