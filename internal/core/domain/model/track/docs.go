// Package track contains the delivery tracking domain model.
// It implements the Track aggregate root together with its value objects
// and the TrackEvent history entity, following Domain-Driven Design principles.
//
// The package includes:
//   - Track: The aggregate root that tracks a single order's delivery across
//     hub-to-hub segments and the final last mile leg
//   - Status: The coarse lifecycle state machine of a track
//   - Phase: The fine-grained progress step within the current status
//   - HubSegmentInfo: An immutable value object describing hub segment progress
//   - DeliveryIDs: An immutable value object bundling external delivery identifiers
//   - TrackEvent: An append-only history entry describing what happened to a track
//
// Tracks mirror deliveries executed by external services. The aggregate holds
// tracking state only; it never performs deliveries itself. All state changes
// go through the aggregate's methods, which enforce the status and phase
// transition rules.
package track
