package track

// DeliveryIDs is an immutable value object bundling the delivery identifiers
// issued by the external delivery services. Hub segment identifiers keep
// their order: index 0 is the first segment, index 1 the second and so on.
// The last mile identifier is always present.
type DeliveryIDs struct {
	hubSegmentDeliveryIDs []string
	lastMileDeliveryID    string
}

// NewDeliveryIDs creates delivery identifiers for a track with a hub leg.
func NewDeliveryIDs(hubSegmentDeliveryIDs []string, lastMileDeliveryID string) DeliveryIDs {
	ids := make([]string, len(hubSegmentDeliveryIDs))
	copy(ids, hubSegmentDeliveryIDs)
	return DeliveryIDs{
		hubSegmentDeliveryIDs: ids,
		lastMileDeliveryID:    lastMileDeliveryID,
	}
}

// NewLastMileOnlyDeliveryIDs creates delivery identifiers for a track
// without a hub leg.
func NewLastMileOnlyDeliveryIDs(lastMileDeliveryID string) DeliveryIDs {
	return DeliveryIDs{
		lastMileDeliveryID: lastMileDeliveryID,
	}
}

// HasHubDelivery reports whether any hub segment identifiers exist.
func (d DeliveryIDs) HasHubDelivery() bool {
	return len(d.hubSegmentDeliveryIDs) > 0
}

// HubSegmentDeliveryID returns the delivery identifier of the given segment.
// Returns an empty string when the index is out of range or the track has
// no hub leg.
func (d DeliveryIDs) HubSegmentDeliveryID(segmentIndex int) string {
	if segmentIndex < 0 || segmentIndex >= len(d.hubSegmentDeliveryIDs) {
		return ""
	}
	return d.hubSegmentDeliveryIDs[segmentIndex]
}

// HubSegmentCount returns the number of hub segment delivery identifiers.
func (d DeliveryIDs) HubSegmentCount() int {
	return len(d.hubSegmentDeliveryIDs)
}

// HubSegmentDeliveryIDs returns a copy of the hub segment identifiers.
func (d DeliveryIDs) HubSegmentDeliveryIDs() []string {
	ids := make([]string, len(d.hubSegmentDeliveryIDs))
	copy(ids, d.hubSegmentDeliveryIDs)
	return ids
}

// LastMileDeliveryID returns the last mile delivery identifier.
func (d DeliveryIDs) LastMileDeliveryID() string {
	return d.lastMileDeliveryID
}
