package orchestration

import (
	"encoding/json"
	"fmt"
)

type routingPlan struct {
	Hubs []json.RawMessage `json:"hubs"`
}

// ParseHubSegmentIDs derives the per-segment delivery identifiers from the
// routing plan JSON. A plan visiting n hubs has n-1 segments, each identified
// as "<hubDeliveryID>-segment-<index>".
//
// A blank plan, malformed JSON or a missing hub delivery identifier yields an
// empty list. Malformed routing data must not block track creation, the track
// then simply starts without a hub leg breakdown.
func ParseHubSegmentIDs(routingHub string, hubDeliveryID string) []string {
	ids := make([]string, 0)

	if routingHub == "" || hubDeliveryID == "" {
		return ids
	}

	var plan routingPlan
	if err := json.Unmarshal([]byte(routingHub), &plan); err != nil {
		return ids
	}

	segmentCount := len(plan.Hubs) - 1
	for i := 0; i < segmentCount; i++ {
		ids = append(ids, fmt.Sprintf("%s-segment-%d", hubDeliveryID, i))
	}

	return ids
}
