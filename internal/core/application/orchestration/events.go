package orchestration

import "time"

// TrackingStartRequested is published by the order service when a delivery
// has been arranged and tracking should begin. RoutingHub carries the raw
// routing plan JSON the order service computed.
type TrackingStartRequested struct {
	OrderID               string     `json:"orderId"`
	OrderNumber           string     `json:"orderNumber"`
	HubDeliveryID         string     `json:"hubDeliveryId"`
	LastMileDeliveryID    string     `json:"lastMileDeliveryId"`
	OriginHubID           string     `json:"originHubId"`
	DestinationHubID      string     `json:"destinationHubId"`
	RoutingHub            string     `json:"routingHub"`
	RequiresHubDelivery   bool       `json:"requiresHubDelivery"`
	EstimatedDeliveryTime *time.Time `json:"estimatedDeliveryTime"`
	RequestedAt           *time.Time `json:"requestedAt"`
}

// HubSegmentDeparted is published by the hub delivery service when a driver
// left with the shipment on one hub segment.
type HubSegmentDeparted struct {
	OrderID       string     `json:"orderId"`
	HubDeliveryID string     `json:"hubDeliveryId"`
	SegmentIndex  int        `json:"segmentIndex"`
	FromHubID     string     `json:"fromHubId"`
	ToHubID       string     `json:"toHubId"`
	DepartedAt    *time.Time `json:"departedAt"`
}

// HubSegmentArrived is published by the hub delivery service when a segment
// reached its destination hub.
type HubSegmentArrived struct {
	OrderID       string     `json:"orderId"`
	HubDeliveryID string     `json:"hubDeliveryId"`
	SegmentIndex  int        `json:"segmentIndex"`
	HubID         string     `json:"hubId"`
	ArrivedAt     *time.Time `json:"arrivedAt"`
}

// LastMileDeparted is published by the last mile service when the driver
// picked up the shipment and left for the receiver.
type LastMileDeparted struct {
	OrderID    string     `json:"orderId"`
	HubID      string     `json:"hubId"`
	DepartedAt *time.Time `json:"departedAt"`
}

// LastMileCompleted is published by the last mile service when the receiver
// got the shipment.
type LastMileCompleted struct {
	OrderID            string     `json:"orderId"`
	LastMileDeliveryID string     `json:"lastMileDeliveryId"`
	CompletedAt        *time.Time `json:"completedAt"`
	ReceiverName       string     `json:"receiverName"`
	Signature          string     `json:"signature"`
}
