package commands

import (
	"errors"
	"time"

	"track/internal/pkg/errs"
	"track/internal/pkg/guard"
)

var ErrCreateTrackCommandIsNotConstructed = errors.New(
	"CreateTrackCommand must be created via NewCreateTrackCommand constructor",
)

// CreateTrackCommand represents a request to start tracking an order's delivery.
// Carries the identifiers issued by the upstream delivery services and the
// routing details needed to build the track.
//
// Example:
//
//	cmd, err := NewCreateTrackCommand(
//	    "order-1", "ORD-001", "hub-origin", "hub-dest",
//	    "hd-1", []string{"hd-1-segment-0"}, "lm-1",
//	    true, nil, ActorSystem)
//	if err != nil {
//	    return fmt.Errorf("invalid tracking data: %w", err)
//	}
type CreateTrackCommand struct { //nolint:recvcheck //using for validation
	orderID               string
	orderNumber           string
	originHubID           string
	destinationHubID      string
	hubDeliveryID         string
	hubSegmentDeliveryIDs []string
	lastMileDeliveryID    string
	requiresHubDelivery   bool
	estimatedDeliveryTime *time.Time
	createdBy             string

	guard guard.ConstructorGuard
}

// NewCreateTrackCommand creates a command to start tracking an order.
// The hub delivery identifier and segment list are only required when the
// order needs a hub leg; the aggregate enforces that rule on construction.
func NewCreateTrackCommand(
	orderID string,
	orderNumber string,
	originHubID string,
	destinationHubID string,
	hubDeliveryID string,
	hubSegmentDeliveryIDs []string,
	lastMileDeliveryID string,
	requiresHubDelivery bool,
	estimatedDeliveryTime *time.Time,
	createdBy string,
) (CreateTrackCommand, error) {
	command := CreateTrackCommand{
		destinationHubID:      destinationHubID,
		hubDeliveryID:         hubDeliveryID,
		requiresHubDelivery:   requiresHubDelivery,
		estimatedDeliveryTime: estimatedDeliveryTime,
		guard:                 guard.NewConstructorGuard(),
	}
	command.hubSegmentDeliveryIDs = make([]string, len(hubSegmentDeliveryIDs))
	copy(command.hubSegmentDeliveryIDs, hubSegmentDeliveryIDs)

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setOrderNumber(orderNumber),
		command.setOriginHubID(originHubID),
		command.setLastMileDeliveryID(lastMileDeliveryID),
		command.setCreatedBy(createdBy),
	); err != nil {
		return CreateTrackCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateTrackCommand) Validate() error {
	return c.guard.Validate(ErrCreateTrackCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to track.
func (c CreateTrackCommand) OrderID() string {
	return c.orderID
}

// OrderNumber returns the human readable order number.
func (c CreateTrackCommand) OrderNumber() string {
	return c.orderNumber
}

// OriginHubID returns the hub where the shipment starts.
func (c CreateTrackCommand) OriginHubID() string {
	return c.originHubID
}

// DestinationHubID returns the final hub before the last mile leg.
func (c CreateTrackCommand) DestinationHubID() string {
	return c.destinationHubID
}

// HubDeliveryID returns the hub delivery identifier, empty without a hub leg.
func (c CreateTrackCommand) HubDeliveryID() string {
	return c.hubDeliveryID
}

// HubSegmentDeliveryIDs returns a copy of the per-segment delivery identifiers.
func (c CreateTrackCommand) HubSegmentDeliveryIDs() []string {
	ids := make([]string, len(c.hubSegmentDeliveryIDs))
	copy(ids, c.hubSegmentDeliveryIDs)
	return ids
}

// LastMileDeliveryID returns the last mile delivery identifier.
func (c CreateTrackCommand) LastMileDeliveryID() string {
	return c.lastMileDeliveryID
}

// RequiresHubDelivery reports whether the order needs a hub leg.
func (c CreateTrackCommand) RequiresHubDelivery() bool {
	return c.requiresHubDelivery
}

// EstimatedDeliveryTime returns the expected completion time, may be nil.
func (c CreateTrackCommand) EstimatedDeliveryTime() *time.Time {
	return c.estimatedDeliveryTime
}

// CreatedBy returns the actor recorded in the audit fields.
func (c CreateTrackCommand) CreatedBy() string {
	return c.createdBy
}

func (c *CreateTrackCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("orderId")
	}
	c.orderID = orderID
	return nil
}

func (c *CreateTrackCommand) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	c.orderNumber = orderNumber
	return nil
}

func (c *CreateTrackCommand) setOriginHubID(originHubID string) error {
	if originHubID == "" {
		return errs.NewValueIsRequiredError("originHubId")
	}
	c.originHubID = originHubID
	return nil
}

func (c *CreateTrackCommand) setLastMileDeliveryID(lastMileDeliveryID string) error {
	if lastMileDeliveryID == "" {
		return errs.NewValueIsRequiredError("lastMileDeliveryId")
	}
	c.lastMileDeliveryID = lastMileDeliveryID
	return nil
}

func (c *CreateTrackCommand) setCreatedBy(createdBy string) error {
	if createdBy == "" {
		return errs.NewValueIsRequiredError("createdBy")
	}
	c.createdBy = createdBy
	return nil
}
