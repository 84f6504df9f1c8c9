package queries

import (
	"errors"

	"track/internal/pkg/errs"
	"track/internal/pkg/guard"
)

var ErrGetTrackByOrderIDQueryIsNotConstructed = errors.New(
	"GetTrackByOrderIDQuery must be created via NewGetTrackByOrderIDQuery constructor",
)

// GetTrackByOrderIDQuery retrieves the track of an order with its full
// event history. This is the query receivers use to follow their shipment.
//
// Example:
//
//	query, err := NewGetTrackByOrderIDQuery("order-1")
//	if err != nil {
//	    return err
//	}
//	detail, err := handler.Handle(ctx, query)
type GetTrackByOrderIDQuery struct {
	orderID string

	guard guard.ConstructorGuard
}

// NewGetTrackByOrderIDQuery creates a query for the track of the given order.
func NewGetTrackByOrderIDQuery(orderID string) (GetTrackByOrderIDQuery, error) {
	if orderID == "" {
		return GetTrackByOrderIDQuery{}, errs.NewValueIsRequiredError("orderId")
	}

	return GetTrackByOrderIDQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTrackByOrderIDQuery) Validate() error {
	return q.guard.Validate(ErrGetTrackByOrderIDQueryIsNotConstructed)
}

// OrderID returns the order whose track is requested.
func (q GetTrackByOrderIDQuery) OrderID() string {
	return q.orderID
}
