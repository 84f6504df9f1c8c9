package ports

import (
	"context"
	"errors"
)

// Typed failures mapped from upstream delivery service responses.
// Callers use errors.Is to distinguish caller mistakes from upstream outages.
var (
	// ErrAssignmentBadRequest means the upstream service rejected the request
	// as malformed.
	ErrAssignmentBadRequest = errors.New("driver assignment request was rejected")

	// ErrAssignmentNotFound means the upstream service does not know the
	// delivery the assignment was requested for.
	ErrAssignmentNotFound = errors.New("delivery not found in upstream service")

	// ErrUpstreamFailure means the upstream service failed internally.
	ErrUpstreamFailure = errors.New("upstream service failure")

	// ErrUpstreamUnavailable means the upstream service is temporarily
	// unavailable.
	ErrUpstreamUnavailable = errors.New("upstream service unavailable")
)

// DriverAssignment is the result of a driver assignment request against an
// external delivery service.
type DriverAssignment struct {
	DeliveryID   string
	SegmentIndex int
	DriverID     string
	DriverName   string
	Status       string
	Success      bool
	Message      string
}

// HubDeliveryClient requests driver assignment from the hub delivery service.
type HubDeliveryClient interface {
	// AssignDriverForSegment asks the hub delivery service to assign a driver
	// for one hub segment of the given hub delivery.
	AssignDriverForSegment(ctx context.Context, hubDeliveryID string, segmentIndex int) (DriverAssignment, error)
}

// LastMileClient requests driver assignment from the last mile service.
type LastMileClient interface {
	// AssignDriver asks the last mile service to assign a driver for the
	// given last mile delivery.
	AssignDriver(ctx context.Context, lastMileDeliveryID string) (DriverAssignment, error)
}
