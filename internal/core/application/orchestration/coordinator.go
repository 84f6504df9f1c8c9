package orchestration

import (
	"context"
	"errors"
	"log/slog"

	"track/internal/core/application/usecases/commands"
	"track/internal/core/domain/model/track"
	"track/internal/core/ports"
)

// Fatal configuration errors. A track that reaches a leg without the
// identifier needed to assign a driver for it was created from broken
// upstream data and cannot proceed.
var (
	ErrHubDeliveryIDMissing = errors.New("track has no hub delivery identifier")
	ErrLastMileIDMissing    = errors.New("track has no last mile delivery identifier")
)

// Coordinator drives the delivery flow. It consumes the integration events
// of the order, hub delivery and last mile services, updates the track
// through the command handlers and requests driver assignment for the next
// leg when a leg completes.
//
// Driver assignment calls are best effort: an upstream failure is logged
// and absorbed, the flow resumes when the upstream service publishes its
// next event. A missing delivery identifier is fatal and propagates.
type Coordinator struct {
	createHandler         commands.CreateTrackCommandHandler
	departHubHandler      commands.DepartHubSegmentCommandHandler
	arriveHubHandler      commands.ArriveHubSegmentCommandHandler
	pickUpHandler         commands.PickUpLastMileCommandHandler
	departLastMileHandler commands.DepartLastMileCommandHandler
	completeHandler       commands.CompleteTrackCommandHandler

	trackRepo         ports.TrackRepository
	hubDeliveryClient ports.HubDeliveryClient
	lastMileClient    ports.LastMileClient

	retry  RetryPolicy
	logger *slog.Logger
}

// NewCoordinator creates the delivery flow coordinator.
// Pass NoRetry{} when assignment calls should not be reattempted.
func NewCoordinator(
	createHandler commands.CreateTrackCommandHandler,
	departHubHandler commands.DepartHubSegmentCommandHandler,
	arriveHubHandler commands.ArriveHubSegmentCommandHandler,
	pickUpHandler commands.PickUpLastMileCommandHandler,
	departLastMileHandler commands.DepartLastMileCommandHandler,
	completeHandler commands.CompleteTrackCommandHandler,
	trackRepo ports.TrackRepository,
	hubDeliveryClient ports.HubDeliveryClient,
	lastMileClient ports.LastMileClient,
	retry RetryPolicy,
	logger *slog.Logger,
) *Coordinator {
	return &Coordinator{
		createHandler:         createHandler,
		departHubHandler:      departHubHandler,
		arriveHubHandler:      arriveHubHandler,
		pickUpHandler:         pickUpHandler,
		departLastMileHandler: departLastMileHandler,
		completeHandler:       completeHandler,
		trackRepo:             trackRepo,
		hubDeliveryClient:     hubDeliveryClient,
		lastMileClient:        lastMileClient,
		retry:                 retry,
		logger:                logger.With("component", "coordinator"),
	}
}

// HandleTrackingStartRequested creates the track for an order and requests
// driver assignment for the first leg.
func (c *Coordinator) HandleTrackingStartRequested(ctx context.Context, event TrackingStartRequested) error {
	c.logger.InfoContext(ctx, "tracking start requested", "orderId", event.OrderID)

	hubSegmentDeliveryIDs := ParseHubSegmentIDs(event.RoutingHub, event.HubDeliveryID)

	cmd, err := commands.NewCreateTrackCommand(
		event.OrderID,
		event.OrderNumber,
		event.OriginHubID,
		event.DestinationHubID,
		event.HubDeliveryID,
		hubSegmentDeliveryIDs,
		event.LastMileDeliveryID,
		event.RequiresHubDelivery,
		event.EstimatedDeliveryTime,
		commands.ActorSystem,
	)
	if err != nil {
		return err
	}

	created, err := c.createHandler.Handle(ctx, cmd)
	if err != nil {
		return err
	}

	c.logger.InfoContext(ctx, "track created",
		"trackId", created.ID().String(), "orderId", created.OrderID())

	return c.startTracking(ctx, created)
}

// HandleHubSegmentDeparted records the departure of a hub segment.
// The driver for the segment was already assigned, so no further
// orchestration happens here.
func (c *Coordinator) HandleHubSegmentDeparted(ctx context.Context, event HubSegmentDeparted) error {
	c.logger.InfoContext(ctx, "hub segment departed",
		"orderId", event.OrderID, "segmentIndex", event.SegmentIndex)

	aggregate, err := c.trackRepo.GetByOrderID(ctx, event.OrderID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDepartHubSegmentCommand(
		aggregate.ID(),
		event.SegmentIndex,
		event.FromHubID,
		event.ToHubID,
		commands.ActorHubDeliveryService,
	)
	if err != nil {
		return err
	}

	_, err = c.departHubHandler.Handle(ctx, cmd)
	return err
}

// HandleHubSegmentArrived records the arrival of a hub segment and triggers
// the driver assignment for the next segment, or for the last mile leg when
// the final segment arrived.
func (c *Coordinator) HandleHubSegmentArrived(ctx context.Context, event HubSegmentArrived) error {
	c.logger.InfoContext(ctx, "hub segment arrived",
		"orderId", event.OrderID, "segmentIndex", event.SegmentIndex)

	aggregate, err := c.trackRepo.GetByOrderID(ctx, event.OrderID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewArriveHubSegmentCommand(
		aggregate.ID(),
		event.SegmentIndex,
		event.HubID,
		commands.ActorHubDeliveryService,
	)
	if err != nil {
		return err
	}

	updated, err := c.arriveHubHandler.Handle(ctx, cmd)
	if err != nil {
		return err
	}

	return c.continueAfterSegment(ctx, updated, event.SegmentIndex)
}

// HandleLastMileDeparted records last mile pickup and departure in sequence.
func (c *Coordinator) HandleLastMileDeparted(ctx context.Context, event LastMileDeparted) error {
	c.logger.InfoContext(ctx, "last mile departed", "orderId", event.OrderID)

	aggregate, err := c.trackRepo.GetByOrderID(ctx, event.OrderID)
	if err != nil {
		return err
	}

	pickUpCmd, err := commands.NewPickUpLastMileCommand(
		aggregate.ID(), event.HubID, commands.ActorLastMileService)
	if err != nil {
		return err
	}
	if _, err := c.pickUpHandler.Handle(ctx, pickUpCmd); err != nil {
		return err
	}

	departCmd, err := commands.NewDepartLastMileCommand(
		aggregate.ID(), commands.ActorLastMileService)
	if err != nil {
		return err
	}
	_, err = c.departLastMileHandler.Handle(ctx, departCmd)
	return err
}

// HandleLastMileCompleted closes the track.
func (c *Coordinator) HandleLastMileCompleted(ctx context.Context, event LastMileCompleted) error {
	c.logger.InfoContext(ctx, "last mile completed", "orderId", event.OrderID)

	aggregate, err := c.trackRepo.GetByOrderID(ctx, event.OrderID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCompleteTrackCommand(aggregate.ID(), commands.ActorLastMileService)
	if err != nil {
		return err
	}

	completed, err := c.completeHandler.Handle(ctx, cmd)
	if err != nil {
		return err
	}

	c.logger.InfoContext(ctx, "delivery completed",
		"trackId", completed.ID().String(), "orderId", completed.OrderID())
	return nil
}

// startTracking requests the driver for the first leg of a new track.
func (c *Coordinator) startTracking(ctx context.Context, aggregate *track.Track) error {
	if aggregate.RequiresHubDelivery() {
		return c.requestHubSegmentDriver(ctx, aggregate, 0)
	}
	return c.requestLastMileDriver(ctx, aggregate)
}

// continueAfterSegment decides the next leg after a hub segment arrived.
func (c *Coordinator) continueAfterSegment(ctx context.Context, aggregate *track.Track, completedSegmentIndex int) error {
	nextSegmentIndex := completedSegmentIndex + 1

	if nextSegmentIndex < aggregate.TotalHubSegments() {
		c.logger.InfoContext(ctx, "starting next hub segment",
			"trackId", aggregate.ID().String(), "segmentIndex", nextSegmentIndex)
		return c.requestHubSegmentDriver(ctx, aggregate, nextSegmentIndex)
	}

	c.logger.InfoContext(ctx, "hub leg completed, starting last mile",
		"trackId", aggregate.ID().String())
	return c.requestLastMileDriver(ctx, aggregate)
}

func (c *Coordinator) requestHubSegmentDriver(ctx context.Context, aggregate *track.Track, segmentIndex int) error {
	hubDeliveryID := aggregate.HubDeliveryID()
	if hubDeliveryID == "" {
		c.logger.ErrorContext(ctx, "hub delivery identifier missing",
			"trackId", aggregate.ID().String())
		return ErrHubDeliveryIDMissing
	}

	err := c.retry.Do(ctx, func(ctx context.Context) error {
		assignment, callErr := c.hubDeliveryClient.AssignDriverForSegment(ctx, hubDeliveryID, segmentIndex)
		if callErr != nil {
			return callErr
		}
		if !assignment.Success {
			c.logger.WarnContext(ctx, "hub segment driver assignment rejected",
				"hubDeliveryId", hubDeliveryID,
				"segmentIndex", segmentIndex,
				"reason", assignment.Message)
			return nil
		}
		c.logger.InfoContext(ctx, "hub segment driver assigned",
			"hubDeliveryId", hubDeliveryID,
			"segmentIndex", segmentIndex,
			"driverId", assignment.DriverID)
		return nil
	})
	if err != nil {
		// The flow resumes on the next upstream event, the call is not fatal.
		c.logger.ErrorContext(ctx, "hub segment driver assignment failed",
			"hubDeliveryId", hubDeliveryID,
			"segmentIndex", segmentIndex,
			"error", err)
	}
	return nil
}

func (c *Coordinator) requestLastMileDriver(ctx context.Context, aggregate *track.Track) error {
	lastMileDeliveryID := aggregate.LastMileDeliveryID()
	if lastMileDeliveryID == "" {
		c.logger.ErrorContext(ctx, "last mile delivery identifier missing",
			"trackId", aggregate.ID().String())
		return ErrLastMileIDMissing
	}

	err := c.retry.Do(ctx, func(ctx context.Context) error {
		assignment, callErr := c.lastMileClient.AssignDriver(ctx, lastMileDeliveryID)
		if callErr != nil {
			return callErr
		}
		if !assignment.Success {
			c.logger.WarnContext(ctx, "last mile driver assignment rejected",
				"lastMileDeliveryId", lastMileDeliveryID,
				"reason", assignment.Message)
			return nil
		}
		c.logger.InfoContext(ctx, "last mile driver assigned",
			"lastMileDeliveryId", lastMileDeliveryID,
			"driverId", assignment.DriverID)
		return nil
	})
	if err != nil {
		c.logger.ErrorContext(ctx, "last mile driver assignment failed",
			"lastMileDeliveryId", lastMileDeliveryID,
			"error", err)
	}
	return nil
}
