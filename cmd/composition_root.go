package cmd

import (
	"log/slog"
	"time"

	"track/internal/adapters/out/hubdelivery"
	"track/internal/adapters/out/lastmile"
	"track/internal/adapters/out/postgres"
	"track/internal/adapters/out/postgres/trackeventrepo"
	"track/internal/adapters/out/postgres/trackrepo"
	"track/internal/core/application/orchestration"
	"track/internal/core/application/usecases/commands"
	"track/internal/core/application/usecases/queries"
	"track/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) trackUoWFactory() commands.TrackUoWFactory {
	return FuncTrackUoWFactory(func() commands.TrackUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateTrackCommandHandler() commands.CreateTrackCommandHandler {
	return commands.NewCreateTrackCommandHandler(c.trackUoWFactory())
}

func (c *CompositionRoot) CreateDepartHubSegmentCommandHandler() commands.DepartHubSegmentCommandHandler {
	return commands.NewDepartHubSegmentCommandHandler(c.trackUoWFactory())
}

func (c *CompositionRoot) CreateArriveHubSegmentCommandHandler() commands.ArriveHubSegmentCommandHandler {
	return commands.NewArriveHubSegmentCommandHandler(c.trackUoWFactory())
}

func (c *CompositionRoot) CreatePickUpLastMileCommandHandler() commands.PickUpLastMileCommandHandler {
	return commands.NewPickUpLastMileCommandHandler(c.trackUoWFactory())
}

func (c *CompositionRoot) CreateDepartLastMileCommandHandler() commands.DepartLastMileCommandHandler {
	return commands.NewDepartLastMileCommandHandler(c.trackUoWFactory())
}

func (c *CompositionRoot) CreateCompleteTrackCommandHandler() commands.CompleteTrackCommandHandler {
	return commands.NewCompleteTrackCommandHandler(c.trackUoWFactory())
}

// CreateFailTrackCommandHandler has no inbound trigger yet. No upstream
// event carries a terminal failure today, so operators invoke the handler
// directly when a delivery must be written off.
func (c *CompositionRoot) CreateFailTrackCommandHandler() commands.FailTrackCommandHandler {
	return commands.NewFailTrackCommandHandler(c.trackUoWFactory())
}

func (c *CompositionRoot) CreateRecordHubDelaysCommandHandler() commands.RecordHubDelaysCommandHandler {
	return commands.NewRecordHubDelaysCommandHandler(c.trackUoWFactory())
}

func (c *CompositionRoot) CreateGetTrackByOrderIDQueryHandler() queries.GetTrackByOrderIDQueryHandler {
	return queries.NewGetTrackByOrderIDQueryHandler(c.createTrackRepository(), c.createTrackEventRepository())
}

func (c *CompositionRoot) CreateGetTrackByIDQueryHandler() queries.GetTrackByIDQueryHandler {
	return queries.NewGetTrackByIDQueryHandler(c.createTrackRepository(), c.createTrackEventRepository())
}

func (c *CompositionRoot) CreateGetTracksByHubQueryHandler() queries.GetTracksByHubQueryHandler {
	return queries.NewGetTracksByHubQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateSearchTracksQueryHandler() queries.SearchTracksQueryHandler {
	return queries.NewSearchTracksQueryHandler(c.gormDB)
}

// CreateCoordinator wires the delivery flow coordinator with the upstream
// service clients from the config.
func (c *CompositionRoot) CreateCoordinator(config Config, logger *slog.Logger) (*orchestration.Coordinator, error) {
	hubDeliveryClient, err := hubdelivery.NewClient(config.HubDeliveryServiceURL)
	if err != nil {
		return nil, err
	}
	lastMileClient, err := lastmile.NewClient(config.LastMileServiceURL)
	if err != nil {
		return nil, err
	}

	return orchestration.NewCoordinator(
		c.CreateCreateTrackCommandHandler(),
		c.CreateDepartHubSegmentCommandHandler(),
		c.CreateArriveHubSegmentCommandHandler(),
		c.CreatePickUpLastMileCommandHandler(),
		c.CreateDepartLastMileCommandHandler(),
		c.CreateCompleteTrackCommandHandler(),
		c.createTrackRepository(),
		hubDeliveryClient,
		lastMileClient,
		orchestration.FixedDelayRetry{Attempts: 3, Delay: time.Second},
		logger,
	), nil
}

// createTrackRepository builds a read side repository outside any unit of
// work, without aggregate tracking.
func (c *CompositionRoot) createTrackRepository() ports.TrackRepository {
	return trackrepo.NewGormTrackRepository(c.gormDB, nil)
}

func (c *CompositionRoot) createTrackEventRepository() ports.TrackEventRepository {
	return trackeventrepo.NewGormTrackEventRepository(c.gormDB)
}

type FuncTrackUoWFactory func() commands.TrackUoW

func (f FuncTrackUoWFactory) Create() commands.TrackUoW {
	return f()
}
