package trackeventrepo_test

import (
	"context"
	"testing"
	"time"

	"track/internal/adapters/out/postgres/trackeventrepo"
	"track/internal/core/domain/model/kernel"
	"track/internal/core/domain/model/track"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// TrackEventRepositoryIntegrationTestSuite provides integration tests for the
// audit trail repository using PostgreSQL containers.
type TrackEventRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *trackeventrepo.GormTrackEventRepository
}

func (suite *TrackEventRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&trackeventrepo.TrackEventDTO{}))
}

func (suite *TrackEventRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE track_events").Error)
	suite.repository = trackeventrepo.NewGormTrackEventRepository(suite.db)
}

func (suite *TrackEventRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *TrackEventRepositoryIntegrationTestSuite) TestAdd_AssignsIDAndPersists() {
	ctx := context.Background()
	trackID := kernel.NewUUID()

	event := track.NewTrackingStartedEvent(trackID, "SYSTEM")
	suite.Require().NoError(suite.repository.Add(ctx, &event))

	// Add assigns the identifier before insert
	suite.Require().NoError(event.ID().Validate())

	var count int64
	suite.Require().NoError(suite.db.Model(&trackeventrepo.TrackEventDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)
}

func (suite *TrackEventRepositoryIntegrationTestSuite) TestGetAllByTrackID_ReturnsEventsInOccurrenceOrder() {
	ctx := context.Background()
	trackID := kernel.NewUUID()
	otherTrackID := kernel.NewUUID()

	started := track.NewTrackingStartedEvent(trackID, "SYSTEM")
	departed := track.NewHubSegmentDepartedEvent(trackID, "hub-origin", 0, "HUB_DELIVERY_SERVICE")
	arrived := track.NewHubSegmentArrivedEvent(trackID, "hub-mid", 0, "HUB_DELIVERY_SERVICE")
	unrelated := track.NewTrackingStartedEvent(otherTrackID, "SYSTEM")

	for _, event := range []*track.TrackEvent{&started, &departed, &arrived, &unrelated} {
		suite.Require().NoError(suite.repository.Add(ctx, event))
	}

	events, err := suite.repository.GetAllByTrackID(ctx, trackID)
	suite.Require().NoError(err)
	suite.Require().Len(events, 3)

	suite.Equal(track.EventTypeTrackingStarted, events[0].Type())
	suite.Equal(track.EventTypeHubSegmentDeparted, events[1].Type())
	suite.Equal(track.EventTypeHubSegmentArrived, events[2].Type())

	// Segment bearing events keep their index and hub
	suite.Require().NotNil(events[1].SegmentIndex())
	suite.Equal(0, *events[1].SegmentIndex())
	suite.Equal("hub-origin", events[1].HubID())
	suite.Equal("HUB_DELIVERY_SERVICE", events[1].CreatedBy())
}

func (suite *TrackEventRepositoryIntegrationTestSuite) TestGetAllByTrackID_NoEvents_ReturnsEmptySlice() {
	ctx := context.Background()

	events, err := suite.repository.GetAllByTrackID(ctx, kernel.NewUUID())
	suite.Require().NoError(err)
	suite.Empty(events)
}

func (suite *TrackEventRepositoryIntegrationTestSuite) TestExistsSegmentDelay() {
	ctx := context.Background()
	trackID := kernel.NewUUID()

	delayed := track.NewHubSegmentDelayedEvent(trackID, "hub-dest", 1, "SYSTEM")
	suite.Require().NoError(suite.repository.Add(ctx, &delayed))

	// Same type on another segment does not count
	exists, err := suite.repository.ExistsSegmentDelay(ctx, trackID, 0)
	suite.Require().NoError(err)
	suite.False(exists)

	exists, err = suite.repository.ExistsSegmentDelay(ctx, trackID, 1)
	suite.Require().NoError(err)
	suite.True(exists)

	// Another track is unaffected
	exists, err = suite.repository.ExistsSegmentDelay(ctx, kernel.NewUUID(), 1)
	suite.Require().NoError(err)
	suite.False(exists)
}

func (suite *TrackEventRepositoryIntegrationTestSuite) TestExistsSegmentDelay_IgnoresOtherEventTypes() {
	ctx := context.Background()
	trackID := kernel.NewUUID()

	departed := track.NewHubSegmentDepartedEvent(trackID, "hub-origin", 0, "HUB_DELIVERY_SERVICE")
	suite.Require().NoError(suite.repository.Add(ctx, &departed))

	exists, err := suite.repository.ExistsSegmentDelay(ctx, trackID, 0)
	suite.Require().NoError(err)
	suite.False(exists)
}

func TestTrackEventRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(TrackEventRepositoryIntegrationTestSuite))
}
