package http_test

import (
	"context"
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpin "track/internal/adapters/in/http"
	"track/internal/core/application/usecases/queries"
	"track/internal/core/domain/model/kernel"
	"track/internal/core/domain/model/track"
	"track/internal/pkg/errs"
)

type MockTrackRepository struct {
	mock.Mock
}

func (m *MockTrackRepository) Add(ctx context.Context, aggregate *track.Track) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockTrackRepository) Update(ctx context.Context, aggregate *track.Track) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockTrackRepository) Get(ctx context.Context, id kernel.UUID) (*track.Track, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*track.Track), args.Error(1)
}

func (m *MockTrackRepository) GetByOrderID(ctx context.Context, orderID string) (*track.Track, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*track.Track), args.Error(1)
}

func (m *MockTrackRepository) ExistsByOrderID(ctx context.Context, orderID string) (bool, error) {
	args := m.Called(ctx, orderID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTrackRepository) GetAllHubInProgressPastEstimate(ctx context.Context, before time.Time) ([]*track.Track, error) {
	args := m.Called(ctx, before)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*track.Track), args.Error(1)
}

type MockTrackEventRepository struct {
	mock.Mock
}

func (m *MockTrackEventRepository) Add(ctx context.Context, event *track.TrackEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockTrackEventRepository) GetAllByTrackID(ctx context.Context, trackID kernel.UUID) ([]*track.TrackEvent, error) {
	args := m.Called(ctx, trackID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*track.TrackEvent), args.Error(1)
}

func (m *MockTrackEventRepository) ExistsSegmentDelay(ctx context.Context, trackID kernel.UUID, segmentIndex int) (bool, error) {
	args := m.Called(ctx, trackID, segmentIndex)
	return args.Bool(0), args.Error(1)
}

type serverFixture struct {
	server    *httpin.Server
	trackRepo *MockTrackRepository
	eventRepo *MockTrackEventRepository
}

func newServerFixture() serverFixture {
	trackRepo := &MockTrackRepository{}
	eventRepo := &MockTrackEventRepository{}

	return serverFixture{
		server: httpin.NewServer(
			queries.NewGetTrackByOrderIDQueryHandler(trackRepo, eventRepo),
			queries.NewGetTrackByIDQueryHandler(trackRepo, eventRepo),
			queries.GetTracksByHubQueryHandler{},
			queries.SearchTracksQueryHandler{},
		),
		trackRepo: trackRepo,
		eventRepo: eventRepo,
	}
}

func (f serverFixture) request(t *testing.T, target string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	f.server.RegisterRoutes(e)

	req := httptest.NewRequest(nethttp.MethodGet, target, nil)
	for name, value := range headers {
		req.Header.Set(name, value)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func storedHubTrack(t *testing.T) *track.Track {
	t.Helper()

	aggregate, err := track.NewTrackWithHubDelivery(
		"order-1", "ORD-001", "hub-origin", "hub-dest", "hd-1",
		[]string{"hd-1-segment-0", "hd-1-segment-1"}, "lm-1", nil, "SYSTEM")
	require.NoError(t, err)
	require.NoError(t, aggregate.AssignID(kernel.NewUUID()))
	return aggregate
}

func TestServer_GetTrackByOrderID_Success(t *testing.T) {
	fixture := newServerFixture()
	aggregate := storedHubTrack(t)

	started := track.NewTrackingStartedEvent(aggregate.ID(), "SYSTEM")
	require.NoError(t, started.AssignID(kernel.NewUUID()))

	fixture.trackRepo.On("GetByOrderID", mock.Anything, "order-1").Return(aggregate, nil)
	fixture.eventRepo.On("GetAllByTrackID", mock.Anything, aggregate.ID()).
		Return([]*track.TrackEvent{&started}, nil)

	rec := fixture.request(t, "/api/v1/tracks/order/order-1", map[string]string{
		"X-User-Id": "user-1",
	})

	require.Equal(t, nethttp.StatusOK, rec.Code)

	var detail httpin.TrackDetailView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Equal(t, "order-1", detail.Track.OrderID)
	assert.Equal(t, "ORD-001", detail.Track.OrderNumber)
	assert.Equal(t, "CREATED", detail.Track.Status)
	assert.Equal(t, 2, detail.Track.TotalHubSegments)
	require.Len(t, detail.Events, 1)
	assert.Equal(t, "TRACKING_STARTED", detail.Events[0].EventType)
}

func TestServer_GetTrackByOrderID_RequiresIdentity(t *testing.T) {
	fixture := newServerFixture()

	rec := fixture.request(t, "/api/v1/tracks/order/order-1", nil)

	assert.Equal(t, nethttp.StatusUnauthorized, rec.Code)
	fixture.trackRepo.AssertNotCalled(t, "GetByOrderID", mock.Anything, mock.Anything)
}

func TestServer_GetTrackByOrderID_NotFound(t *testing.T) {
	fixture := newServerFixture()

	fixture.trackRepo.On("GetByOrderID", mock.Anything, "order-unknown").
		Return(nil, errs.NewObjectNotFoundError("orderID", "order-unknown"))

	rec := fixture.request(t, "/api/v1/tracks/order/order-unknown", map[string]string{
		"X-User-Id": "user-1",
	})

	require.Equal(t, nethttp.StatusNotFound, rec.Code)

	var body httpin.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, nethttp.StatusNotFound, body.Code)
}

func TestServer_GetTrackByID_Success(t *testing.T) {
	fixture := newServerFixture()
	aggregate := storedHubTrack(t)

	fixture.trackRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil)
	fixture.eventRepo.On("GetAllByTrackID", mock.Anything, aggregate.ID()).
		Return([]*track.TrackEvent{}, nil)

	rec := fixture.request(t, "/api/v1/tracks/"+aggregate.ID().String(), nil)

	require.Equal(t, nethttp.StatusOK, rec.Code)

	var detail httpin.TrackDetailView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Equal(t, aggregate.ID().String(), detail.Track.TrackID)
	assert.Empty(t, detail.Events)
}

func TestServer_GetTrackByID_InvalidUUID(t *testing.T) {
	fixture := newServerFixture()

	rec := fixture.request(t, "/api/v1/tracks/not-a-uuid", nil)

	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
	fixture.trackRepo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestServer_SearchTracks_RequiresMasterRole(t *testing.T) {
	fixture := newServerFixture()

	rec := fixture.request(t, "/api/v1/tracks", map[string]string{
		"X-User-Id":   "user-1",
		"X-User-Role": "HUB_MANAGER",
	})

	assert.Equal(t, nethttp.StatusForbidden, rec.Code)
}

func TestServer_SearchTracks_RejectsUnknownStatus(t *testing.T) {
	fixture := newServerFixture()

	rec := fixture.request(t, "/api/v1/tracks?status=BOGUS", map[string]string{
		"X-User-Role": "MASTER",
	})

	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
}

func TestServer_GetTracksByHub_RejectsMalformedPaging(t *testing.T) {
	fixture := newServerFixture()

	rec := fixture.request(t, "/api/v1/hubs/hub-1/tracks?page=abc", nil)

	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
}
