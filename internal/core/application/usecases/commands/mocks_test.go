package commands_test

import (
	"context"
	"time"

	"track/internal/core/application/usecases/commands"
	"track/internal/core/domain/model/kernel"
	"track/internal/core/domain/model/track"
	"track/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockTrackRepository struct{ mock.Mock }

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

func (m *MockTrackRepository) GetAllHubInProgressPastEstimate(
	ctx context.Context, before time.Time,
) ([]*track.Track, error) {
	args := m.Called(ctx, before)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*track.Track), args.Error(1)
}

type MockTrackEventRepository struct{ mock.Mock }

func (m *MockTrackEventRepository) Add(ctx context.Context, event *track.TrackEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockTrackEventRepository) GetAllByTrackID(
	ctx context.Context, trackID kernel.UUID,
) ([]*track.TrackEvent, error) {
	args := m.Called(ctx, trackID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*track.TrackEvent), args.Error(1)
}

func (m *MockTrackEventRepository) ExistsSegmentDelay(
	ctx context.Context, trackID kernel.UUID, segmentIndex int,
) (bool, error) {
	args := m.Called(ctx, trackID, segmentIndex)
	return args.Bool(0), args.Error(1)
}

type MockTrackUoW struct{ mock.Mock }

func (m *MockTrackUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTrackUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTrackUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTrackUoW) TrackRepository() ports.TrackRepository {
	args := m.Called()
	return args.Get(0).(ports.TrackRepository)
}

func (m *MockTrackUoW) TrackEventRepository() ports.TrackEventRepository {
	args := m.Called()
	return args.Get(0).(ports.TrackEventRepository)
}

type MockTrackUoWFactory struct{ mock.Mock }

func (m *MockTrackUoWFactory) Create() commands.TrackUoW {
	args := m.Called()
	return args.Get(0).(commands.TrackUoW)
}
