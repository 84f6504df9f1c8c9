package commands_test

import (
	"testing"
	"time"

	"track/internal/core/application/usecases/commands"
	"track/internal/core/domain/model/track"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRecordHubDelaysCommandHandler_Handle_RecordsDelay(t *testing.T) {
	ctx := t.Context()
	now := time.Now().UTC()
	cmd, err := commands.NewRecordHubDelaysCommand(now)
	require.NoError(t, err)

	aggregate := storedHubTrack(t)
	require.NoError(t, aggregate.DepartHubSegment(0, "hub-origin", "hub-mid"))

	trackRepo := new(MockTrackRepository)
	eventRepo := new(MockTrackEventRepository)
	uow := new(MockTrackUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TrackRepository").Return(trackRepo).Once(),
		trackRepo.On("GetAllHubInProgressPastEstimate", mock.Anything, now).
			Return([]*track.Track{aggregate}, nil).Once(),
		uow.On("TrackEventRepository").Return(eventRepo).Once(),
		eventRepo.On("ExistsSegmentDelay", mock.Anything, aggregate.ID(), aggregate.CurrentSegmentIndex()).
			Return(false, nil).Once(),
		uow.On("TrackEventRepository").Return(eventRepo).Once(),
		eventRepo.On("Add", mock.Anything, mock.AnythingOfType("*track.TrackEvent")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTrackUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRecordHubDelaysCommandHandler(factory)
	recorded, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, 1, recorded)
	trackRepo.AssertExpectations(t)
	eventRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRecordHubDelaysCommandHandler_Handle_SkipsAlreadyRecordedSegment(t *testing.T) {
	ctx := t.Context()
	now := time.Now().UTC()
	cmd, err := commands.NewRecordHubDelaysCommand(now)
	require.NoError(t, err)

	aggregate := storedHubTrack(t)
	require.NoError(t, aggregate.DepartHubSegment(0, "hub-origin", "hub-mid"))

	trackRepo := new(MockTrackRepository)
	eventRepo := new(MockTrackEventRepository)
	uow := new(MockTrackUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TrackRepository").Return(trackRepo).Once(),
		trackRepo.On("GetAllHubInProgressPastEstimate", mock.Anything, now).
			Return([]*track.Track{aggregate}, nil).Once(),
		uow.On("TrackEventRepository").Return(eventRepo).Once(),
		eventRepo.On("ExistsSegmentDelay", mock.Anything, aggregate.ID(), aggregate.CurrentSegmentIndex()).
			Return(true, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTrackUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRecordHubDelaysCommandHandler(factory)
	recorded, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, 0, recorded)
	eventRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	trackRepo.AssertExpectations(t)
	eventRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRecordHubDelaysCommandHandler_Handle_NoOverdueTracks(t *testing.T) {
	ctx := t.Context()
	now := time.Now().UTC()
	cmd, err := commands.NewRecordHubDelaysCommand(now)
	require.NoError(t, err)

	trackRepo := new(MockTrackRepository)
	uow := new(MockTrackUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TrackRepository").Return(trackRepo).Once(),
		trackRepo.On("GetAllHubInProgressPastEstimate", mock.Anything, now).
			Return([]*track.Track{}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTrackUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRecordHubDelaysCommandHandler(factory)
	recorded, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, 0, recorded)
	trackRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
