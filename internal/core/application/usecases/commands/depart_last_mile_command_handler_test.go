package commands_test

import (
	"testing"

	"track/internal/core/application/usecases/commands"
	"track/internal/core/domain/model/track"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDepartLastMileCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := storedTrackInLastMile(t)
	cmd, err := commands.NewDepartLastMileCommand(aggregate.ID(), commands.ActorLastMileService)
	require.NoError(t, err)

	trackRepo := new(MockTrackRepository)
	eventRepo := new(MockTrackEventRepository)
	uow := new(MockTrackUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TrackRepository").Return(trackRepo).Once(),
		trackRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		trackRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("TrackEventRepository").Return(eventRepo).Once(),
		eventRepo.On("Add", mock.Anything, mock.AnythingOfType("*track.TrackEvent")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTrackUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDepartLastMileCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, track.StatusLastMileInProgress, updated.Status())
	assert.Equal(t, track.PhaseLastMileInTransit, updated.CurrentPhase())
	trackRepo.AssertExpectations(t)
	eventRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDepartLastMileCommandHandler_Handle_NotPickedUp(t *testing.T) {
	ctx := t.Context()
	aggregate := storedHubTrack(t)
	cmd, err := commands.NewDepartLastMileCommand(aggregate.ID(), commands.ActorLastMileService)
	require.NoError(t, err)

	trackRepo := new(MockTrackRepository)
	uow := new(MockTrackUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TrackRepository").Return(trackRepo).Once(),
		trackRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTrackUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDepartLastMileCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, track.ErrInvalidStatusTransition)
	trackRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
