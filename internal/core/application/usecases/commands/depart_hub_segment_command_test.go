package commands_test

import (
	"testing"

	"track/internal/core/application/usecases/commands"
	"track/internal/core/domain/model/kernel"
	"track/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDepartHubSegmentCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewDepartHubSegmentCommand(
		id, 1, "hub-a", "hub-b", commands.ActorHubDeliveryService)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.TrackID())
	assert.Equal(t, 1, cmd.SegmentIndex())
	assert.Equal(t, "hub-a", cmd.FromHubID())
	assert.Equal(t, "hub-b", cmd.ToHubID())
	assert.Equal(t, commands.ActorHubDeliveryService, cmd.UpdatedBy())
}

func TestNewDepartHubSegmentCommand_InvalidTrackID(t *testing.T) {
	_, err := commands.NewDepartHubSegmentCommand(
		kernel.UUID{}, 0, "hub-a", "hub-b", commands.ActorHubDeliveryService)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewDepartHubSegmentCommand_NegativeSegmentIndex(t *testing.T) {
	_, err := commands.NewDepartHubSegmentCommand(
		kernel.NewUUID(), -1, "hub-a", "hub-b", commands.ActorHubDeliveryService)
	require.Error(t, err)
}

func TestNewDepartHubSegmentCommand_EmptyHubIDs(t *testing.T) {
	_, err := commands.NewDepartHubSegmentCommand(
		kernel.NewUUID(), 0, "", "", commands.ActorHubDeliveryService)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestDepartHubSegmentCommand_ZeroValueIsNotConstructed(t *testing.T) {
	var cmd commands.DepartHubSegmentCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrDepartHubSegmentCommandIsNotConstructed)
}
