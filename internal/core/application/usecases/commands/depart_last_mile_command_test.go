package commands_test

import (
	"testing"

	"track/internal/core/application/usecases/commands"
	"track/internal/core/domain/model/kernel"
	"track/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDepartLastMileCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewDepartLastMileCommand(id, commands.ActorLastMileService)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.TrackID())
	assert.Equal(t, commands.ActorLastMileService, cmd.UpdatedBy())
}

func TestNewDepartLastMileCommand_EmptyUpdatedBy(t *testing.T) {
	_, err := commands.NewDepartLastMileCommand(kernel.NewUUID(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestDepartLastMileCommand_ZeroValueIsNotConstructed(t *testing.T) {
	var cmd commands.DepartLastMileCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrDepartLastMileCommandIsNotConstructed)
}
