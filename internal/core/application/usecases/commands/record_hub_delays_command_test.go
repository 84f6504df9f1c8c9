package commands_test

import (
	"testing"
	"time"

	"track/internal/core/application/usecases/commands"
	"track/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecordHubDelaysCommand_ValidInput(t *testing.T) {
	now := time.Now().UTC()
	cmd, err := commands.NewRecordHubDelaysCommand(now)
	require.NoError(t, err)
	assert.Equal(t, now, cmd.Now())
	require.NoError(t, cmd.Validate())
}

func TestNewRecordHubDelaysCommand_ZeroTime(t *testing.T) {
	_, err := commands.NewRecordHubDelaysCommand(time.Time{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestRecordHubDelaysCommand_ZeroValueIsNotConstructed(t *testing.T) {
	var cmd commands.RecordHubDelaysCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrRecordHubDelaysCommandIsNotConstructed)
}
