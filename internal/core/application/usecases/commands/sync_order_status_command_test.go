package commands_test

import (
	"testing"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/task"
	"atelier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSyncOrderStatusCommand_Manual(t *testing.T) {
	orderID := kernel.NewUUID()

	cmd, err := commands.NewSyncOrderStatusCommand(orderID)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())

	assert.Equal(t, orderID, cmd.OrderID())
	assert.True(t, cmd.IsManual())
	assert.Nil(t, cmd.TaskID())
	assert.Equal(t, task.UnknownStage, cmd.Stage())
}

func TestNewTaskSavedSyncCommand(t *testing.T) {
	orderID, taskID := kernel.NewUUID(), kernel.NewUUID()

	cmd, err := commands.NewTaskSavedSyncCommand(orderID, taskID, task.Tailoring)
	require.NoError(t, err)

	assert.False(t, cmd.IsManual())
	require.NotNil(t, cmd.TaskID())
	assert.Equal(t, taskID, *cmd.TaskID())
	assert.Equal(t, task.Tailoring, cmd.Stage())
}

func TestNewSyncOrderStatusCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewSyncOrderStatusCommand(kernel.UUID{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Equal(t, "orderId", errs.Field(err))

	_, err = commands.NewTaskSavedSyncCommand(kernel.NewUUID(), kernel.UUID{}, task.Cutting)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "taskId")

	_, err = commands.NewTaskSavedSyncCommand(kernel.NewUUID(), kernel.NewUUID(), task.UnknownStage)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestSyncOrderStatusCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.SyncOrderStatusCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrSyncOrderStatusCommandIsNotConstructed)
}
