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

func TestNewUpdateTaskStatusCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	for _, status := range []task.Status{task.Pending, task.InProgress, task.Done} {
		cmd, err := commands.NewUpdateTaskStatusCommand(id, status, "buttons sewn")
		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, id, cmd.TaskID())
		assert.Equal(t, status, cmd.Status())
		assert.Equal(t, "buttons sewn", cmd.Remarks())
	}
}

func TestNewUpdateTaskStatusCommand_RejectsReassigned(t *testing.T) {
	_, err := commands.NewUpdateTaskStatusCommand(kernel.NewUUID(), task.Reassigned, "")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, "status", errs.Field(err))
}

func TestNewUpdateTaskStatusCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewUpdateTaskStatusCommand(kernel.UUID{}, task.UnknownStatus, "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "taskId")
}

func TestUpdateTaskStatusCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.UpdateTaskStatusCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrUpdateTaskStatusCommandIsNotConstructed)
}
