package commands_test

import (
	"testing"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReassignTaskCommand_ValidInput(t *testing.T) {
	taskID, newStaffID, managerID := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()

	cmd, err := commands.NewReassignTaskCommand(taskID, newStaffID, managerID, "S1 on leave")
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())

	assert.Equal(t, taskID, cmd.TaskID())
	assert.Equal(t, newStaffID, cmd.NewStaffID())
	assert.Equal(t, managerID, cmd.ReassignedBy())
	assert.Equal(t, "S1 on leave", cmd.Note())
}

func TestNewReassignTaskCommand_RequiresIDs(t *testing.T) {
	_, err := commands.NewReassignTaskCommand(kernel.UUID{}, kernel.UUID{}, kernel.NewUUID(), "")

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "taskId")
	assert.Contains(t, err.Error(), "newStaffId")
	assert.NotContains(t, err.Error(), "reassignedBy")
}

func TestReassignTaskCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.ReassignTaskCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrReassignTaskCommandIsNotConstructed)
}
