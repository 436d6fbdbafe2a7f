package commands_test

import (
	"testing"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeleteTaskCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewDeleteTaskCommand(id)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, id, cmd.TaskID())
}

func TestNewDeleteTaskCommand_InvalidTaskID(t *testing.T) {
	_, err := commands.NewDeleteTaskCommand(kernel.UUID{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Equal(t, "taskId", errs.Field(err))
}

func TestDeleteTaskCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.DeleteTaskCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrDeleteTaskCommandIsNotConstructed)
}
