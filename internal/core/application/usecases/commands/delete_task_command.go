package commands

import (
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/guard"
)

var ErrDeleteTaskCommandIsNotConstructed = errors.New(
	"DeleteTaskCommand must be created via NewDeleteTaskCommand constructor",
)

// DeleteTaskCommand is the administrative hard delete of a task.
type DeleteTaskCommand struct { //nolint:recvcheck //using for validation
	taskID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteTaskCommand(taskID kernel.UUID) (DeleteTaskCommand, error) {
	command := DeleteTaskCommand{guard: guard.NewConstructorGuard()}
	if err := requireID("taskId", taskID, &command.taskID); err != nil {
		return DeleteTaskCommand{}, err
	}
	return command, nil
}

func (c DeleteTaskCommand) Validate() error {
	return c.guard.Validate(ErrDeleteTaskCommandIsNotConstructed)
}

func (c DeleteTaskCommand) TaskID() kernel.UUID { return c.taskID }
