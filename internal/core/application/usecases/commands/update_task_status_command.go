package commands

import (
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/task"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

var ErrUpdateTaskStatusCommandIsNotConstructed = errors.New(
	"UpdateTaskStatusCommand must be created via NewUpdateTaskStatusCommand constructor",
)

// UpdateTaskStatusCommand moves a task between Pending, In Progress and Done.
type UpdateTaskStatusCommand struct { //nolint:recvcheck //using for validation
	taskID  kernel.UUID
	status  task.Status
	remarks string

	guard guard.ConstructorGuard
}

// NewUpdateTaskStatusCommand rejects statuses that cannot be set directly,
// Reassigned included.
func NewUpdateTaskStatusCommand(taskID kernel.UUID, status task.Status, remarks string) (UpdateTaskStatusCommand, error) {
	command := UpdateTaskStatusCommand{
		remarks: remarks,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setTaskID(taskID),
		command.setStatus(status),
	); err != nil {
		return UpdateTaskStatusCommand{}, err
	}

	return command, nil
}

func (c UpdateTaskStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateTaskStatusCommandIsNotConstructed)
}

func (c UpdateTaskStatusCommand) TaskID() kernel.UUID { return c.taskID }
func (c UpdateTaskStatusCommand) Status() task.Status { return c.status }
func (c UpdateTaskStatusCommand) Remarks() string { return c.remarks }

func (c *UpdateTaskStatusCommand) setTaskID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("taskId", err)
	}
	c.taskID = id
	return nil
}

func (c *UpdateTaskStatusCommand) setStatus(status task.Status) error {
	if err := status.ValidateSettable(); err != nil {
		return err
	}
	c.status = status
	return nil
}
