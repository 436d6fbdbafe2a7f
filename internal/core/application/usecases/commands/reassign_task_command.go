package commands

import (
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

var ErrReassignTaskCommandIsNotConstructed = errors.New(
	"ReassignTaskCommand must be created via NewReassignTaskCommand constructor",
)

// ReassignTaskCommand hands an active task over to another staff member.
//
// Example:
//
//	cmd, err := NewReassignTaskCommand(taskID, newStaffID, managerID, "S1 on leave")
//	if err != nil {
//	    return err
//	}
//	successor, err := handler.Handle(ctx, cmd)
type ReassignTaskCommand struct { //nolint:recvcheck //using for validation
	taskID       kernel.UUID
	newStaffID   kernel.UUID
	reassignedBy kernel.UUID
	note         string

	guard guard.ConstructorGuard
}

func NewReassignTaskCommand(taskID, newStaffID, reassignedBy kernel.UUID, note string) (ReassignTaskCommand, error) {
	command := ReassignTaskCommand{
		note:  note,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		requireID("taskId", taskID, &command.taskID),
		requireID("newStaffId", newStaffID, &command.newStaffID),
		requireID("reassignedBy", reassignedBy, &command.reassignedBy),
	); err != nil {
		return ReassignTaskCommand{}, err
	}

	return command, nil
}

func (c ReassignTaskCommand) Validate() error {
	return c.guard.Validate(ErrReassignTaskCommandIsNotConstructed)
}

func (c ReassignTaskCommand) TaskID() kernel.UUID { return c.taskID }
func (c ReassignTaskCommand) NewStaffID() kernel.UUID { return c.newStaffID }
func (c ReassignTaskCommand) ReassignedBy() kernel.UUID { return c.reassignedBy }
func (c ReassignTaskCommand) Note() string { return c.note }

func requireID(field string, id kernel.UUID, dst *kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(field, err)
	}
	*dst = id
	return nil
}
